package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/lucasferri/artmood/internal/artwork"
	"github.com/lucasferri/artmood/internal/provider"
	"github.com/lucasferri/artmood/internal/terms"
)

const (
	// DefaultMinResults is the threshold below which the widen phase kicks in.
	DefaultMinResults = 50
	// DefaultMaxResults is the hard cap on a result set.
	DefaultMaxResults = 500
)

// Attempt records one query issued to the providers.
type Attempt struct {
	Query string
	Terms []string
}

// Result is the outcome of one orchestrated search. Generation is a
// monotonically increasing token: consumers must discard results whose
// generation is older than the newest one they requested, since an in-flight
// search is never cancelled by a newer one.
type Result struct {
	Generation uint64
	Query      string // display query, annotated "(fallback → …)" when the fallback fired
	Terms      []string
	Attempts   []Attempt
	Items      []artwork.Artwork
	Err        error
}

// Options tunes the orchestrator thresholds. Zero values take defaults.
type Options struct {
	MinResults int
	MaxResults int
}

// Orchestrator drives a mood search end to end: derive terms, query both
// providers, then fall back and widen until the result set is big enough or
// the term list is spent.
type Orchestrator struct {
	providers  []provider.Provider
	minResults int
	maxResults int
	gen        atomic.Uint64
}

func New(providers []provider.Provider, opts Options) *Orchestrator {
	min := opts.MinResults
	if min <= 0 {
		min = DefaultMinResults
	}
	max := opts.MaxResults
	if max <= 0 {
		max = DefaultMaxResults
	}
	return &Orchestrator{providers: providers, minResults: min, maxResults: max}
}

// Generation returns the token of the most recently started search.
func (o *Orchestrator) Generation() uint64 { return o.gen.Load() }

// Run executes one search for the given mood text. Provider failures degrade
// to empty lists; Result.Err is set only when no items were produced and at
// least one provider call actually raised.
func (o *Orchestrator) Run(ctx context.Context, text string) Result {
	res := Result{Generation: o.gen.Add(1)}

	tlist := terms.Derive(text)
	if len(tlist) == 0 {
		tlist = firstWords(text, 3)
	}
	res.Terms = tlist

	query := strings.Join(tlist, " ")
	res.Query = query
	res.Attempts = append(res.Attempts, Attempt{Query: query, Terms: tlist})

	items, attemptErr := o.attempt(ctx, query)
	failure := attemptErr

	// Fallback: an over-constrained query with the bias term can yield
	// nothing; retry once without it.
	if len(items) == 0 && containsFold(tlist, terms.BiasTerm) {
		filtered := removeFold(tlist, terms.BiasTerm)
		if len(filtered) > 0 {
			fallbackQuery := strings.Join(filtered, " ")
			res.Query = fmt.Sprintf("%s (fallback → %s)", query, fallbackQuery)
			res.Attempts = append(res.Attempts, Attempt{Query: fallbackQuery, Terms: filtered})
			tlist = filtered
			res.Terms = tlist

			items, attemptErr = o.attempt(ctx, fallbackQuery)
			failure = errors.Join(failure, attemptErr)
		}
	}

	// Widen: grow a thin result set one term at a time, strictly
	// sequentially, stopping the moment a threshold is crossed.
	if len(items) < o.minResults {
		seen := make(map[string]bool, len(items))
		for _, it := range items {
			seen[it.ID] = true
		}
		for _, term := range tlist {
			if len(items) >= o.minResults || len(items) >= o.maxResults {
				break
			}
			res.Attempts = append(res.Attempts, Attempt{Query: term, Terms: []string{term}})
			got, err := o.attempt(ctx, term)
			failure = errors.Join(failure, err)
			for _, it := range got {
				if !seen[it.ID] {
					seen[it.ID] = true
					items = append(items, it)
				}
				if len(items) >= o.maxResults {
					break
				}
			}
		}
	}

	if len(items) > o.maxResults {
		items = items[:o.maxResults]
	}
	res.Items = items

	if len(items) == 0 && failure != nil {
		res.Err = fmt.Errorf("searching artworks: %w", failure)
	}
	return res
}

// attempt queries every provider concurrently with the same query and merges
// the lists in provider order. A failing provider contributes an empty list;
// its error is reported alongside the merged items, never instead of them.
func (o *Orchestrator) attempt(ctx context.Context, query string) ([]artwork.Artwork, error) {
	lists := make([][]artwork.Artwork, len(o.providers))
	errs := make([]error, len(o.providers))

	var wg sync.WaitGroup
	for i, p := range o.providers {
		wg.Add(1)
		go func(i int, p provider.Provider) {
			defer wg.Done()
			lists[i], errs[i] = p.Search(ctx, query, o.maxResults)
		}(i, p)
	}
	wg.Wait()

	var merged []artwork.Artwork
	for i, list := range lists {
		if i == 0 {
			merged = Merge(list, nil)
			continue
		}
		merged = Merge(merged, list)
	}
	return merged, errors.Join(errs...)
}

func firstWords(text string, n int) []string {
	words := strings.Fields(strings.ToLower(text))
	if len(words) > n {
		words = words[:n]
	}
	return words
}

func containsFold(list []string, s string) bool {
	for _, t := range list {
		if strings.EqualFold(t, s) {
			return true
		}
	}
	return false
}

func removeFold(list []string, s string) []string {
	out := make([]string, 0, len(list))
	for _, t := range list {
		if !strings.EqualFold(t, s) {
			out = append(out, t)
		}
	}
	return out
}
