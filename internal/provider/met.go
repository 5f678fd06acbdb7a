package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lucasferri/artmood/internal/artwork"
)

// Met searches the Met Museum collection API. The API is two-step: a search
// call returns object IDs, then each object needs its own detail fetch.
type Met struct {
	searchURL string
	objectURL string
	pageURL   string
	client    *http.Client
}

// MetConfig holds the Met endpoints.
type MetConfig struct {
	SearchURL string
	ObjectURL string
	PageURL   string
}

func NewMet(cfg MetConfig, timeout time.Duration) *Met {
	return &Met{
		searchURL: cfg.SearchURL,
		objectURL: cfg.ObjectURL,
		pageURL:   cfg.PageURL,
		client:    newHTTPClient(timeout),
	}
}

func (m *Met) Name() string { return "met" }

type metSearchResponse struct {
	ObjectIDs []int `json:"objectIDs"`
}

type metObject struct {
	ObjectID          int    `json:"objectID"`
	Title             string `json:"title"`
	ArtistDisplayName string `json:"artistDisplayName"`
	ObjectDate        string `json:"objectDate"`
	ObjectBeginDate   int    `json:"objectBeginDate"`
	PrimaryImageSmall string `json:"primaryImageSmall"`
	ObjectURL         string `json:"objectURL"`
	Medium            string `json:"medium"`
	Classification    string `json:"classification"`
}

// Search queries the collection restricted to objects with images, fetches
// the detail record of every hit concurrently, and drops any object whose
// detail fetch fails or which lacks a primary image. Paintings are ordered
// before everything else, original order preserved within each group.
func (m *Met) Search(ctx context.Context, query string, limit int) ([]artwork.Artwork, error) {
	u, err := url.Parse(m.searchURL)
	if err != nil {
		return nil, &Error{Provider: m.Name(), Err: err}
	}
	q := u.Query()
	q.Set("q", query)
	q.Set("hasImages", "true")
	u.RawQuery = q.Encode()

	var res metSearchResponse
	if err := getJSON(ctx, m.client, u.String(), &res); err != nil {
		return nil, &Error{Provider: m.Name(), Err: err}
	}

	ids := res.ObjectIDs
	if len(ids) > limit {
		ids = ids[:limit]
	}

	// One detail fetch per object, all in flight at once. Indexed results
	// keep the search order stable across goroutines.
	fetched := make([]*artwork.Artwork, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i, id int) {
			defer wg.Done()
			fetched[i] = m.fetchObject(ctx, id)
		}(i, id)
	}
	wg.Wait()

	items := make([]artwork.Artwork, 0, len(ids))
	for _, it := range fetched {
		if it != nil {
			items = append(items, *it)
		}
	}

	items = paintingsFirst(items)
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// fetchObject returns nil when the object should be skipped: a failed or
// undecodable detail fetch, or no primary image.
func (m *Met) fetchObject(ctx context.Context, id int) *artwork.Artwork {
	var obj metObject
	if err := getJSON(ctx, m.client, fmt.Sprintf("%s/%d", m.objectURL, id), &obj); err != nil {
		return nil
	}
	if obj.PrimaryImageSmall == "" {
		return nil
	}

	artist := obj.ArtistDisplayName
	if artist == "" {
		artist = "Unknown"
	}

	date := obj.ObjectDate
	if date == "" && obj.ObjectBeginDate != 0 {
		date = strconv.Itoa(obj.ObjectBeginDate)
	}

	detail := obj.ObjectURL
	if detail == "" {
		detail = fmt.Sprintf("%s/%d", m.pageURL, obj.ObjectID)
	}

	return &artwork.Artwork{
		ID:             strconv.Itoa(obj.ObjectID),
		Title:          obj.Title,
		Artist:         artist,
		Date:           date,
		ImageURL:       obj.PrimaryImageSmall,
		DetailURL:      detail,
		Medium:         obj.Medium,
		Classification: obj.Classification,
	}
}

var paintingMediums = []string{"oil", "tempera", "watercolor", "gouache", "acrylic"}

func isPainting(it artwork.Artwork) bool {
	m := strings.ToLower(it.Medium)
	c := strings.ToLower(it.Classification)
	if strings.Contains(c, "painting") {
		return true
	}
	for _, medium := range paintingMediums {
		if strings.Contains(m, medium) {
			return true
		}
	}
	return false
}

// paintingsFirst is a stable partition: paintings keep their relative order
// ahead of everything else.
func paintingsFirst(items []artwork.Artwork) []artwork.Artwork {
	out := make([]artwork.Artwork, 0, len(items))
	for _, it := range items {
		if isPainting(it) {
			out = append(out, it)
		}
	}
	for _, it := range items {
		if !isPainting(it) {
			out = append(out, it)
		}
	}
	return out
}
