package search

import "github.com/lucasferri/artmood/internal/artwork"

// Merge concatenates a then b and removes later duplicates by ID, keeping
// each artwork at its first position. No cross-provider ranking: a's items
// always come first for the same query.
func Merge(a, b []artwork.Artwork) []artwork.Artwork {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]artwork.Artwork, 0, len(a)+len(b))
	for _, list := range [][]artwork.Artwork{a, b} {
		for _, it := range list {
			if seen[it.ID] {
				continue
			}
			seen[it.ID] = true
			out = append(out, it)
		}
	}
	return out
}
