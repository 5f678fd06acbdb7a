package search

import (
	"testing"

	"github.com/lucasferri/artmood/internal/artwork"
)

func item(id string) artwork.Artwork {
	return artwork.Artwork{ID: id, Title: "t-" + id, ImageURL: "https://img/" + id}
}

func TestMergeKeepsFirstPosition(t *testing.T) {
	a := []artwork.Artwork{item("1"), item("2")}
	b := []artwork.Artwork{item("aic-1"), item("2"), item("aic-2")}

	got := Merge(a, b)

	wantIDs := []string{"1", "2", "aic-1", "aic-2"}
	if len(got) != len(wantIDs) {
		t.Fatalf("merged %d items, want %d: %v", len(got), len(wantIDs), got)
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("position %d: got %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestMergeProviderAFirst(t *testing.T) {
	a := []artwork.Artwork{item("met-only")}
	b := []artwork.Artwork{item("aic-only")}

	got := Merge(a, b)
	if got[0].ID != "met-only" {
		t.Errorf("provider A results must come first, got %q", got[0].ID)
	}
}

func TestMergeEmptyLists(t *testing.T) {
	if got := Merge(nil, nil); len(got) != 0 {
		t.Errorf("Merge(nil, nil) = %v, want empty", got)
	}
	if got := Merge(nil, []artwork.Artwork{item("1")}); len(got) != 1 {
		t.Errorf("Merge(nil, one) = %v, want one item", got)
	}
}

func TestMergeDuplicateWithinOneList(t *testing.T) {
	a := []artwork.Artwork{item("1"), item("1")}
	got := Merge(a, nil)
	if len(got) != 1 {
		t.Errorf("duplicate within one list not removed: %v", got)
	}
}
