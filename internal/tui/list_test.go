package tui

import (
	"strings"
	"testing"

	"github.com/lucasferri/artmood/internal/artwork"
)

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 20, "short"},
		{"The Great Wave off Kanagawa", 15, "The Great Wa..."},
		{"abcdef", 3, "abc"},
		{"abcdef", 0, ""},
		{"abcdef", -1, ""},
		{"", 10, ""},
	}
	for _, tt := range tests {
		if got := truncateStr(tt.in, tt.n); got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("one two three four", 9)
	want := "one two\nthree\nfour"
	if got != want {
		t.Errorf("wrapText = %q, want %q", got, want)
	}
}

func TestWrapTextKeepsParagraphs(t *testing.T) {
	got := wrapText("first line\n\nsecond line", 40)
	if strings.Count(got, "\n") != 2 {
		t.Errorf("expected paragraph break preserved, got %q", got)
	}
}

func TestWrapTextZeroWidth(t *testing.T) {
	if got := wrapText("unchanged", 0); got != "unchanged" {
		t.Errorf("wrapText with zero width changed input: %q", got)
	}
}

func TestRenderListEmpty(t *testing.T) {
	out := renderList(nil, nil, 0, 10, 60)
	if !strings.Contains(out, "No artworks found") {
		t.Errorf("expected empty placeholder, got %q", out)
	}
}

func TestRenderListMarksLiked(t *testing.T) {
	items := []artwork.Artwork{
		{ID: "1", Title: "Liked one", Artist: "A"},
		{ID: "2", Title: "Other", Artist: "B"},
	}
	out := renderList(items, map[string]bool{"1": true}, 0, 12, 60)
	if !strings.Contains(out, "♥") {
		t.Error("expected liked marker in list output")
	}
}

func TestRenderListScrollsToCursor(t *testing.T) {
	items := make([]artwork.Artwork, 20)
	for i := range items {
		items[i] = artwork.Artwork{ID: string(rune('a' + i)), Title: "Item " + string(rune('A'+i)), Artist: "x"}
	}
	// Height fits 3 items; cursor at the end must scroll the last item into view.
	out := renderList(items, nil, 19, 9, 60)
	if !strings.Contains(out, "Item T") {
		t.Errorf("expected last item visible, got %q", out)
	}
	if strings.Contains(out, "Item A") {
		t.Error("expected first item scrolled out of view")
	}
}
