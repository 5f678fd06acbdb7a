package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/lucasferri/artmood/internal/artwork"
)

// newMetServer serves a fake Met API: /search returns ids, /objects/<id>
// returns the scripted object or the scripted status.
func newMetServer(t *testing.T, ids []int, objects map[int]metObject, objectStatus map[int]int) *Met {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("hasImages") != "true" {
			t.Errorf("search call missing hasImages=true: %s", r.URL)
		}
		if r.URL.Query().Get("q") == "" {
			t.Errorf("search call missing q: %s", r.URL)
		}
		json.NewEncoder(w).Encode(metSearchResponse{ObjectIDs: ids})
	})
	mux.HandleFunc("/objects/", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/objects/"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if status, ok := objectStatus[id]; ok {
			w.WriteHeader(status)
			return
		}
		obj, ok := objects[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(obj)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return NewMet(MetConfig{
		SearchURL: srv.URL + "/search",
		ObjectURL: srv.URL + "/objects",
		PageURL:   srv.URL + "/page",
	}, 5*time.Second)
}

func metObj(id int, image, medium, classification string) metObject {
	return metObject{
		ObjectID:          id,
		Title:             fmt.Sprintf("Work %d", id),
		ArtistDisplayName: "Some Artist",
		ObjectDate:        "1880",
		PrimaryImageSmall: image,
		ObjectURL:         fmt.Sprintf("https://met.example/art/%d", id),
		Medium:            medium,
		Classification:    classification,
	}
}

func TestMetSearchNormalizes(t *testing.T) {
	met := newMetServer(t,
		[]int{1},
		map[int]metObject{1: metObj(1, "https://img/1.jpg", "Oil on canvas", "Paintings")},
		nil,
	)

	items, err := met.Search(context.Background(), "twilight", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	it := items[0]
	if it.ID != "1" {
		t.Errorf("ID = %q, want native id", it.ID)
	}
	if it.Artist != "Some Artist" || it.Date != "1880" || it.ImageURL != "https://img/1.jpg" {
		t.Errorf("bad mapping: %+v", it)
	}
	if it.DetailURL != "https://met.example/art/1" {
		t.Errorf("DetailURL = %q", it.DetailURL)
	}
}

func TestMetSearchDropsFaultyRecords(t *testing.T) {
	met := newMetServer(t,
		[]int{1, 2, 3},
		map[int]metObject{
			1: metObj(1, "https://img/1.jpg", "Oil", "Paintings"),
			2: metObj(2, "", "Oil", "Paintings"), // no image
		},
		map[int]int{3: http.StatusInternalServerError}, // detail fetch fails
	)

	items, err := met.Search(context.Background(), "storm", 10)
	if err != nil {
		t.Fatalf("per-record faults must not fail the search: %v", err)
	}
	if len(items) != 1 || items[0].ID != "1" {
		t.Errorf("got %v, want only object 1", items)
	}
}

func TestMetSearchPaintingsFirst(t *testing.T) {
	met := newMetServer(t,
		[]int{1, 2, 3},
		map[int]metObject{
			1: metObj(1, "https://img/1.jpg", "Bronze", "Sculpture"),
			2: metObj(2, "https://img/2.jpg", "Watercolor on paper", ""),
			3: metObj(3, "https://img/3.jpg", "", "Paintings"),
		},
		nil,
	)

	items, err := met.Search(context.Background(), "sea", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gotIDs := make([]string, len(items))
	for i, it := range items {
		gotIDs[i] = it.ID
	}
	// 2 and 3 are paintings (medium and classification respectively) and
	// keep their relative order; 1 moves to the back.
	want := []string{"2", "3", "1"}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("order = %v, want %v", gotIDs, want)
		}
	}
}

func TestMetSearchTruncatesToLimit(t *testing.T) {
	objects := make(map[int]metObject)
	var ids []int
	for i := 1; i <= 8; i++ {
		ids = append(ids, i)
		objects[i] = metObj(i, fmt.Sprintf("https://img/%d.jpg", i), "Oil", "Paintings")
	}
	met := newMetServer(t, ids, objects, nil)

	items, err := met.Search(context.Background(), "garden", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("got %d items, want limit of 3", len(items))
	}
}

func TestMetSearchDateAndURLFallbacks(t *testing.T) {
	obj := metObject{
		ObjectID:          7,
		Title:             "Untitled",
		ObjectBeginDate:   1650,
		PrimaryImageSmall: "https://img/7.jpg",
	}
	met := newMetServer(t, []int{7}, map[int]metObject{7: obj}, nil)

	items, err := met.Search(context.Background(), "night", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	it := items[0]
	if it.Date != "1650" {
		t.Errorf("Date = %q, want begin-year fallback", it.Date)
	}
	if it.Artist != "Unknown" {
		t.Errorf("Artist = %q, want Unknown default", it.Artist)
	}
	if !strings.HasSuffix(it.DetailURL, "/page/7") {
		t.Errorf("DetailURL = %q, want constructed page URL", it.DetailURL)
	}
}

func TestMetSearchFailsOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	met := NewMet(MetConfig{SearchURL: srv.URL, ObjectURL: srv.URL, PageURL: srv.URL}, time.Second)
	_, err := met.Search(context.Background(), "rain", 10)
	if err == nil {
		t.Fatal("expected an error on a failing search call")
	}
	var perr *Error
	if !errors.As(err, &perr) {
		t.Errorf("error %v is not a provider Error", err)
	}
}

func TestIsPainting(t *testing.T) {
	tests := []struct {
		medium, classification string
		want                   bool
	}{
		{"Oil on canvas", "", true},
		{"Tempera on wood", "", true},
		{"WATERCOLOR", "", true},
		{"Gouache and ink", "", true},
		{"Acrylic", "", true},
		{"", "Paintings", true},
		{"Bronze", "Sculpture", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got := isPainting(artwork.Artwork{Medium: tt.medium, Classification: tt.classification})
		if got != tt.want {
			t.Errorf("isPainting(%q, %q) = %v, want %v", tt.medium, tt.classification, got, tt.want)
		}
	}
}
