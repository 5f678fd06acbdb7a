package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"
)

func newAICServer(t *testing.T, records []aicRecord) *AIC {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("q") == "" {
			t.Errorf("search call missing q: %s", r.URL)
		}
		if q.Get("fields") != aicFields {
			t.Errorf("fields = %q, want %q", q.Get("fields"), aicFields)
		}
		if _, err := strconv.Atoi(q.Get("limit")); err != nil {
			t.Errorf("limit = %q, want an integer", q.Get("limit"))
		}
		json.NewEncoder(w).Encode(aicSearchResponse{Data: records})
	}))
	t.Cleanup(srv.Close)

	return NewAIC(AICConfig{
		SearchURL: srv.URL,
		IIIFURL:   "https://iiif.example/2",
		PageURL:   "https://aic.example/artworks",
	}, 5*time.Second)
}

func TestAICSearchNormalizes(t *testing.T) {
	aic := newAICServer(t, []aicRecord{
		{ID: 42, Title: "Nocturne", ArtistDisplay: "J. Whistler", DateDisplay: "1875", ImageID: "img-42"},
	})

	items, err := aic.Search(context.Background(), "nocturne", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	it := items[0]
	if it.ID != "aic-42" {
		t.Errorf("ID = %q, want provider-tagged id", it.ID)
	}
	if it.ImageURL != "https://iiif.example/2/img-42/full/843,/0/default.jpg" {
		t.Errorf("ImageURL = %q", it.ImageURL)
	}
	if it.DetailURL != "https://aic.example/artworks/42" {
		t.Errorf("DetailURL = %q", it.DetailURL)
	}
	if it.Medium != "" || it.Classification != "" {
		t.Errorf("AIC exposes no medium/classification, got %+v", it)
	}
}

func TestAICSearchDropsRecordsWithoutImage(t *testing.T) {
	aic := newAICServer(t, []aicRecord{
		{ID: 1, Title: "Has image", ImageID: "img-1"},
		{ID: 2, Title: "No image"},
	})

	items, err := aic.Search(context.Background(), "rain", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].ID != "aic-1" {
		t.Errorf("got %v, want only the record with an image", items)
	}
}

func TestAICSearchUnknownArtistDefault(t *testing.T) {
	aic := newAICServer(t, []aicRecord{
		{ID: 3, Title: "Anonymous work", ImageID: "img-3"},
	})

	items, err := aic.Search(context.Background(), "gloom", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].Artist != "Unknown" {
		t.Errorf("Artist = %q, want Unknown default", items[0].Artist)
	}
}

func TestAICSearchFailsOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	aic := NewAIC(AICConfig{SearchURL: srv.URL, IIIFURL: srv.URL, PageURL: srv.URL}, time.Second)
	if _, err := aic.Search(context.Background(), "storm", 10); err == nil {
		t.Fatal("expected an error on a failing search call")
	}
}

func TestAICSearchFailsOnUnparseableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	aic := NewAIC(AICConfig{SearchURL: srv.URL, IIIFURL: srv.URL, PageURL: srv.URL}, time.Second)
	if _, err := aic.Search(context.Background(), "storm", 10); err == nil {
		t.Fatal("expected an error on an unparseable body")
	}
}
