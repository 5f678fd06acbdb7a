package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/lucasferri/artmood/internal/artwork"
)

// Provider is one external art-collection search service.
type Provider interface {
	Name() string

	// Search runs a query and returns normalized artworks, at most limit of
	// them, in provider order. It fails only on a transport or protocol
	// fault on the search call itself; per-record faults are dropped.
	Search(ctx context.Context, query string, limit int) ([]artwork.Artwork, error)
}

// Error is a non-recoverable transport or protocol fault from one provider.
// It is fatal to that provider for that attempt only.
type Error struct {
	Provider string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// getJSON issues a GET and decodes the JSON body into v. Non-200 statuses
// and undecodable bodies are errors.
func getJSON(ctx context.Context, client *http.Client, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
