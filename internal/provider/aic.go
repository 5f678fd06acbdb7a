package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lucasferri/artmood/internal/artwork"
)

// aicIDPrefix namespaces Art Institute of Chicago IDs so they can never
// collide with the Met's numeric IDs.
const aicIDPrefix = "aic-"

// aicFields is the field set requested from the search endpoint; records
// come back inlined, no detail fetch needed.
const aicFields = "id,title,artist_display,date_display,image_id"

// AIC searches the Art Institute of Chicago collection API.
type AIC struct {
	searchURL string
	iiifURL   string
	pageURL   string
	client    *http.Client
}

// AICConfig holds the AIC endpoints.
type AICConfig struct {
	SearchURL string
	IIIFURL   string
	PageURL   string
}

func NewAIC(cfg AICConfig, timeout time.Duration) *AIC {
	return &AIC{
		searchURL: cfg.SearchURL,
		iiifURL:   cfg.IIIFURL,
		pageURL:   cfg.PageURL,
		client:    newHTTPClient(timeout),
	}
}

func (a *AIC) Name() string { return "aic" }

type aicSearchResponse struct {
	Data []aicRecord `json:"data"`
}

type aicRecord struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	ArtistDisplay string `json:"artist_display"`
	DateDisplay   string `json:"date_display"`
	ImageID       string `json:"image_id"`
}

// Search issues a single search call with an explicit limit and maps the
// inlined records. Records without an image reference are dropped. The API
// does not expose medium or classification, so no painting bias is applied.
func (a *AIC) Search(ctx context.Context, query string, limit int) ([]artwork.Artwork, error) {
	u, err := url.Parse(a.searchURL)
	if err != nil {
		return nil, &Error{Provider: a.Name(), Err: err}
	}
	q := u.Query()
	q.Set("q", query)
	q.Set("fields", aicFields)
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	var res aicSearchResponse
	if err := getJSON(ctx, a.client, u.String(), &res); err != nil {
		return nil, &Error{Provider: a.Name(), Err: err}
	}

	items := make([]artwork.Artwork, 0, len(res.Data))
	for _, rec := range res.Data {
		if rec.ImageID == "" {
			continue
		}
		artist := rec.ArtistDisplay
		if artist == "" {
			artist = "Unknown"
		}
		items = append(items, artwork.Artwork{
			ID:        aicIDPrefix + strconv.Itoa(rec.ID),
			Title:     rec.Title,
			Artist:    artist,
			Date:      rec.DateDisplay,
			ImageURL:  fmt.Sprintf("%s/%s/full/843,/0/default.jpg", a.iiifURL, rec.ImageID),
			DetailURL: fmt.Sprintf("%s/%d", a.pageURL, rec.ID),
		})
	}
	return items, nil
}
