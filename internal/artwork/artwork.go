package artwork

// Artwork is a provider-agnostic artwork record. IDs are namespaced per
// provider so records from different collections never collide, and
// ImageURL is always non-empty: records without a usable image are dropped
// before they reach this type.
type Artwork struct {
	ID             string
	Title          string
	Artist         string
	Date           string
	ImageURL       string
	DetailURL      string
	Medium         string
	Classification string
}
