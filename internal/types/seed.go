package types

// Candidate is a raw, unvalidated search result from the upstream places
// API. It lives for a single pipeline pass: created per search-result item
// and discarded once converted to a Venue or skipped.
type Candidate struct {
	ExternalID    string
	RawName       string
	TypeTags      []string
	RoughLocation string
	Rating        float64
}

// EnrichedDetail carries the optional second-lookup fields. Enrichment is a
// quality improvement, never a hard dependency: a candidate missing it still
// becomes a Venue from RawName/RoughLocation alone.
type EnrichedDetail struct {
	FormattedAddress string
	EditorialSummary string
}

// SeedRunResult is returned to the trigger caller. Results holds one count
// per seeded area plus a "total" entry; Errors aggregates one message per
// failed query or skipped area.
type SeedRunResult struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Results map[string]int `json:"results"`
	Stats   *VenueStats    `json:"stats,omitempty"`
	Errors  []string       `json:"errors"`
}
