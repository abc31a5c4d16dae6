package places

import "fmt"

// UpstreamError reports a places response whose status is neither "OK" nor
// "ZERO_RESULTS" (quota exhaustion, denied request, invalid key, ...). It is
// a query-level failure: the orchestrator records it and moves on to the
// next query.
type UpstreamError struct {
	Status  string
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("places upstream status %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("places upstream status %s", e.Status)
}

// Anchor is the coarse geographic center a text search is biased around.
type Anchor struct {
	Lat float64
	Lng float64
}

// Wire shapes for the legacy Places Web Service JSON responses.

type textSearchResponse struct {
	Status       string             `json:"status"`
	ErrorMessage string             `json:"error_message"`
	Results      []textSearchResult `json:"results"`
}

type textSearchResult struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	Types            []string `json:"types"`
	FormattedAddress string   `json:"formatted_address"`
	Vicinity         string   `json:"vicinity"`
	Rating           float64  `json:"rating"`
}

type detailsResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message"`
	Result       detailsResult `json:"result"`
}

type detailsResult struct {
	FormattedAddress string `json:"formatted_address"`
	EditorialSummary struct {
		Overview string `json:"overview"`
	} `json:"editorial_summary"`
}
