package api

import "errors"

// Standard errors returned by services, translated to HTTP status codes by
// the handlers.
var (
	ErrNotFound    = errors.New("requested item not found")
	ErrConflict    = errors.New("item already exists or conflict")
	ErrBadRequest  = errors.New("invalid request payload")
	ErrUnavailable = errors.New("dependency unavailable")
)

// SeedRequest represents the expected JSON body for triggering a seeding run.
type SeedRequest struct {
	// Areas selects which catalog areas to seed; empty means every
	// supported area, in catalog order.
	Areas []string `json:"areas,omitempty"`
	// APIKey optionally overrides the configured Places credential for
	// this run only. It is passed through, never persisted.
	APIKey string `json:"api_key,omitempty"`
}

// SeedStatusResponse reports readiness of the seeding surface.
type SeedStatusResponse struct {
	Ready            bool     `json:"ready"`
	PlacesConfigured bool     `json:"places_configured"`
	VenueCount       int      `json:"venue_count"`
	Areas            []string `json:"areas"`
}
