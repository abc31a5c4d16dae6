package types

import (
	"time"

	"github.com/google/uuid"
)

// Venue is the persisted record produced by the seeding pipeline.
// (name, district) is the sole uniqueness key; rating, description and
// category are not part of identity and are never reconciled on conflict.
type Venue struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	District    string    `json:"district"`
	Description string    `json:"description"`
	MapURL      string    `json:"map_url"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type DistrictCount struct {
	District string `json:"district"`
	Count    int    `json:"count"`
}

// VenueStats is a full-table aggregation snapshot, computed freshly on
// demand rather than incrementally maintained.
type VenueStats struct {
	Total      int             `json:"total"`
	ByCategory []CategoryCount `json:"byCategory"`
	ByDistrict []DistrictCount `json:"byDistrict"`
}
