package seed

import (
	"errors"
	"fmt"

	"github.com/FACorreiaa/go-venue-seeder/internal/api/places"
)

// Supported seeding areas. The catalog is deliberately static: phrases were
// tuned by hand against live search results and should not be generated.
const (
	AreaGinza = "ginza"
	AreaOsaka = "osaka"
)

var ErrUnknownArea = errors.New("unknown seeding area")

// AreaCatalog holds the fixed, ordered phrase list for one area plus the
// geographic anchor and radius every search in that area is biased around.
type AreaCatalog struct {
	Area         string
	Anchor       places.Anchor
	RadiusMeters int
	Queries      []string
}

var catalogs = map[string]AreaCatalog{
	AreaGinza: {
		Area:         AreaGinza,
		Anchor:       places.Anchor{Lat: 35.6717, Lng: 139.7650},
		RadiusMeters: 2000,
		Queries: []string{
			"luxury shopping Ginza Tokyo",
			"department store Ginza Tokyo",
			"fine dining Ginza Tokyo",
			"sushi restaurant Ginza Tokyo",
			"art gallery Ginza Tokyo",
			"cocktail bar Ginza Tokyo",
		},
	},
	AreaOsaka: {
		Area:         AreaOsaka,
		Anchor:       places.Anchor{Lat: 34.6687, Lng: 135.5013},
		RadiusMeters: 3000,
		Queries: []string{
			"street food Dotonbori Osaka",
			"shopping Shinsaibashi Osaka",
			"restaurant Namba Osaka",
			"izakaya Umeda Osaka",
			"nightlife bar Dotonbori Osaka",
			"museum Osaka",
		},
	},
}

// CatalogFor returns the catalog for one area. Callers skip unknown areas
// rather than aborting the whole run.
func CatalogFor(area string) (AreaCatalog, error) {
	c, ok := catalogs[area]
	if !ok {
		return AreaCatalog{}, fmt.Errorf("%w: %q", ErrUnknownArea, area)
	}
	return c, nil
}

// Areas lists the supported areas in their fixed seeding order.
func Areas() []string {
	return []string{AreaGinza, AreaOsaka}
}
