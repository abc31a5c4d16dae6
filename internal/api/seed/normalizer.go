package seed

import "strings"

// Fallback vocabulary values. Both normalizer functions are total: they
// return a non-empty string for every input.
const (
	FallbackCategory = "Venue"
	FallbackDistrict = "Central"
)

// categoryByTag maps upstream place type tags onto the fixed category
// vocabulary. The first tag in upstream order that appears here wins.
var categoryByTag = map[string]string{
	"shopping_mall":      "Shopping Mall",
	"department_store":   "Department Store",
	"restaurant":         "Restaurant",
	"meal_takeaway":      "Restaurant",
	"cafe":               "Cafe",
	"bakery":             "Bakery",
	"bar":                "Bar",
	"night_club":         "Night Club",
	"museum":             "Museum",
	"art_gallery":        "Art Gallery",
	"park":               "Park",
	"tourist_attraction": "Attraction",
	"jewelry_store":      "Jewelry Store",
	"clothing_store":     "Clothing Store",
	"book_store":         "Book Store",
	"store":              "Shop",
	"lodging":            "Hotel",
	"spa":                "Spa",
}

// knownDistricts is scanned in this fixed order: Tokyo districts first,
// then Osaka. Matching is a plain substring test over the address, not
// geocoding; the occasional false positive from a district name appearing
// in a street name is an accepted limitation.
var knownDistricts = []string{
	// Tokyo
	"Ginza",
	"Shibuya",
	"Shinjuku",
	"Roppongi",
	"Asakusa",
	"Akihabara",
	"Marunouchi",
	"Nihonbashi",
	"Omotesando",
	"Harajuku",
	// Osaka
	"Namba",
	"Dotonbori",
	"Shinsaibashi",
	"Umeda",
	"Tennoji",
	"Shinsekai",
}

// MapCategory returns the category for the first matching tag in
// upstream-provided order, or the generic fallback when nothing matches.
func MapCategory(typeTags []string) string {
	for _, tag := range typeTags {
		if category, ok := categoryByTag[tag]; ok {
			return category
		}
	}
	return FallbackCategory
}

// ExtractDistrict returns the first known district found as a substring of
// the address, or the generic fallback when none is present.
func ExtractDistrict(address string) string {
	for _, district := range knownDistricts {
		if strings.Contains(address, district) {
			return district
		}
	}
	return FallbackDistrict
}
