package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapCategory(t *testing.T) {
	tests := []struct {
		name     string
		typeTags []string
		want     string
	}{
		{
			name:     "FirstMatchWins",
			typeTags: []string{"unknown_tag", "cafe", "restaurant"},
			want:     "Cafe",
		},
		{
			name:     "DepartmentStore",
			typeTags: []string{"department_store", "point_of_interest", "establishment"},
			want:     "Department Store",
		},
		{
			name:     "NoMatchFallsBack",
			typeTags: []string{"point_of_interest", "establishment"},
			want:     FallbackCategory,
		},
		{
			name:     "EmptyTagsFallsBack",
			typeTags: nil,
			want:     FallbackCategory,
		},
		{
			name:     "UpstreamOrderNotTablePriority",
			typeTags: []string{"bar", "restaurant"},
			want:     "Bar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapCategory(tt.typeTags)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got, "MapCategory must be total")
		})
	}
}

func TestExtractDistrict(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    string
	}{
		{
			name:    "GinzaFromFormattedAddress",
			address: "4 Chome-6-16 Ginza, Chuo City, Tokyo 104-0061, Japan",
			want:    "Ginza",
		},
		{
			name:    "OsakaDistrict",
			address: "1 Chome-9-1 Dotonbori, Chuo Ward, Osaka, 542-0071, Japan",
			want:    "Dotonbori",
		},
		{
			name:    "NoKnownDistrictFallsBack",
			address: "2 Chome Kichijoji, Musashino, Tokyo, Japan",
			want:    FallbackDistrict,
		},
		{
			name:    "EmptyAddressFallsBack",
			address: "",
			want:    FallbackDistrict,
		},
		{
			name: "TokyoListScannedBeforeOsaka",
			// Both lists match; the Tokyo entry wins because it is scanned first.
			address: "Ginza Namba Building, Japan",
			want:    "Ginza",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDistrict(tt.address)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got, "ExtractDistrict must be total")
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	t.Run("ShortStringUnchanged", func(t *testing.T) {
		assert.Equal(t, "short", truncateRunes("short", 500))
	})

	t.Run("CutsOnRuneBoundary", func(t *testing.T) {
		// 3 runes, 9 bytes; a byte-based cut at 4 would split the second rune.
		got := truncateRunes("銀座店", 2)
		assert.Equal(t, "銀座", got)
	})

	t.Run("ExactLimitUnchanged", func(t *testing.T) {
		assert.Equal(t, "銀座", truncateRunes("銀座", 2))
	})
}
