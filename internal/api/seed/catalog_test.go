package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogFor(t *testing.T) {
	t.Run("KnownAreas", func(t *testing.T) {
		for _, area := range Areas() {
			catalog, err := CatalogFor(area)
			require.NoError(t, err)
			assert.Equal(t, area, catalog.Area)
			assert.NotEmpty(t, catalog.Queries)
			assert.Positive(t, catalog.RadiusMeters)
			assert.NotZero(t, catalog.Anchor.Lat)
			assert.NotZero(t, catalog.Anchor.Lng)
		}
	})

	t.Run("UnknownArea", func(t *testing.T) {
		_, err := CatalogFor("kyoto")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownArea)
	})
}
