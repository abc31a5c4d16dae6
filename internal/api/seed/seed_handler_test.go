package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-venue-seeder/config"
	"github.com/FACorreiaa/go-venue-seeder/internal/types"
)

type MockSeedService struct {
	mock.Mock
}

var _ Service = (*MockSeedService)(nil)

func (m *MockSeedService) Run(ctx context.Context, areas []string) (*types.SeedRunResult, error) {
	args := m.Called(ctx, areas)
	var result *types.SeedRunResult
	if args.Get(0) != nil {
		result = args.Get(0).(*types.SeedRunResult)
	}
	return result, args.Error(1)
}

func (m *MockSeedService) WithAPIKey(apiKey string) Service {
	args := m.Called(apiKey)
	return args.Get(0).(Service)
}

type MockVenueService struct {
	mock.Mock
}

func (m *MockVenueService) GetAllVenues(ctx context.Context) ([]types.Venue, error) {
	args := m.Called(ctx)
	var venues []types.Venue
	if args.Get(0) != nil {
		venues = args.Get(0).([]types.Venue)
	}
	return venues, args.Error(1)
}

func (m *MockVenueService) GetVenueStats(ctx context.Context) (*types.VenueStats, error) {
	args := m.Called(ctx)
	var stats *types.VenueStats
	if args.Get(0) != nil {
		stats = args.Get(0).(*types.VenueStats)
	}
	return stats, args.Error(1)
}

func (m *MockVenueService) CountVenues(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func newTestHandler(seedSvc *MockSeedService, venueSvc *MockVenueService, apiKey string) *Handler {
	cfg := &config.Config{}
	cfg.Places.APIKey = apiKey
	return NewSeedHandler(seedSvc, venueSvc, cfg, slog.Default())
}

func TestTriggerSeed(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		seedSvc := new(MockSeedService)
		handler := newTestHandler(seedSvc, new(MockVenueService), "server-key")

		result := &types.SeedRunResult{
			Success: true,
			Message: "Seeding completed",
			Results: map[string]int{"inserted": 3, "duplicates": 1, "skipped": 0},
		}
		seedSvc.On("Run", mock.Anything, []string{"ginza"}).Return(result, nil)

		body, _ := json.Marshal(map[string]any{"areas": []string{"ginza"}})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/seed", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.TriggerSeed(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got types.SeedRunResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.True(t, got.Success)
		assert.Equal(t, 3, got.Results["inserted"])
		seedSvc.AssertExpectations(t)
	})

	t.Run("EmptyBodyRunsAllAreas", func(t *testing.T) {
		seedSvc := new(MockSeedService)
		handler := newTestHandler(seedSvc, new(MockVenueService), "server-key")

		seedSvc.On("Run", mock.Anything, []string(nil)).
			Return(&types.SeedRunResult{Success: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/seed", nil)
		rec := httptest.NewRecorder()

		handler.TriggerSeed(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		seedSvc.AssertExpectations(t)
	})

	t.Run("MalformedBodyIsBadRequest", func(t *testing.T) {
		seedSvc := new(MockSeedService)
		handler := newTestHandler(seedSvc, new(MockVenueService), "server-key")

		req := httptest.NewRequest(http.MethodPost, "/api/v1/seed", bytes.NewReader([]byte(`{"areas": [`)))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.TriggerSeed(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		seedSvc.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
	})

	t.Run("APIKeyOverrideDerivesService", func(t *testing.T) {
		seedSvc := new(MockSeedService)
		derived := new(MockSeedService)
		handler := newTestHandler(seedSvc, new(MockVenueService), "server-key")

		seedSvc.On("WithAPIKey", "request-key").Return(derived)
		derived.On("Run", mock.Anything, []string{"osaka"}).
			Return(&types.SeedRunResult{Success: true}, nil)

		body, _ := json.Marshal(map[string]any{"areas": []string{"osaka"}, "api_key": "request-key"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/seed", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.TriggerSeed(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		seedSvc.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
		derived.AssertExpectations(t)
	})

	t.Run("AbortedRunStillReturns200", func(t *testing.T) {
		seedSvc := new(MockSeedService)
		handler := newTestHandler(seedSvc, new(MockVenueService), "server-key")

		partial := &types.SeedRunResult{
			Success: false,
			Message: "Seeding aborted: storage failure",
			Results: map[string]int{"inserted": 2, "duplicates": 0, "skipped": 0},
			Errors:  []string{"storage lookup failed: connection reset"},
		}
		seedSvc.On("Run", mock.Anything, []string(nil)).
			Return(partial, errors.New("storage lookup failed: connection reset"))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/seed", nil)
		rec := httptest.NewRecorder()

		handler.TriggerSeed(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got types.SeedRunResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.False(t, got.Success)
		assert.Equal(t, 2, got.Results["inserted"])
	})

	t.Run("NoResultIsInternalError", func(t *testing.T) {
		seedSvc := new(MockSeedService)
		handler := newTestHandler(seedSvc, new(MockVenueService), "server-key")

		seedSvc.On("Run", mock.Anything, []string(nil)).
			Return(nil, errors.New("catastrophic"))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/seed", nil)
		rec := httptest.NewRecorder()

		handler.TriggerSeed(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGetStatus(t *testing.T) {
	t.Run("Ready", func(t *testing.T) {
		venueSvc := new(MockVenueService)
		handler := newTestHandler(new(MockSeedService), venueSvc, "server-key")

		venueSvc.On("CountVenues", mock.Anything).Return(17, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/seed/status", nil)
		rec := httptest.NewRecorder()

		handler.GetStatus(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, true, got["ready"])
		assert.Equal(t, true, got["places_configured"])
		assert.Equal(t, float64(17), got["venue_count"])
		assert.ElementsMatch(t, []any{"ginza", "osaka"}, got["areas"])
	})

	t.Run("MissingAPIKeyNotReady", func(t *testing.T) {
		venueSvc := new(MockVenueService)
		handler := newTestHandler(new(MockSeedService), venueSvc, "")

		venueSvc.On("CountVenues", mock.Anything).Return(0, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/seed/status", nil)
		rec := httptest.NewRecorder()

		handler.GetStatus(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, false, got["ready"])
		assert.Equal(t, false, got["places_configured"])
	})

	t.Run("CountFailureNotReady", func(t *testing.T) {
		venueSvc := new(MockVenueService)
		handler := newTestHandler(new(MockSeedService), venueSvc, "server-key")

		venueSvc.On("CountVenues", mock.Anything).Return(0, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/seed/status", nil)
		rec := httptest.NewRecorder()

		handler.GetStatus(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, false, got["ready"])
		assert.Equal(t, true, got["places_configured"])
	})
}
