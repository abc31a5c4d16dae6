package places

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-venue-seeder/app/observability/metrics"
	"github.com/FACorreiaa/go-venue-seeder/config"
	"github.com/FACorreiaa/go-venue-seeder/internal/types"
)

const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"

	defaultBaseURL = "https://maps.googleapis.com/maps/api/place"
	defaultTimeout = 10 * time.Second

	// Details responses rarely change; caching them avoids re-spending
	// quota on candidates seen again across runs of the same process.
	detailCacheTTL     = 6 * time.Hour
	detailCacheCleanup = 30 * time.Minute
)

var _ SearchClient = (*Client)(nil)
var _ DetailsClient = (*Client)(nil)

// SearchClient issues one text-search request per query phrase.
type SearchClient interface {
	SearchText(ctx context.Context, query string, anchor Anchor, radiusMeters int) ([]types.Candidate, error)
}

// DetailsClient fetches extended detail fields for a single place. A miss is
// soft: the zero return (nil, nil) means "no enrichment", never a hard error.
type DetailsClient interface {
	Details(ctx context.Context, externalID string) (*types.EnrichedDetail, error)
}

// Client talks to the Places Web Service. The credential and base URL are
// injected at construction time so the pipeline stays testable against an
// httptest server and mock keys.
type Client struct {
	logger  *slog.Logger
	client  *http.Client
	baseURL string
	apiKey  string
	details *cache.Cache
}

func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	baseURL := cfg.Places.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Places.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		logger:  logger,
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		apiKey:  cfg.Places.APIKey,
		details: cache.New(detailCacheTTL, detailCacheCleanup),
	}
}

// WithAPIKey returns a client using the given credential for this run only.
// The detail cache is shared with the parent client.
func (c *Client) WithAPIKey(apiKey string) *Client {
	if apiKey == "" {
		return c
	}
	clone := *c
	clone.apiKey = apiKey
	return &clone
}

// SearchText calls the text-search endpoint once and returns a bounded list
// of candidates. "ZERO_RESULTS" is success with an empty slice; any other
// non-OK status is an *UpstreamError.
func (c *Client) SearchText(ctx context.Context, query string, anchor Anchor, radiusMeters int) ([]types.Candidate, error) {
	ctx, span := otel.Tracer("PlacesClient").Start(ctx, "SearchText", trace.WithAttributes(
		attribute.String("places.query", query),
	))
	defer span.End()

	if query == "" {
		err := fmt.Errorf("search query must not be empty")
		span.SetStatus(codes.Error, "Empty query")
		return nil, err
	}
	if radiusMeters <= 0 {
		err := fmt.Errorf("search radius must be positive, got %d", radiusMeters)
		span.SetStatus(codes.Error, "Invalid radius")
		return nil, err
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("location", fmt.Sprintf("%f,%f", anchor.Lat, anchor.Lng))
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("key", c.apiKey)

	var payload textSearchResponse
	if err := c.getJSON(ctx, c.baseURL+"/textsearch/json?"+params.Encode(), &payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Text search request failed")
		return nil, fmt.Errorf("text search request failed: %w", err)
	}

	if payload.Status != statusOK && payload.Status != statusZeroResults {
		err := &UpstreamError{Status: payload.Status, Message: payload.ErrorMessage}
		metrics.Get().UpstreamErrorsTotal.Add(ctx, 1)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Upstream rejected text search")
		return nil, err
	}

	candidates := make([]types.Candidate, 0, len(payload.Results))
	for _, result := range payload.Results {
		roughLocation := result.FormattedAddress
		if roughLocation == "" {
			roughLocation = result.Vicinity
		}
		candidates = append(candidates, types.Candidate{
			ExternalID:    result.PlaceID,
			RawName:       result.Name,
			TypeTags:      result.Types,
			RoughLocation: roughLocation,
			Rating:        result.Rating,
		})
	}

	c.logger.DebugContext(ctx, "Text search completed",
		slog.String("query", query),
		slog.Int("candidates", len(candidates)),
	)
	span.SetStatus(codes.Ok, "Text search completed")
	return candidates, nil
}

// Details fetches the enrichment fields for one candidate. Every failure
// path degrades to (nil, nil): enrichment must never abort processing of
// the candidate it belongs to.
func (c *Client) Details(ctx context.Context, externalID string) (*types.EnrichedDetail, error) {
	ctx, span := otel.Tracer("PlacesClient").Start(ctx, "Details")
	defer span.End()

	if externalID == "" {
		return nil, nil
	}
	if cached, found := c.details.Get(externalID); found {
		span.SetStatus(codes.Ok, "Detail served from cache")
		return cached.(*types.EnrichedDetail), nil
	}

	params := url.Values{}
	params.Set("place_id", externalID)
	params.Set("fields", "formatted_address,editorial_summary")
	params.Set("key", c.apiKey)

	var payload detailsResponse
	if err := c.getJSON(ctx, c.baseURL+"/details/json?"+params.Encode(), &payload); err != nil {
		c.logger.WarnContext(ctx, "Place details request failed, continuing unenriched",
			slog.String("place_id", externalID),
			slog.Any("error", err),
		)
		span.RecordError(err)
		return nil, nil
	}
	if payload.Status != statusOK {
		c.logger.WarnContext(ctx, "Place details denied by upstream, continuing unenriched",
			slog.String("place_id", externalID),
			slog.String("status", payload.Status),
		)
		return nil, nil
	}

	detail := &types.EnrichedDetail{
		FormattedAddress: payload.Result.FormattedAddress,
		EditorialSummary: payload.Result.EditorialSummary.Overview,
	}
	c.details.Set(externalID, detail, cache.DefaultExpiration)
	span.SetStatus(codes.Ok, "Detail fetched")
	return detail, nil
}

func (c *Client) getJSON(ctx context.Context, requestURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	metrics.Get().UpstreamRequestsTotal.Add(ctx, 1)
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected HTTP status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
