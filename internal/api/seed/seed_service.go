package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/FACorreiaa/go-venue-seeder/app/observability/metrics"
	"github.com/FACorreiaa/go-venue-seeder/config"
	"github.com/FACorreiaa/go-venue-seeder/internal/api/places"
	"github.com/FACorreiaa/go-venue-seeder/internal/api/venue"
	"github.com/FACorreiaa/go-venue-seeder/internal/types"
)

const (
	defaultCandidatesPerQuery = 5
	defaultRequestDelay       = 100 * time.Millisecond
	descriptionRuneLimit      = 500

	mapURLPrefix = "https://www.google.com/maps/place/?q=place_id:"
)

var _ Service = (*ServiceImpl)(nil)

// Service runs the venue seeding pipeline.
type Service interface {
	// Run seeds the given areas in order; an empty slice means every
	// supported area. The run is strictly sequential: query failures are
	// recorded and skipped, only a storage failure aborts.
	Run(ctx context.Context, areas []string) (*types.SeedRunResult, error)
	// WithAPIKey returns a service using the given upstream credential for
	// a single run. An empty key returns the receiver unchanged.
	WithAPIKey(apiKey string) Service
}

type ServiceImpl struct {
	logger             *slog.Logger
	search             places.SearchClient
	details            places.DetailsClient
	repository         venue.Repository
	limiter            *rate.Limiter
	candidatesPerQuery int
}

func NewSeedService(search places.SearchClient, details places.DetailsClient, repository venue.Repository, cfg *config.Config, logger *slog.Logger) *ServiceImpl {
	candidates := defaultCandidatesPerQuery
	delay := defaultRequestDelay
	if cfg != nil {
		if cfg.Seed.CandidatesPerQuery > 0 {
			candidates = cfg.Seed.CandidatesPerQuery
		}
		if cfg.Seed.RequestDelay > 0 {
			delay = cfg.Seed.RequestDelay
		}
	}
	return &ServiceImpl{
		logger:             logger,
		search:             search,
		details:            details,
		repository:         repository,
		limiter:            rate.NewLimiter(rate.Every(delay), 1),
		candidatesPerQuery: candidates,
	}
}

func (s *ServiceImpl) WithAPIKey(apiKey string) Service {
	if apiKey == "" {
		return s
	}
	clone := *s
	if client, ok := s.search.(*places.Client); ok {
		derived := client.WithAPIKey(apiKey)
		clone.search = derived
		if _, ok := s.details.(*places.Client); ok {
			clone.details = derived
		}
	}
	return &clone
}

// candidateOutcome is the explicit per-candidate result the orchestrator
// aggregates, instead of swallowing errors at arbitrary call sites.
type candidateOutcome int

const (
	outcomeInserted candidateOutcome = iota
	outcomeDuplicate
	outcomeSkipped
)

func (s *ServiceImpl) Run(ctx context.Context, areas []string) (*types.SeedRunResult, error) {
	ctx, span := otel.Tracer("SeedService").Start(ctx, "Run", trace.WithAttributes(
		attribute.StringSlice("seed.areas", areas),
	))
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.Get().SeedRunsTotal.Add(ctx, 1)
		metrics.Get().SeedRunDurationSeconds.Record(ctx, time.Since(start).Seconds())
	}()

	if len(areas) == 0 {
		areas = Areas()
	}

	result := &types.SeedRunResult{
		Results: make(map[string]int, len(areas)+1),
		Errors:  []string{},
	}

	total := 0
	for _, area := range areas {
		catalog, err := CatalogFor(area)
		if err != nil {
			s.logger.WarnContext(ctx, "Skipping unknown area", slog.String("area", area))
			result.Errors = append(result.Errors, err.Error())
			continue
		}

		s.logger.InfoContext(ctx, "Seeding area", slog.String("area", area), slog.Int("queries", len(catalog.Queries)))
		inserted, fatal := s.seedArea(ctx, catalog, result)
		result.Results[area] = inserted
		total += inserted

		if fatal != nil {
			// Storage sink unreachable: abort immediately with whatever
			// partial counts accumulated so far.
			result.Results["total"] = total
			result.Success = false
			result.Message = "Seeding aborted: storage failure"
			result.Errors = append(result.Errors, fatal.Error())
			s.logger.ErrorContext(ctx, "Seeding run aborted", slog.Any("error", fatal))
			span.RecordError(fatal)
			span.SetStatus(codes.Error, "Run aborted on storage failure")
			return result, fatal
		}
	}

	result.Results["total"] = total
	result.Success = true
	result.Message = fmt.Sprintf("Seeded %d venues across %d areas", total, len(areas))

	// The statistics snapshot is a quality-of-life addition on a completed
	// run; failing to compute it does not fail the run.
	stats, err := s.repository.Stats(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to compute post-run stats", slog.Any("error", err))
	} else {
		result.Stats = stats
	}

	s.logger.InfoContext(ctx, "Seeding run completed",
		slog.Int("inserted", total),
		slog.Int("errors", len(result.Errors)),
	)
	span.SetStatus(codes.Ok, "Run completed")
	return result, nil
}

// seedArea walks the area's query catalog. Query-level upstream failures
// are appended to the run error list; the returned error is non-nil only
// for a fatal storage failure.
func (s *ServiceImpl) seedArea(ctx context.Context, catalog AreaCatalog, result *types.SeedRunResult) (int, error) {
	inserted := 0
	for _, query := range catalog.Queries {
		candidates, err := s.search.SearchText(ctx, query, catalog.Anchor, catalog.RadiusMeters)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("query %q: %v", query, err))
			s.logger.WarnContext(ctx, "Query failed, moving to next",
				slog.String("area", catalog.Area),
				slog.String("query", query),
				slog.Any("error", err),
			)
			continue
		}
		if len(candidates) > s.candidatesPerQuery {
			candidates = candidates[:s.candidatesPerQuery]
		}

		for _, candidate := range candidates {
			outcome, fatal := s.processCandidate(ctx, candidate)
			if fatal != nil {
				return inserted, fatal
			}
			if outcome == outcomeInserted {
				inserted++
			}
			// Throttle after every insert attempt to respect upstream quota.
			if err := s.limiter.Wait(ctx); err != nil {
				return inserted, fmt.Errorf("run interrupted: %w", err)
			}
		}
	}
	return inserted, nil
}

// processCandidate converts one candidate into a venue and inserts it
// unless the (name, district) key already exists. Only storage errors are
// returned; everything else degrades to a skip.
func (s *ServiceImpl) processCandidate(ctx context.Context, candidate types.Candidate) (candidateOutcome, error) {
	detail, err := s.details.Details(ctx, candidate.ExternalID)
	if err != nil {
		// Enrichment is best effort and expected to miss regularly.
		s.logger.WarnContext(ctx, "Enrichment failed, continuing unenriched",
			slog.String("place_id", candidate.ExternalID),
			slog.Any("error", err),
		)
		detail = nil
	}

	v, err := buildVenue(candidate, detail)
	if err != nil {
		s.logger.WarnContext(ctx, "Skipping candidate, conversion failed",
			slog.String("place_id", candidate.ExternalID),
			slog.Any("error", err),
		)
		return outcomeSkipped, nil
	}

	exists, err := s.repository.Exists(ctx, v.Name, v.District)
	if err != nil {
		return outcomeSkipped, fmt.Errorf("storage lookup failed: %w", err)
	}
	if exists {
		metrics.Get().DuplicateSkipsTotal.Add(ctx, 1)
		s.logger.DebugContext(ctx, "Skipping duplicate venue",
			slog.String("name", v.Name),
			slog.String("district", v.District),
		)
		return outcomeDuplicate, nil
	}

	if _, err := s.repository.Insert(ctx, v); err != nil {
		return outcomeSkipped, fmt.Errorf("storage insert failed: %w", err)
	}
	metrics.Get().VenuesInsertedTotal.Add(ctx, 1)
	return outcomeInserted, nil
}

// buildVenue normalizes a candidate into the persisted shape. Enrichment
// only improves address and description quality; the venue is complete
// without it.
func buildVenue(candidate types.Candidate, detail *types.EnrichedDetail) (types.Venue, error) {
	if candidate.RawName == "" {
		return types.Venue{}, fmt.Errorf("candidate %q has no name", candidate.ExternalID)
	}

	category := MapCategory(candidate.TypeTags)

	address := candidate.RoughLocation
	if detail != nil && detail.FormattedAddress != "" {
		address = detail.FormattedAddress
	}
	district := ExtractDistrict(address)

	description := fmt.Sprintf("%s - %s", candidate.RawName, category)
	if detail != nil && detail.EditorialSummary != "" {
		description = detail.EditorialSummary
	}

	return types.Venue{
		Name:        candidate.RawName,
		Category:    category,
		District:    district,
		Description: truncateRunes(description, descriptionRuneLimit),
		MapURL:      mapURLPrefix + candidate.ExternalID,
		Rating:      candidate.Rating,
	}, nil
}

// truncateRunes cuts on rune boundaries so Japanese descriptions are never
// split mid-codepoint.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
