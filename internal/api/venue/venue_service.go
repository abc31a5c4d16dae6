package venue

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/FACorreiaa/go-venue-seeder/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for venue read operations.
type Service interface {
	GetAllVenues(ctx context.Context) ([]types.Venue, error)
	GetVenueStats(ctx context.Context) (*types.VenueStats, error)
	CountVenues(ctx context.Context) (int, error)
}

type ServiceImpl struct {
	logger     *slog.Logger
	repository Repository
}

func NewVenueService(repository Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:     logger,
		repository: repository,
	}
}

func (s *ServiceImpl) GetAllVenues(ctx context.Context) ([]types.Venue, error) {
	ctx, span := otel.Tracer("VenueService").Start(ctx, "GetAllVenues")
	defer span.End()

	venues, err := s.repository.GetAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to get venues", slog.Any("error", err))
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get venues: %w", err)
	}
	return venues, nil
}

func (s *ServiceImpl) GetVenueStats(ctx context.Context) (*types.VenueStats, error) {
	ctx, span := otel.Tracer("VenueService").Start(ctx, "GetVenueStats")
	defer span.End()

	stats, err := s.repository.Stats(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to compute venue stats", slog.Any("error", err))
		span.RecordError(err)
		return nil, fmt.Errorf("failed to compute venue stats: %w", err)
	}
	return stats, nil
}

func (s *ServiceImpl) CountVenues(ctx context.Context) (int, error) {
	count, err := s.repository.CountVenues(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to count venues", slog.Any("error", err))
		return 0, fmt.Errorf("failed to count venues: %w", err)
	}
	return count, nil
}
