package venue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/go-venue-seeder/app/observability/metrics"
	"github.com/FACorreiaa/go-venue-seeder/internal/types"
)

var _ Repository = (*PostgresVenueRepository)(nil)

// DB is the subset of pgxpool.Pool the repository needs. Satisfied by both
// *pgxpool.Pool and pgxmock.PgxPoolIface.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository is the storage sink for the seeding pipeline plus the read
// side of the venues surface.
type Repository interface {
	// Exists is the point lookup on the (name, district) dedupe key. The
	// caller checks it before Insert; the check-then-act window is accepted
	// because runs are single-threaded by design.
	Exists(ctx context.Context, name, district string) (bool, error)
	Insert(ctx context.Context, venue types.Venue) (uuid.UUID, error)
	GetAll(ctx context.Context) ([]types.Venue, error)
	CountVenues(ctx context.Context) (int, error)
	Stats(ctx context.Context) (*types.VenueStats, error)
}

type PostgresVenueRepository struct {
	logger *slog.Logger
	db     DB
}

func NewVenueRepository(db DB, logger *slog.Logger) *PostgresVenueRepository {
	return &PostgresVenueRepository{
		logger: logger,
		db:     db,
	}
}

func (r *PostgresVenueRepository) Exists(ctx context.Context, name, district string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM venues WHERE name = $1 AND district = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, name, district).Scan(&exists); err != nil {
		metrics.Get().DbQueryErrorsTotal.Add(ctx, 1)
		return false, fmt.Errorf("failed to check venue existence: %w", err)
	}
	return exists, nil
}

func (r *PostgresVenueRepository) Insert(ctx context.Context, venue types.Venue) (uuid.UUID, error) {
	query := `
        INSERT INTO venues (
            name, category, district, description, map_url, rating
        ) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id
    `
	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query,
		venue.Name, venue.Category, venue.District, venue.Description, venue.MapURL, venue.Rating,
	).Scan(&id); err != nil {
		metrics.Get().DbQueryErrorsTotal.Add(ctx, 1)
		return uuid.Nil, fmt.Errorf("failed to insert venue: %w", err)
	}
	return id, nil
}

func (r *PostgresVenueRepository) GetAll(ctx context.Context) ([]types.Venue, error) {
	query := `
        SELECT id, name, category, district, description, map_url, rating, created_at
        FROM venues
        ORDER BY created_at DESC, name
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		metrics.Get().DbQueryErrorsTotal.Add(ctx, 1)
		return nil, fmt.Errorf("failed to query venues: %w", err)
	}
	defer rows.Close()

	var venues []types.Venue
	for rows.Next() {
		var v types.Venue
		if err := rows.Scan(
			&v.ID, &v.Name, &v.Category, &v.District, &v.Description, &v.MapURL, &v.Rating, &v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan venue row: %w", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate venue rows: %w", err)
	}
	return venues, nil
}

func (r *PostgresVenueRepository) CountVenues(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM venues`).Scan(&count); err != nil {
		metrics.Get().DbQueryErrorsTotal.Add(ctx, 1)
		return 0, fmt.Errorf("failed to count venues: %w", err)
	}
	return count, nil
}

// Stats computes a fresh full-table aggregation snapshot. The two group-by
// queries are independent, so they run concurrently.
func (r *PostgresVenueRepository) Stats(ctx context.Context) (*types.VenueStats, error) {
	stats := &types.VenueStats{}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		query := `
            SELECT category, COUNT(*)
            FROM venues
            GROUP BY category
            ORDER BY COUNT(*) DESC, category
        `
		rows, err := r.db.Query(gCtx, query)
		if err != nil {
			return fmt.Errorf("failed to query category stats: %w", err)
		}
		defer rows.Close()

		var byCategory []types.CategoryCount
		total := 0
		for rows.Next() {
			var c types.CategoryCount
			if err := rows.Scan(&c.Category, &c.Count); err != nil {
				return fmt.Errorf("failed to scan category stats row: %w", err)
			}
			total += c.Count
			byCategory = append(byCategory, c)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("failed to iterate category stats rows: %w", err)
		}
		stats.ByCategory = byCategory
		stats.Total = total
		return nil
	})

	g.Go(func() error {
		query := `
            SELECT district, COUNT(*)
            FROM venues
            GROUP BY district
            ORDER BY COUNT(*) DESC, district
        `
		rows, err := r.db.Query(gCtx, query)
		if err != nil {
			return fmt.Errorf("failed to query district stats: %w", err)
		}
		defer rows.Close()

		var byDistrict []types.DistrictCount
		for rows.Next() {
			var d types.DistrictCount
			if err := rows.Scan(&d.District, &d.Count); err != nil {
				return fmt.Errorf("failed to scan district stats row: %w", err)
			}
			byDistrict = append(byDistrict, d)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("failed to iterate district stats rows: %w", err)
		}
		stats.ByDistrict = byDistrict
		return nil
	})

	if err := g.Wait(); err != nil {
		metrics.Get().DbQueryErrorsTotal.Add(ctx, 1)
		return nil, err
	}
	return stats, nil
}
