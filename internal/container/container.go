package container

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	database "github.com/FACorreiaa/go-venue-seeder/app/db"
	"github.com/FACorreiaa/go-venue-seeder/app/observability/metrics"
	"github.com/FACorreiaa/go-venue-seeder/config"
	"github.com/FACorreiaa/go-venue-seeder/internal/api/places"
	"github.com/FACorreiaa/go-venue-seeder/internal/api/seed"
	"github.com/FACorreiaa/go-venue-seeder/internal/api/venue"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *slog.Logger
	Pool         *pgxpool.Pool
	PlacesClient *places.Client
	VenueHandler *venue.Handler
	SeedHandler  *seed.Handler
}

// NewContainer initializes and returns a new dependency container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	metrics.InitAppMetrics()

	// Initialize database
	dbConfig, err := database.NewDatabaseConfig(cfg, logger)
	if err != nil {
		logger.Error("Failed to generate database config", slog.Any("error", err))
		return nil, err
	}

	pool, err := database.Init(dbConfig.ConnectionURL, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.Any("error", err))
		return nil, err
	}

	// Upstream client
	placesClient := places.NewClient(cfg, logger)

	// Venue surface
	venueRepo := venue.NewVenueRepository(pool, logger)
	venueService := venue.NewVenueService(venueRepo, logger)
	venueHandler := venue.NewVenueHandler(venueService, logger)

	// Seeding pipeline
	seedService := seed.NewSeedService(placesClient, placesClient, venueRepo, cfg, logger)
	seedHandler := seed.NewSeedHandler(seedService, venueService, cfg, logger)

	return &Container{
		Config:       cfg,
		Logger:       logger,
		Pool:         pool,
		PlacesClient: placesClient,
		VenueHandler: venueHandler,
		SeedHandler:  seedHandler,
	}, nil
}

// Close releases all resources held by the container
func (c *Container) Close() {
	if c.Pool != nil {
		c.Pool.Close()
	}
}

// WaitForDB waits for the database to be ready
func (c *Container) WaitForDB(ctx context.Context) bool {
	return database.WaitForDB(ctx, c.Pool, c.Logger)
}

// RunMigrations runs database migrations
func (c *Container) RunMigrations(connectionURL string) error {
	return database.RunMigrations(connectionURL, c.Logger)
}
