package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	database "github.com/FACorreiaa/go-venue-seeder/app/db"
	"github.com/FACorreiaa/go-venue-seeder/app/observability/metrics"
	"github.com/FACorreiaa/go-venue-seeder/config"
	"github.com/FACorreiaa/go-venue-seeder/internal/api/places"
	"github.com/FACorreiaa/go-venue-seeder/internal/api/seed"
	"github.com/FACorreiaa/go-venue-seeder/internal/api/venue"
)

var areasFlag = flag.String("areas", "", "comma-separated areas to seed (default: all)")

func main() {
	flag.Parse()
	ctx := context.Background()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// Set up logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Load configuration
	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Places.APIKey == "" {
		log.Fatal("GOOGLE_PLACES_API_KEY is not set")
	}

	metrics.InitAppMetrics()

	dbConfig, err := database.NewDatabaseConfig(&cfg, logger)
	if err != nil {
		logger.Error("Failed to generate database config", slog.Any("error", err))
		os.Exit(1)
	}

	// Set up database connection
	dbpool, err := pgxpool.New(ctx, dbConfig.ConnectionURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbpool.Close()

	if err := dbpool.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Connected to database successfully")

	// Initialize the pipeline
	placesClient := places.NewClient(&cfg, logger)
	venueRepo := venue.NewVenueRepository(dbpool, logger)
	seedService := seed.NewSeedService(placesClient, placesClient, venueRepo, &cfg, logger)

	var areas []string
	if *areasFlag != "" {
		for _, area := range strings.Split(*areasFlag, ",") {
			areas = append(areas, strings.TrimSpace(area))
		}
	}

	logger.Info("Starting seeding run...", slog.Any("areas", areas))
	result, err := seedService.Run(ctx, areas)
	if err != nil {
		logger.Error("Seeding run aborted", slog.Any("error", err))
	}
	if result == nil {
		os.Exit(1)
	}

	fmt.Println("--- Seeding summary ---")
	for area, count := range result.Results {
		fmt.Printf("  %s: %d\n", area, count)
	}
	if result.Stats != nil {
		fmt.Printf("  venues in store: %d\n", result.Stats.Total)
	}
	for _, message := range result.Errors {
		fmt.Printf("  error: %s\n", message)
	}
	if !result.Success {
		os.Exit(1)
	}
}
