package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
// Make fields public so they can be accessed from other packages.
type AppMetrics struct {
	SeedRunsTotal          metric.Int64Counter
	SeedRunDurationSeconds metric.Float64Histogram
	VenuesInsertedTotal    metric.Int64Counter
	DuplicateSkipsTotal    metric.Int64Counter
	UpstreamRequestsTotal  metric.Int64Counter
	UpstreamErrorsTotal    metric.Int64Counter
	DbQueryErrorsTotal     metric.Int64Counter
}

var (
	// Global instance of AppMetrics (initialized once)
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("VenueSeeder")
		var err error
		m := &AppMetrics{}

		m.SeedRunsTotal, err = meter.Int64Counter(
			"seed_runs_total",
			metric.WithDescription("Total number of seeding runs completed"),
			metric.WithUnit("{run}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create seed_runs_total: %v", err)
		}

		m.SeedRunDurationSeconds, err = meter.Float64Histogram(
			"seed_run_duration_seconds",
			metric.WithDescription("Duration of seeding runs in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create seed_run_duration_seconds: %v", err)
		}

		m.VenuesInsertedTotal, err = meter.Int64Counter(
			"venues_inserted_total",
			metric.WithDescription("Total number of venues inserted by seeding runs"),
			metric.WithUnit("{venue}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create venues_inserted_total: %v", err)
		}

		m.DuplicateSkipsTotal, err = meter.Int64Counter(
			"duplicate_skips_total",
			metric.WithDescription("Total number of candidates skipped as (name, district) duplicates"),
			metric.WithUnit("{candidate}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create duplicate_skips_total: %v", err)
		}

		m.UpstreamRequestsTotal, err = meter.Int64Counter(
			"upstream_requests_total",
			metric.WithDescription("Total number of requests issued to the places upstream"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create upstream_requests_total: %v", err)
		}

		m.UpstreamErrorsTotal, err = meter.Int64Counter(
			"upstream_errors_total",
			metric.WithDescription("Total number of non-OK places upstream statuses"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create upstream_errors_total: %v", err)
		}

		m.DbQueryErrorsTotal, err = meter.Int64Counter(
			"db_query_errors_total",
			metric.WithDescription("Total number of database query errors"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create db_query_errors_total: %v", err)
		}

		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance.
// Panics if InitAppMetrics was not called first.
func Get() *AppMetrics {
	if appMetrics == nil {
		// This indicates a programming error - InitAppMetrics must be called at startup.
		panic("metrics instruments not initialized. Call metrics.InitAppMetrics() first.")
	}
	return appMetrics
}
