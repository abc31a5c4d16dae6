package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/FACorreiaa/go-venue-seeder/internal/api/seed"
	"github.com/FACorreiaa/go-venue-seeder/internal/api/venue"
)

// Config contains the handlers needed for the router setup.
type Config struct {
	SeedHandler  *seed.Handler
	VenueHandler *venue.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are expected to be
// applied before mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Heartbeat endpoint
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/seed", cfg.SeedHandler.TriggerSeed)
		r.Get("/seed/status", cfg.SeedHandler.GetStatus)

		r.Get("/venues", cfg.VenueHandler.GetAllVenues)
		r.Get("/venues/stats", cfg.VenueHandler.GetVenueStats)
	})

	return r
}
