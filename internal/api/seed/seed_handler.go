package seed

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-venue-seeder/config"
	"github.com/FACorreiaa/go-venue-seeder/internal/api"
	"github.com/FACorreiaa/go-venue-seeder/internal/api/venue"
)

type Handler struct {
	logger       *slog.Logger
	service      Service
	venueService venue.Service
	cfg          *config.Config
}

func NewSeedHandler(service Service, venueService venue.Service, cfg *config.Config, logger *slog.Logger) *Handler {
	return &Handler{
		logger:       logger,
		service:      service,
		venueService: venueService,
		cfg:          cfg,
	}
}

// TriggerSeed handles POST /seed. The response is always HTTP 200 with
// success reflecting the run-level outcome; HTTP 500 is reserved for a run
// that produced no result at all.
func (h *Handler) TriggerSeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SeedHandler").Start(r.Context(), "TriggerSeed")
	defer span.End()

	l := h.logger.With(slog.String("method", "TriggerSeed"))

	var req api.SeedRequest
	if r.ContentLength > 0 {
		if err := api.DecodeJSONBody(w, r, &req); err != nil {
			l.WarnContext(ctx, "Invalid seed request body", slog.Any("error", err))
			span.SetStatus(codes.Error, "Invalid request body")
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}

	l.InfoContext(ctx, "Seeding run triggered",
		slog.Any("areas", req.Areas),
		slog.Bool("api_key_override", req.APIKey != ""),
	)

	service := h.service
	if req.APIKey != "" {
		service = h.service.WithAPIKey(req.APIKey)
	}

	result, err := service.Run(ctx, req.Areas)
	if result == nil {
		l.ErrorContext(ctx, "Seeding run produced no result", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Run produced no result")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Seeding run failed")
		return
	}
	if err != nil {
		// Partial result with a fatal storage error: still HTTP 200, the
		// envelope carries success=false plus whatever counts accumulated.
		l.ErrorContext(ctx, "Seeding run aborted", slog.Any("error", err))
		span.RecordError(err)
	}

	api.WriteJSONResponse(w, r, http.StatusOK, result)
	span.SetStatus(codes.Ok, "Seed response written")
}

// GetStatus handles GET /seed/status - configuration readiness and the
// current venue count.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SeedHandler").Start(r.Context(), "GetStatus")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetStatus"))

	configured := h.cfg != nil && h.cfg.Places.APIKey != ""

	count, err := h.venueService.CountVenues(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to count venues for status", slog.Any("error", err))
		span.RecordError(err)
		api.WriteJSONResponse(w, r, http.StatusOK, api.SeedStatusResponse{
			Ready:            false,
			PlacesConfigured: configured,
			Areas:            Areas(),
		})
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, api.SeedStatusResponse{
		Ready:            configured,
		PlacesConfigured: configured,
		VenueCount:       count,
		Areas:            Areas(),
	})
	span.SetStatus(codes.Ok, "Status returned")
}
