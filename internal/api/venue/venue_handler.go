package venue

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-venue-seeder/internal/api"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewVenueHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// GetAllVenues handles GET /venues - returns every seeded venue.
func (h *Handler) GetAllVenues(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("VenueHandler").Start(r.Context(), "GetAllVenues")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetAllVenues"))

	venues, err := h.service.GetAllVenues(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to retrieve venues", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve venues")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, venues)
	l.InfoContext(ctx, "Successfully returned venues", slog.Int("count", len(venues)))
	span.SetStatus(codes.Ok, "Venues returned successfully")
}

// GetVenueStats handles GET /venues/stats - a fresh aggregation snapshot.
func (h *Handler) GetVenueStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("VenueHandler").Start(r.Context(), "GetVenueStats")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetVenueStats"))

	stats, err := h.service.GetVenueStats(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to compute venue stats", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to compute venue stats")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, stats)
	span.SetStatus(codes.Ok, "Stats returned successfully")
}
