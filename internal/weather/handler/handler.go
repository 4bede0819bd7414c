// Package handler exposes the weather endpoint.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"atlas/internal/platform/middleware"
	"atlas/internal/weather/models"
	"atlas/pkg/platform/httputil"
)

// Service defines the weather operation the handler delegates to.
type Service interface {
	Report(ctx context.Context, city string) (*models.Report, error)
}

// Handler handles weather endpoints.
type Handler struct {
	logger  *slog.Logger
	weather Service
}

// New creates a new weather Handler.
func New(weather Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, weather: weather}
}

// Register mounts the weather routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/weather/{city}", h.handleReport)
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")
	report, err := h.weather.Report(r.Context(), city)
	if err != nil {
		h.logger.WarnContext(r.Context(), "weather report failed",
			"request_id", middleware.GetRequestID(r.Context()),
			"city", city,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, report)
}
