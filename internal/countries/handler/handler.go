// Package handler exposes the country lookup endpoints. It is a thin HTTP
// layer: parse the path parameter, delegate, translate the result.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"atlas/internal/countries/models"
	"atlas/internal/platform/middleware"
	"atlas/pkg/platform/httputil"
)

// Service defines the lookup operations the handler delegates to.
type Service interface {
	ByName(ctx context.Context, name string) (*models.Country, error)
	ByCode(ctx context.Context, code string) (*models.Country, error)
	ByCurrency(ctx context.Context, code string) ([]models.Country, error)
	ByLanguage(ctx context.Context, code string) ([]models.Country, error)
}

// Handler handles country-related endpoints.
type Handler struct {
	logger    *slog.Logger
	countries Service
}

// New creates a new countries Handler.
func New(countries Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, countries: countries}
}

// Register mounts the country routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/countries/{name}", h.handleByName)
	r.Get("/countries/code/{code}", h.handleByCode)
	r.Get("/countries/currency/{code}", h.handleByCurrency)
	r.Get("/countries/language/{code}", h.handleByLanguage)
}

func (h *Handler) handleByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	country, err := h.countries.ByName(r.Context(), name)
	if err != nil {
		h.writeError(w, r, "country lookup by name failed", name, err)
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, country)
}

func (h *Handler) handleByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	country, err := h.countries.ByCode(r.Context(), code)
	if err != nil {
		h.writeError(w, r, "country lookup by code failed", code, err)
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, country)
}

func (h *Handler) handleByCurrency(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	countries, err := h.countries.ByCurrency(r.Context(), code)
	if err != nil {
		h.writeError(w, r, "country lookup by currency failed", code, err)
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, countries)
}

func (h *Handler) handleByLanguage(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	countries, err := h.countries.ByLanguage(r.Context(), code)
	if err != nil {
		h.writeError(w, r, "country lookup by language failed", code, err)
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, countries)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, msg, key string, err error) {
	h.logger.WarnContext(r.Context(), msg,
		"request_id", middleware.GetRequestID(r.Context()),
		"key", key,
		"error", err.Error(),
	)
	httputil.WriteError(w, err)
}
