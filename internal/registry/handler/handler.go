package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ujjwala/internal/platform/metrics"
	"ujjwala/internal/platform/middleware"
	"ujjwala/internal/registry/models"
	dErrors "ujjwala/pkg/domain-errors"
	"ujjwala/pkg/platform/httputil"
	"ujjwala/pkg/platform/sentinel"
)

// Lookup resolves an identity number to its registry record.
type Lookup interface {
	Lookup(ctx context.Context, identityNumber string) (*models.IdentityRecord, error)
}

// Handler exposes the identity registry preview endpoint the citizen portal
// uses before submitting an application.
type Handler struct {
	logger   *slog.Logger
	registry Lookup
	metrics  *metrics.Metrics
}

func New(registry Lookup, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{logger: logger, registry: registry, metrics: m}
}

// Register mounts the registry routes.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(router chi.Router) {
		router.Use(middleware.Recovery(h.logger))
		router.Use(middleware.RequestID)
		router.Use(middleware.Logger(h.logger))
		router.Use(middleware.Latency(h.metrics))

		router.Get("/registry/records/{identityNumber}", h.handleLookup)
	})
}

func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	identityNumber := chi.URLParam(r, "identityNumber")

	record, err := h.registry.Lookup(r.Context(), identityNumber)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "Identity number not found in registry."))
			return
		}
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "registry lookup failed"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, record)
}
