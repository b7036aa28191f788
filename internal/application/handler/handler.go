package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"ujjwala/internal/application/models"
	"ujjwala/internal/application/service"
	"ujjwala/internal/platform/metrics"
	"ujjwala/internal/platform/middleware"
	dErrors "ujjwala/pkg/domain-errors"
	"ujjwala/pkg/platform/httputil"
	"ujjwala/pkg/requestcontext"
)

// Service defines the lifecycle operations the HTTP layer needs.
type Service interface {
	Submit(ctx context.Context, identityNumber string) (*models.Application, error)
	GetByIdentityNumber(ctx context.Context, identityNumber string) (*models.Application, error)
	List(ctx context.Context) ([]*models.Application, error)
	Approve(ctx context.Context, applicationID uuid.UUID) (*models.Application, error)
	Reject(ctx context.Context, applicationID uuid.UUID, reason string) (*models.Application, error)
}

// Handler exposes the citizen and admin application endpoints.
type Handler struct {
	logger       *slog.Logger
	applications Service
	metrics      *metrics.Metrics
}

// New creates a new application Handler.
func New(applications Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		logger:       logger,
		applications: applications,
		metrics:      m,
	}
}

// Register mounts the application routes with the shared middleware chain.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(router chi.Router) {
		router.Use(middleware.Recovery(h.logger))
		router.Use(middleware.RequestID)
		router.Use(middleware.RequestTime)
		router.Use(middleware.Logger(h.logger))
		router.Use(middleware.ContentTypeJSON)
		router.Use(middleware.Latency(h.metrics))

		router.Post("/applications", h.handleSubmit)
		router.Get("/applications/identity/{identityNumber}", h.handleStatusByIdentity)

		router.Get("/admin/applications", h.handleList)
		router.Post("/admin/applications/{id}/approve", h.handleApprove)
		router.Post("/admin/applications/{id}/reject", h.handleReject)
	})
}

type submitRequest struct {
	IdentityNumber string `json:"identity_number"`
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.IdentityNumber == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "identity_number is required"))
		return
	}

	app, err := h.applications.Submit(ctx, req.IdentityNumber)
	if err != nil {
		h.writeFailure(w, r, "submit failed", err)
		return
	}

	httputil.WriteResult(w, http.StatusCreated, httputil.Envelope{
		Success:       true,
		Message:       service.MsgSubmitted,
		ApplicationID: app.ID.String(),
	})
}

func (h *Handler) handleStatusByIdentity(w http.ResponseWriter, r *http.Request) {
	identityNumber := chi.URLParam(r, "identityNumber")

	app, err := h.applications.GetByIdentityNumber(r.Context(), identityNumber)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, app)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	apps, err := h.applications.List(r.Context())
	if err != nil {
		h.writeFailure(w, r, "list failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, apps)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	applicationID, ok := h.applicationID(w, r)
	if !ok {
		return
	}

	_, err := h.applications.Approve(r.Context(), applicationID)
	if err != nil {
		h.writeFailure(w, r, "approve failed", err)
		return
	}
	httputil.WriteResult(w, http.StatusOK, httputil.Envelope{
		Success: true,
		Message: service.MsgApproved,
	})
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	applicationID, ok := h.applicationID(w, r)
	if !ok {
		return
	}

	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	_, err := h.applications.Reject(r.Context(), applicationID, req.Reason)
	if err != nil {
		h.writeFailure(w, r, "reject failed", err)
		return
	}
	httputil.WriteResult(w, http.StatusOK, httputil.Envelope{
		Success: true,
		Message: service.MsgRejected,
	})
}

// applicationID parses the {id} route parameter, writing the error response
// itself when the value is not a UUID.
func (h *Handler) applicationID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	applicationID, err := uuid.Parse(raw)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid application id"))
		return uuid.Nil, false
	}
	return applicationID, true
}

// writeFailure renders business failures as {success:false} envelopes with
// the domain status, and logs unexpected internals.
func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, what string, err error) {
	ctx := r.Context()

	var de dErrors.DomainError
	if errors.As(err, &de) && de.Code != dErrors.CodeInternal {
		httputil.WriteResult(w, dErrors.ToHTTPStatus(de.Code), httputil.Envelope{
			Success: false,
			Message: de.Message,
		})
		return
	}

	h.logger.ErrorContext(ctx, what,
		"error", err.Error(),
		"request_id", requestcontext.RequestID(ctx),
	)
	httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, what))
}
