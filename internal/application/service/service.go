// Package service implements the application lifecycle: submission against
// the identity registry, citizen status lookups, and the admin review flow
// that applies the subsidy calculation.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"ujjwala/internal/application/models"
	"ujjwala/internal/officer"
	"ujjwala/internal/platform/metrics"
	registrymodels "ujjwala/internal/registry/models"
	"ujjwala/internal/subsidy"
	dErrors "ujjwala/pkg/domain-errors"
	"ujjwala/pkg/platform/sentinel"
	"ujjwala/pkg/requestcontext"
)

// User-facing outcomes. Handlers surface these verbatim; the presentation
// layer performs no interpretation of its own.
var (
	ErrUnknownIdentity      = dErrors.New(dErrors.CodeNotFound, "Invalid identity number. Please check and try again.")
	ErrDuplicateApplication = dErrors.New(dErrors.CodeConflict, "An application already exists for this identity number.")
	ErrApplicationNotFound  = dErrors.New(dErrors.CodeNotFound, "Application not found.")
	ErrNotEligible          = dErrors.New(dErrors.CodeUnprocessable, "Applicant is not eligible due to income criteria.")
	ErrMissingReason        = dErrors.New(dErrors.CodeUnprocessable, "A rejection reason is required.")
)

// Success messages for the result envelope.
const (
	MsgSubmitted = "Application submitted successfully."
	MsgApproved  = "Application approved successfully."
	MsgRejected  = "Application rejected successfully."
)

// ApplicationStore is the collection the service exclusively owns.
type ApplicationStore interface {
	Create(ctx context.Context, app *models.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	FindByIdentityNumber(ctx context.Context, identityNumber string) (*models.Application, error)
	List(ctx context.Context) ([]*models.Application, error)
	Update(ctx context.Context, app *models.Application) error
}

// IdentityRegistry resolves identity numbers to seeded registry records.
type IdentityRegistry interface {
	Lookup(ctx context.Context, identityNumber string) (*registrymodels.IdentityRecord, error)
}

// ReviewerPicker selects an officer to attach to an approval.
type ReviewerPicker interface {
	PickReviewer() officer.Officer
}

// Service orchestrates the application state machine.
//
// Mutations (Submit, Approve, Reject) are serialized behind a single mutex so
// the uniqueness and transition invariants hold under concurrent admin
// actions. Reads go straight to the store, which hands out snapshots.
type Service struct {
	mu       sync.Mutex
	store    ApplicationStore
	registry IdentityRegistry
	officers ReviewerPicker
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs the lifecycle service over its collaborators.
func New(store ApplicationStore, registry IdentityRegistry, officers ReviewerPicker, opts ...Option) *Service {
	s := &Service{
		store:    store,
		registry: registry,
		officers: officers,
		logger:   slog.Default(),
		tracer:   otel.Tracer("ujjwala/application"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates the identity number against the registry and creates a
// pending application with the applicant snapshot. Eligibility is not checked
// here: over-ceiling incomes may submit and will fail only at approval.
func (s *Service) Submit(ctx context.Context, identityNumber string) (*models.Application, error) {
	ctx, span := s.tracer.Start(ctx, "application.Submit")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.registry.Lookup(ctx, identityNumber)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, ErrUnknownIdentity
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "registry lookup failed")
	}

	app := models.NewApplication(
		uuid.New(),
		record.IdentityNumber,
		record.Name,
		record.Income,
		record.Address,
		record.PhoneNumber,
		requestcontext.Now(ctx),
	)
	if err := s.store.Create(ctx, app); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, ErrDuplicateApplication
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store application")
	}

	s.logger.InfoContext(ctx, "application submitted",
		"application_id", app.ID,
		"request_id", requestcontext.RequestID(ctx),
	)
	if s.metrics != nil {
		s.metrics.ApplicationsSubmitted.Inc()
	}
	return app, nil
}

// GetByIdentityNumber returns the single application for an identity number,
// for citizen status checks.
func (s *Service) GetByIdentityNumber(ctx context.Context, identityNumber string) (*models.Application, error) {
	app, err := s.store.FindByIdentityNumber(ctx, identityNumber)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load application")
	}
	return app, nil
}

// List returns every application in submission order.
func (s *Service) List(ctx context.Context) ([]*models.Application, error) {
	return s.store.List(ctx)
}

// Approve moves a pending application to approved: it re-checks eligibility
// against the snapshotted income, computes the subsidy, assigns a reviewing
// officer, and promises a service date fifteen days out.
//
// An ineligible income leaves the application pending; that is a business
// rejection of the approval request, not a state transition.
func (s *Service) Approve(ctx context.Context, applicationID uuid.UUID) (*models.Application, error) {
	ctx, span := s.tracer.Start(ctx, "application.Approve")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	app, err := s.loadForReview(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if !subsidy.IsEligible(app.Income) {
		return nil, ErrNotEligible
	}

	app.ApplyApproval(s.officers.PickReviewer(), subsidy.Calculate(app.Income), requestcontext.Now(ctx))
	if err := s.store.Update(ctx, app); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store approval")
	}

	s.logger.InfoContext(ctx, "application approved",
		"application_id", app.ID,
		"subsidy_percentage", *app.SubsidyPercentage,
		"request_id", requestcontext.RequestID(ctx),
	)
	if s.metrics != nil {
		s.metrics.ApplicationsApproved.Inc()
	}
	return app, nil
}

// Reject moves a pending application to rejected with the given reason.
func (s *Service) Reject(ctx context.Context, applicationID uuid.UUID, reason string) (*models.Application, error) {
	ctx, span := s.tracer.Start(ctx, "application.Reject")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(reason) == "" {
		return nil, ErrMissingReason
	}

	app, err := s.loadForReview(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	app.ApplyRejection(reason, requestcontext.Now(ctx))
	if err := s.store.Update(ctx, app); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store rejection")
	}

	s.logger.InfoContext(ctx, "application rejected",
		"application_id", app.ID,
		"request_id", requestcontext.RequestID(ctx),
	)
	if s.metrics != nil {
		s.metrics.ApplicationsRejected.Inc()
	}
	return app, nil
}

// loadForReview fetches an application and enforces the pending-only guard
// shared by Approve and Reject.
func (s *Service) loadForReview(ctx context.Context, applicationID uuid.UUID) (*models.Application, error) {
	app, err := s.store.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load application")
	}
	if err := app.CanReview(); err != nil {
		return nil, err
	}
	return app, nil
}
