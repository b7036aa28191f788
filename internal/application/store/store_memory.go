package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"ujjwala/internal/application/models"
	"ujjwala/pkg/platform/sentinel"
)

// InMemory owns the application collection for the lifetime of the process.
// Reads hand out copies so callers never hold a live reference into the map;
// mutations go through Update with the full record.
type InMemory struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]*models.Application
	byIdentity map[string]uuid.UUID
	order      []uuid.UUID
}

func NewInMemory() *InMemory {
	return &InMemory{
		byID:       make(map[uuid.UUID]*models.Application),
		byIdentity: make(map[string]uuid.UUID),
	}
}

// Create appends a new application, enforcing the one-application-per-identity
// invariant. Returns sentinel.ErrConflict when the identity number is taken.
func (s *InMemory) Create(_ context.Context, app *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byIdentity[app.IdentityNumber]; exists {
		return sentinel.ErrConflict
	}

	stored := *app
	s.byID[stored.ID] = &stored
	s.byIdentity[stored.IdentityNumber] = stored.ID
	s.order = append(s.order, stored.ID)
	return nil
}

func (s *InMemory) FindByID(_ context.Context, id uuid.UUID) (*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	app, exists := s.byID[id]
	if !exists {
		return nil, sentinel.ErrNotFound
	}
	return copyApplication(app), nil
}

func (s *InMemory) FindByIdentityNumber(_ context.Context, identityNumber string) (*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, exists := s.byIdentity[identityNumber]
	if !exists {
		return nil, sentinel.ErrNotFound
	}
	return copyApplication(s.byID[id]), nil
}

// List returns all applications in insertion order. The result is a snapshot;
// mutating it does not touch the stored records.
func (s *InMemory) List(_ context.Context) ([]*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	apps := make([]*models.Application, 0, len(s.order))
	for _, id := range s.order {
		apps = append(apps, copyApplication(s.byID[id]))
	}
	return apps, nil
}

// Update replaces a stored application. The identity number is immutable, so
// the byIdentity index never needs rewriting here.
func (s *InMemory) Update(_ context.Context, app *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[app.ID]; !exists {
		return sentinel.ErrNotFound
	}
	stored := *app
	s.byID[stored.ID] = &stored
	return nil
}

// copyApplication deep-copies the pointer-valued review fields so snapshots
// stay isolated from later mutations.
func copyApplication(app *models.Application) *models.Application {
	copied := *app
	if app.ReviewedDate != nil {
		t := *app.ReviewedDate
		copied.ReviewedDate = &t
	}
	if app.ExpectedServiceDate != nil {
		t := *app.ExpectedServiceDate
		copied.ExpectedServiceDate = &t
	}
	if app.AssignedOfficer != nil {
		o := *app.AssignedOfficer
		copied.AssignedOfficer = &o
	}
	if app.SubsidyAmount != nil {
		v := *app.SubsidyAmount
		copied.SubsidyAmount = &v
	}
	if app.SubsidyPercentage != nil {
		v := *app.SubsidyPercentage
		copied.SubsidyPercentage = &v
	}
	return &copied
}
