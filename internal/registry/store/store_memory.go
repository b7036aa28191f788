package store

import (
	"context"
	"sync"

	"ujjwala/internal/registry/models"
	"ujjwala/pkg/platform/sentinel"
)

// InMemory holds the identity registry as a read-only in-process table.
// Lookup is exact-match on the stored identity number; no normalization of
// formatting is performed.
type InMemory struct {
	mu      sync.RWMutex
	records map[string]models.IdentityRecord
}

func NewInMemory() *InMemory {
	return &InMemory{records: make(map[string]models.IdentityRecord)}
}

// Load inserts records into the table. Intended for process-start seeding;
// later calls overwrite by identity number.
func (s *InMemory) Load(records []models.IdentityRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, record := range records {
		s.records[record.IdentityNumber] = record
	}
}

func (s *InMemory) Lookup(_ context.Context, identityNumber string) (*models.IdentityRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, exists := s.records[identityNumber]
	if !exists {
		return nil, sentinel.ErrNotFound
	}
	return &record, nil
}
