package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
	"github.com/custodia-labs/reliefdir/internal/core/ports/driven"
)

// Ensure RecordStore implements the interface.
var _ driven.RecordStore = (*RecordStore)(nil)

// RecordStore is an in-memory implementation of driven.RecordStore.
// It keeps dataset order and indexes records by id.
type RecordStore struct {
	mu      sync.RWMutex
	records []domain.Organization
	byID    map[string]int
}

// NewRecordStore creates a store holding a copy of records.
// Records with an empty id are rejected with domain.ErrInvalidInput and
// repeated ids with domain.ErrDuplicateID.
func NewRecordStore(records []domain.Organization) (*RecordStore, error) {
	s := &RecordStore{
		records: make([]domain.Organization, len(records)),
		byID:    make(map[string]int, len(records)),
	}
	for i := range records {
		org := cloneOrganization(records[i])
		if org.ID == "" {
			return nil, fmt.Errorf("record %d has no id: %w", i, domain.ErrInvalidInput)
		}
		if prev, ok := s.byID[org.ID]; ok {
			return nil, fmt.Errorf("id %q at records %d and %d: %w", org.ID, prev, i, domain.ErrDuplicateID)
		}
		s.byID[org.ID] = i
		s.records[i] = org
	}
	return s, nil
}

// List returns a copy of every organization in dataset order.
func (s *RecordStore) List(_ context.Context) ([]domain.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Organization, len(s.records))
	for i := range s.records {
		out[i] = cloneOrganization(s.records[i])
	}
	return out, nil
}

// Get retrieves an organization by id.
func (s *RecordStore) Get(_ context.Context, id string) (*domain.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	org := cloneOrganization(s.records[i])
	return &org, nil
}

// Count returns the number of organizations.
func (s *RecordStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// cloneOrganization copies the tag slice so callers cannot alter the store.
func cloneOrganization(org domain.Organization) domain.Organization {
	if org.Tags != nil {
		org.Tags = append([]string(nil), org.Tags...)
	}
	return org
}
