package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
	"github.com/custodia-labs/reliefdir/internal/core/ports/driven"
	"github.com/custodia-labs/reliefdir/internal/core/ports/driving"
	"github.com/custodia-labs/reliefdir/internal/logger"
)

// Ensure DirectoryService implements the interface.
var _ driving.DirectoryService = (*DirectoryService)(nil)

// DirectoryService filters and aggregates the static dataset.
// Facets are kept after the first successful extraction since the record
// store never changes. A failed extraction is retried on the next call.
type DirectoryService struct {
	store          driven.RecordStore
	currencySymbol string

	facetsMu sync.Mutex
	facets   *domain.Facets
}

// NewDirectoryService creates a new directory service over store.
func NewDirectoryService(store driven.RecordStore) *DirectoryService {
	return &DirectoryService{
		store:          store,
		currencySymbol: domain.DefaultCurrencySymbol,
	}
}

// SetCurrencySymbol sets the currency counted by Summary.
// An empty symbol restores the default.
func (s *DirectoryService) SetCurrencySymbol(symbol string) {
	if symbol == "" {
		symbol = domain.DefaultCurrencySymbol
	}
	s.currencySymbol = symbol
}

// List returns every organization in dataset order.
func (s *DirectoryService) List(ctx context.Context) ([]domain.Organization, error) {
	if s.store == nil {
		return nil, errors.New("record store unavailable")
	}
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	return records, nil
}

// Get returns one organization by id.
func (s *DirectoryService) Get(ctx context.Context, id string) (*domain.Organization, error) {
	if s.store == nil {
		return nil, errors.New("record store unavailable")
	}
	if id == "" {
		return nil, fmt.Errorf("organization id: %w", domain.ErrInvalidInput)
	}
	org, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get organization %s: %w", id, err)
	}
	return org, nil
}

// Facets returns the distinct values for each filter control.
func (s *DirectoryService) Facets(ctx context.Context) (domain.Facets, error) {
	s.facetsMu.Lock()
	defer s.facetsMu.Unlock()
	if s.facets != nil {
		return *s.facets, nil
	}

	defer logger.Timed("facet extraction")()
	records, err := s.List(ctx)
	if err != nil {
		return domain.Facets{}, err
	}
	facets := ExtractFacets(records)
	s.facets = &facets
	logger.Debug("Facets: %d types, %d help types, %d statuses, %d tags",
		len(facets.Types), len(facets.HelpTypes),
		len(facets.Statuses), len(facets.Tags))
	return facets, nil
}

// Filter returns the records matching sel in dataset order.
func (s *DirectoryService) Filter(ctx context.Context, sel domain.Selection) (*domain.FilterResult, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := FilterRecords(records, sel)
	logger.Debug("Filter %+v: %d of %d", sel, len(matched), len(records))

	return &domain.FilterResult{
		Records: matched,
		Total:   len(records),
	}, nil
}

// Summary returns total, active and aid figures over the full dataset.
func (s *DirectoryService) Summary(ctx context.Context) (domain.Summary, error) {
	records, err := s.List(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	return Summarize(records, s.currencySymbol), nil
}
