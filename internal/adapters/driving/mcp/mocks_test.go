package mcp

import (
	"context"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

// mockDirectoryService is a mock implementation of driving.DirectoryService.
type mockDirectoryService struct {
	orgs    []domain.Organization
	facets  domain.Facets
	summary domain.Summary
	err     error

	lastSelection domain.Selection
}

func (m *mockDirectoryService) List(_ context.Context) ([]domain.Organization, error) {
	return m.orgs, m.err
}

func (m *mockDirectoryService) Get(_ context.Context, id string) (*domain.Organization, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.orgs {
		if m.orgs[i].ID == id {
			org := m.orgs[i]
			return &org, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockDirectoryService) Facets(_ context.Context) (domain.Facets, error) {
	return m.facets, m.err
}

func (m *mockDirectoryService) Filter(_ context.Context, sel domain.Selection) (*domain.FilterResult, error) {
	m.lastSelection = sel
	if m.err != nil {
		return nil, m.err
	}
	return &domain.FilterResult{Records: m.orgs, Total: len(m.orgs)}, nil
}

func (m *mockDirectoryService) Summary(_ context.Context) (domain.Summary, error) {
	return m.summary, m.err
}

func testOrganizations() []domain.Organization {
	return []domain.Organization{
		{
			ID: "1", Name: "Paws Rescue", Type: "NGO", Status: "Active",
			Amount: "€10,000", Tags: []string{"Food"},
		},
		{ID: "2", Name: "Limassol Municipality", Type: "Government", Status: "Paused"},
	}
}
