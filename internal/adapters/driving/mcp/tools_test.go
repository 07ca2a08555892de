package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

func newTestServer(t *testing.T, dir *mockDirectoryService) *Server {
	t.Helper()
	server, err := NewServer(&Ports{Directory: dir})
	require.NoError(t, err)
	return server
}

func TestServer_handleSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns matching organizations", func(t *testing.T) {
		dir := &mockDirectoryService{orgs: testOrganizations()}
		server := newTestServer(t, dir)

		_, output, err := server.handleSearch(ctx, nil, SearchInput{Search: "paws", Status: "Active"})

		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		assert.Equal(t, 2, output.Matched)
		assert.Equal(t, 2, output.Total)
		assert.Equal(t, "1", output.Organizations[0].ID)
	})

	t.Run("builds selection from input", func(t *testing.T) {
		dir := &mockDirectoryService{}
		server := newTestServer(t, dir)

		_, _, err := server.handleSearch(ctx, nil, SearchInput{
			Search: "food", Type: "NGO", HelpType: "Meals", Status: "Active", Tag: "Food",
		})

		require.NoError(t, err)
		assert.Equal(t, domain.Selection{
			SearchTerm: "food", Type: "NGO", HelpType: "Meals", Status: "Active", Tag: "Food",
		}, dir.lastSelection)
	})

	t.Run("empty filters mean all", func(t *testing.T) {
		dir := &mockDirectoryService{}
		server := newTestServer(t, dir)

		_, output, err := server.handleSearch(ctx, nil, SearchInput{})

		require.NoError(t, err)
		assert.Equal(t, domain.NewSelection(), dir.lastSelection)
		assert.NotNil(t, output.Organizations)
		assert.Equal(t, 0, output.Count)
	})

	t.Run("applies limit", func(t *testing.T) {
		dir := &mockDirectoryService{orgs: testOrganizations()}
		server := newTestServer(t, dir)

		_, output, err := server.handleSearch(ctx, nil, SearchInput{Limit: 1})

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		assert.Equal(t, 2, output.Matched)
	})

	t.Run("tags encode as arrays", func(t *testing.T) {
		dir := &mockDirectoryService{orgs: testOrganizations()}
		server := newTestServer(t, dir)

		_, output, err := server.handleSearch(ctx, nil, SearchInput{})

		require.NoError(t, err)
		assert.NotNil(t, output.Organizations[1].Tags)
		assert.Empty(t, output.Organizations[1].Tags)
	})

	t.Run("returns error on filter failure", func(t *testing.T) {
		server := newTestServer(t, &mockDirectoryService{err: errors.New("store down")})

		_, _, err := server.handleSearch(ctx, nil, SearchInput{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "store down")
	})
}

func TestServer_handleGet(t *testing.T) {
	ctx := context.Background()

	t.Run("returns organization", func(t *testing.T) {
		server := newTestServer(t, &mockDirectoryService{orgs: testOrganizations()})

		_, org, err := server.handleGet(ctx, nil, GetInput{ID: "1"})

		require.NoError(t, err)
		assert.Equal(t, "Paws Rescue", org.Name)
		assert.Equal(t, []string{"Food"}, org.Tags)
	})

	t.Run("missing id", func(t *testing.T) {
		server := newTestServer(t, &mockDirectoryService{})

		_, _, err := server.handleGet(ctx, nil, GetInput{})

		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown id", func(t *testing.T) {
		server := newTestServer(t, &mockDirectoryService{orgs: testOrganizations()})

		_, _, err := server.handleGet(ctx, nil, GetInput{ID: "99"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), `organization "99" not found`)
	})

	t.Run("store failure", func(t *testing.T) {
		server := newTestServer(t, &mockDirectoryService{err: errors.New("store down")})

		_, _, err := server.handleGet(ctx, nil, GetInput{ID: "1"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "store down")
	})
}

func TestServer_handleSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("returns figures", func(t *testing.T) {
		server := newTestServer(t, &mockDirectoryService{
			summary: domain.Summary{Total: 2, Active: 1, TotalAid: 10000, CurrencySymbol: "€"},
		})

		_, output, err := server.handleSummary(ctx, nil, SummaryInput{})

		require.NoError(t, err)
		assert.Equal(t, SummaryOutput{
			Total: 2, Active: 1, TotalAid: 10000, FormattedAid: "€0.01M", CurrencySymbol: "€",
		}, output)
	})

	t.Run("returns error", func(t *testing.T) {
		server := newTestServer(t, &mockDirectoryService{err: errors.New("store down")})

		_, _, err := server.handleSummary(ctx, nil, SummaryInput{})

		require.Error(t, err)
	})
}

func TestServer_handleFacets(t *testing.T) {
	ctx := context.Background()

	t.Run("returns facets", func(t *testing.T) {
		facets := domain.Facets{
			Types:     []string{"Government", "NGO"},
			HelpTypes: []string{},
			Statuses:  []string{"Active", "Paused"},
			Tags:      []string{"Food"},
		}
		server := newTestServer(t, &mockDirectoryService{facets: facets})

		_, output, err := server.handleFacets(ctx, nil, FacetsInput{})

		require.NoError(t, err)
		assert.Equal(t, facets, output)
	})

	t.Run("returns error", func(t *testing.T) {
		server := newTestServer(t, &mockDirectoryService{err: errors.New("store down")})

		_, _, err := server.handleFacets(ctx, nil, FacetsInput{})

		require.Error(t, err)
	})
}
