package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestExtractOrganizationID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid organization URI",
			uri:      "reliefdir://organizations/42",
			expected: "42",
		},
		{
			name:     "invalid prefix",
			uri:      "file://organizations/42",
			expected: "",
		},
		{
			name:     "collection URI",
			uri:      "reliefdir://organizations",
			expected: "",
		},
		{
			name:     "nested path",
			uri:      "reliefdir://organizations/42/tags",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractOrganizationID(tt.uri))
		})
	}
}

func TestServer_handleOrganizationsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns every organization", func(t *testing.T) {
		server := newTestServer(t, &mockDirectoryService{orgs: testOrganizations()})

		req := makeReadResourceRequest("reliefdir://organizations")
		result, err := server.handleOrganizationsResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, "Paws Rescue")
		assert.Contains(t, result.Contents[0].Text, `"helpType"`)
	})

	t.Run("empty dataset is an empty array", func(t *testing.T) {
		server := newTestServer(t, &mockDirectoryService{})

		req := makeReadResourceRequest("reliefdir://organizations")
		result, err := server.handleOrganizationsResource(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		server := newTestServer(t, &mockDirectoryService{err: errors.New("store down")})

		req := makeReadResourceRequest("reliefdir://organizations")
		_, err := server.handleOrganizationsResource(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing organizations")
	})
}

func TestServer_handleFacetsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns facets", func(t *testing.T) {
		server := newTestServer(t, &mockDirectoryService{
			facets: domain.Facets{Types: []string{"NGO"}, Tags: []string{"Food"}},
		})

		req := makeReadResourceRequest("reliefdir://facets")
		result, err := server.handleFacetsResource(ctx, req)

		require.NoError(t, err)
		assert.Contains(t, result.Contents[0].Text, `"types"`)
		assert.Contains(t, result.Contents[0].Text, "NGO")
	})

	t.Run("returns error", func(t *testing.T) {
		server := newTestServer(t, &mockDirectoryService{err: errors.New("store down")})

		req := makeReadResourceRequest("reliefdir://facets")
		_, err := server.handleFacetsResource(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing facets")
	})
}

func TestServer_handleOrganizationResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns organization", func(t *testing.T) {
		server := newTestServer(t, &mockDirectoryService{orgs: testOrganizations()})

		req := makeReadResourceRequest("reliefdir://organizations/2")
		result, err := server.handleOrganizationResource(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "reliefdir://organizations/2", result.Contents[0].URI)
		assert.Contains(t, result.Contents[0].Text, "Limassol Municipality")
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		server := newTestServer(t, &mockDirectoryService{orgs: testOrganizations()})

		req := makeReadResourceRequest("reliefdir://organizations/99")
		_, err := server.handleOrganizationResource(ctx, req)

		require.Error(t, err)
	})

	t.Run("malformed URI is not found", func(t *testing.T) {
		server := newTestServer(t, &mockDirectoryService{})

		req := makeReadResourceRequest("reliefdir://organizations/")
		_, err := server.handleOrganizationResource(ctx, req)

		require.Error(t, err)
	})

	t.Run("store failure", func(t *testing.T) {
		server := newTestServer(t, &mockDirectoryService{err: errors.New("store down")})

		req := makeReadResourceRequest("reliefdir://organizations/1")
		_, err := server.handleOrganizationResource(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "getting organization")
	})
}
