package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for reliefdir resources.
	uriScheme = "reliefdir://"

	jsonMIMEType = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "organizations",
		Name:        "organizations",
		Description: "Every organization in dataset order",
		MIMEType:    jsonMIMEType,
	}, s.handleOrganizationsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "facets",
		Name:        "facets",
		Description: "Distinct types, help types, statuses and tags",
		MIMEType:    jsonMIMEType,
	}, s.handleFacetsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "organizations/{id}",
		Name:        "organization",
		Description: "A single organization by id",
		MIMEType:    jsonMIMEType,
	}, s.handleOrganizationResource)
}

// handleOrganizationsResource returns every organization.
func (s *Server) handleOrganizationsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	orgs, err := s.ports.Directory.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}
	if orgs == nil {
		orgs = []domain.Organization{}
	}
	return jsonResource(req.Params.URI, orgs)
}

// handleFacetsResource returns the facet lists.
func (s *Server) handleFacetsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	facets, err := s.ports.Directory.Facets(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing facets: %w", err)
	}
	return jsonResource(req.Params.URI, facets)
}

// handleOrganizationResource returns a single organization.
func (s *Server) handleOrganizationResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractOrganizationID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	org, err := s.ports.Directory.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting organization: %w", err)
	}
	return jsonResource(req.Params.URI, org)
}

// jsonResource wraps v as an indented JSON resource body.
func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: jsonMIMEType,
			Text:     string(data),
		}},
	}, nil
}

// extractOrganizationID extracts the id from a URI like reliefdir://organizations/{id}.
func extractOrganizationID(uri string) string {
	const prefix = uriScheme + "organizations/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
