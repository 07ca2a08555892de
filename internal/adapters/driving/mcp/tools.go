package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
	"github.com/custodia-labs/reliefdir/internal/logger"
)

// SearchInput is the input schema for the search_organizations tool.
type SearchInput struct {
	Search   string `json:"search,omitempty" jsonschema:"text matched case-insensitively against name, details and type"`
	Type     string `json:"type,omitempty" jsonschema:"exact organization type, or all"`
	HelpType string `json:"helpType,omitempty" jsonschema:"exact help type, or all"`
	Status   string `json:"status,omitempty" jsonschema:"exact status such as Active or Paused, or all"`
	Tag      string `json:"tag,omitempty" jsonschema:"exact tag, or all"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of organizations to return (default 20)"`
}

// SearchOutput is the output schema for the search_organizations tool.
type SearchOutput struct {
	Organizations []domain.Organization `json:"organizations"`
	Count         int                   `json:"count"`
	Matched       int                   `json:"matched"`
	Total         int                   `json:"total"`
}

// GetInput is the input schema for the get_organization tool.
type GetInput struct {
	ID string `json:"id" jsonschema:"the organization id"`
}

// SummaryInput is the input schema for the directory_summary tool.
type SummaryInput struct{}

// SummaryOutput is the output schema for the directory_summary tool.
type SummaryOutput struct {
	Total          int    `json:"total"`
	Active         int    `json:"active"`
	TotalAid       int64  `json:"totalAid"`
	FormattedAid   string `json:"formattedAid"`
	CurrencySymbol string `json:"currencySymbol"`
}

// FacetsInput is the input schema for the list_facets tool.
type FacetsInput struct{}

// defaultSearchLimit caps search_organizations results when no limit is given.
const defaultSearchLimit = 20

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_organizations",
		Description: "Search wildfire relief organizations by text and filter by type, help type, status or tag",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_organization",
		Description: "Get every field of one organization by id",
	}, s.handleGet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "directory_summary",
		Description: "Count organizations and active programs and total the confirmed financial aid",
	}, s.handleSummary)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_facets",
		Description: "List the distinct types, help types, statuses and tags available as filters",
	}, s.handleFacets)
}

// handleSearch handles the search_organizations tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	sel := domain.NewSelection().
		WithSearchTerm(input.Search).
		WithType(input.Type).
		WithHelpType(input.HelpType).
		WithStatus(input.Status).
		WithTag(input.Tag)
	logger.Debug("MCP search_organizations %+v", sel)

	result, err := s.ports.Directory.Filter(ctx, sel)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	records := result.Records
	if len(records) > limit {
		records = records[:limit]
	}
	out := make([]domain.Organization, len(records))
	for i := range records {
		out[i] = withTags(records[i])
	}

	return nil, SearchOutput{
		Organizations: out,
		Count:         len(out),
		Matched:       result.Count(),
		Total:         result.Total,
	}, nil
}

// handleGet handles the get_organization tool invocation.
func (s *Server) handleGet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetInput,
) (*mcp.CallToolResult, domain.Organization, error) {
	if input.ID == "" {
		return nil, domain.Organization{}, fmt.Errorf("id is required: %w", domain.ErrInvalidInput)
	}

	org, err := s.ports.Directory.Get(ctx, input.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.Organization{}, fmt.Errorf("organization %q not found", input.ID)
	}
	if err != nil {
		return nil, domain.Organization{}, err
	}
	return nil, withTags(*org), nil
}

// withTags returns org with a non-nil tag slice so it encodes as an array.
func withTags(org domain.Organization) domain.Organization {
	if org.Tags == nil {
		org.Tags = []string{}
	}
	return org
}

// handleSummary handles the directory_summary tool invocation.
func (s *Server) handleSummary(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ SummaryInput,
) (*mcp.CallToolResult, SummaryOutput, error) {
	summary, err := s.ports.Directory.Summary(ctx)
	if err != nil {
		return nil, SummaryOutput{}, err
	}

	return nil, SummaryOutput{
		Total:          summary.Total,
		Active:         summary.Active,
		TotalAid:       summary.TotalAid,
		FormattedAid:   summary.FormatAid(),
		CurrencySymbol: summary.CurrencySymbol,
	}, nil
}

// handleFacets handles the list_facets tool invocation.
func (s *Server) handleFacets(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ FacetsInput,
) (*mcp.CallToolResult, domain.Facets, error) {
	facets, err := s.ports.Directory.Facets(ctx)
	if err != nil {
		return nil, domain.Facets{}, err
	}
	return nil, facets, nil
}
