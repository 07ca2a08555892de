package driving

import (
	"context"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

// DirectoryService exposes the loaded dataset to external actors.
type DirectoryService interface {
	// List returns every organization in dataset order.
	List(ctx context.Context) ([]domain.Organization, error)

	// Get returns a single organization by id.
	// Returns domain.ErrNotFound if the id is unknown.
	Get(ctx context.Context, id string) (*domain.Organization, error)

	// Facets returns the sorted distinct values for each filter control.
	Facets(ctx context.Context) (domain.Facets, error)

	// Filter returns the records matching sel in dataset order.
	Filter(ctx context.Context, sel domain.Selection) (*domain.FilterResult, error)

	// Summary returns the header statistics over the full dataset.
	Summary(ctx context.Context) (domain.Summary, error)
}
