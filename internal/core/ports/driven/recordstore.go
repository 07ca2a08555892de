package driven

import (
	"context"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

// RecordStore gives read access to the loaded organizations.
// The store is filled once and never changes afterwards.
type RecordStore interface {
	// List returns every organization in dataset order.
	List(ctx context.Context) ([]domain.Organization, error)

	// Get retrieves an organization by id.
	// Returns domain.ErrNotFound if the id is unknown.
	Get(ctx context.Context, id string) (*domain.Organization, error)

	// Count returns the number of organizations.
	Count(ctx context.Context) (int, error)
}
