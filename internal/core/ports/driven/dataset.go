package driven

import (
	"context"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

// DatasetLoader reads the static dataset once at startup.
type DatasetLoader interface {
	// Load returns every organization in dataset order.
	// Implementations must reject duplicate ids with domain.ErrDuplicateID.
	Load(ctx context.Context) ([]domain.Organization, error)

	// Format reports the encoding the loader reads.
	Format() domain.DatasetFormat
}
