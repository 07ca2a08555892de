package driving

import (
	"context"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

// ViewEngine derives everything a presentation layer renders from a ViewState.
type ViewEngine interface {
	// Snapshot computes facets, filtered records, summary and the open record.
	Snapshot(ctx context.Context, state domain.ViewState) (*domain.Snapshot, error)
}
