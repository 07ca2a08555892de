package dataset

import (
	"context"
	"fmt"

	"github.com/custodia-labs/reliefdir/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/reliefdir/internal/core/domain"
	"github.com/custodia-labs/reliefdir/internal/core/ports/driving"
)

// Ensure Bundler implements the interface.
var _ driving.BundleService = (*Bundler)(nil)

// Bundler writes any readable dataset into a SQLite bundle.
type Bundler struct{}

// NewBundler creates a new bundler.
func NewBundler() *Bundler {
	return &Bundler{}
}

// Bundle loads src, detecting its format, and imports it into dst.
func (b *Bundler) Bundle(ctx context.Context, src, dst string) (int, error) {
	if dst == "" {
		return 0, fmt.Errorf("bundle destination: %w", domain.ErrInvalidInput)
	}

	records, err := Load(ctx, src, domain.DatasetFormatAuto)
	if err != nil {
		return 0, err
	}

	store, err := sqlite.NewStore(dst)
	if err != nil {
		return 0, err
	}
	defer store.Close()

	if err := store.Import(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}
