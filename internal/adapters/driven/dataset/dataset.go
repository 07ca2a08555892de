package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/reliefdir/internal/adapters/driven/dataset/jsonfile"
	"github.com/custodia-labs/reliefdir/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/reliefdir/internal/core/domain"
	"github.com/custodia-labs/reliefdir/internal/logger"
)

// ResolveFormat returns format, or detects it from the extension of path
// when format is domain.DatasetFormatAuto.
func ResolveFormat(path string, format domain.DatasetFormat) (domain.DatasetFormat, error) {
	if !format.IsValid() {
		return "", fmt.Errorf("dataset format %q: %w", format, domain.ErrUnsupportedFormat)
	}
	if format != domain.DatasetFormatAuto {
		return format, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return domain.DatasetFormatJSON, nil
	case ".db", ".sqlite", ".sqlite3":
		return domain.DatasetFormatSQLite, nil
	default:
		return "", fmt.Errorf("cannot detect format of %q: %w", path, domain.ErrUnsupportedFormat)
	}
}

// Load reads every organization from the dataset at path.
func Load(ctx context.Context, path string, format domain.DatasetFormat) ([]domain.Organization, error) {
	if path == "" {
		return nil, fmt.Errorf("no dataset configured: %w", domain.ErrDatasetUnavailable)
	}

	resolved, err := ResolveFormat(path, format)
	if err != nil {
		return nil, err
	}
	logger.Debug("Dataset %s (%s)", path, resolved.Description())

	switch resolved {
	case domain.DatasetFormatSQLite:
		store, err := sqlite.OpenReadOnly(path)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.Load(ctx)
	default:
		return jsonfile.NewLoader(path).Load(ctx)
	}
}
