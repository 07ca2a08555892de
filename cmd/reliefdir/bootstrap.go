package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/reliefdir/internal/adapters/driven/config/file"
	"github.com/custodia-labs/reliefdir/internal/adapters/driven/dataset"
	"github.com/custodia-labs/reliefdir/internal/adapters/driven/desktop"
	"github.com/custodia-labs/reliefdir/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/reliefdir/internal/adapters/driving/cli"
	"github.com/custodia-labs/reliefdir/internal/core/domain"
	"github.com/custodia-labs/reliefdir/internal/core/services"
	"github.com/custodia-labs/reliefdir/internal/logger"
)

// Environment variables read when the matching flag is not given.
const (
	envDataset   = "RELIEFDIR_DATASET"
	envConfigDir = "RELIEFDIR_CONFIG_DIR"
)

// loadEnv reads .env from the working directory if there is one.
// Variables already set in the environment win.
func loadEnv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load .env: %w", err)
}

// newServices wires the adapters into the core services.
func newServices(ctx context.Context, opts cli.Options) (*cli.Services, error) {
	logger.Section("Bootstrap")
	defer logger.Timed("bootstrap")()

	configDir := firstNonEmpty(opts.ConfigDir, os.Getenv(envConfigDir))
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	out := &cli.Services{
		Settings: settingsService,
		Bundle:   dataset.NewBundler(),
	}
	if !opts.LoadDataset {
		return out, nil
	}

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	path := firstNonEmpty(opts.DatasetPath, os.Getenv(envDataset), settings.Dataset.Path)
	format := settings.Dataset.Format
	if path != settings.Dataset.Path {
		// The configured format belongs to the configured path
		format = domain.DatasetFormatAuto
	}

	records, err := dataset.Load(ctx, path, format)
	if errors.Is(err, domain.ErrDatasetUnavailable) && path == "" {
		return nil, fmt.Errorf("%w; pass --dataset or run 'reliefdir settings dataset <path>'", err)
	}
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	store, err := memory.NewRecordStore(records)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	directory := services.NewDirectoryService(store)
	directory.SetCurrencySymbol(settings.Display.CurrencySymbol)

	link := settings.Link
	if link.IsZero() {
		link = domain.DefaultExternalLink()
	}

	out.Directory = directory
	out.View = services.NewViewEngine(directory, link)
	out.Actions = services.NewRecordActionService(desktop.NewClipboard(), desktop.NewOpener())
	return out, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
