package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/reliefdir/internal/adapters/driving/cli"
	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

const testDataset = `[
  {"id": 1, "name": "Paws Rescue", "type": "NGO", "status": "Active", "amount": "€10,000", "tags": ["Veterinary"]},
  {"id": 2, "name": "Limassol Municipality", "type": "Government", "status": "Paused", "amount": "no amount"}
]`

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orgs.json")
	require.NoError(t, os.WriteFile(path, []byte(testDataset), 0o600))
	return path
}

func TestNewServices_LoadsDataset(t *testing.T) {
	t.Setenv(envDataset, "")
	path := writeDataset(t)

	s, err := newServices(context.Background(), cli.Options{
		DatasetPath: path,
		ConfigDir:   t.TempDir(),
		LoadDataset: true,
	})
	require.NoError(t, err)
	require.NotNil(t, s.Directory)
	require.NotNil(t, s.View)
	require.NotNil(t, s.Actions)
	require.NotNil(t, s.Settings)
	require.NotNil(t, s.Bundle)

	summary, err := s.Directory.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Active)
	assert.Equal(t, "€0.01M", summary.FormatAid())

	snap, err := s.View.Snapshot(context.Background(), domain.NewViewState())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultExternalLink(), snap.Link)
}

func TestNewServices_SettingsOnly(t *testing.T) {
	s, err := newServices(context.Background(), cli.Options{ConfigDir: t.TempDir()})
	require.NoError(t, err)

	assert.Nil(t, s.Directory)
	assert.NotNil(t, s.Settings)
	assert.NotNil(t, s.Bundle)
}

func TestNewServices_DatasetFromEnvironment(t *testing.T) {
	t.Setenv(envDataset, writeDataset(t))

	s, err := newServices(context.Background(), cli.Options{
		ConfigDir:   t.TempDir(),
		LoadDataset: true,
	})
	require.NoError(t, err)

	records, err := s.Directory.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestNewServices_ConfigDirFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(envConfigDir, dir)

	s, err := newServices(context.Background(), cli.Options{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), s.Settings.ConfigPath())
}

func TestNewServices_NoDataset(t *testing.T) {
	t.Setenv(envDataset, "")

	_, err := newServices(context.Background(), cli.Options{
		ConfigDir:   t.TempDir(),
		LoadDataset: true,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)
	assert.Contains(t, err.Error(), "settings dataset")
}

func TestNewServices_DuplicateIDs(t *testing.T) {
	t.Setenv(envDataset, "")
	path := filepath.Join(t.TempDir(), "dup.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":1,"name":"a"},{"id":"1","name":"b"}]`), 0o600))

	_, err := newServices(context.Background(), cli.Options{
		DatasetPath: path,
		ConfigDir:   t.TempDir(),
		LoadDataset: true,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateID)
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", firstNonEmpty("", "b", "c"))
	assert.Empty(t, firstNonEmpty("", ""))
	assert.Empty(t, firstNonEmpty())
}
