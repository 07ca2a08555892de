package driving

import "github.com/custodia-labs/reliefdir/internal/core/domain"

// SettingsService reads and writes the dataset location, display options
// and the external link.
type SettingsService interface {
	// Get returns the stored settings with defaults filled in for
	// anything missing.
	Get() (*domain.AppSettings, error)

	// Save stores every field of settings.
	Save(settings *domain.AppSettings) error

	// SetDatasetPath stores the dataset location and its format.
	// An empty path or unknown format is rejected.
	SetDatasetPath(path string, format domain.DatasetFormat) error

	// GetDefaults returns the settings used on first run.
	GetDefaults() domain.AppSettings

	// ConfigPath returns the location of the settings file.
	ConfigPath() string
}
