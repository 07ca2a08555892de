package services

import (
	"fmt"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
	"github.com/custodia-labs/reliefdir/internal/core/ports/driven"
	"github.com/custodia-labs/reliefdir/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDatasetPath    = "dataset.path"
	keyDatasetFormat  = "dataset.format"
	keyCurrencySymbol = "display.currency_symbol"
	keyMaxCardTags    = "display.max_card_tags"
	keyQuickTags      = "display.quick_tags"
	keyLinkName       = "link.name"
	keyLinkURL        = "link.url"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings, falling back to defaults
// for every key that is missing or has the wrong type.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Dataset: domain.DatasetSettings{
			Path:   s.getString(keyDatasetPath, defaults.Dataset.Path),
			Format: s.getFormat(defaults.Dataset.Format),
		},
		Display: domain.DisplaySettings{
			CurrencySymbol: s.getString(keyCurrencySymbol, defaults.Display.CurrencySymbol),
			MaxCardTags:    s.getInt(keyMaxCardTags, defaults.Display.MaxCardTags),
			QuickTags:      s.getStringSlice(keyQuickTags, defaults.Display.QuickTags),
		},
		Link: domain.ExternalLink{
			Name: s.getString(keyLinkName, defaults.Link.Name),
			URL:  s.getString(keyLinkURL, defaults.Link.URL),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("settings: %w", domain.ErrInvalidInput)
	}
	if !settings.Dataset.Format.IsValid() {
		return fmt.Errorf("dataset format %q: %w", settings.Dataset.Format, domain.ErrUnsupportedFormat)
	}

	values := []struct {
		key   string
		value any
	}{
		{keyDatasetPath, settings.Dataset.Path},
		{keyDatasetFormat, settings.Dataset.Format.String()},
		{keyCurrencySymbol, settings.Display.CurrencySymbol},
		{keyMaxCardTags, settings.Display.MaxCardTags},
		{keyQuickTags, settings.Display.QuickTags},
		{keyLinkName, settings.Link.Name},
		{keyLinkURL, settings.Link.URL},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// SetDatasetPath updates the dataset location.
func (s *SettingsService) SetDatasetPath(path string, format domain.DatasetFormat) error {
	if path == "" {
		return fmt.Errorf("dataset path: %w", domain.ErrInvalidInput)
	}
	if !format.IsValid() {
		return fmt.Errorf("dataset format %q: %w", format, domain.ErrUnsupportedFormat)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Dataset.Path = path
	settings.Dataset.Format = format
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ConfigPath returns the location of the settings file.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, fallback string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return fallback
}

func (s *SettingsService) getInt(key string, fallback int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	if v := s.configStore.GetInt(key); v > 0 {
		return v
	}
	return fallback
}

func (s *SettingsService) getStringSlice(key string, fallback []string) []string {
	if v := s.configStore.GetStringSlice(key); len(v) > 0 {
		return v
	}
	return fallback
}

func (s *SettingsService) getFormat(fallback domain.DatasetFormat) domain.DatasetFormat {
	f := domain.DatasetFormat(s.configStore.GetString(keyDatasetFormat))
	if f == domain.DatasetFormatAuto || !f.IsValid() {
		return fallback
	}
	return f
}
