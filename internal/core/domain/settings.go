package domain

const unknownDescription = "Unknown"

// DatasetFormat identifies how the static dataset is encoded.
type DatasetFormat string

// Supported dataset formats.
const (
	// DatasetFormatAuto picks a format from the file extension.
	DatasetFormatAuto DatasetFormat = ""

	// DatasetFormatJSON is a JSON array of organization objects.
	DatasetFormatJSON DatasetFormat = "json"

	// DatasetFormatSQLite is a read-only SQLite bundle.
	DatasetFormatSQLite DatasetFormat = "sqlite"
)

// IsValid returns true if the format is recognised.
func (f DatasetFormat) IsValid() bool {
	switch f {
	case DatasetFormatAuto, DatasetFormatJSON, DatasetFormatSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f DatasetFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f DatasetFormat) Description() string {
	switch f {
	case DatasetFormatAuto:
		return "Auto (by file extension)"
	case DatasetFormatJSON:
		return "JSON"
	case DatasetFormatSQLite:
		return "SQLite"
	default:
		return unknownDescription
	}
}

// DatasetSettings locates the static dataset.
type DatasetSettings struct {
	// Path is the dataset file.
	Path string

	// Format is the dataset encoding. Empty means detect from Path.
	Format DatasetFormat
}

// DisplaySettings controls presentation details.
type DisplaySettings struct {
	// CurrencySymbol is the currency counted in the aid total.
	CurrencySymbol string

	// MaxCardTags is how many tags a list entry shows before "+N more".
	MaxCardTags int

	// QuickTags are offered as one-key tag toggles.
	QuickTags []string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Dataset locates the directory data.
	Dataset DatasetSettings

	// Display holds presentation settings.
	Display DisplaySettings

	// Link is the external reference directory.
	Link ExternalLink
}

// DefaultQuickTags returns the popular categories offered as quick filters.
func DefaultQuickTags() []string {
	return []string{
		"Veterinary",
		"Financial Aid",
		"Accommodation",
		"Emergency Supplies",
		"Collection Point",
		"Medical Care",
		"Food Service",
		"Animal Care",
	}
}

// DefaultAppSettings returns settings with sensible defaults.
// The dataset path is left empty; callers resolve it from flags or environment.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Dataset: DatasetSettings{
			Format: DatasetFormatAuto,
		},
		Display: DisplaySettings{
			CurrencySymbol: DefaultCurrencySymbol,
			MaxCardTags:    5,
			QuickTags:      DefaultQuickTags(),
		},
		Link: DefaultExternalLink(),
	}
}
