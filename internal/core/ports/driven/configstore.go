package driven

// ConfigStore holds settings under dot-notation keys such as
// "display.max_card_tags". Typed getters return the zero value when a key
// is missing or holds another type, so callers layer their own defaults.
type ConfigStore interface {
	// Get returns the raw value and whether the key is present.
	Get(key string) (any, bool)

	GetString(key string) string
	GetInt(key string) int
	GetStringSlice(key string) []string

	// Set stores a value. File-backed stores persist it immediately.
	Set(key string, value any) error

	// Save writes every value to storage.
	Save() error

	// Load replaces the values with what storage holds.
	Load() error

	// Path identifies the backing file, or a placeholder for memory stores.
	Path() string
}
