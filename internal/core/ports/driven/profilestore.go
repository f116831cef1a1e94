package driven

// ProfileStore provides read-only access to an operator profile.
// Implementations handle file formats (TOML, YAML) and type conversion.
type ProfileStore interface {
	// Get retrieves a value by dot-notation key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString returns "" if the key doesn't exist or isn't a string.
	GetString(key string) string

	// GetBool returns false if the key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// GetStringSlice returns nil if the key doesn't exist or isn't a list.
	GetStringSlice(key string) []string

	// Load reads the profile from storage.
	Load() error

	// Path returns the profile file path.
	Path() string
}
