package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/sheetstrike/sheetstrike-cli/internal/core/ports/driven"
)

// Ensure ProfileStore implements the interface.
var _ driven.ProfileStore = (*ProfileStore)(nil)

// DefaultProfileName is looked up in ~/.sheetstrike when no path is given.
const DefaultProfileName = "profile.toml"

// ProfileStore is a read-only driven.ProfileStore backed by a TOML or YAML
// file. The format is chosen by extension; anything other than .yaml or .yml
// is read as TOML.
type ProfileStore struct {
	mu       sync.RWMutex
	fs       afero.Fs
	filePath string
	explicit bool
	data     map[string]any
}

// NewProfileStore creates a profile store and loads it.
// If path is empty, ~/.sheetstrike/profile.toml is used and may be absent.
// An explicit path must exist.
func NewProfileStore(fsys afero.Fs, path string) (*ProfileStore, error) {
	s := &ProfileStore{
		fs:       fsys,
		filePath: path,
		explicit: path != "",
		data:     make(map[string]any),
	}

	if s.filePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		s.filePath = filepath.Join(home, ".sheetstrike", DefaultProfileName)
	}

	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get retrieves a profile value by key.
func (s *ProfileStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

// GetString retrieves a string profile value.
func (s *ProfileStore) GetString(key string) string {
	val, ok := s.Get(key)
	if !ok {
		return ""
	}

	str, ok := val.(string)
	if !ok {
		return ""
	}
	return str
}

// GetBool retrieves a boolean profile value.
func (s *ProfileStore) GetBool(key string) bool {
	val, ok := s.Get(key)
	if !ok {
		return false
	}

	b, ok := val.(bool)
	if !ok {
		return false
	}
	return b
}

// GetStringSlice retrieves a string slice profile value.
func (s *ProfileStore) GetStringSlice(key string) []string {
	val, ok := s.Get(key)
	if !ok {
		return nil
	}

	// Both decoders produce []any for arrays
	switch v := val.(type) {
	case []string:
		return v
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	default:
		return nil
	}
}

// Load reads the profile file.
func (s *ProfileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := afero.ReadFile(s.fs, s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !s.explicit {
			s.data = make(map[string]any)
			return nil
		}
		return fmt.Errorf("reading profile: %w", err)
	}

	var loaded map[string]any
	switch strings.ToLower(filepath.Ext(s.filePath)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &loaded)
	default:
		err = toml.Unmarshal(data, &loaded)
	}
	if err != nil {
		return fmt.Errorf("parsing profile %s: %w", s.filePath, err)
	}

	if loaded == nil {
		loaded = make(map[string]any)
	}

	// Flatten nested tables into dot-notation keys
	s.data = flattenMap(loaded, "")
	return nil
}

// flattenMap converts nested maps to dot-notation keys.
// E.g., {"a": {"b": 1}} becomes {"a.b": 1}.
func flattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)

	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			for k, v := range flattenMap(nested, fullKey) {
				result[k] = v
			}
		} else {
			result[fullKey] = value
		}
	}

	return result
}

// Path returns the profile file path.
func (s *ProfileStore) Path() string {
	return s.filePath
}
