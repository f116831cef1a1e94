package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlProfile = `
mode = "webdav"
host = "files.example.com"
https = true
path = "q3/summary.png"
sheet = "Data"

[catalog]
resources = ["pixel.gif", "spacer.png"]
shares = ["cdn"]
`

const yamlProfile = `
mode: smb
host: 10.0.0.5
https: false
catalog:
  resources:
    - logo.png
  shares:
    - images
    - assets
`

func TestNewProfileStore_TOML(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/etc/op.toml", []byte(tomlProfile), 0o600))

	store, err := NewProfileStore(fsys, "/etc/op.toml")
	require.NoError(t, err)

	assert.Equal(t, "/etc/op.toml", store.Path())
	assert.Equal(t, "webdav", store.GetString("mode"))
	assert.Equal(t, "files.example.com", store.GetString("host"))
	assert.True(t, store.GetBool("https"))
	assert.Equal(t, "q3/summary.png", store.GetString("path"))
	assert.Equal(t, "Data", store.GetString("sheet"))
	assert.Equal(t, []string{"pixel.gif", "spacer.png"}, store.GetStringSlice("catalog.resources"))
	assert.Equal(t, []string{"cdn"}, store.GetStringSlice("catalog.shares"))
}

func TestNewProfileStore_YAML(t *testing.T) {
	for _, name := range []string{"/op.yaml", "/op.YML"} {
		t.Run(name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fsys, name, []byte(yamlProfile), 0o600))

			store, err := NewProfileStore(fsys, name)
			require.NoError(t, err)

			assert.Equal(t, "smb", store.GetString("mode"))
			assert.Equal(t, "10.0.0.5", store.GetString("host"))
			assert.False(t, store.GetBool("https"))
			assert.Equal(t, []string{"logo.png"}, store.GetStringSlice("catalog.resources"))
			assert.Equal(t, []string{"images", "assets"}, store.GetStringSlice("catalog.shares"))
		})
	}
}

func TestNewProfileStore_ExplicitMissing(t *testing.T) {
	_, err := NewProfileStore(afero.NewMemMapFs(), "/nope.toml")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewProfileStore_DefaultMissing(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	store, err := NewProfileStore(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".sheetstrike", DefaultProfileName), store.Path())

	_, ok := store.Get("mode")
	assert.False(t, ok)
}

func TestNewProfileStore_Invalid(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/bad.toml", []byte("mode = = \"http\""), 0o600))
	require.NoError(t, afero.WriteFile(fsys, "/bad.yaml", []byte("mode: [http"), 0o600))

	_, err := NewProfileStore(fsys, "/bad.toml")
	assert.ErrorContains(t, err, "parsing profile")

	_, err = NewProfileStore(fsys, "/bad.yaml")
	assert.ErrorContains(t, err, "parsing profile")
}

func TestNewProfileStore_Empty(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/empty.yaml", nil, 0o600))

	store, err := NewProfileStore(fsys, "/empty.yaml")
	require.NoError(t, err)
	assert.Nil(t, store.GetStringSlice("catalog.shares"))
}

func TestProfileStore_WrongTypes(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/p.toml", []byte("host = 42\nhttps = \"yes\"\nshares = \"cdn\"\n"), 0o600))

	store, err := NewProfileStore(fsys, "/p.toml")
	require.NoError(t, err)

	assert.Equal(t, "", store.GetString("host"))
	assert.False(t, store.GetBool("https"))
	assert.Nil(t, store.GetStringSlice("shares"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestProfileStore_Reload(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/p.toml", []byte(`host = "a"`), 0o600))

	store, err := NewProfileStore(fsys, "/p.toml")
	require.NoError(t, err)
	assert.Equal(t, "a", store.GetString("host"))

	require.NoError(t, afero.WriteFile(fsys, "/p.toml", []byte(`host = "b"`), 0o600))
	require.NoError(t, store.Load())
	assert.Equal(t, "b", store.GetString("host"))
}

func TestFlattenMap(t *testing.T) {
	nested := map[string]any{
		"mode": "http",
		"catalog": map[string]any{
			"shares": []any{"cdn"},
			"deep":   map[string]any{"x": 1},
		},
	}

	assert.Equal(t, map[string]any{
		"mode":           "http",
		"catalog.shares": []any{"cdn"},
		"catalog.deep.x": 1,
	}, flattenMap(nested, ""))
}
