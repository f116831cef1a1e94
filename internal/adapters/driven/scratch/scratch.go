// Package scratch provides isolated working directories on an afero
// filesystem. Each patch operation gets its own directory and removes it
// when done.
package scratch

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/sheetstrike/sheetstrike-cli/internal/core/ports/driven"
)

// Ensure Provider and Area implement the interfaces.
var (
	_ driven.ScratchProvider = (*Provider)(nil)
	_ driven.Scratch         = (*Area)(nil)
)

const dirPrefix = "sheetstrike-"

// Provider creates scratch areas under a parent directory.
type Provider struct {
	fs     afero.Fs
	parent string
}

// NewProvider creates a provider. An empty parent uses the system temp dir.
func NewProvider(fsys afero.Fs, parent string) *Provider {
	return &Provider{fs: fsys, parent: parent}
}

// Create makes a fresh, empty scratch directory.
func (p *Provider) Create() (driven.Scratch, error) {
	root, err := afero.TempDir(p.fs, p.parent, dirPrefix)
	if err != nil {
		return nil, err
	}
	return &Area{fs: p.fs, root: root}, nil
}

// Area is one scratch directory.
type Area struct {
	fs   afero.Fs
	root string
}

// resolve maps a slash-separated name to a path inside the area, rejecting
// names that would escape it.
func (a *Area) resolve(name string) (string, error) {
	clean := path.Clean(strings.ReplaceAll(name, "\\", "/"))
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") || path.IsAbs(clean) {
		return "", fmt.Errorf("scratch: invalid name %q", name)
	}
	return filepath.Join(a.root, filepath.FromSlash(clean)), nil
}

// WriteFile creates or replaces a file, creating parent directories.
func (a *Area) WriteFile(name string, data []byte) error {
	p, err := a.resolve(name)
	if err != nil {
		return err
	}
	if err := a.fs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(a.fs, p, data, 0o644)
}

// ReadFile returns the content of a file.
func (a *Area) ReadFile(name string) ([]byte, error) {
	p, err := a.resolve(name)
	if err != nil {
		return nil, err
	}
	return afero.ReadFile(a.fs, p)
}

// Open opens a file for reading.
func (a *Area) Open(name string) (io.ReadCloser, error) {
	p, err := a.resolve(name)
	if err != nil {
		return nil, err
	}
	return a.fs.Open(p)
}

// Stat describes a file.
func (a *Area) Stat(name string) (fs.FileInfo, error) {
	p, err := a.resolve(name)
	if err != nil {
		return nil, err
	}
	return a.fs.Stat(p)
}

// Files returns every regular file, slash-separated, in lexical order.
func (a *Area) Files() ([]string, error) {
	var names []string
	err := afero.Walk(a.fs, a.root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(a.root, p)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Root returns the scratch directory path.
func (a *Area) Root() string {
	return a.root
}

// Cleanup removes the scratch directory and everything in it.
func (a *Area) Cleanup() error {
	return a.fs.RemoveAll(a.root)
}
