package driven

import (
	"io"
	"io/fs"
)

// ScratchProvider creates isolated working directories.
type ScratchProvider interface {
	// Create returns a fresh, empty scratch area.
	Create() (Scratch, error)
}

// Scratch is a working directory owned by one patch operation.
// Names are slash-separated and relative to the scratch root.
type Scratch interface {
	// WriteFile creates or replaces a file, creating parent directories.
	WriteFile(name string, data []byte) error

	// ReadFile returns the content of a file.
	ReadFile(name string) ([]byte, error)

	// Open opens a file for streaming reads.
	Open(name string) (io.ReadCloser, error)

	// Stat describes a file.
	Stat(name string) (fs.FileInfo, error)

	// Files returns every regular file name in lexical order.
	Files() ([]string, error)

	// Root returns the scratch directory path, for logging.
	Root() string

	// Cleanup removes the scratch area and everything in it.
	Cleanup() error
}
