package archive

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	kzip "github.com/klauspost/compress/zip"
	"github.com/mholt/archiver/v3"
	"github.com/spf13/afero"

	"github.com/sheetstrike/sheetstrike-cli/internal/core/domain"
	"github.com/sheetstrike/sheetstrike-cli/internal/core/ports/driven"
	"github.com/sheetstrike/sheetstrike-cli/internal/logger"
)

// Ensure Zip implements the interface.
var _ driven.Archive = (*Zip)(nil)

// Zip reads and writes zip containers on a filesystem.
type Zip struct {
	fs afero.Fs
}

// NewZip creates a zip codec over fsys.
func NewZip(fsys afero.Fs) *Zip {
	return &Zip{fs: fsys}
}

// Extract unpacks every file entry of src into dst.
func (z *Zip) Extract(src string, dst driven.Scratch) error {
	info, err := z.fs.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", domain.ErrInputNotFound, src)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", domain.ErrInvalidContainer, src)
	}

	f, err := z.fs.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	zr := archiver.NewZip()
	if err := zr.Open(f, info.Size()); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidContainer, src, err)
	}
	defer zr.Close()

	count := 0
	for {
		file, err := zr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			closeEntry(file)
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidContainer, src, err)
		}
		if err := extractEntry(file, dst); err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidContainer, src, err)
		}
		count++
	}
	logger.Debug("Extracted %d entries from %s", count, src)
	return nil
}

func extractEntry(file archiver.File, dst driven.Scratch) error {
	defer closeEntry(file)

	// file.Name() is the base name only; the header carries the full path.
	name := file.Name()
	if hdr, ok := file.Header.(kzip.FileHeader); ok {
		name = hdr.Name
	}
	name = strings.ReplaceAll(name, "\\", "/")
	if file.IsDir() || strings.HasSuffix(name, "/") {
		return nil
	}

	clean := path.Clean(name)
	if path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("entry %q escapes the archive root", name)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return dst.WriteFile(clean, data)
}

func closeEntry(file archiver.File) {
	if file.ReadCloser != nil {
		_ = file.Close()
	}
}

// Pack writes every file of src into a new container at dst.
// [Content_Types].xml is written first, the rest in lexical order.
func (z *Zip) Pack(src driven.Scratch, dst string) (err error) {
	names, err := src.Files()
	if err != nil {
		return err
	}
	names = packOrder(names)

	tmp, err := afero.TempFile(z.fs, filepath.Dir(dst), ".sheetstrike-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = z.fs.Remove(tmpName)
		}
	}()

	zw := archiver.NewZip()
	if err := zw.Create(tmp); err != nil {
		return err
	}
	for _, name := range names {
		if err := addEntry(zw, src, name); err != nil {
			_ = zw.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := z.fs.Rename(tmpName, dst); err != nil {
		return err
	}
	committed = true

	logger.Debug("Packed %d entries into %s", len(names), dst)
	return nil
}

func addEntry(zw *archiver.Zip, src driven.Scratch, name string) error {
	info, err := src.Stat(name)
	if err != nil {
		return err
	}
	rc, err := src.Open(name)
	if err != nil {
		return err
	}
	defer rc.Close()

	return zw.Write(archiver.File{
		FileInfo: archiver.FileInfo{
			FileInfo:   info,
			CustomName: name,
		},
		ReadCloser: rc,
	})
}

// packOrder moves the content-type manifest to the front.
func packOrder(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == domain.ContentTypesPath {
			out = append(out, n)
		}
	}
	for _, n := range names {
		if n != domain.ContentTypesPath {
			out = append(out, n)
		}
	}
	return out
}
