package domain

import (
	"path"
	"regexp"
	"slices"
	"strings"
)

// Part is one file inside a container.
type Part struct {
	// Path is archive-relative and always uses forward slashes.
	Path string

	// Data is the raw part content.
	Data []byte
}

// Package is the decompressed container during one patch operation.
// Parts keep the order in which they were first added.
type Package struct {
	order []string
	parts map[string][]byte
}

// NewPackage creates an empty package.
func NewPackage() *Package {
	return &Package{parts: make(map[string][]byte)}
}

// CleanPartPath normalises a part path: forward slashes, no leading slash.
func CleanPartPath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = path.Clean("/" + p)
	return strings.TrimPrefix(p, "/")
}

// Put adds or overwrites a part.
func (p *Package) Put(partPath string, data []byte) {
	partPath = CleanPartPath(partPath)
	if _, ok := p.parts[partPath]; !ok {
		p.order = append(p.order, partPath)
	}
	p.parts[partPath] = data
}

// Get returns the content of a part.
func (p *Package) Get(partPath string) ([]byte, bool) {
	data, ok := p.parts[CleanPartPath(partPath)]
	return data, ok
}

// Has reports whether a part exists.
func (p *Package) Has(partPath string) bool {
	_, ok := p.parts[CleanPartPath(partPath)]
	return ok
}

// Len returns the number of parts.
func (p *Package) Len() int {
	return len(p.order)
}

// Paths returns part paths in insertion order.
func (p *Package) Paths() []string {
	return slices.Clone(p.order)
}

// Match returns the paths matching re, in insertion order.
func (p *Package) Match(re *regexp.Regexp) []string {
	var matches []string
	for _, name := range p.order {
		if re.MatchString(name) {
			matches = append(matches, name)
		}
	}
	return matches
}

// Changeset collects part writes so they can be applied together.
type Changeset struct {
	writes []Part
}

// Stage records a write. A later write to the same path replaces an earlier one.
func (c *Changeset) Stage(partPath string, data []byte) {
	partPath = CleanPartPath(partPath)
	for i := range c.writes {
		if c.writes[i].Path == partPath {
			c.writes[i].Data = data
			return
		}
	}
	c.writes = append(c.writes, Part{Path: partPath, Data: data})
}

// Lookup returns the staged content for a path.
func (c *Changeset) Lookup(partPath string) ([]byte, bool) {
	partPath = CleanPartPath(partPath)
	for _, w := range c.writes {
		if w.Path == partPath {
			return w.Data, true
		}
	}
	return nil, false
}

// Parts returns the staged writes in staging order.
func (c *Changeset) Parts() []Part {
	return slices.Clone(c.writes)
}

// Paths returns the staged paths in staging order.
func (c *Changeset) Paths() []string {
	paths := make([]string, 0, len(c.writes))
	for _, w := range c.writes {
		paths = append(paths, w.Path)
	}
	return paths
}

// Apply writes every staged part into pkg.
func (c *Changeset) Apply(pkg *Package) {
	for _, w := range c.writes {
		pkg.Put(w.Path, w.Data)
	}
}
