package services

import (
	"context"
	"strings"

	"github.com/sheetstrike/sheetstrike-cli/internal/core/domain"
	"github.com/sheetstrike/sheetstrike-cli/internal/core/ports/driving"
	"github.com/sheetstrike/sheetstrike-cli/internal/logger"
	"github.com/sheetstrike/sheetstrike-cli/internal/xmlpart"
)

// Inspect implements driving.Patcher. Unreadable descriptors are skipped.
func (s *PatchService) Inspect(ctx context.Context, path string) (*driving.Inspection, error) {
	if s.archive == nil || s.scratch == nil {
		return nil, ErrNotConfigured
	}

	logger.Section("Inspect")
	area, err := s.scratch.Create()
	if err != nil {
		return nil, err
	}
	defer cleanup(area)

	pkg, err := s.load(path, area)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ins := &driving.Inspection{
		Drawings: pkg.Match(drawingPartPattern),
		External: make(map[string][]domain.Relationship),
	}
	for _, name := range pkg.Paths() {
		if !strings.HasSuffix(name, ".rels") {
			continue
		}
		data, _ := pkg.Get(name)
		doc, err := xmlpart.Parse(name, data)
		if err != nil {
			logger.Warn("Skipping %s: %v", name, err)
			continue
		}
		for _, rel := range relationshipsOf(doc) {
			if rel.IsExternal() {
				ins.External[name] = append(ins.External[name], rel)
			}
		}
	}
	return ins, nil
}
