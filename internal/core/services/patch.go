package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sheetstrike/sheetstrike-cli/internal/core/domain"
	"github.com/sheetstrike/sheetstrike-cli/internal/core/ports/driven"
	"github.com/sheetstrike/sheetstrike-cli/internal/core/ports/driving"
	"github.com/sheetstrike/sheetstrike-cli/internal/logger"
)

// Ensure PatchService implements the interface.
var _ driving.Patcher = (*PatchService)(nil)

// ErrNotConfigured indicates a required adapter was not supplied.
var ErrNotConfigured = errors.New("patch service not configured")

// PatchService extracts a container into a scratch area, patches it and
// repacks it.
type PatchService struct {
	archive driven.Archive
	scratch driven.ScratchProvider
	random  driven.Random
	catalog domain.Catalog
	graph   *GraphPatcher
}

// NewPatchService creates a new patch service. An empty catalog uses the
// built-in decoy names.
func NewPatchService(
	archive driven.Archive,
	scratch driven.ScratchProvider,
	random driven.Random,
	catalog domain.Catalog,
) *PatchService {
	return &PatchService{
		archive: archive,
		scratch: scratch,
		random:  random,
		catalog: catalog.WithDefaults(),
		graph:   NewGraphPatcher(),
	}
}

// Patch implements driving.Patcher.
func (s *PatchService) Patch(ctx context.Context, req driving.PatchRequest) (*driving.PatchResult, error) {
	if s.archive == nil || s.scratch == nil || s.random == nil {
		return nil, ErrNotConfigured
	}
	if !req.Target.Mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMode, req.Target.Mode)
	}

	logger.Section("Patch")
	logger.Debug("Mode: %s, host: %q, secure: %t", req.Target.Mode, req.Target.Host, req.Target.Secure)

	area, err := s.scratch.Create()
	if err != nil {
		return nil, fmt.Errorf("creating scratch area: %w", err)
	}
	defer cleanup(area)

	pkg, err := s.load(req.Input, area)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	locator, err := BuildLocator(req.Target, s.catalog, s.random)
	if err != nil {
		return nil, err
	}
	obj := NewDrawingObject(s.random)
	logger.Info("Target: %s", locator)
	logger.Debug("Anchor: col=%d, row=%d, name=%q, id=%s",
		obj.Anchor.ColStart, obj.Anchor.RowStart, obj.Name, obj.CreationID)

	drawing, err := SynthesizeDrawing(obj, locator)
	if err != nil {
		return nil, err
	}

	graph, err := s.graph.Patch(pkg, drawing, req.Sheet)
	if err != nil {
		return nil, fmt.Errorf("patching package: %w", err)
	}

	for _, part := range graph.Changes.Parts() {
		if err := area.WriteFile(part.Path, part.Data); err != nil {
			return nil, fmt.Errorf("writing %s: %w", part.Path, err)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debug("Repacking to %s", req.Output)
	if err := s.archive.Pack(area, req.Output); err != nil {
		return nil, fmt.Errorf("repacking %s: %w", req.Output, err)
	}

	return &driving.PatchResult{
		Locator:        locator,
		DrawingNumber:  graph.DrawingNumber,
		DrawingPath:    graph.DrawingPath,
		Object:         obj,
		Worksheet:      graph.Worksheet,
		WorksheetWired: graph.WorksheetWired,
		RelationshipID: graph.RelationshipID,
		Parts:          graph.Changes.Paths(),
	}, nil
}

// load extracts the container at src into area and reads every file back as
// a package.
func (s *PatchService) load(src string, area driven.Scratch) (*domain.Package, error) {
	logger.Debug("Extracting %s into %s", src, area.Root())
	if err := s.archive.Extract(src, area); err != nil {
		return nil, err
	}

	names, err := area.Files()
	if err != nil {
		return nil, fmt.Errorf("listing scratch area: %w", err)
	}
	pkg := domain.NewPackage()
	for _, name := range names {
		data, err := area.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		pkg.Put(name, data)
	}
	logger.Debug("Loaded %d parts", pkg.Len())
	return pkg, nil
}

func cleanup(area driven.Scratch) {
	if err := area.Cleanup(); err != nil {
		logger.Warn("Failed to remove scratch area %s: %v", area.Root(), err)
	}
}
