package driving

import (
	"context"

	"github.com/sheetstrike/sheetstrike-cli/internal/core/domain"
)

// Patcher injects external image references into spreadsheet containers.
type Patcher interface {
	// Patch reads the container at req.Input and writes a patched copy to
	// req.Output. No output file is produced when it returns an error.
	Patch(ctx context.Context, req PatchRequest) (*PatchResult, error)

	// Inspect lists the drawings and external references of a container.
	Inspect(ctx context.Context, path string) (*Inspection, error)
}

// PatchRequest describes one patch operation.
type PatchRequest struct {
	// Input is the source container path.
	Input string

	// Output is where the patched container is written.
	Output string

	// Target describes the locator to embed.
	Target domain.TargetRequest

	// Sheet is the worksheet name to wire the drawing into.
	// Empty selects the first sheet of the workbook.
	Sheet string
}

// PatchResult summarises a successful patch.
type PatchResult struct {
	// Locator is the external target the new image relationship points to.
	Locator string

	// DrawingNumber is N in xl/drawings/drawingN.xml.
	DrawingNumber int

	// DrawingPath is the new drawing part path.
	DrawingPath string

	// Object is the injected picture.
	Object domain.DrawingObject

	// Worksheet is the worksheet part that was targeted.
	Worksheet string

	// WorksheetWired is false when the worksheet part was missing or
	// already carried a drawing reference.
	WorksheetWired bool

	// RelationshipID is the worksheet-level id pointing at the drawing.
	// Empty when the worksheet part was missing.
	RelationshipID string

	// Parts lists every part written or rewritten, in write order.
	Parts []string
}

// Inspection lists what a container references.
type Inspection struct {
	// Drawings are the drawing part paths.
	Drawings []string

	// External maps descriptor path to its external relationships.
	External map[string][]domain.Relationship
}
