package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sheetstrike/sheetstrike-cli/internal/core/domain"
	"github.com/sheetstrike/sheetstrike-cli/internal/core/ports/driven"
)

// Anchor ranges, far past anything a default window scrolls to.
const (
	anchorColMin = 100
	anchorColMax = 200
	anchorRowMin = 500
	anchorRowMax = 1000

	pictureNameMax = 99
)

// NewDrawingObject picks an off-screen one-cell anchor, a display name and a
// fresh creation identifier.
func NewDrawingObject(rnd driven.Random) domain.DrawingObject {
	col := anchorColMin + rnd.IntN(anchorColMax-anchorColMin+1)
	row := anchorRowMin + rnd.IntN(anchorRowMax-anchorRowMin+1)

	// driven.Random reads never fail.
	id := uuid.Must(uuid.NewRandomFromReader(rnd))

	return domain.DrawingObject{
		Anchor: domain.Anchor{
			ColStart: col,
			RowStart: row,
			ColEnd:   col + 1,
			RowEnd:   row + 1,
		},
		Name:       fmt.Sprintf("Picture %d", 1+rnd.IntN(pictureNameMax)),
		CreationID: "{" + strings.ToUpper(id.String()) + "}",
	}
}
