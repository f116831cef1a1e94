package domain

// Anchor is a two-cell anchor range, zero-based column and row indices.
type Anchor struct {
	ColStart int
	RowStart int
	ColEnd   int
	RowEnd   int
}

// DrawingObject describes the picture injected into a worksheet drawing.
type DrawingObject struct {
	Anchor Anchor

	// Name is the display name shown in the selection pane.
	Name string

	// CreationID is a braced, upper-case GUID unique to this object.
	CreationID string
}
