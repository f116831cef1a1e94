package driven

// Archive reads and writes the compressed container format.
type Archive interface {
	// Extract unpacks every entry of the container at src into dst.
	// Returns domain.ErrInputNotFound if src does not exist and
	// domain.ErrInvalidContainer if it is not a readable archive.
	Extract(src string, dst Scratch) error

	// Pack writes every file under src into a new container at dst.
	// The container appears at dst only once it is complete.
	Pack(src Scratch, dst string) error
}
