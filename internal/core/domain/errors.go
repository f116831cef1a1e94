package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent caller-input failures of a patch operation.
// None of them are transient; callers should not retry.
var (
	// ErrInputNotFound indicates the input container path does not exist.
	ErrInputNotFound = errors.New("input not found")

	// ErrInvalidContainer indicates the input is not a readable zip container.
	ErrInvalidContainer = errors.New("invalid container")

	// ErrInvalidMode indicates a transport mode outside http, smb and webdav.
	ErrInvalidMode = errors.New("invalid transport mode")

	// ErrMalformedPart indicates an existing part lacks the structure an edit
	// needs, such as a closing root tag.
	ErrMalformedPart = errors.New("malformed part")
)

// PartError describes a malformed part inside a package.
type PartError struct {
	// Path is the archive-relative path of the offending part.
	Path string

	// Reason says what was missing or unreadable.
	Reason string
}

func (e *PartError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrMalformedPart, e.Path, e.Reason)
}

// Unwrap lets errors.Is match ErrMalformedPart.
func (e *PartError) Unwrap() error {
	return ErrMalformedPart
}
