package domain

import (
	"fmt"
	"strings"
)

// TransportMode selects the shape of the locator embedded in a document.
type TransportMode string

// Transport modes.
const (
	ModeHTTP   TransportMode = "http"
	ModeSMB    TransportMode = "smb"
	ModeWebDAV TransportMode = "webdav"
)

// AllModes returns the closed set of supported transport modes.
func AllModes() []TransportMode {
	return []TransportMode{ModeHTTP, ModeSMB, ModeWebDAV}
}

// IsValid reports whether the mode belongs to the supported set.
func (m TransportMode) IsValid() bool {
	switch m {
	case ModeHTTP, ModeSMB, ModeWebDAV:
		return true
	default:
		return false
	}
}

// String returns the mode name.
func (m TransportMode) String() string {
	return string(m)
}

// ParseMode validates a mode name. Matching is case-insensitive.
func ParseMode(s string) (TransportMode, error) {
	m := TransportMode(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return m, nil
}

// TargetRequest carries everything needed to build a locator.
type TargetRequest struct {
	// Mode is the transport the host application will use.
	Mode TransportMode

	// Host is the remote host, optionally with a path for http mode.
	Host string

	// Resource is an explicit resource name; empty picks one from the catalog.
	Resource string

	// Secure selects https for http mode and @SSL for webdav.
	// It has no effect on smb.
	Secure bool
}
