// Package domain defines the core entities of a package patch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Package: the decompressed container, parts addressed by path
//   - Relationship: a typed link held by a relationship descriptor
//   - DrawingObject: an anchored picture that references an external image
//   - TargetRequest: the transport parameters behind a locator string
//   - Changeset: staged part writes applied all-or-nothing
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
package domain
