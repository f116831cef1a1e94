// Package archive implements driven.Archive for zip containers using
// mholt/archiver over an afero filesystem.
//
// Extraction rejects entries that would land outside the scratch area.
// Packing writes to a temporary file next to the destination and renames it
// into place, so a failed pack never leaves a partial container behind.
package archive
