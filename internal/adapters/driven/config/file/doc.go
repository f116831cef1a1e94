// Package file provides file-based implementations of driven port interfaces.
//
// Adapters:
//   - ProfileStore: read-only operator profile in TOML or YAML
package file
