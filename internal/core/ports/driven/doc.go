// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Archive: Reads and writes the zip container format
//   - ScratchProvider: Creates isolated working directories
//   - Random: Supplies the randomness behind anchors, identifiers and decoys
//
// # Optional Interfaces
//
//   - ProfileStore: Read-only operator profile. Without it, flags are the only input.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
