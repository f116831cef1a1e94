// Package services implements the driving port interfaces.
// Services hold the patching logic: anchor and locator generation, drawing
// synthesis, the package graph patch and the extract/repack orchestration.
// They reach the filesystem and randomness only through driven ports.
package services
