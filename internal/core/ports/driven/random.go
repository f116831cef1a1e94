package driven

// Random supplies the randomness consumed while patching. Production code
// injects an unpredictable source; tests inject a seeded one so values are
// reproducible.
type Random interface {
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int

	// Read fills p with random bytes. It never fails.
	Read(p []byte) (int, error)
}
