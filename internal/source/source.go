// Package source reads complete log text for the parser. The engine works
// on a full in-memory blob, so sources read to EOF rather than stream.
package source

// Source reads a complete text blob from an input.
type Source interface {
	// Read returns the full text. A failure here surfaces before the
	// parser ever runs; the parser itself never fails.
	Read() (string, error)

	// Name returns a human-readable identifier for this source.
	Name() string
}
