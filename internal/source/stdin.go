package source

import (
	"fmt"
	"io"
	"os"
)

// StdinSource reads the complete stream from os.Stdin (pipe mode).
type StdinSource struct{}

// NewStdinSource creates a source that reads from stdin.
func NewStdinSource() *StdinSource {
	return &StdinSource{}
}

// Name returns the source identifier.
func (s *StdinSource) Name() string {
	return "stdin"
}

// Read consumes stdin to EOF.
func (s *StdinSource) Read() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
