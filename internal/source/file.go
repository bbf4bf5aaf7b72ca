package source

import (
	"fmt"
	"os"
)

// FileSource reads a complete log file.
type FileSource struct {
	path string
}

// NewFileSource creates a source for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the source identifier.
func (s *FileSource) Name() string {
	return s.path
}

// Read loads the whole file.
func (s *FileSource) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("read log file %s: %w", s.path, err)
	}
	return string(data), nil
}
