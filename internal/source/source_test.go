package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSourceReadsWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	content := "[2025-12-23 10:29:00] production.INFO: hello\nsecond line\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	src := NewFileSource(path)
	got, err := src.Read()
	require.NoError(t, err)
	assert.Equal(t, content, got)
	assert.Equal(t, path, src.Name())
}

func TestFileSourceMissingFile(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "missing.log"))
	_, err := src.Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read log file")
}

func TestStdinSourceName(t *testing.T) {
	assert.Equal(t, "stdin", NewStdinSource().Name())
}
