package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "passage.txt")
	require.NoError(t, os.WriteFile(path, []byte("The cat sat.\nIt was happy.\n"), 0o644))

	text, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "The cat sat.\nIt was happy.\n", text)
}

func TestLoadSniffsExtensionlessText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passage")
	require.NoError(t, os.WriteFile(path, []byte("Plain prose without an extension."), 0o644))

	text, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Plain prose without an extension.", text)
}

func TestLoadRejectsBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.bin")
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01")
	require.NoError(t, os.WriteFile(path, png, 0o644))

	_, err := NewLoader().Load(path)
	assert.ErrorContains(t, err, "unsupported content type image/png")
}

func TestLoadStdin(t *testing.T) {
	l := &Loader{Stdin: strings.NewReader("from stdin")}
	text, err := l.Load(StdinPath)
	require.NoError(t, err)
	assert.Equal(t, "from stdin", text)
}

func TestLoadMissing(t *testing.T) {
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
