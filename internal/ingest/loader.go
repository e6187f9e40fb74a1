// Package ingest reads passages from text files, PDFs and standard input.
package ingest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
)

// StdinPath is the path that selects standard input.
const StdinPath = "-"

// Loader reads a passage from a path.
type Loader struct {
	Stdin io.Reader
}

func NewLoader() *Loader {
	return &Loader{Stdin: os.Stdin}
}

// Load returns the text of the passage at path. PDFs are converted to plain
// text; other files must be detected as text.
func (l *Loader) Load(path string) (string, error) {
	if path == StdinPath {
		data, err := io.ReadAll(l.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		return readText(path)
	case ".pdf":
		return readPDF(path)
	}
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("detect %s: %w", path, err)
	}
	switch {
	case mt.Is("application/pdf"):
		return readPDF(path)
	case isText(mt):
		return readText(path)
	}
	return "", fmt.Errorf("%s: unsupported content type %s", path, mt.String())
}

func isText(mt *mimetype.MIME) bool {
	for m := mt; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func readPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf %s: %w", path, err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("extract pdf %s: %w", path, err)
	}
	return buf.String(), nil
}
