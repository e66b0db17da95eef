// Package fs provides file-based storage for scraped page text.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/amontero/boletin"
)

// Ensure Writer implements boletin.PageStore at compile time.
var _ boletin.PageStore = (*Writer)(nil)

// Writer writes scraped page text as files under a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Store writes text under name inside the base directory and returns
// the path written. The name is sanitized to a flat .txt filename so a
// hostile name cannot escape the base directory.
func (w *Writer) Store(name, text string) (string, error) {
	if name == "" {
		return "", boletin.Errorf(boletin.EINVALID, "file name required")
	}

	fullPath := filepath.Join(w.baseDir, SanitizeName(name))

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(fullPath, []byte(text), 0644); err != nil {
		return "", err
	}

	return fullPath, nil
}

// SanitizeName converts an arbitrary name into a safe flat filename
// with a .txt extension. Path separators and parent references are
// replaced so the result never leaves its directory.
func SanitizeName(name string) string {
	name = strings.TrimSuffix(name, ".txt")

	replacer := strings.NewReplacer("/", "_", "\\", "_", "..", "_")
	name = replacer.Replace(name)
	name = strings.Trim(name, ". ")
	if name == "" {
		name = "page"
	}

	return name + ".txt"
}
