// Package corpus reads ciphertext files from a directory.
package corpus

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoFiles is returned when a directory holds no regular files.
var ErrNoFiles = errors.New("corpus: no ciphertext files")

// File is one ciphertext and the name it was read from.
type File struct {
	Name string
	Text string
}

// ReadDir returns every regular file of dir, sorted by name, with
// surrounding whitespace trimmed. Subdirectories are skipped.
func ReadDir(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}

	var out []File
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("corpus: read %s: %w", e.Name(), err)
		}
		out = append(out, File{Name: e.Name(), Text: strings.TrimSpace(string(b))})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoFiles)
	}

	return out, nil
}

// Texts returns the Text field of every file, in order.
func Texts(files []File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Text
	}

	return out
}
