// Package curvefile reads and writes curve files on disk.
package curvefile

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/olivier-w/curvedit/internal/codec"
	"github.com/olivier-w/curvedit/internal/curve"
)

var curveExts = map[string]bool{
	".curve": true,
	".txt":   true,
}

// IsCurveExt returns true if the extension is one the file browser lists.
func IsCurveExt(ext string) bool {
	return curveExts[strings.ToLower(ext)]
}

// SupportedExtsList returns a human-readable list of listed extensions.
func SupportedExtsList() string {
	return ".curve, .txt"
}

// Read returns the contents of a curve file as text.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("unexpected content: not valid UTF-8")
	}
	return string(data), nil
}

// Load reads and decodes a curve file.
func Load(path string) ([]curve.Vec, error) {
	text, err := Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading curve: %w", err)
	}
	pts, err := codec.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("invalid format: %w", err)
	}
	return pts, nil
}

// Write replaces the contents of path.
func Write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing curve: %w", err)
	}
	return nil
}

// Exists reports whether path names an existing regular file. A missing
// path is not an error; other stat failures are returned.
func Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s is a directory", path)
	}
	return true, nil
}
