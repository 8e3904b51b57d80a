package draftapi

import (
	"os"
	"path/filepath"
	"strings"
)

// PathKind is the expected filesystem kind of a caller-supplied path.
type PathKind int

const (
	// PathFile expects a regular file.
	PathFile PathKind = iota
	// PathFolder expects a directory.
	PathFolder
)

// ValidatePath sanitizes a caller-supplied path and resolves it to a
// normalized absolute path of the expected kind.
//
// The traversal check is a textual pre-check on the raw string, applied
// before normalization; it rejects any input containing a ".." sequence
// regardless of whether the resolved target would stay in bounds.
func ValidatePath(raw string, kind PathKind) (string, error) {
	if raw == "" {
		return "", invalidArgumentf("Invalid path: empty path")
	}
	if strings.Contains(raw, "..") {
		return "", invalidArgumentf("Invalid path: Path traversal detected in %s", raw)
	}

	abs, err := filepath.Abs(filepath.Clean(raw))
	if err != nil {
		return "", invalidArgumentf("Invalid path: %v", err)
	}

	info, err := os.Stat(abs)
	switch kind {
	case PathFolder:
		if err != nil || !info.IsDir() {
			return "", notFoundf("Folder not found: %s", raw)
		}
	default:
		if err != nil || !info.Mode().IsRegular() {
			return "", notFoundf("File not found: %s", raw)
		}
	}

	return abs, nil
}
