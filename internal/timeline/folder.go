package timeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Folder is a registered drafts directory. Each draft lives in its own
// subdirectory named after it.
type Folder struct {
	Path string
}

// NewFolder binds the existing directory at path. path must already be
// absolute and validated; only the directory check is repeated.
func NewFolder(path string) (*Folder, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", path)
	}
	return &Folder{Path: path}, nil
}

// ListDrafts returns the names of all drafts in the folder, sorted.
func (f *Folder) ListDrafts() ([]string, error) {
	entries, err := os.ReadDir(f.Path)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// CreateDraft creates a new draft directory under the folder and returns the
// open draft. If the directory already exists the call fails with
// ErrDraftExists unless allowReplace is set, in which case the old contents
// are removed first.
func (f *Folder) CreateDraft(name string, width, height int, allowReplace bool) (*Draft, error) {
	if err := checkDraftName(name); err != nil {
		return nil, err
	}

	dir := filepath.Join(f.Path, name)
	if _, err := os.Stat(dir); err == nil {
		if !allowReplace {
			return nil, fmt.Errorf("%w: %q", ErrDraftExists, name)
		}
		if err := os.RemoveAll(dir); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return newDraft(name, dir, width, height), nil
}

// checkDraftName rejects names that would escape the folder directory.
func checkDraftName(name string) error {
	if name == "" {
		return fmt.Errorf("empty draft name")
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("invalid draft name %q", name)
	}
	return nil
}
