package service

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ContentResolver maps a canonical page path to its authored body.
// Resolve returns fs.ErrNotExist (possibly wrapped) when the page exists in
// the manifest but no body has been authored yet.
type ContentResolver interface {
	Resolve(ctx context.Context, path string) ([]byte, error)
}

// DirResolver resolves page bodies from a content directory. A page path
// like /reference/react/useId maps to reference/react/useId.md, then .mdx,
// then useId/index.md under the root.
type DirResolver struct {
	root string
}

// NewDirResolver creates a resolver rooted at dir.
func NewDirResolver(dir string) *DirResolver {
	return &DirResolver{root: dir}
}

// Resolve reads the page body for a canonical path.
func (r *DirResolver) Resolve(_ context.Context, path string) ([]byte, error) {
	rel := strings.TrimPrefix(path, "/")
	if rel == "" {
		rel = "index"
	}

	candidates := []string{
		rel + ".md",
		rel + ".mdx",
		filepath.Join(rel, "index.md"),
	}

	for _, candidate := range candidates {
		data, err := os.ReadFile(filepath.Join(r.root, filepath.FromSlash(candidate)))
		if err == nil {
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("no content for %s: %w", path, fs.ErrNotExist)
}
