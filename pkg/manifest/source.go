package manifest

import (
	"context"
	"fmt"
	"os"

	"github.com/vango-dev/docnav/pkg/nav"
)

// Source supplies raw manifest bytes. Implementations cover wherever a
// deployment keeps its sidebar manifest: a checked-out file on disk, or an
// object in the deploy bucket.
type Source interface {
	// Fetch returns the current manifest document.
	Fetch(ctx context.Context) ([]byte, error)

	// Describe names the source for logs and error messages.
	Describe() string
}

// FileSource reads the manifest from the local filesystem.
type FileSource struct {
	Path string
}

// NewFileSource creates a source reading from path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Fetch implements Source.
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, s.Path, err)
	}
	return data, nil
}

// Describe implements Source.
func (s *FileSource) Describe() string { return "file " + s.Path }

// Load fetches from a source and decodes the result.
func Load(ctx context.Context, src Source) ([]nav.Entry, error) {
	data, err := src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
