// Package manifest loads the authored sidebar manifest and decodes it into
// navigation entries. The manifest is the sole version-controlled artifact
// the navigation core consumes; page bodies live elsewhere.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vango-dev/docnav/pkg/nav"
)

// Failure classes, wrapped into every error this package returns so
// callers can map them with errors.Is.
var (
	// ErrRead marks a source that could not be fetched.
	ErrRead = errors.New("manifest: source unreadable")

	// ErrDecode marks a document that is not a valid manifest.
	ErrDecode = errors.New("manifest: not valid JSON")
)

// Parse decodes manifest JSON into navigation entries.
//
// Two authored forms are accepted: a top-level array of entries, or a single
// root object (the common shape for per-section sidebars, e.g. a reference
// sidebar whose root is the section landing page). A root object becomes the
// sole top-level entry.
func Parse(data []byte) ([]nav.Entry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrDecode)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()

	if trimmed[0] == '[' {
		var entries []nav.Entry
		if err := dec.Decode(&entries); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		return entries, nil
	}

	var root nav.Entry
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return []nav.Entry{root}, nil
}
