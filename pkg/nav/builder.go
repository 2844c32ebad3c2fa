package nav

import (
	"github.com/vango-dev/docnav/pkg/navpath"
)

// Tree is the validated navigation tree. It is immutable after Build
// returns and safe for concurrent readers without locking.
type Tree struct {
	root *Node
}

// Root returns the synthetic root node. The root carries no title or path;
// its children are the top-level entries of the specification.
func (t *Tree) Root() *Node { return t.root }

// Walk visits every node depth-first in source order, starting with the
// root's children. It stops early if fn returns false.
func (t *Tree) Walk(fn func(*Node) bool) {
	walk(t.root, fn)
}

func walk(n *Node, fn func(*Node) bool) bool {
	for _, child := range n.children {
		if !fn(child) {
			return false
		}
		if !walk(child, fn) {
			return false
		}
	}
	return true
}

// Build constructs a Tree from the authored specification.
//
// The walk is depth-first and preserves source order at every level. Build
// fails fast with a *ValidationError — returning no partial tree — when the
// specification contains:
//   - duplicate non-empty paths (compared after canonicalization)
//   - a section header carrying a path or child routes
//   - a section header without label text
//   - a content or grouping entry without a title
//   - a path the canonicalizer rejects
//
// Canary defaults to false; no other implicit defaults apply.
func Build(entries []Entry) (*Tree, error) {
	root := &Node{}
	seen := make(map[string]bool)

	for _, e := range entries {
		child, err := buildNode(e, root, false, seen)
		if err != nil {
			return nil, err
		}
		root.children = append(root.children, child)
	}

	return &Tree{root: root}, nil
}

// buildNode validates a single entry and recurses into its routes.
// parentCanary carries the inherited channel flag down the walk.
func buildNode(e Entry, parent *Node, parentCanary bool, seen map[string]bool) (*Node, error) {
	if e.HasSectionHeader {
		if e.SectionHeader == "" {
			return nil, &ValidationError{Title: e.Title, Msg: "section header without label text", Wrapped: ErrMissingField}
		}
		if e.Path != "" {
			return nil, &ValidationError{Path: e.Path, Msg: "section header must not carry a path", Wrapped: ErrSectionHeaderShape}
		}
		if len(e.Routes) > 0 {
			return nil, &ValidationError{Title: e.SectionHeader, Msg: "section header must not carry child routes", Wrapped: ErrSectionHeaderShape}
		}
		return &Node{
			title:         e.Title,
			sectionHeader: e.SectionHeader,
			canary:        e.Canary,
			canaryOnly:    e.Canary || parentCanary,
			parent:        parent,
		}, nil
	}

	if e.Title == "" {
		return nil, &ValidationError{Path: e.Path, Msg: "entry missing title", Wrapped: ErrMissingField}
	}

	path := e.Path
	if path != "" {
		canonical, err := navpath.Canonicalize(path)
		if err != nil {
			return nil, &ValidationError{Path: path, Title: e.Title, Msg: "invalid path", Wrapped: err}
		}
		if seen[canonical] {
			return nil, &ValidationError{Path: canonical, Title: e.Title, Msg: "duplicate path", Wrapped: ErrDuplicatePath}
		}
		seen[canonical] = true
		path = canonical
	}

	node := &Node{
		title:      e.Title,
		path:       path,
		canary:     e.Canary,
		canaryOnly: e.Canary || parentCanary,
		parent:     parent,
	}

	for _, child := range e.Routes {
		built, err := buildNode(child, node, node.canaryOnly, seen)
		if err != nil {
			return nil, err
		}
		node.children = append(node.children, built)
	}

	return node, nil
}
