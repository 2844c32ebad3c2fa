package nav

import (
	"fmt"

	"github.com/vango-dev/docnav/pkg/navpath"
)

// Channel selects release visibility for flattened orderings.
type Channel string

const (
	// ChannelStable excludes every canary-only node.
	ChannelStable Channel = "stable"

	// ChannelCanary includes everything.
	ChannelCanary Channel = "canary"
)

// ParseChannel converts a channel string, defaulting empty to stable.
func ParseChannel(s string) (Channel, error) {
	switch s {
	case "", string(ChannelStable):
		return ChannelStable, nil
	case string(ChannelCanary):
		return ChannelCanary, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownChannel, s)
	}
}

// Index answers path queries over a Tree. Like the tree it is immutable
// after construction: every ordering and position map is precomputed in
// NewIndex, so queries are pure in-memory reads with no locking.
type Index struct {
	tree   *Tree
	byPath map[string]*Node

	// flat holds the navigable depth-first ordering per channel;
	// sidebar additionally retains section headers as display markers.
	flat    map[Channel][]*Node
	sidebar map[Channel][]*Node

	// pos maps a node to its position in flat, per channel.
	pos map[Channel]map[*Node]int
}

// NewIndex builds an Index from a validated tree.
func NewIndex(t *Tree) *Index {
	ix := &Index{
		tree:    t,
		byPath:  make(map[string]*Node),
		flat:    make(map[Channel][]*Node),
		sidebar: make(map[Channel][]*Node),
		pos:     make(map[Channel]map[*Node]int),
	}

	for _, ch := range []Channel{ChannelStable, ChannelCanary} {
		ix.pos[ch] = make(map[*Node]int)
	}

	t.Walk(func(n *Node) bool {
		if n.navigable() {
			ix.byPath[n.path] = n
		}
		for _, ch := range []Channel{ChannelStable, ChannelCanary} {
			if !n.visible(ch) {
				continue
			}
			if n.IsSectionHeader() {
				ix.sidebar[ch] = append(ix.sidebar[ch], n)
				continue
			}
			ix.sidebar[ch] = append(ix.sidebar[ch], n)
			if n.navigable() {
				ix.pos[ch][n] = len(ix.flat[ch])
				ix.flat[ch] = append(ix.flat[ch], n)
			}
		}
		return true
	})

	return ix
}

// Tree returns the underlying tree.
func (ix *Index) Tree() *Tree { return ix.tree }

// Lookup resolves a path to its node. The input passes through the same
// canonicalization step applied to manifest paths at build time; beyond
// that the match is exact — no prefix or partial matching. Returns
// ErrNotFound for unknown paths.
func (ix *Index) Lookup(path string) (*Node, error) {
	canonical, err := navpath.Canonicalize(path)
	if err != nil {
		return nil, ErrNotFound
	}
	node, ok := ix.byPath[canonical]
	if !ok {
		return nil, ErrNotFound
	}
	return node, nil
}

// Flatten returns the depth-first, source-order sequence of navigable
// nodes visible on the channel. Section headers are never included; use
// Sidebar for the display list. The returned slice is a copy.
func (ix *Index) Flatten(ch Channel) []*Node {
	flat := ix.flat[ch]
	out := make([]*Node, len(flat))
	copy(out, flat)
	return out
}

// Sidebar returns the display list for the channel: the flattened order
// with grouping nodes and section headers retained as positional markers.
// It is meant for rendering only, never for path resolution or paging.
func (ix *Index) Sidebar(ch Channel) []*Node {
	list := ix.sidebar[ch]
	out := make([]*Node, len(list))
	copy(out, list)
	return out
}

// Breadcrumb returns the ancestry of a path from the top level down to the
// node itself, excluding the synthetic root. A top-level node yields a
// single-element breadcrumb. Returns ErrNotFound if the path does not
// resolve.
func (ix *Index) Breadcrumb(path string) ([]*Node, error) {
	node, err := ix.Lookup(path)
	if err != nil {
		return nil, err
	}

	var trail []*Node
	for n := node; n != nil && n.parent != nil; n = n.parent {
		trail = append(trail, n)
	}

	// Reverse into root-first order.
	for i, j := 0, len(trail)-1; i < j; i, j = i+1, j-1 {
		trail[i], trail[j] = trail[j], trail[i]
	}
	return trail, nil
}

// Neighbors returns the previous and next navigable nodes around a path in
// the channel-filtered flattened order. Boundary nodes yield nil on the
// missing side. A path excluded by the requested channel is ErrNotFound,
// never silently promoted.
func (ix *Index) Neighbors(path string, ch Channel) (prev, next *Node, err error) {
	node, err := ix.Lookup(path)
	if err != nil {
		return nil, nil, err
	}

	i, ok := ix.pos[ch][node]
	if !ok {
		return nil, nil, ErrNotFound
	}

	flat := ix.flat[ch]
	if i > 0 {
		prev = flat[i-1]
	}
	if i < len(flat)-1 {
		next = flat[i+1]
	}
	return prev, next, nil
}
