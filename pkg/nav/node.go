package nav

// Entry is one node of the authored navigation specification, as it appears
// in the sidebar manifest. Entries nest through Routes; order is
// significant at every level.
type Entry struct {
	// Title is the display string. May contain markup (e.g. "<Suspense>").
	Title string `json:"title,omitempty"`

	// Path is the unique page path. Empty on section headers and on pure
	// grouping entries.
	Path string `json:"path,omitempty"`

	// Canary marks the entry and everything beneath it as belonging to the
	// experimental release channel.
	Canary bool `json:"canary,omitempty"`

	// HasSectionHeader marks a non-navigable divider entry.
	HasSectionHeader bool `json:"hasSectionHeader,omitempty"`

	// SectionHeader is the divider label. Required when HasSectionHeader.
	SectionHeader string `json:"sectionHeader,omitempty"`

	// Routes are the child entries, in display order.
	Routes []Entry `json:"routes,omitempty"`
}

// Node is a validated, immutable node of the navigation tree.
type Node struct {
	title         string
	path          string
	sectionHeader string
	canary        bool

	// canaryOnly is the inherited flag: the node or an ancestor is canary.
	// Computed once at build time so queries never walk ancestors.
	canaryOnly bool

	parent   *Node
	children []*Node
}

// Title returns the display string.
func (n *Node) Title() string { return n.title }

// Path returns the canonical page path, or "" for section headers and pure
// grouping nodes.
func (n *Node) Path() string { return n.path }

// IsSectionHeader reports whether the node is a non-navigable divider.
func (n *Node) IsSectionHeader() bool { return n.sectionHeader != "" }

// SectionHeaderText returns the divider label, or "" for ordinary nodes.
func (n *Node) SectionHeaderText() string { return n.sectionHeader }

// Canary reports the explicit canary flag as authored.
func (n *Node) Canary() bool { return n.canary }

// CanaryOnly reports whether the node is visible only on the canary
// channel, either flagged itself or beneath a flagged ancestor.
func (n *Node) CanaryOnly() bool { return n.canaryOnly }

// Children returns the child nodes in source order. The returned slice is a
// copy; the tree itself cannot be mutated through it.
func (n *Node) Children() []*Node {
	if len(n.children) == 0 {
		return nil
	}
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// navigable reports whether the node resolves to a page.
func (n *Node) navigable() bool {
	return n.path != "" && !n.IsSectionHeader()
}

// visible reports whether the node belongs on the given channel.
func (n *Node) visible(ch Channel) bool {
	return ch == ChannelCanary || !n.canaryOnly
}
