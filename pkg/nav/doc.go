// Package nav implements the navigation tree behind a documentation site's
// sidebar.
//
// The package provides:
//   - Tree construction from the authored route specification, with
//     fail-fast structural validation
//   - An immutable index with exact path lookup
//   - Depth-first flattened ordering for prev/next paging
//   - Breadcrumb and neighbor queries
//   - Stable/canary release-channel filtering with ancestor inheritance
//
// # Specification Shape
//
// The authored specification is a nested sequence of entries:
//
//	[
//	  {"title": "Hooks", "routes": [
//	    {"hasSectionHeader": true, "sectionHeader": "State Hooks"},
//	    {"title": "useState", "path": "/reference/react/useState"},
//	    {"title": "use", "path": "/reference/react/use", "canary": true}
//	  ]}
//	]
//
// A node carrying only a title groups its children without being navigable.
// A section-header entry is a non-navigable divider labelling the siblings
// that follow it. A canary flag marks the node and everything beneath it as
// belonging to the experimental release channel.
//
// # Usage
//
//	tree, err := nav.Build(entries)
//	if err != nil {
//	    // *nav.ValidationError: the manifest is malformed, do not serve
//	}
//
//	ix := nav.NewIndex(tree)
//	node, err := ix.Lookup("/reference/react/useState")
//	prev, next, err := ix.Neighbors("/reference/react/useState", nav.ChannelStable)
//
// The tree and index are immutable after construction and safe for
// concurrent readers without locking. Rebuilding on content redeploy means
// constructing a new tree and index and swapping the reference atomically;
// nothing is ever patched in place.
package nav
