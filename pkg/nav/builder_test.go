package nav

import (
	"errors"
	"testing"

	"github.com/vango-dev/docnav/pkg/navpath"
)

// referenceEntries is a small manifest in the shape of a real reference
// sidebar: grouping nodes, section headers, and a canary branch.
func referenceEntries() []Entry {
	return []Entry{
		{Title: "react", Path: "/reference/react", Routes: []Entry{
			{HasSectionHeader: true, SectionHeader: "react@18"},
			{Title: "Hooks", Path: "/reference/react/hooks", Routes: []Entry{
				{Title: "useCallback", Path: "/reference/react/useCallback"},
				{Title: "use", Path: "/reference/react/use", Canary: true},
				{Title: "useId", Path: "/reference/react/useId"},
			}},
			{Title: "Components", Routes: []Entry{
				{Title: "<Suspense>", Path: "/reference/react/Suspense"},
			}},
		}},
		{Title: "Canary APIs", Path: "/reference/canary", Canary: true, Routes: []Entry{
			{Title: "Taint", Path: "/reference/canary/taint"},
		}},
	}
}

func TestBuildValid(t *testing.T) {
	tree, err := Build(referenceEntries())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	roots := tree.Root().Children()
	if len(roots) != 2 {
		t.Fatalf("len(root children) = %d, want 2", len(roots))
	}
	if roots[0].Title() != "react" {
		t.Errorf("roots[0].Title() = %q, want %q", roots[0].Title(), "react")
	}

	// Source order must survive construction.
	hooks := roots[0].Children()[1]
	children := hooks.Children()
	wantOrder := []string{"useCallback", "use", "useId"}
	for i, want := range wantOrder {
		if children[i].Title() != want {
			t.Errorf("hooks child %d = %q, want %q", i, children[i].Title(), want)
		}
	}
}

func TestBuildCanaryInheritance(t *testing.T) {
	tree, err := Build(referenceEntries())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	tests := []struct {
		title          string
		wantCanaryOnly bool
	}{
		{"useCallback", false},
		{"use", true},
		{"Canary APIs", true},
		{"Taint", true}, // inherited from parent, not flagged itself
		{"<Suspense>", false},
	}

	for _, tt := range tests {
		var found *Node
		tree.Walk(func(n *Node) bool {
			if n.Title() == tt.title {
				found = n
				return false
			}
			return true
		})
		if found == nil {
			t.Fatalf("node %q not found", tt.title)
		}
		if found.CanaryOnly() != tt.wantCanaryOnly {
			t.Errorf("%q CanaryOnly() = %v, want %v", tt.title, found.CanaryOnly(), tt.wantCanaryOnly)
		}
	}
}

func TestBuildRejects(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		reason  error
	}{
		{
			"duplicate path",
			[]Entry{
				{Title: "useId", Path: "/reference/react/useId"},
				{Title: "useId again", Path: "/reference/react/useId"},
			},
			ErrDuplicatePath,
		},
		{
			"duplicate after canonicalization",
			[]Entry{
				{Title: "a", Path: "/learn"},
				{Title: "b", Path: "/learn/"},
			},
			ErrDuplicatePath,
		},
		{
			"section header with path",
			[]Entry{
				{HasSectionHeader: true, SectionHeader: "APIs", Path: "/reference"},
			},
			ErrSectionHeaderShape,
		},
		{
			"section header with children",
			[]Entry{
				{HasSectionHeader: true, SectionHeader: "APIs", Routes: []Entry{
					{Title: "x", Path: "/x"},
				}},
			},
			ErrSectionHeaderShape,
		},
		{
			"section header without label",
			[]Entry{
				{HasSectionHeader: true},
			},
			ErrMissingField,
		},
		{
			"entry missing title",
			[]Entry{
				{Path: "/reference/react"},
			},
			ErrMissingField,
		},
		{
			"invalid path",
			[]Entry{
				{Title: "bad", Path: "/reference\\react"},
			},
			navpath.ErrBackslashInPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := Build(tt.entries)
			if tree != nil {
				t.Error("Build returned a partial tree alongside an error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Build error = %v, want *ValidationError", err)
			}
			if !errors.Is(err, tt.reason) {
				t.Errorf("Build error = %v, want reason %v", err, tt.reason)
			}
		})
	}
}

func TestBuildEmptySpec(t *testing.T) {
	tree, err := Build(nil)
	if err != nil {
		t.Fatalf("Build(nil) returned error: %v", err)
	}
	if got := tree.Root().Children(); got != nil {
		t.Errorf("root children = %v, want none", got)
	}
}

func TestChildrenIsACopy(t *testing.T) {
	tree, err := Build(referenceEntries())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	root := tree.Root()
	kids := root.Children()
	kids[0] = nil
	if again := root.Children(); again[0] == nil {
		t.Error("mutating the returned slice changed the tree")
	}
}
