package service

import (
	"sync"
	"testing"

	"github.com/vango-dev/docnav/pkg/nav"
)

func buildIndex(t *testing.T, entries []nav.Entry) *nav.Index {
	t.Helper()
	tree, err := nav.Build(entries)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	return nav.NewIndex(tree)
}

func TestHolderSwap(t *testing.T) {
	first := buildIndex(t, []nav.Entry{{Title: "A", Path: "/a"}})
	second := buildIndex(t, []nav.Entry{{Title: "B", Path: "/b"}})

	h := NewHolder(first)
	if h.Load() != first {
		t.Error("Load returned a different index than stored")
	}

	h.Swap(second)
	if h.Load() != second {
		t.Error("Load did not observe the swap")
	}
}

// Readers racing a swap must always observe a complete index: every flatten
// result internally consistent with the lookups on the same snapshot.
func TestHolderConcurrentReaders(t *testing.T) {
	indexes := []*nav.Index{
		buildIndex(t, []nav.Entry{{Title: "A", Path: "/a"}, {Title: "B", Path: "/b"}}),
		buildIndex(t, []nav.Entry{{Title: "C", Path: "/c"}}),
	}

	h := NewHolder(indexes[0])

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				ix := h.Load()
				for _, n := range ix.Flatten(nav.ChannelStable) {
					got, err := ix.Lookup(n.Path())
					if err != nil || got != n {
						t.Errorf("snapshot inconsistent at %s: %v", n.Path(), err)
						return
					}
				}
			}
		}()
	}

	for i := 0; i < 1000; i++ {
		h.Swap(indexes[i%len(indexes)])
	}
	close(stop)
	wg.Wait()
}
