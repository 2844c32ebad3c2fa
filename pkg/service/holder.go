package service

import (
	"sync/atomic"

	"github.com/vango-dev/docnav/pkg/nav"
)

// Holder publishes the current navigation index to concurrent readers.
// Readers take a snapshot with Load and keep using it for the duration of
// a request; rebuilds install a replacement with Swap. A reader mid-query
// never observes a half-built index.
type Holder struct {
	current atomic.Pointer[nav.Index]
}

// NewHolder creates a holder with ix as the initial snapshot.
func NewHolder(ix *nav.Index) *Holder {
	h := &Holder{}
	h.current.Store(ix)
	return h
}

// Load returns the current index snapshot.
func (h *Holder) Load() *nav.Index {
	return h.current.Load()
}

// Swap installs ix as the current snapshot. In-flight readers keep the
// snapshot they loaded.
func (h *Holder) Swap(ix *nav.Index) {
	h.current.Store(ix)
}
