package view

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/goodnatureofminers/batchview/internal/model"
)

// Factory builds a view for a batch.
type Factory func(batch model.Batch, solutions model.Solutions) (*BatchView, error)

// Host owns at most one running BatchView. Showing another batch or other
// solutions tears the current view down before a fresh one is started.
type Host struct {
	ctx     context.Context
	factory Factory

	mu      sync.Mutex
	current *BatchView
	closed  bool
}

// NewHost returns a Host starting views with ctx.
func NewHost(ctx context.Context, factory Factory) *Host {
	return &Host{ctx: ctx, factory: factory}
}

// ErrHostClosed is returned by Show after Close.
var ErrHostClosed = errors.New("view host closed")

// Show displays batch with solutions. The running view is kept when both are unchanged.
func (h *Host) Show(batch model.Batch, solutions model.Solutions) (*BatchView, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrHostClosed
	}
	if h.current != nil && h.current.Batch() == batch && sameSolutions(h.current.Solutions(), solutions) {
		return h.current, nil
	}
	if h.current != nil {
		h.current.Close()
		h.current = nil
	}

	v, err := h.factory(batch, solutions)
	if err != nil {
		return nil, err
	}
	v.Start(h.ctx)
	h.current = v
	return v, nil
}

// Current returns the running view, nil before the first Show.
func (h *Host) Current() *BatchView {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// Close tears down the running view.
func (h *Host) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	if h.current != nil {
		h.current.Close()
		h.current = nil
	}
}

func sameSolutions(a, b model.Solutions) bool {
	return a.Known() == b.Known() && slices.Equal(a, b)
}
