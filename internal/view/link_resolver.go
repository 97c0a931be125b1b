package view

import (
	"context"
	"sync"
	"time"

	"github.com/goodnatureofminers/batchview/internal/clock"
	"github.com/goodnatureofminers/batchview/internal/model"
	"go.uber.org/zap"
)

const linkResolverTask = "link_resolver"

// LinkResolver polls a LinkLookup until the batch link is known.
//
// Lookups run asynchronously with at most one in flight; ticks that fire while
// a lookup is pending are skipped. The first lookup to return a link wins and
// stops polling. Results of lookups started before the resolver was stopped or
// closed are dropped by comparing generations.
type LinkResolver struct {
	batch    model.Batch
	lookup   LinkLookup
	metrics  Metrics
	logger   *zap.Logger
	onChange func()

	mu         sync.Mutex
	link       string
	generation uint64
	task       *clock.Task
	stopped    bool
	started    time.Time
	busy       bool
	inflight   sync.WaitGroup
}

// NewLinkResolver builds a resolver for batch. onChange is called once the link is set.
func NewLinkResolver(batch model.Batch, lookup LinkLookup, metrics Metrics, logger *zap.Logger, onChange func()) *LinkResolver {
	return &LinkResolver{
		batch:    batch,
		lookup:   lookup,
		metrics:  metrics,
		logger:   logger,
		onChange: onChange,
	}
}

// Start begins polling every interval. It is a no-op once started.
func (r *LinkResolver) Start(ctx context.Context, interval time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.task != nil || r.stopped {
		return
	}
	r.started = time.Now()
	generation := r.generation
	r.metrics.TaskStarted(linkResolverTask)
	r.task = clock.Every(ctx, interval, func(ctx context.Context, t *clock.Task) {
		r.tick(ctx, t, generation)
	})
}

// Link returns the resolved link, empty until found.
func (r *LinkResolver) Link() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.link
}

// Close stops polling, cancels lookups in flight and waits for them to return.
func (r *LinkResolver) Close() {
	r.mu.Lock()
	r.generation++
	r.stopLocked()
	task := r.task
	r.mu.Unlock()

	if task != nil {
		task.Close()
	}
	r.inflight.Wait()
}

func (r *LinkResolver) tick(ctx context.Context, t *clock.Task, generation uint64) {
	r.mu.Lock()
	if generation != r.generation || r.busy {
		r.mu.Unlock()
		return
	}
	r.busy = true
	r.inflight.Add(1)
	r.mu.Unlock()

	ticks := t.Ticks()
	go func() {
		defer r.inflight.Done()
		defer r.release()

		started := time.Now()
		link, err := r.lookup.ResolveBatchLink(ctx, r.batch)
		r.metrics.ObserveLookup(err, link != "", started)
		if err != nil {
			if ctx.Err() == nil {
				r.logger.Warn("batch link lookup failed, retrying on next tick", zap.Error(err))
			}
			return
		}
		if link == "" {
			return
		}
		r.resolve(generation, link, ticks)
	}()
}

func (r *LinkResolver) resolve(generation uint64, link string, ticks uint64) {
	r.mu.Lock()
	if generation != r.generation || r.link != "" {
		r.mu.Unlock()
		return
	}
	r.link = link
	r.generation++
	r.stopLocked()
	r.mu.Unlock()

	r.metrics.ObserveResolved(ticks, r.started)
	r.logger.Debug("batch link resolved", zap.String("link", link), zap.Uint64("ticks", ticks))
	if r.onChange != nil {
		r.onChange()
	}
}

func (r *LinkResolver) release() {
	r.mu.Lock()
	r.busy = false
	r.mu.Unlock()
}

func (r *LinkResolver) stopLocked() {
	if r.stopped {
		return
	}
	r.stopped = true
	if r.task != nil {
		r.task.Stop()
		r.metrics.TaskStopped(linkResolverTask)
	}
}
