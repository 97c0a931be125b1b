// Package batcher buffers items and writes them in rate limited batches.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once Stop has been called.
var ErrStopped = errors.New("batcher stopped")

// Options tunes a Batcher.
type Options struct {
	Size         int
	Interval     time.Duration
	RPS          int
	FlushTimeout time.Duration
}

// Batcher buffers items and flushes them either by size or interval.
type Batcher[T any] struct {
	flush   func(context.Context, []T) error
	itemsCh chan T
	opts    Options
	rl      ratelimit.Limiter
	logger  *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher.
func New[T any](logger *zap.Logger, flush func(context.Context, []T) error, opts Options) (*Batcher[T], error) {
	if flush == nil {
		return nil, errors.New("flush callback is required")
	}
	if opts.Size <= 0 || opts.Interval <= 0 || opts.RPS <= 0 {
		return nil, errors.New("batch size, interval and rps must be positive")
	}
	if opts.FlushTimeout <= 0 {
		opts.FlushTimeout = 10 * time.Second
	}
	return &Batcher[T]{
		flush:   flush,
		itemsCh: make(chan T, opts.Size*2),
		opts:    opts,
		rl:      ratelimit.New(opts.RPS),
		logger:  logger,
		stop:    make(chan struct{}),
	}, nil
}

// Start begins the background flushing loop. Buffered items are flushed
// when ctx is done or Stop is called.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop ends the loop and waits for the last flush.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() { close(b.stop) })
	b.wg.Wait()
}

// Add queues an item, blocking while the queue is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.itemsCh <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.opts.Interval)
	defer ticker.Stop()

	buf := make([]T, 0, b.opts.Size)

	// The final flush outlives ctx.
	flushCtx := context.WithoutCancel(ctx)
	flush := func() {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		fctx, cancel := context.WithTimeout(flushCtx, b.opts.FlushTimeout)
		err := b.flush(fctx, buf)
		cancel()
		if err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = make([]T, 0, b.opts.Size)
	}

	drain := func() {
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
			default:
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			flush()
			return

		case <-b.stop:
			drain()
			flush()
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.opts.Size {
				flush()
			}

		case <-ticker.C:
			flush()
		}
	}
}
