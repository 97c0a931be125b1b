package clock

import (
	"context"
	"sync/atomic"
	"time"
)

// Task is a repeating callback started by Every.
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}
	ticks  atomic.Uint64
}

// Every invokes onTick once per interval until the task is stopped or ctx is canceled.
// The first call happens one interval after start. Callbacks run sequentially on the
// task goroutine and receive the task itself, so a callback may Stop its own task.
// interval must be positive.
func Every(ctx context.Context, interval time.Duration, onTick func(ctx context.Context, t *Task)) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go t.run(ctx, interval, onTick)
	return t
}

func (t *Task) run(ctx context.Context, interval time.Duration, onTick func(context.Context, *Task)) {
	defer close(t.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// select picks randomly when both are ready.
			if ctx.Err() != nil {
				return
			}
			t.ticks.Add(1)
			onTick(ctx, t)
		}
	}
}

// Stop cancels the task without waiting. Safe to call from the callback and more than once.
func (t *Task) Stop() {
	t.cancel()
}

// Close stops the task and waits for a running callback to return.
// It must not be called from the task's own callback.
func (t *Task) Close() {
	t.cancel()
	<-t.done
}

// Done is closed once the task goroutine has exited.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Ticks returns how many callbacks have been started.
func (t *Task) Ticks() uint64 {
	return t.ticks.Load()
}
