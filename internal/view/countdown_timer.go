package view

import (
	"context"
	"sync"
	"time"

	"github.com/goodnatureofminers/batchview/internal/clock"
	"github.com/goodnatureofminers/batchview/internal/model"
	"go.uber.org/zap"
)

const countdownTask = "countdown"

// Countdown is the displayed state of a countdown. The zero value shows nothing.
type Countdown struct {
	Active    bool    `json:"active"`
	Remaining string  `json:"remaining,omitempty"`
	Urgent    bool    `json:"urgent"`
	Progress  float64 `json:"progress"`
}

// CountdownTimer samples RemainingTime on every tick until the batch becomes untrackable.
type CountdownTimer struct {
	batch     model.Batch
	remaining RemainingTime
	epoch     int64
	metrics   Metrics
	logger    *zap.Logger
	onChange  func()

	mu      sync.Mutex
	state   Countdown
	task    *clock.Task
	stopped bool
}

// NewCountdownTimer builds a countdown for batch within an epoch of epochSeconds.
func NewCountdownTimer(
	batch model.Batch,
	remaining RemainingTime,
	epochSeconds int64,
	metrics Metrics,
	logger *zap.Logger,
	onChange func(),
) *CountdownTimer {
	return &CountdownTimer{
		batch:     batch,
		remaining: remaining,
		epoch:     epochSeconds,
		metrics:   metrics,
		logger:    logger,
		onChange:  onChange,
	}
}

// Start begins sampling every interval. It is a no-op once started.
func (c *CountdownTimer) Start(ctx context.Context, interval time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.task != nil || c.stopped {
		return
	}
	c.metrics.TaskStarted(countdownTask)
	c.task = clock.Every(ctx, interval, c.tick)
}

// State returns the current countdown.
func (c *CountdownTimer) State() Countdown {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Close stops sampling and waits for a running tick to finish.
func (c *CountdownTimer) Close() {
	c.mu.Lock()
	c.stopLocked()
	task := c.task
	c.mu.Unlock()

	if task != nil {
		task.Close()
	}
}

func (c *CountdownTimer) tick(_ context.Context, _ *clock.Task) {
	sample, ok := c.remaining.Remaining(c.batch)

	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	next := Countdown{}
	if ok {
		next = countdownState(sample, c.epoch)
	} else {
		c.stopLocked()
		c.metrics.ObserveCountdownStopped()
		c.logger.Debug("batch no longer trackable, countdown stopped")
	}
	changed := next != c.state
	c.state = next
	c.mu.Unlock()

	if changed && c.onChange != nil {
		c.onChange()
	}
}

func (c *CountdownTimer) stopLocked() {
	if c.stopped {
		return
	}
	c.stopped = true
	if c.task != nil {
		c.task.Stop()
		c.metrics.TaskStopped(countdownTask)
	}
}

func countdownState(sample model.Remaining, epoch int64) Countdown {
	progress := 100 * float64(sample.Batch) / float64(epoch)
	switch {
	case progress < 0:
		progress = 0
	case progress > 100:
		progress = 100
	}
	return Countdown{
		Active:    true,
		Remaining: FormatTime(sample.Batch),
		Urgent:    sample.Solve <= 0,
		Progress:  progress,
	}
}
