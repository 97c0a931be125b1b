package view

import (
	"sync"
	"time"

	"github.com/golang/mock/gomock"
)

const (
	testInterval = 2 * time.Millisecond
	waitFor      = 2 * time.Second
	pollEvery    = time.Millisecond
)

// nopMetrics accepts any metrics call. Specific expectations must be set before it.
func nopMetrics(ctrl *gomock.Controller) *MockMetrics {
	m := NewMockMetrics(ctrl)
	allowMetrics(m)
	return m
}

func allowMetrics(m *MockMetrics) {
	m.EXPECT().ObserveLookup(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().ObserveResolved(gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().ObserveCountdownStopped().AnyTimes()
	m.EXPECT().TaskStarted(gomock.Any()).AnyTimes()
	m.EXPECT().TaskStopped(gomock.Any()).AnyTimes()
}

// taskCounter is a Metrics fake that tracks running tasks per kind.
type taskCounter struct {
	mu      sync.Mutex
	running map[string]int
	started int
}

func newTaskCounter() *taskCounter {
	return &taskCounter{running: map[string]int{}}
}

func (c *taskCounter) ObserveLookup(error, bool, time.Time) {}
func (c *taskCounter) ObserveResolved(uint64, time.Time)    {}
func (c *taskCounter) ObserveCountdownStopped()             {}

func (c *taskCounter) TaskStarted(kind string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running[kind]++
	c.started++
}

func (c *taskCounter) TaskStopped(kind string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running[kind]--
}

func (c *taskCounter) Running() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, n := range c.running {
		total += n
	}
	return total
}

func (c *taskCounter) Started() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.started
}
