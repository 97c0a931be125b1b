// Package epoch computes the solving schedule of batches from wall-clock time.
package epoch

import (
	"errors"
	"math"
	"time"

	"github.com/goodnatureofminers/batchview/internal/model"
	"github.com/goodnatureofminers/batchview/pkg/safe"
)

// Clock maps batches to their solving window.
//
// Batch N collects orders during epoch N and is solved during epoch N+1.
// Solutions are accepted for the first solveWindow seconds of that epoch.
type Clock struct {
	epoch       int64
	solveWindow int64
	now         func() time.Time
}

// NewClock validates the schedule and returns a Clock reading time.Now.
func NewClock(epochSeconds, solveWindowSeconds int64) (*Clock, error) {
	if epochSeconds <= 0 {
		return nil, errors.New("epoch duration must be positive")
	}
	if solveWindowSeconds <= 0 || solveWindowSeconds > epochSeconds {
		return nil, errors.New("solve window must be within the epoch")
	}
	return &Clock{
		epoch:       epochSeconds,
		solveWindow: solveWindowSeconds,
		now:         time.Now,
	}, nil
}

// Epoch returns the batch duration in seconds.
func (c *Clock) Epoch() int64 {
	return c.epoch
}

// Current returns the batch being solved right now.
func (c *Clock) Current() model.Batch {
	now := c.now().Unix()
	if now < c.epoch {
		return 0
	}
	return model.Batch(now/c.epoch - 1)
}

// Remaining samples the time left for batch. It reports false when the batch is
// not in its solving epoch, either because it is still collecting or already over.
func (c *Clock) Remaining(batch model.Batch) (model.Remaining, bool) {
	if batch == math.MaxUint64 {
		return model.Remaining{}, false
	}
	next, err := safe.Int64(batch + 1)
	if err != nil {
		return model.Remaining{}, false
	}
	start, err := safe.MulInt64(next, c.epoch)
	if err != nil {
		return model.Remaining{}, false
	}

	now := c.now().Unix()
	if now < start || now-start >= c.epoch {
		return model.Remaining{}, false
	}

	into := now - start
	return model.Remaining{
		Solve: c.solveWindow - into,
		Batch: c.epoch - into,
	}, true
}
