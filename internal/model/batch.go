// Package model defines domain models for the batch status widget.
package model

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Batch is the ordinal of a settlement batch.
type Batch uint64

// Solution records which solver settled a batch and the settling transaction.
type Solution struct {
	Solver common.Address `json:"solver"`
	TxHash string         `json:"tx_hash"`
}

// Solutions is the solution record supplied for a batch.
//
// A nil value means the outcome is not known yet, an empty non-nil value means
// the batch closed without an accepted solution.
type Solutions []Solution

// Known reports whether the record has been supplied at all.
func (s Solutions) Known() bool {
	return s != nil
}

// First returns the displayed solution.
func (s Solutions) First() (Solution, bool) {
	if len(s) == 0 {
		return Solution{}, false
	}
	return s[0], true
}

// BatchLink is a resolved explorer link for a batch.
type BatchLink struct {
	Batch      Batch
	URL        string
	ResolvedAt time.Time
}

// Remaining is a single sample of the time left for a batch within its epoch.
type Remaining struct {
	// Solve is the number of seconds until the solving deadline, zero or negative once it passed.
	Solve int64
	// Batch is the number of seconds left in the epoch, within [0, epoch].
	Batch int64
}
