package transport

import (
	"context"

	"github.com/goodnatureofminers/batchview/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	SolutionSource interface {
		Solutions(ctx context.Context, batch model.Batch) (model.Solutions, error)
	}
	// EpochClock tells which batch is being solved and how long it has left.
	EpochClock interface {
		Current() model.Batch
		Remaining(batch model.Batch) (model.Remaining, bool)
	}
	Pinger interface {
		Ping(ctx context.Context) error
	}
)
