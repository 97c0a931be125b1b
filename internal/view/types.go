package view

import (
	"context"
	"time"

	"github.com/goodnatureofminers/batchview/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// LinkLookup resolves the explorer link of a batch. An empty link means not found yet.
	LinkLookup interface {
		ResolveBatchLink(ctx context.Context, batch model.Batch) (string, error)
	}
	// RemainingTime samples the time left for a batch, false once it cannot be timed.
	RemainingTime interface {
		Remaining(batch model.Batch) (model.Remaining, bool)
	}
	Metrics interface {
		ObserveLookup(err error, found bool, started time.Time)
		ObserveResolved(ticks uint64, started time.Time)
		ObserveCountdownStopped()
		TaskStarted(kind string)
		TaskStopped(kind string)
	}
)
