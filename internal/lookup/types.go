package lookup

import (
	"context"
	"time"

	"github.com/goodnatureofminers/batchview/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ClientMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// Remote resolves a batch link from its origin.
	Remote interface {
		ResolveBatchLink(ctx context.Context, batch model.Batch) (string, error)
	}
	LinkRepository interface {
		BatchLink(ctx context.Context, batch model.Batch) (string, error)
	}
	LinkWriter interface {
		Add(ctx context.Context, link model.BatchLink) error
	}
)
