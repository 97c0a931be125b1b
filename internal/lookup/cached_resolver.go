package lookup

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/batchview/internal/model"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// CachedResolver answers from memory, then from stored links, then from the remote.
// Links found remotely are remembered and queued for storage. A stored link is
// never invalidated since a batch link does not change once published.
type CachedResolver struct {
	cache  *lru.Cache[model.Batch, string]
	repo   LinkRepository
	remote Remote
	writer LinkWriter
	logger *zap.Logger
	now    func() time.Time
}

// NewCachedResolver builds a resolver. repo and writer are optional.
func NewCachedResolver(remote Remote, repo LinkRepository, writer LinkWriter, size int, logger *zap.Logger) (*CachedResolver, error) {
	if remote == nil {
		return nil, errors.New("remote lookup is required")
	}
	cache, err := lru.New[model.Batch, string](size)
	if err != nil {
		return nil, err
	}
	return &CachedResolver{
		cache:  cache,
		repo:   repo,
		remote: remote,
		writer: writer,
		logger: logger,
		now:    time.Now,
	}, nil
}

// ResolveBatchLink implements the widget link lookup.
func (r *CachedResolver) ResolveBatchLink(ctx context.Context, batch model.Batch) (string, error) {
	if link, ok := r.cache.Get(batch); ok {
		return link, nil
	}

	if r.repo != nil {
		link, err := r.repo.BatchLink(ctx, batch)
		switch {
		case err != nil:
			r.logger.Warn("stored batch link lookup failed", zap.Uint64("batch", uint64(batch)), zap.Error(err))
		case link != "":
			r.cache.Add(batch, link)
			return link, nil
		}
	}

	link, err := r.remote.ResolveBatchLink(ctx, batch)
	if err != nil || link == "" {
		return "", err
	}
	r.cache.Add(batch, link)

	if r.writer != nil {
		record := model.BatchLink{Batch: batch, URL: link, ResolvedAt: r.now()}
		if err := r.writer.Add(ctx, record); err != nil {
			r.logger.Warn("queue batch link failed", zap.Uint64("batch", uint64(batch)), zap.Error(err))
		}
	}
	return link, nil
}
