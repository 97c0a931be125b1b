// Package lookup resolves batch explorer links.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goodnatureofminers/batchview/internal/model"
	"golang.org/x/time/rate"
)

const batchPlaceholder = "{batch}"

// BucketClient checks whether the solver instance of a batch has been published.
// Once the instance object exists the configured link for the batch is returned.
type BucketClient struct {
	client      *resty.Client
	instanceURL string
	linkURL     string
	limiter     *rate.Limiter
	metrics     ClientMetrics
}

// NewBucketClient builds a client. instanceURL and linkURL may contain "{batch}".
func NewBucketClient(instanceURL, linkURL string, timeout time.Duration, rps int, metrics ClientMetrics) (*BucketClient, error) {
	if !strings.Contains(instanceURL, batchPlaceholder) {
		return nil, fmt.Errorf("instance url %q must contain %s", instanceURL, batchPlaceholder)
	}
	if linkURL == "" {
		return nil, errors.New("link url is required")
	}
	if rps <= 0 {
		return nil, errors.New("lookup rps must be positive")
	}
	if metrics == nil {
		return nil, errors.New("lookup client metrics is required")
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", "batchview")

	return &BucketClient{
		client:      client,
		instanceURL: instanceURL,
		linkURL:     linkURL,
		limiter:     rate.NewLimiter(rate.Limit(rps), 1),
		metrics:     metrics,
	}, nil
}

// ResolveBatchLink returns the batch link, or "" while the instance is not published.
func (c *BucketClient) ResolveBatchLink(ctx context.Context, batch model.Batch) (link string, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("head_instance", err, started)
	}()

	// waiting for a token gives up as soon as ctx is done
	if err = c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	target := expand(c.instanceURL, batch)
	resp, err := c.client.R().
		SetContext(ctx).
		Head(target)
	if err != nil {
		return "", fmt.Errorf("head instance %s: %w", target, err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return expand(c.linkURL, batch), nil
	case http.StatusNotFound, http.StatusForbidden:
		// S3 answers 403 for missing keys when listing is not allowed.
		return "", nil
	default:
		err = fmt.Errorf("head instance %s: unexpected status %s", target, resp.Status())
		return "", err
	}
}

func expand(template string, batch model.Batch) string {
	return strings.ReplaceAll(template, batchPlaceholder, strconv.FormatUint(uint64(batch), 10))
}
