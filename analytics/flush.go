package analytics

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kbukum/analytics/errors"
	"github.com/kbukum/analytics/logger"
	"github.com/kbukum/analytics/observability"
	"github.com/kbukum/analytics/provider"
)

// Flush waits for every active Flusher to finish its pending work, bounded by
// the client timeout. It returns errors.ErrCodeFlushTimeout when the deadline
// passes first, or the first flush error otherwise. Providers without a
// Flusher are considered flushed.
func (c *Client) Flush(ctx context.Context) error {
	providers, _ := c.snapshot()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	ctx, span := observability.StartSpan(ctx, observability.SpanFlush)
	defer span.End()

	// No WithContext: one failing flush must not cancel the others.
	var g errgroup.Group
	n := 0
	for _, p := range providers {
		flusher, ok := p.(provider.Flusher)
		if !ok {
			continue
		}
		n++
		name := p.Name()
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = errors.ProviderFailed(name, "flush", fmt.Errorf("panic: %v", r))
				}
			}()
			if err := flusher.Flush(ctx); err != nil {
				return errors.ProviderFailed(name, "flush", err)
			}
			return nil
		})
	}
	observability.SetSpanAttribute(ctx, observability.AttrFanOut, n)

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	select {
	case err := <-done:
		if err != nil {
			observability.SetSpanError(ctx, err)
			c.log.Warn("provider flush failed", logger.MergeWithError(nil, err))
		}
		return err
	case <-ctx.Done():
		err := errors.FlushTimeout(ctx.Err())
		observability.SetSpanError(ctx, err)
		c.log.Debug("flush deadline reached", map[string]interface{}{
			logger.FieldCount: n,
		})
		return err
	}
}

// afterFlush runs fn on its own goroutine once Flush returns. The flush is
// detached from ctx cancellation so the caller returning early does not cut
// the wait short; the client timeout still bounds it.
func (c *Client) afterFlush(ctx context.Context, fn func()) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		_ = c.Flush(ctx)
		fn()
	}()
}
