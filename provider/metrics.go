package provider

import (
	"context"
	"time"

	"github.com/kbukum/analytics/observability"
)

// WithMetrics returns a Middleware that records delivery count, duration and
// errors on the given instruments.
func WithMetrics(metrics *observability.Metrics) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, d Delivery) error {
			start := time.Now()
			err := next(ctx, d)

			status := "ok"
			if err != nil {
				status = "error"
				metrics.RecordError(ctx, d.Provider, string(d.Capability))
			}
			metrics.RecordDelivery(ctx, d.Provider, string(d.Capability), status, time.Since(start))
			return err
		}
	}
}
