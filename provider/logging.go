package provider

import (
	"context"
	"time"

	"github.com/kbukum/analytics/logger"
)

// WithLogging returns a Middleware that logs each delivery: failures at error
// level, successes at debug level.
func WithLogging(log *logger.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, d Delivery) error {
			start := time.Now()
			err := next(ctx, d)

			fields := logger.MergeWithDuration(map[string]interface{}{
				logger.FieldProvider:   d.Provider,
				logger.FieldCapability: string(d.Capability),
				logger.FieldCallID:     d.CallID,
			}, time.Since(start))

			if err != nil {
				log.Error("provider delivery failed", logger.MergeWithError(fields, err))
			} else {
				log.Debug("provider delivery ok", fields)
			}
			return err
		}
	}
}
