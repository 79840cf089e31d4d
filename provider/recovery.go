package provider

import (
	"context"
	"fmt"

	"github.com/kbukum/analytics/errors"
)

// WithRecovery returns a Middleware that turns a panicking delivery into an
// errors.ErrCodeProviderFailed error, and wraps plain errors the same way, so
// one misbehaving provider cannot abort a fan-out.
func WithRecovery() Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, d Delivery) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = errors.ProviderFailed(d.Provider, string(d.Capability), fmt.Errorf("panic: %v", r))
				}
			}()

			if err := next(ctx, d); err != nil {
				if errors.HasCode(err, errors.ErrCodeProviderFailed) {
					return err
				}
				return errors.ProviderFailed(d.Provider, string(d.Capability), err)
			}
			return nil
		}
	}
}
