package provider

import (
	"context"

	"github.com/kbukum/analytics/observability"
)

// WithTracing returns a Middleware that wraps each delivery in a span named
// "{serviceName}.{capability}" tagged with the provider and call id.
func WithTracing(serviceName string) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, d Delivery) error {
			ctx, span := observability.StartSpan(ctx, serviceName+"."+string(d.Capability))
			defer span.End()

			observability.SetSpanAttribute(ctx, observability.AttrProvider, d.Provider)
			observability.SetSpanAttribute(ctx, observability.AttrCapability, string(d.Capability))
			observability.SetSpanAttribute(ctx, observability.AttrCallID, d.CallID)

			err := next(ctx, d)
			if err != nil {
				observability.SetSpanError(ctx, err)
				observability.SetSpanAttribute(ctx, observability.AttrStatus, "error")
			} else {
				observability.SetSpanAttribute(ctx, observability.AttrStatus, "ok")
			}
			return err
		}
	}
}
