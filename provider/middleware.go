package provider

import "context"

// Delivery identifies one capability call on one provider.
type Delivery struct {
	Provider   string
	Capability Capability
	// CallID is shared by every delivery of the same dispatch.
	CallID string
}

// Handler performs a delivery.
type Handler func(ctx context.Context, d Delivery) error

// Middleware wraps a Handler with cross-cutting behavior.
type Middleware func(Handler) Handler

// Chain composes multiple middlewares into one. Middlewares are applied
// in order: the first middleware is outermost (executes first on the
// way in, last on the way out).
//
// Chain(a, b, c)(h) is equivalent to a(b(c(h))).
func Chain(middlewares ...Middleware) Middleware {
	return func(inner Handler) Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			inner = middlewares[i](inner)
		}
		return inner
	}
}
