package analytics

import (
	"time"

	"github.com/kbukum/analytics/host"
	"github.com/kbukum/analytics/logger"
	"github.com/kbukum/analytics/observability"
	"github.com/kbukum/analytics/provider"
)

// DefaultTimeout bounds how long callbacks and link/form replays wait for
// providers to flush.
const DefaultTimeout = 300 * time.Millisecond

// Option configures a Client.
type Option func(*Client)

// WithRegistry sets the registry providers are built from.
func WithRegistry(reg *provider.Registry) Option {
	return func(c *Client) { c.registry = reg }
}

// WithDocument sets the host page providers bootstrap into.
func WithDocument(doc *host.Document) Option {
	return func(c *Client) { c.doc = doc }
}

// WithTimeout sets the flush deadline used by callbacks and replays.
// Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the client logger.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithMetrics records delivery and fan-out metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithTracing wraps each delivery in a span prefixed with serviceName.
func WithTracing(serviceName string) Option {
	return func(c *Client) { c.tracing = serviceName }
}

// WithMiddleware adds delivery middlewares. They run inside tracing and
// metrics and outside logging and panic recovery.
func WithMiddleware(mws ...provider.Middleware) Option {
	return func(c *Client) { c.middlewares = append(c.middlewares, mws...) }
}

// WithCallIDs overrides the per-dispatch call id generator.
func WithCallIDs(fn func() string) Option {
	return func(c *Client) { c.newCallID = fn }
}

// CallOption configures a single identify or track call.
type CallOption func(*callOptions)

type callOptions struct {
	callback func()
}

// WithCallback runs fn once providers have flushed or the client timeout has
// passed, whichever comes first. fn runs on its own goroutine.
func WithCallback(fn func()) CallOption {
	return func(o *callOptions) { o.callback = fn }
}

func applyCallOptions(opts []CallOption) callOptions {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
