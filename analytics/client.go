package analytics

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/analytics/host"
	"github.com/kbukum/analytics/logger"
	"github.com/kbukum/analytics/observability"
	"github.com/kbukum/analytics/provider"
	"github.com/kbukum/analytics/util"
)

const (
	paramUserID = "ajs_uid"
	paramEvent  = "ajs_event"

	// fieldKey carries a masked scalar credential in the initialization log.
	fieldKey     = "key"
	maskedPrefix = 4
)

// Client dispatches analytics calls to the providers enabled by Initialize.
type Client struct {
	registry    *provider.Registry
	doc         *host.Document
	timeout     time.Duration
	log         *logger.Logger
	metrics     *observability.Metrics
	tracing     string
	middlewares []provider.Middleware
	newCallID   func() string
	chain       provider.Middleware

	// initMu serializes Initialize; mu guards the fields below.
	initMu      sync.Mutex
	mu          sync.RWMutex
	providers   []provider.Provider
	userID      string
	initialized bool
}

// New creates a Client. Without WithRegistry it starts with an empty
// registry; without WithDocument it uses a blank page.
func New(opts ...Option) *Client {
	c := &Client{
		timeout:   DefaultTimeout,
		newCallID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		c.registry = provider.NewRegistry()
	}
	if c.doc == nil {
		c.doc = host.MustDocument("")
	}
	if c.log == nil {
		c.log = logger.Get("analytics")
	}

	var mws []provider.Middleware
	if c.tracing != "" {
		mws = append(mws, provider.WithTracing(c.tracing))
	}
	if c.metrics != nil {
		mws = append(mws, provider.WithMetrics(c.metrics))
	}
	mws = append(mws, c.middlewares...)
	mws = append(mws, provider.WithLogging(c.log), provider.WithRecovery())
	c.chain = provider.Chain(mws...)
	return c
}

// Registry returns the registry the client builds providers from.
func (c *Client) Registry() *provider.Registry { return c.registry }

// Document returns the host page.
func (c *Client) Document() *host.Document { return c.doc }

// Timeout returns the flush deadline.
func (c *Client) Timeout() time.Duration { return c.timeout }

// Initialized reports whether Initialize has completed at least once.
func (c *Client) Initialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.initialized
}

// UserID returns the cached identity, "" when none.
func (c *Client) UserID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userID
}

// Providers returns the active provider instances in fan-out order.
func (c *Client) Providers() []provider.Provider {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.providers)
}

// Initialize discards the active providers and cached identity, then builds
// one provider per setting in order. An unknown name or a failed bootstrap
// aborts the remaining settings and is returned; providers built before the
// failing entry stay active.
//
// Once every setting is built, ajs_uid and ajs_event in the page query are
// replayed as Identify and Track.
func (c *Client) Initialize(ctx context.Context, settings Settings) error {
	ctx, span := observability.StartSpan(ctx, observability.SpanInitialize)
	defer span.End()

	c.initMu.Lock()
	err := c.rebuild(ctx, settings)
	c.initMu.Unlock()
	if err != nil {
		return err
	}

	c.seedFromQuery(ctx)
	return nil
}

// rebuild runs under initMu. Seeding happens after it returns so a provider
// may call Initialize from the seeded deliveries.
func (c *Client) rebuild(ctx context.Context, settings Settings) error {
	c.mu.Lock()
	discarded := c.providers
	c.providers = nil
	c.userID = ""
	c.mu.Unlock()
	c.closeAll(ctx, discarded)

	for _, s := range settings {
		p, err := c.registry.Build(ctx, c.doc, s.Name, s.Config)
		if err != nil {
			observability.SetSpanError(ctx, err)
			c.log.Error("provider initialization failed", logger.MergeWithError(map[string]interface{}{
				logger.FieldProvider: s.Name,
			}, err))
			return err
		}

		c.mu.Lock()
		c.providers = append(c.providers, p)
		c.mu.Unlock()

		fields := map[string]interface{}{
			logger.FieldProvider:   s.Name,
			logger.FieldCapability: capabilityNames(p),
		}
		if key, ok := s.Config.(string); ok {
			fields[fieldKey] = util.MaskSecret(key, maskedPrefix)
		}
		c.log.Info("provider initialized", fields)
	}

	c.mu.Lock()
	c.initialized = true
	c.mu.Unlock()
	observability.SetSpanAttribute(ctx, observability.AttrFanOut, len(settings))
	return nil
}

func (c *Client) seedFromQuery(ctx context.Context) {
	query := c.doc.Query()
	if userID, ok := util.ReadURLParameter(query, paramUserID); ok && userID != "" {
		c.Identify(ctx, userID, nil)
	}
	if event, ok := util.ReadURLParameter(query, paramEvent); ok && event != "" {
		c.Track(ctx, event, nil)
	}
}

func (c *Client) closeAll(ctx context.Context, providers []provider.Provider) {
	for _, p := range providers {
		closer, ok := p.(provider.Closeable)
		if !ok {
			continue
		}
		if err := closer.Close(ctx); err != nil {
			c.log.Warn("provider close failed", logger.MergeWithError(map[string]interface{}{
				logger.FieldProvider: p.Name(),
			}, err))
		}
	}
}

func capabilityNames(p provider.Provider) []string {
	caps := provider.Capabilities(p)
	names := make([]string, len(caps))
	for i, c := range caps {
		names[i] = string(c)
	}
	return names
}
