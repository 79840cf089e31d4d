package analytics

import (
	"context"
	"slices"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/analytics/logger"
	"github.com/kbukum/analytics/observability"
	"github.com/kbukum/analytics/provider"
	"github.com/kbukum/analytics/util"
)

// Identify sets the cached identity to userID when it is non-empty, then
// sends the cached identity and traits to every Identifier. Each provider
// gets its own copy of traits.
func (c *Client) Identify(ctx context.Context, userID string, traits util.Map, opts ...CallOption) {
	c.mu.Lock()
	if !c.initialized {
		c.mu.Unlock()
		c.skip(provider.CapabilityIdentify)
		return
	}
	if userID != "" {
		c.userID = userID
	}
	resolved := c.userID
	providers := slices.Clone(c.providers)
	c.mu.Unlock()

	ctx, span := c.startDispatch(ctx, provider.CapabilityIdentify)
	defer span.End()
	callID := c.newCallID()
	observability.SetSpanAttribute(ctx, observability.AttrCallID, callID)

	n := 0
	for _, p := range providers {
		identifier, ok := p.(provider.Identifier)
		if !ok {
			continue
		}
		n++
		copied := util.Clone(traits)
		c.deliver(ctx, provider.Delivery{Provider: p.Name(), Capability: provider.CapabilityIdentify, CallID: callID},
			func(ctx context.Context) error { return identifier.Identify(ctx, resolved, copied) })
	}

	c.finish(ctx, provider.CapabilityIdentify, n, map[string]interface{}{
		logger.FieldUserID: resolved,
		logger.FieldCallID: callID,
	}, applyCallOptions(opts))
}

// IdentifyTraits sends traits with the cached identity, leaving it unchanged.
func (c *Client) IdentifyTraits(ctx context.Context, traits util.Map, opts ...CallOption) {
	c.Identify(ctx, "", traits, opts...)
}

// Track sends event and a copy of properties to every Tracker.
func (c *Client) Track(ctx context.Context, event string, properties util.Map, opts ...CallOption) {
	providers, ok := c.snapshot()
	if !ok {
		c.skip(provider.CapabilityTrack)
		return
	}

	ctx, span := c.startDispatch(ctx, provider.CapabilityTrack)
	defer span.End()
	callID := c.newCallID()
	observability.SetSpanAttribute(ctx, observability.AttrCallID, callID)
	observability.SetSpanAttribute(ctx, observability.AttrEvent, event)

	n := 0
	for _, p := range providers {
		tracker, ok := p.(provider.Tracker)
		if !ok {
			continue
		}
		n++
		copied := util.Clone(properties)
		c.deliver(ctx, provider.Delivery{Provider: p.Name(), Capability: provider.CapabilityTrack, CallID: callID},
			func(ctx context.Context) error { return tracker.Track(ctx, event, copied) })
	}

	c.finish(ctx, provider.CapabilityTrack, n, map[string]interface{}{
		logger.FieldEvent:  event,
		logger.FieldCallID: callID,
	}, applyCallOptions(opts))
}

// Pageview sends url to every PageViewer. An empty url means the current
// page.
func (c *Client) Pageview(ctx context.Context, url string) {
	providers, ok := c.snapshot()
	if !ok {
		c.skip(provider.CapabilityPageview)
		return
	}

	ctx, span := c.startDispatch(ctx, provider.CapabilityPageview)
	defer span.End()
	callID := c.newCallID()
	observability.SetSpanAttribute(ctx, observability.AttrCallID, callID)

	n := 0
	for _, p := range providers {
		viewer, ok := p.(provider.PageViewer)
		if !ok {
			continue
		}
		n++
		c.deliver(ctx, provider.Delivery{Provider: p.Name(), Capability: provider.CapabilityPageview, CallID: callID},
			func(ctx context.Context) error { return viewer.Pageview(ctx, url) })
	}

	c.finish(ctx, provider.CapabilityPageview, n, map[string]interface{}{
		logger.FieldURL:    url,
		logger.FieldCallID: callID,
	}, callOptions{})
}

// snapshot returns a copy of the active providers, or false before the
// first successful Initialize. Callers iterate the copy without holding the
// lock so providers may call back into the client.
func (c *Client) snapshot() ([]provider.Provider, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.initialized {
		return nil, false
	}
	return slices.Clone(c.providers), true
}

func (c *Client) skip(capability provider.Capability) {
	c.log.Debug("call ignored before initialize", map[string]interface{}{
		logger.FieldCapability: string(capability),
	})
}

func (c *Client) startDispatch(ctx context.Context, capability provider.Capability) (context.Context, trace.Span) {
	ctx, span := observability.StartSpan(ctx, observability.SpanDispatch)
	observability.SetSpanAttribute(ctx, observability.AttrCapability, string(capability))
	return ctx, span
}

// deliver runs one provider call through the middleware chain. Failures are
// logged by the chain and never reach the caller.
func (c *Client) deliver(ctx context.Context, d provider.Delivery, call func(context.Context) error) {
	h := c.chain(func(ctx context.Context, _ provider.Delivery) error {
		return call(ctx)
	})
	_ = h(ctx, d)
}

func (c *Client) finish(ctx context.Context, capability provider.Capability, n int, fields map[string]interface{}, opts callOptions) {
	observability.SetSpanAttribute(ctx, observability.AttrFanOut, n)
	if c.metrics != nil {
		c.metrics.RecordFanOut(ctx, string(capability), n)
	}

	fields[logger.FieldCapability] = string(capability)
	fields[logger.FieldCount] = n
	c.log.Debug("dispatched", fields)

	if opts.callback != nil {
		c.afterFlush(ctx, opts.callback)
	}
}
