package provider

import (
	"context"

	"github.com/kbukum/analytics/host"
	"github.com/kbukum/analytics/util"
)

// Provider is the base interface all providers must implement.
type Provider interface {
	// Name returns the name the provider was registered under.
	Name() string
}

// Factory creates a provider instance from resolved options. The document is
// the page the provider bootstraps into.
type Factory func(doc *host.Document, opts Options) (Provider, error)

// Capability names one of the optional dispatch methods.
type Capability string

const (
	CapabilityIdentify Capability = "identify"
	CapabilityTrack    Capability = "track"
	CapabilityPageview Capability = "pageview"
)

// Identifier is implemented by providers that accept identify calls. userID
// is empty when no identity has been established yet.
type Identifier interface {
	Provider
	Identify(ctx context.Context, userID string, traits util.Map) error
}

// Tracker is implemented by providers that accept track calls.
type Tracker interface {
	Provider
	Track(ctx context.Context, event string, properties util.Map) error
}

// PageViewer is implemented by providers that accept pageview calls. url is
// empty when the caller wants the current page.
type PageViewer interface {
	Provider
	Pageview(ctx context.Context, url string) error
}

// Capabilities lists the dispatch methods p implements.
func Capabilities(p Provider) []Capability {
	var caps []Capability
	if _, ok := p.(Identifier); ok {
		caps = append(caps, CapabilityIdentify)
	}
	if _, ok := p.(Tracker); ok {
		caps = append(caps, CapabilityTrack)
	}
	if _, ok := p.(PageViewer); ok {
		caps = append(caps, CapabilityPageview)
	}
	return caps
}
