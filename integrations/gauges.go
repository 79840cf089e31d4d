package integrations

import (
	"context"

	"golang.org/x/net/html"

	"github.com/kbukum/analytics/host"
	"github.com/kbukum/analytics/provider"
)

const (
	gaugesName  = "Gauges"
	gaugesQueue = "_gauges"
)

type gaugesOptions struct {
	SiteID string `mapstructure:"siteId" validate:"required"`
}

type gauges struct {
	base
	opts  gaugesOptions
	queue *host.Queue
}

func gaugesDescriptor() provider.Descriptor {
	return provider.Descriptor{
		Name:       gaugesName,
		DefaultKey: "siteId",
		New: func(doc *host.Document, opts provider.Options) (provider.Provider, error) {
			g := &gauges{base: newBase(gaugesName, doc)}
			if err := opts.Decode(&g.opts); err != nil {
				return nil, err
			}
			return g, nil
		},
	}
}

func (g *gauges) Init(_ context.Context) error {
	g.queue = g.doc.Queue(gaugesQueue)
	g.doc.InjectScript("//secure.gaug.es/track.js",
		html.Attribute{Key: "id", Val: "gauges-tracker"},
		html.Attribute{Key: "data-site-id", Val: g.opts.SiteID},
	)
	return nil
}

// Pageview always tracks the current page; Gauges has no url argument.
func (g *gauges) Pageview(_ context.Context, _ string) error {
	g.queue.Push("track")
	return nil
}
