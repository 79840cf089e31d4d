package integrations

import (
	"context"

	"golang.org/x/net/html"

	"github.com/kbukum/analytics/host"
	"github.com/kbukum/analytics/provider"
	"github.com/kbukum/analytics/util"
)

const (
	customerIOName  = "Customer.io"
	customerIOQueue = "_cio"
)

type customerIOOptions struct {
	SiteID string `mapstructure:"siteId" validate:"required"`
}

type customerIO struct {
	base
	opts  customerIOOptions
	queue *host.Queue
}

func customerIODescriptor() provider.Descriptor {
	return provider.Descriptor{
		Name:       customerIOName,
		DefaultKey: "siteId",
		New: func(doc *host.Document, opts provider.Options) (provider.Provider, error) {
			cio := &customerIO{base: newBase(customerIOName, doc)}
			if err := opts.Decode(&cio.opts); err != nil {
				return nil, err
			}
			return cio, nil
		},
	}
}

func (c *customerIO) Init(_ context.Context) error {
	c.queue = c.doc.Queue(customerIOQueue)
	c.doc.InjectScript("https://assets.customer.io/assets/track.js",
		html.Attribute{Key: "id", Val: "cio-tracker"},
		html.Attribute{Key: "data-site-id", Val: c.opts.SiteID},
	)
	return nil
}

func (c *customerIO) Identify(_ context.Context, userID string, traits util.Map) error {
	if userID == "" {
		c.skip(provider.CapabilityIdentify, "user id required")
		return nil
	}

	traits["id"] = userID
	if email, ok := emailFor(userID, traits); ok {
		traits["email"] = email
	}
	createdAtSeconds(traits)
	c.queue.Push("identify", traits)
	return nil
}

func (c *customerIO) Track(_ context.Context, event string, properties util.Map) error {
	c.queue.Push("track", event, properties)
	return nil
}
