package integrations

import (
	"context"

	"github.com/kbukum/analytics/host"
	"github.com/kbukum/analytics/provider"
	"github.com/kbukum/analytics/util"
)

const (
	kissmetricsName  = "KISSmetrics"
	kissmetricsQueue = "_kmq"
)

type kissmetricsOptions struct {
	APIKey string `mapstructure:"apiKey" validate:"required"`
}

type kissmetrics struct {
	base
	opts  kissmetricsOptions
	queue *host.Queue
}

func kissmetricsDescriptor() provider.Descriptor {
	return provider.Descriptor{
		Name:       kissmetricsName,
		DefaultKey: "apiKey",
		New: func(doc *host.Document, opts provider.Options) (provider.Provider, error) {
			km := &kissmetrics{base: newBase(kissmetricsName, doc)}
			if err := opts.Decode(&km.opts); err != nil {
				return nil, err
			}
			return km, nil
		},
	}
}

func (k *kissmetrics) Init(_ context.Context) error {
	k.queue = k.doc.Queue(kissmetricsQueue)
	k.doc.InjectScript("//i.kissmetrics.com/i.js")
	k.doc.InjectScript("//doug1izaerwt3.cloudfront.net/" + k.opts.APIKey + ".1.js")
	return nil
}

func (k *kissmetrics) Identify(_ context.Context, userID string, traits util.Map) error {
	if userID != "" {
		k.queue.Push("identify", userID)
	}
	if len(traits) > 0 {
		k.queue.Push("set", traits)
	}
	return nil
}

func (k *kissmetrics) Track(_ context.Context, event string, properties util.Map) error {
	k.queue.Push("record", event, properties)
	return nil
}
