package integrations

import (
	"context"

	"github.com/kbukum/analytics/host"
	"github.com/kbukum/analytics/provider"
	"github.com/kbukum/analytics/util"
)

const (
	klaviyoName  = "Klaviyo"
	klaviyoQueue = "_learnq"
)

var klaviyoAliases = []util.Alias{
	{From: "id", To: "$id"},
	{From: "email", To: "$email"},
	{From: "firstName", To: "$first_name"},
	{From: "lastName", To: "$last_name"},
	{From: "phone", To: "$phone_number"},
	{From: "title", To: "$title"},
}

type klaviyoOptions struct {
	APIKey string `mapstructure:"apiKey" validate:"required"`
}

type klaviyo struct {
	base
	opts  klaviyoOptions
	queue *host.Queue
}

func klaviyoDescriptor() provider.Descriptor {
	return provider.Descriptor{
		Name:       klaviyoName,
		DefaultKey: "apiKey",
		New: func(doc *host.Document, opts provider.Options) (provider.Provider, error) {
			k := &klaviyo{base: newBase(klaviyoName, doc)}
			if err := opts.Decode(&k.opts); err != nil {
				return nil, err
			}
			return k, nil
		},
	}
}

func (k *klaviyo) Init(_ context.Context) error {
	k.queue = k.doc.Queue(klaviyoQueue)
	k.queue.Push("account", k.opts.APIKey)
	k.doc.InjectScript("//a.klaviyo.com/media/js/learnmarklet.js")
	return nil
}

func (k *klaviyo) Identify(_ context.Context, userID string, traits util.Map) error {
	if userID != "" {
		traits["id"] = userID
	}
	util.AliasKeys(traits, klaviyoAliases)
	if len(traits) == 0 {
		k.skip(provider.CapabilityIdentify, "nothing to identify")
		return nil
	}
	k.queue.Push("identify", traits)
	return nil
}

func (k *klaviyo) Track(_ context.Context, event string, properties util.Map) error {
	k.queue.Push("track", event, properties)
	return nil
}
