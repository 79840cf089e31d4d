package integrations

import (
	"context"

	"github.com/kbukum/analytics/host"
	"github.com/kbukum/analytics/provider"
	"github.com/kbukum/analytics/util"
)

const (
	veroName  = "Vero"
	veroQueue = "_veroq"
)

type veroOptions struct {
	APIKey string `mapstructure:"apiKey" validate:"required"`
}

type vero struct {
	base
	opts  veroOptions
	queue *host.Queue
}

func veroDescriptor() provider.Descriptor {
	return provider.Descriptor{
		Name:       veroName,
		DefaultKey: "apiKey",
		New: func(doc *host.Document, opts provider.Options) (provider.Provider, error) {
			v := &vero{base: newBase(veroName, doc)}
			if err := opts.Decode(&v.opts); err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}

func (v *vero) Init(_ context.Context) error {
	v.queue = v.doc.Queue(veroQueue)
	v.queue.Push("init", util.Map{"api_key": v.opts.APIKey})
	v.doc.InjectScript("//www.getvero.com/assets/m.js")
	return nil
}

// Identify needs both an id and an email; Vero rejects users without them.
func (v *vero) Identify(_ context.Context, userID string, traits util.Map) error {
	if userID == "" {
		v.skip(provider.CapabilityIdentify, "user id required")
		return nil
	}
	email, ok := emailFor(userID, traits)
	if !ok {
		v.skip(provider.CapabilityIdentify, "email required")
		return nil
	}
	traits["id"] = userID
	traits["email"] = email
	v.queue.Push("user", traits)
	return nil
}

func (v *vero) Track(_ context.Context, event string, properties util.Map) error {
	v.queue.Push("track", event, properties)
	return nil
}
