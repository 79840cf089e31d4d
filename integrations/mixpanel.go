package integrations

import (
	"context"

	"github.com/kbukum/analytics/host"
	"github.com/kbukum/analytics/provider"
	"github.com/kbukum/analytics/util"
)

const (
	mixpanelName  = "Mixpanel"
	mixpanelQueue = "mixpanel"
)

// Mixpanel reserves these property names.
var mixpanelAliases = []util.Alias{
	{From: "email", To: "$email"},
	{From: "name", To: "$name"},
	{From: "username", To: "$username"},
	{From: "lastSeen", To: "$last_seen"},
	{From: "created", To: "$created"},
	{From: "firstName", To: "$first_name"},
	{From: "lastName", To: "$last_name"},
}

type mixpanelOptions struct {
	Token    string `mapstructure:"token" validate:"required"`
	NameTag  bool   `mapstructure:"nameTag"`
	People   bool   `mapstructure:"people"`
	Pageview bool   `mapstructure:"pageview"`
}

type mixpanel struct {
	base
	opts  mixpanelOptions
	queue *host.Queue
}

func mixpanelDescriptor() provider.Descriptor {
	return provider.Descriptor{
		Name:       mixpanelName,
		DefaultKey: "token",
		Defaults: provider.Options{
			"nameTag":  true,
			"people":   false,
			"pageview": false,
		},
		New: func(doc *host.Document, opts provider.Options) (provider.Provider, error) {
			mp := &mixpanel{base: newBase(mixpanelName, doc)}
			if err := opts.Decode(&mp.opts); err != nil {
				return nil, err
			}
			return mp, nil
		},
	}
}

func (m *mixpanel) Init(_ context.Context) error {
	m.queue = m.doc.Queue(mixpanelQueue)
	m.queue.Push("init", m.opts.Token)
	m.doc.InjectScript("//cdn.mxpnl.com/libs/mixpanel-2.2.min.js")
	return nil
}

func (m *mixpanel) Identify(_ context.Context, userID string, traits util.Map) error {
	util.AliasKeys(traits, mixpanelAliases)

	if userID != "" {
		m.queue.Push("identify", userID)
		if m.opts.People {
			m.queue.Push("people.identify", userID)
		}
	}

	if m.opts.NameTag {
		if tag := util.Coalesce(stringTrait(traits, "$email"), userID); tag != "" {
			m.queue.Push("name_tag", tag)
		}
	}

	if len(traits) == 0 {
		return nil
	}
	m.queue.Push("register", traits)
	if m.opts.People {
		m.queue.Push("people.set", traits)
	}
	return nil
}

func (m *mixpanel) Track(_ context.Context, event string, properties util.Map) error {
	m.queue.Push("track", event, properties)
	return nil
}

// Pageview is opt-in through the pageview option.
func (m *mixpanel) Pageview(_ context.Context, url string) error {
	if !m.opts.Pageview {
		m.skip(provider.CapabilityPageview, "pageview option disabled")
		return nil
	}
	if url == "" {
		url = m.doc.URL()
	}
	m.queue.Push("track_pageview", url)
	return nil
}

func stringTrait(traits util.Map, key string) string {
	s, _ := util.String(traits, key)
	return s
}
