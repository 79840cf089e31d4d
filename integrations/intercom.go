package integrations

import (
	"context"
	"sync"

	"github.com/kbukum/analytics/host"
	"github.com/kbukum/analytics/provider"
	"github.com/kbukum/analytics/util"
)

const (
	intercomName     = "Intercom"
	intercomSettings = "intercomSettings"
	intercomLibrary  = "https://api.intercom.io/api/js/library.js"
)

type intercomOptions struct {
	AppID     string `mapstructure:"appId" validate:"required"`
	Activator string `mapstructure:"activator"`
}

// intercom has no bootstrap: the widget needs a user, so the settings object
// and script are written on the first identify that carries an id.
type intercom struct {
	base
	opts intercomOptions
	load sync.Once
}

func intercomDescriptor() provider.Descriptor {
	return provider.Descriptor{
		Name:       intercomName,
		DefaultKey: "appId",
		Defaults: provider.Options{
			"activator": "#IntercomDefaultWidget",
		},
		New: func(doc *host.Document, opts provider.Options) (provider.Provider, error) {
			ic := &intercom{base: newBase(intercomName, doc)}
			if err := opts.Decode(&ic.opts); err != nil {
				return nil, err
			}
			return ic, nil
		},
	}
}

func (i *intercom) Identify(_ context.Context, userID string, traits util.Map) error {
	if userID == "" {
		i.skip(provider.CapabilityIdentify, "user id required")
		return nil
	}

	settings := util.Map{
		"app_id":  i.opts.AppID,
		"user_id": userID,
		"widget":  util.Map{"activator": i.opts.Activator},
	}
	if email, ok := emailFor(userID, traits); ok {
		settings["email"] = email
	}
	if name, ok := util.String(traits, "name"); ok {
		settings["name"] = name
	}
	if t, ok := util.Timestamp(traits["created"]); ok {
		settings["created_at"] = util.UnixSeconds(t)
	}
	delete(traits, "email")
	delete(traits, "name")
	delete(traits, "created")
	if len(traits) > 0 {
		settings["custom_data"] = traits
	}
	i.doc.SetGlobal(intercomSettings, settings)

	i.load.Do(func() { i.doc.InjectScript(intercomLibrary) })
	return nil
}
