// Package analytics is the dispatcher: it builds provider instances from
// settings and fans identify, track and pageview calls out to every instance
// that implements the matching capability.
//
// A Client is an explicit object. Tests and programs construct their own with
// an independent provider.Registry:
//
//	reg := provider.NewRegistry()
//	integrations.Register(reg)
//
//	client := analytics.New(
//	    analytics.WithRegistry(reg),
//	    analytics.WithDocument(doc),
//	)
//	err := client.Initialize(ctx, analytics.Settings{
//	    {Name: "Mixpanel", Config: "token"},
//	    {Name: "Intercom", Config: map[string]any{"appId": "abc"}},
//	})
//	client.Identify(ctx, "user-42", util.Map{"email": "a@b.com"})
//	client.Track(ctx, "Signed Up", util.Map{"plan": "pro"},
//	    analytics.WithCallback(func() { redirect() }))
//
// Calls made before Initialize are silent no-ops. A provider that fails or
// panics is logged and skipped; the remaining providers still receive the
// call.
package analytics
