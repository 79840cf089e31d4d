package integrations

import (
	"context"
	"math"

	"github.com/kbukum/analytics/host"
	"github.com/kbukum/analytics/provider"
	"github.com/kbukum/analytics/util"
)

const (
	googleAnalyticsName  = "Google Analytics"
	googleAnalyticsQueue = "_gaq"
)

type googleAnalyticsOptions struct {
	TrackingID              string  `mapstructure:"trackingId" validate:"required"`
	Domain                  string  `mapstructure:"domain"`
	AnonymizeIP             bool    `mapstructure:"anonymizeIp"`
	EnhancedLinkAttribution bool    `mapstructure:"enhancedLinkAttribution"`
	SiteSpeedSampleRate     float64 `mapstructure:"siteSpeedSampleRate" validate:"gte=0,lte=100"`
}

type googleAnalytics struct {
	base
	opts  googleAnalyticsOptions
	queue *host.Queue
}

func googleAnalyticsDescriptor() provider.Descriptor {
	return provider.Descriptor{
		Name:       googleAnalyticsName,
		DefaultKey: "trackingId",
		Defaults: provider.Options{
			"anonymizeIp":             false,
			"enhancedLinkAttribution": false,
		},
		New: func(doc *host.Document, opts provider.Options) (provider.Provider, error) {
			ga := &googleAnalytics{base: newBase(googleAnalyticsName, doc)}
			if err := opts.Decode(&ga.opts); err != nil {
				return nil, err
			}
			return ga, nil
		},
	}
}

func (g *googleAnalytics) Init(_ context.Context) error {
	g.queue = g.doc.Queue(googleAnalyticsQueue)
	g.queue.Push("_setAccount", g.opts.TrackingID)
	if g.opts.Domain != "" {
		g.queue.Push("_setDomainName", g.opts.Domain)
	}
	if g.opts.EnhancedLinkAttribution {
		g.queue.Push("_require", "inpage_linkid", g.doc.ResolveScript("//www.google-analytics.com/plugins/ga/inpage_linkid.js"))
	}
	if g.opts.SiteSpeedSampleRate > 0 {
		g.queue.Push("_setSiteSpeedSampleRate", g.opts.SiteSpeedSampleRate)
	}
	if g.opts.AnonymizeIP {
		g.queue.Push("_gat._anonymizeIp")
	}
	g.queue.Push("_trackPageview")

	src := "http://www.google-analytics.com/ga.js"
	if g.doc.Secure() {
		src = "https://ssl.google-analytics.com/ga.js"
	}
	g.doc.InjectScript(src)
	return nil
}

// Track sends an event with category "All" unless properties name one.
// value is rounded to an integer as the wire format requires.
func (g *googleAnalytics) Track(_ context.Context, event string, properties util.Map) error {
	category, ok := util.String(properties, "category")
	if !ok {
		category = "All"
	}
	cmd := []any{"_trackEvent", category, event}

	label, hasLabel := util.String(properties, "label")
	value, hasValue := util.Number(properties, "value")
	nonInteraction, _ := properties["noninteraction"].(bool)

	if hasLabel || hasValue || nonInteraction {
		cmd = append(cmd, label)
	}
	if hasValue || nonInteraction {
		cmd = append(cmd, int64(math.Round(value)))
	}
	if nonInteraction {
		cmd = append(cmd, true)
	}
	g.queue.Push(cmd...)
	return nil
}

func (g *googleAnalytics) Pageview(_ context.Context, url string) error {
	if url == "" {
		g.queue.Push("_trackPageview")
		return nil
	}
	g.queue.Push("_trackPageview", url)
	return nil
}
