package integrations

import (
	"github.com/kbukum/analytics/host"
	"github.com/kbukum/analytics/logger"
	"github.com/kbukum/analytics/provider"
	"github.com/kbukum/analytics/util"
)

// Descriptors returns the descriptor of every adapter.
func Descriptors() []provider.Descriptor {
	return []provider.Descriptor{
		googleAnalyticsDescriptor(),
		kissmetricsDescriptor(),
		mixpanelDescriptor(),
		intercomDescriptor(),
		customerIODescriptor(),
		klaviyoDescriptor(),
		gaugesDescriptor(),
		veroDescriptor(),
	}
}

// Register adds every adapter to reg.
func Register(reg *provider.Registry) {
	for _, d := range Descriptors() {
		reg.Register(d)
	}
}

// base carries what every adapter shares.
type base struct {
	name string
	doc  *host.Document
	log  *logger.Logger
}

func newBase(name string, doc *host.Document) base {
	return base{
		name: name,
		doc:  doc,
		log:  logger.Get("integrations").WithFields(map[string]interface{}{logger.FieldProvider: name}),
	}
}

func (b *base) Name() string { return b.name }

func (b *base) skip(capability provider.Capability, reason string) {
	b.log.Debug("dispatch skipped", map[string]interface{}{
		logger.FieldCapability: string(capability),
		"reason":               reason,
	})
}

// emailFor returns traits["email"], or userID when it looks like an email.
func emailFor(userID string, traits util.Map) (string, bool) {
	if email, ok := util.String(traits, "email"); ok {
		return email, true
	}
	if util.IsEmailLike(userID) {
		return userID, true
	}
	return "", false
}

// createdAtSeconds moves traits["created"] to traits["created_at"] as Unix
// seconds. Values that are not a recognizable time are left alone.
func createdAtSeconds(traits util.Map) {
	t, ok := util.Timestamp(traits["created"])
	if !ok {
		return
	}
	delete(traits, "created")
	traits["created_at"] = util.UnixSeconds(t)
}
