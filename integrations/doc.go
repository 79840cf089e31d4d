// Package integrations holds the concrete provider adapters.
//
// Each adapter bootstraps into a host.Document the way the vendor's snippet
// does: it seeds the vendor's global command queue (or settings object) and
// injects the vendor script. Capability calls then push commands onto that
// queue in the vendor's wire format.
//
// Register adds every adapter to a registry:
//
//	reg := provider.NewRegistry()
//	integrations.Register(reg)
//
// Adapters that need a field the call did not supply (an id, an email) skip
// their own dispatch and log at debug level; they never return an error for
// it.
package integrations
