package provider

import (
	"context"
	"sort"
	"sync"

	"github.com/kbukum/analytics/errors"
	"github.com/kbukum/analytics/host"
)

// Descriptor describes how to build one provider.
type Descriptor struct {
	// Name is the registry key, as written in settings.
	Name string
	// DefaultKey is the option a bare credential string is stored under.
	// Empty means the provider only accepts an options mapping.
	DefaultKey string
	// Defaults are merged under the caller's options.
	Defaults Options
	// New constructs the instance.
	New Factory
}

// Registry manages named provider descriptors.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string]Descriptor
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		descriptors: make(map[string]Descriptor),
	}
}

// Register stores d under d.Name, replacing any earlier descriptor with the
// same name. Nothing about the provider's capabilities is checked here.
func (r *Registry) Register(d Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.descriptors[d.Name] = d
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.descriptors[name]
	return d, ok
}

// List returns sorted names of all registered providers.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.descriptors))
	for name := range r.descriptors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build resolves cfg for the provider registered under name, constructs the
// instance and runs its bootstrap. Unknown names fail with
// errors.ErrCodeUnknownProvider.
func (r *Registry) Build(ctx context.Context, doc *host.Document, name string, cfg any) (Provider, error) {
	d, ok := r.Lookup(name)
	if !ok {
		return nil, errors.UnknownProvider(name)
	}
	return Construct(ctx, d, doc, cfg)
}

// Construct builds an instance of d from caller settings: resolve options,
// call the factory, then run Init if the instance is Initializable.
func Construct(ctx context.Context, d Descriptor, doc *host.Document, cfg any) (Provider, error) {
	opts, err := ResolveOptions(d, cfg)
	if err != nil {
		return nil, err
	}
	if d.New == nil {
		return nil, errors.InvalidConfig(d.Name, "descriptor has no factory")
	}

	p, err := d.New(doc, opts)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.InvalidConfig(d.Name, err.Error()).WithCause(err)
	}

	if init, ok := p.(Initializable); ok {
		if err := init.Init(ctx); err != nil {
			return nil, errors.BootstrapFailed(d.Name, err)
		}
	}
	return p, nil
}
