package provider

import (
	"fmt"
	"maps"

	"github.com/go-viper/mapstructure/v2"

	"github.com/kbukum/analytics/errors"
	"github.com/kbukum/analytics/validation"
)

// Options is the resolved option mapping a provider is constructed with.
type Options map[string]any

// ResolveOptions normalizes caller settings for d into one options mapping.
//
// A string is a bare credential: legal only when d declares a DefaultKey, and
// stored under that key. A mapping is merged over d.Defaults with caller values
// winning. nil yields the defaults alone.
func ResolveOptions(d Descriptor, cfg any) (Options, error) {
	opts := make(Options, len(d.Defaults)+1)
	maps.Copy(opts, d.Defaults)

	switch v := cfg.(type) {
	case nil:
	case string:
		if d.DefaultKey == "" {
			return nil, errors.InvalidConfig(d.Name, "a bare credential needs a default option key, pass an options mapping instead")
		}
		opts[d.DefaultKey] = v
	case Options:
		maps.Copy(opts, v)
	case map[string]any:
		maps.Copy(opts, v)
	case map[string]string:
		for k, s := range v {
			opts[k] = s
		}
	default:
		return nil, errors.InvalidConfig(d.Name, fmt.Sprintf("unsupported settings type %T", cfg))
	}
	return opts, nil
}

// Decode copies the options into target, a pointer to an adapter's options
// struct tagged with mapstructure keys, then validates it. Scalars are
// converted loosely so "true" and "1" work for bool and int fields.
func (o Options) Decode(target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return fmt.Errorf("build options decoder: %w", err)
	}
	if err := dec.Decode(map[string]any(o)); err != nil {
		return errors.Validation("options do not match the provider's option types").WithCause(err)
	}
	return validation.Validate(target)
}

// String returns the option as a string, or "" when absent or not a string.
func (o Options) String(key string) string {
	s, _ := o[key].(string)
	return s
}
