package analytics

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kbukum/analytics/errors"
	"github.com/kbukum/analytics/util"
)

// Method names accepted by Call.
const (
	MethodIdentify = "identify"
	MethodTrack    = "track"
	MethodPageview = "pageview"
)

// IdentifyArgs is Identify with loosely typed arguments, in the order
// (userID, traits, callback). Trailing arguments may be omitted. A func() in
// the traits slot is the callback. A mapping in the userID slot is an
// anonymous traits update and leaves the cached identity unchanged. Numeric
// ids are formatted as strings.
func (c *Client) IdentifyArgs(ctx context.Context, args ...any) error {
	if len(args) > 3 {
		return errors.Validation(fmt.Sprintf("identify takes at most 3 arguments, got %d", len(args)))
	}

	var (
		userID   string
		traits   util.Map
		callback func()
	)
	rest := args
	if len(rest) > 0 {
		switch v := rest[0].(type) {
		case nil:
			rest = rest[1:]
		case util.Map:
			// Shift: (traits, callback).
			traits = v
			rest = rest[1:]
			if len(rest) > 1 {
				return errors.Validation("identify with traits first takes at most 2 arguments")
			}
			if len(rest) == 1 {
				cb, err := asCallback(rest[0], "identify")
				if err != nil {
					return err
				}
				callback = cb
			}
			rest = nil
		case string:
			userID = v
			rest = rest[1:]
		case float64:
			userID = strconv.FormatFloat(v, 'f', -1, 64)
			rest = rest[1:]
		case float32:
			userID = strconv.FormatFloat(float64(v), 'f', -1, 32)
			rest = rest[1:]
		case int, int32, int64, uint, uint32, uint64:
			userID = util.Stringify(v)
			rest = rest[1:]
		default:
			return errors.Validation(fmt.Sprintf("identify: unsupported user id type %T", v))
		}
	}

	var err error
	traits, callback, err = dataAndCallback(rest, traits, callback, "identify")
	if err != nil {
		return err
	}

	c.Identify(ctx, userID, traits, callOptionsFor(callback)...)
	return nil
}

// TrackArgs is Track with loosely typed arguments after the event, in the
// order (properties, callback). Trailing arguments may be omitted and a
// func() in the properties slot is the callback.
func (c *Client) TrackArgs(ctx context.Context, event string, args ...any) error {
	if len(args) > 2 {
		return errors.Validation(fmt.Sprintf("track takes at most 3 arguments, got %d", len(args)+1))
	}
	props, callback, err := dataAndCallback(args, nil, nil, "track")
	if err != nil {
		return err
	}
	c.Track(ctx, event, props, callOptionsFor(callback)...)
	return nil
}

// Call routes a snippet-style call, e.g. ("track", "Signed Up", {...}), to
// the matching entry point.
func (c *Client) Call(ctx context.Context, method string, args ...any) error {
	switch method {
	case MethodIdentify:
		return c.IdentifyArgs(ctx, args...)
	case MethodTrack:
		if len(args) == 0 {
			return errors.MissingField("event")
		}
		event, ok := args[0].(string)
		if !ok || event == "" {
			return errors.Validation(fmt.Sprintf("track: event must be a non-empty string, got %T", args[0]))
		}
		return c.TrackArgs(ctx, event, args[1:]...)
	case MethodPageview:
		var url string
		if len(args) > 0 && args[0] != nil {
			s, ok := args[0].(string)
			if !ok {
				return errors.Validation(fmt.Sprintf("pageview: url must be a string, got %T", args[0]))
			}
			url = s
		}
		c.Pageview(ctx, url)
		return nil
	default:
		return errors.Validation(fmt.Sprintf("unknown method %q", method))
	}
}

// dataAndCallback reads the (data, callback) tail shared by identify and
// track.
func dataAndCallback(args []any, data util.Map, callback func(), method string) (util.Map, func(), error) {
	if len(args) == 0 {
		return data, callback, nil
	}

	switch v := args[0].(type) {
	case nil:
	case util.Map:
		data = v
	case func():
		if len(args) > 1 {
			return nil, nil, errors.Validation(method + ": nothing may follow the callback")
		}
		return data, v, nil
	default:
		return nil, nil, errors.Validation(fmt.Sprintf("%s: unsupported data type %T", method, v))
	}

	if len(args) > 1 {
		cb, err := asCallback(args[1], method)
		if err != nil {
			return nil, nil, err
		}
		callback = cb
	}
	return data, callback, nil
}

func asCallback(v any, method string) (func(), error) {
	switch cb := v.(type) {
	case nil:
		return nil, nil
	case func():
		return cb, nil
	default:
		return nil, errors.Validation(fmt.Sprintf("%s: callback must be a func(), got %T", method, v))
	}
}

func callOptionsFor(callback func()) []CallOption {
	if callback == nil {
		return nil
	}
	return []CallOption{WithCallback(callback)}
}
