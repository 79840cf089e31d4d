package analytics

import (
	"context"
	"slices"
	"testing"
	"time"

	apperrors "github.com/kbukum/analytics/errors"
	"github.com/kbukum/analytics/util"
)

func TestIdentifyArgs(t *testing.T) {
	tests := []struct {
		name       string
		args       []any
		wantUserID string
		wantTraits util.Map
		wantCB     bool
	}{
		{name: "no arguments", wantUserID: "cached"},
		{name: "id only", args: []any{"u2"}, wantUserID: "u2"},
		{name: "numeric id", args: []any{float64(42)}, wantUserID: "42"},
		{name: "large numeric id", args: []any{1e21}, wantUserID: "1000000000000000000000"},
		{name: "integer id", args: []any{int64(7)}, wantUserID: "7"},
		{name: "id and traits", args: []any{"u2", util.Map{"name": "A"}}, wantUserID: "u2", wantTraits: util.Map{"name": "A"}},
		{name: "traits first", args: []any{util.Map{"name": "A"}}, wantUserID: "cached", wantTraits: util.Map{"name": "A"}},
		{name: "traits first with callback", args: []any{util.Map{"name": "A"}, func() {}}, wantUserID: "cached", wantTraits: util.Map{"name": "A"}, wantCB: true},
		{name: "callback in traits slot", args: []any{"u2", func() {}}, wantUserID: "u2", wantCB: true},
		{name: "all three", args: []any{"u2", util.Map{"name": "A"}, func() {}}, wantUserID: "u2", wantTraits: util.Map{"name": "A"}, wantCB: true},
		{name: "nil id", args: []any{nil, util.Map{"name": "A"}}, wantUserID: "cached", wantTraits: util.Map{"name": "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, "", WithTimeout(10*time.Millisecond))
			var gotUserID string
			var gotTraits util.Map
			env.register("A", "", nil, func(s *stub) {
				s.onIdentify = func(userID string, traits util.Map) error {
					gotUserID, gotTraits = userID, traits
					return nil
				}
			})
			env.init(t, Settings{{Name: "A"}})
			env.client.Identify(context.Background(), "cached", nil)

			fired := make(chan struct{}, 1)
			args := slices.Clone(tt.args)
			for i, a := range args {
				if _, ok := a.(func()); ok {
					args[i] = func() { fired <- struct{}{} }
				}
			}

			if err := env.client.IdentifyArgs(context.Background(), args...); err != nil {
				t.Fatalf("IdentifyArgs: %v", err)
			}
			if gotUserID != tt.wantUserID {
				t.Errorf("userID = %q, want %q", gotUserID, tt.wantUserID)
			}
			if len(gotTraits) != len(tt.wantTraits) || gotTraits["name"] != tt.wantTraits["name"] {
				t.Errorf("traits = %v, want %v", gotTraits, tt.wantTraits)
			}

			select {
			case <-fired:
				if !tt.wantCB {
					t.Error("unexpected callback")
				}
			case <-time.After(100 * time.Millisecond):
				if tt.wantCB {
					t.Error("callback never fired")
				}
			}
		})
	}
}

func TestIdentifyArgs_Invalid(t *testing.T) {
	env := newTestEnv(t, "")
	env.register("A", "", nil, nil)
	env.init(t, Settings{{Name: "A"}})
	ctx := context.Background()

	for name, args := range map[string][]any{
		"bool id":         {true},
		"too many":        {"u", util.Map{}, func() {}, 1},
		"string traits":   {"u", "traits"},
		"callback not fn": {"u", util.Map{}, "cb"},
	} {
		t.Run(name, func(t *testing.T) {
			err := env.client.IdentifyArgs(ctx, args...)
			if !apperrors.HasCode(err, apperrors.ErrCodeInvalidInput) {
				t.Errorf("expected INVALID_INPUT, got %v", err)
			}
		})
	}
}

func TestTrackArgs(t *testing.T) {
	env := newTestEnv(t, "", WithTimeout(10*time.Millisecond))
	var gotProps util.Map
	env.register("A", "", nil, func(s *stub) {
		s.onTrack = func(_ string, props util.Map) error {
			gotProps = props
			return nil
		}
	})
	env.init(t, Settings{{Name: "A"}})
	ctx := context.Background()

	fired := make(chan struct{}, 1)
	if err := env.client.TrackArgs(ctx, "Signed Up", func() { fired <- struct{}{} }); err != nil {
		t.Fatalf("TrackArgs: %v", err)
	}
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("callback in the properties slot never fired")
	}
	if len(gotProps) != 0 {
		t.Errorf("expected empty properties, got %v", gotProps)
	}

	if err := env.client.TrackArgs(ctx, "Upgraded", util.Map{"plan": "pro"}); err != nil {
		t.Fatalf("TrackArgs: %v", err)
	}
	if gotProps["plan"] != "pro" {
		t.Errorf("properties = %v", gotProps)
	}

	if err := env.client.TrackArgs(ctx, "x", func() {}, util.Map{}); !apperrors.HasCode(err, apperrors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT for data after callback, got %v", err)
	}
}

func TestCall(t *testing.T) {
	env := newTestEnv(t, "")
	env.register("A", "", nil, nil)
	env.init(t, Settings{{Name: "A"}})
	ctx := context.Background()

	steps := []struct {
		method string
		args   []any
	}{
		{MethodIdentify, []any{"u1", map[string]any{"email": "a@b.com"}}},
		{MethodTrack, []any{"Signed Up", map[string]any{"plan": "pro"}}},
		{MethodPageview, nil},
		{MethodPageview, []any{"/docs"}},
	}
	for _, s := range steps {
		if err := env.client.Call(ctx, s.method, s.args...); err != nil {
			t.Fatalf("Call(%s): %v", s.method, err)
		}
	}

	want := []string{"A.identify(u1)", "A.track(Signed Up)", "A.pageview()", "A.pageview(/docs)"}
	if got := env.rec.list(); !slices.Equal(got, want) {
		t.Errorf("calls = %v, want %v", got, want)
	}
}

func TestCall_Errors(t *testing.T) {
	env := newTestEnv(t, "")
	ctx := context.Background()

	tests := []struct {
		name   string
		method string
		args   []any
		want   apperrors.ErrorCode
	}{
		{"unknown method", "alias", nil, apperrors.ErrCodeInvalidInput},
		{"track without event", MethodTrack, nil, apperrors.ErrCodeMissingField},
		{"track with numeric event", MethodTrack, []any{1.0}, apperrors.ErrCodeInvalidInput},
		{"pageview with map", MethodPageview, []any{map[string]any{}}, apperrors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := env.client.Call(ctx, tt.method, tt.args...); !apperrors.HasCode(err, tt.want) {
				t.Errorf("expected %s, got %v", tt.want, err)
			}
		})
	}
}
