package analytics

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	apperrors "github.com/kbukum/analytics/errors"
	"github.com/kbukum/analytics/host"
	"github.com/kbukum/analytics/provider"
)

type flushStub struct {
	stub
	delay   time.Duration
	err     error
	flushed atomic.Bool
}

func (f *flushStub) Flush(ctx context.Context) error {
	select {
	case <-time.After(f.delay):
		f.flushed.Store(true)
		return f.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *testEnv) registerFlusher(name string, delay time.Duration, err error) **flushStub {
	var last *flushStub
	e.reg.Register(provider.Descriptor{
		Name: name,
		New: func(_ *host.Document, _ provider.Options) (provider.Provider, error) {
			last = &flushStub{stub: stub{name: name, rec: e.rec}, delay: delay, err: err}
			return last, nil
		},
	})
	return &last
}

func TestFlush_WaitsForFlushers(t *testing.T) {
	env := newTestEnv(t, "", WithTimeout(time.Second))
	fast := env.registerFlusher("Fast", 10*time.Millisecond, nil)
	slow := env.registerFlusher("Slow", 40*time.Millisecond, nil)
	env.register("Plain", "", nil, nil)
	env.init(t, Settings{{Name: "Fast"}, {Name: "Slow"}, {Name: "Plain"}})

	if err := env.client.Flush(context.Background()); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if !(*fast).flushed.Load() || !(*slow).flushed.Load() {
		t.Error("expected every flusher to finish")
	}
}

func TestFlush_Timeout(t *testing.T) {
	env := newTestEnv(t, "", WithTimeout(20*time.Millisecond))
	env.registerFlusher("Slow", time.Second, nil)
	env.init(t, Settings{{Name: "Slow"}})

	start := time.Now()
	err := env.client.Flush(context.Background())
	if !apperrors.HasCode(err, apperrors.ErrCodeFlushTimeout) {
		t.Fatalf("expected FLUSH_TIMEOUT, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("flush overran its deadline: %v", elapsed)
	}
}

func TestFlush_ErrorDoesNotCancelOthers(t *testing.T) {
	env := newTestEnv(t, "", WithTimeout(time.Second))
	env.registerFlusher("Bad", time.Millisecond, errors.New("socket closed"))
	good := env.registerFlusher("Good", 30*time.Millisecond, nil)
	env.init(t, Settings{{Name: "Bad"}, {Name: "Good"}})

	err := env.client.Flush(context.Background())
	if !apperrors.HasCode(err, apperrors.ErrCodeProviderFailed) {
		t.Fatalf("expected PROVIDER_FAILED, got %v", err)
	}
	if !(*good).flushed.Load() {
		t.Error("a failing flush cancelled its sibling")
	}
}

func TestFlush_NoFlushers(t *testing.T) {
	env := newTestEnv(t, "")
	env.register("A", "", nil, nil)
	env.init(t, Settings{{Name: "A"}})

	if err := env.client.Flush(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestWithCallback_FiresAfterFlush(t *testing.T) {
	env := newTestEnv(t, "", WithTimeout(time.Second))
	f := env.registerFlusher("F", 30*time.Millisecond, nil)
	env.init(t, Settings{{Name: "F"}})

	fired := make(chan bool, 1)
	env.client.Track(context.Background(), "Signed Up", nil, WithCallback(func() {
		fired <- (*f).flushed.Load()
	}))

	select {
	case flushed := <-fired:
		if !flushed {
			t.Error("callback ran before the provider flushed")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("callback never fired")
	}
}

func TestWithCallback_FiresAtDeadline(t *testing.T) {
	env := newTestEnv(t, "", WithTimeout(30*time.Millisecond))
	env.registerFlusher("Stuck", time.Hour, nil)
	env.init(t, Settings{{Name: "Stuck"}})

	var count atomic.Int32
	fired := make(chan struct{}, 2)
	start := time.Now()
	env.client.Identify(context.Background(), "u1", nil, WithCallback(func() {
		count.Add(1)
		fired <- struct{}{}
	}))

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("callback never fired")
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("callback fired before the deadline: %v", elapsed)
	}
	time.Sleep(50 * time.Millisecond)
	if count.Load() != 1 {
		t.Errorf("callback fired %d times, want 1", count.Load())
	}
}

func TestWithCallback_SurvivesCallerCancel(t *testing.T) {
	env := newTestEnv(t, "", WithTimeout(time.Second))
	f := env.registerFlusher("F", 30*time.Millisecond, nil)
	env.init(t, Settings{{Name: "F"}})

	ctx, cancel := context.WithCancel(context.Background())
	fired := make(chan bool, 1)
	env.client.Track(ctx, "Signed Up", nil, WithCallback(func() {
		fired <- (*f).flushed.Load()
	}))
	cancel()

	select {
	case flushed := <-fired:
		if !flushed {
			t.Error("caller cancellation cut the flush short")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("callback never fired")
	}
}
