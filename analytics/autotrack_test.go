package analytics

import (
	"context"
	"slices"
	"testing"
	"time"
)

func TestClickPlain(t *testing.T) {
	tests := []struct {
		click Click
		want  bool
	}{
		{Click{}, true},
		{Click{Button: 1}, false},
		{Click{Meta: true}, false},
		{Click{Ctrl: true}, false},
		{Click{Shift: true}, false},
		{Click{Alt: true}, false},
	}
	for _, tt := range tests {
		if got := tt.click.Plain(); got != tt.want {
			t.Errorf("%+v.Plain() = %v, want %v", tt.click, got, tt.want)
		}
	}
}

func TestTrackLink(t *testing.T) {
	tests := []struct {
		name         string
		link         Link
		click        Click
		wantSuppress bool
	}{
		{"plain click", Link{Href: "/pricing"}, Click{}, true},
		{"new tab target", Link{Href: "/pricing", Target: "_blank"}, Click{}, false},
		{"meta click", Link{Href: "/pricing"}, Click{Meta: true}, false},
		{"ctrl click", Link{Href: "/pricing"}, Click{Ctrl: true}, false},
		{"middle button", Link{Href: "/pricing"}, Click{Button: 1}, false},
		{"no href", Link{}, Click{}, false},
		{"named frame", Link{Href: "/pricing", Target: "main"}, Click{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, "", WithTimeout(20*time.Millisecond))
			env.register("A", "", nil, nil)
			env.init(t, Settings{{Name: "A"}})

			navigated := make(chan string, 1)
			suppressed := env.client.TrackLink(context.Background(), tt.link, tt.click, "Clicked Link", nil,
				func(href string) { navigated <- href })

			if suppressed != tt.wantSuppress {
				t.Errorf("suppressed = %v, want %v", suppressed, tt.wantSuppress)
			}
			if got := env.rec.list(); !slices.Equal(got, []string{"A.track(Clicked Link)"}) {
				t.Errorf("calls = %v", got)
			}

			select {
			case href := <-navigated:
				if !tt.wantSuppress {
					t.Errorf("navigation replayed for an unsuppressed click: %s", href)
				} else if href != tt.link.Href {
					t.Errorf("navigated to %q, want %q", href, tt.link.Href)
				}
			case <-time.After(300 * time.Millisecond):
				if tt.wantSuppress {
					t.Error("navigation was never replayed")
				}
			}
		})
	}
}

func TestTrackLink_ReplaysBeforeInitialize(t *testing.T) {
	env := newTestEnv(t, "", WithTimeout(10*time.Millisecond))

	navigated := make(chan string, 1)
	if !env.client.TrackLink(context.Background(), Link{Href: "/a"}, Click{}, "Clicked", nil,
		func(href string) { navigated <- href }) {
		t.Fatal("expected the click to be suppressed")
	}
	select {
	case <-navigated:
	case <-time.After(time.Second):
		t.Fatal("navigation lost before initialize")
	}
}

func TestTrackForm(t *testing.T) {
	env := newTestEnv(t, "", WithTimeout(20*time.Millisecond))
	env.register("A", "", nil, nil)
	env.init(t, Settings{{Name: "A"}})

	submitted := make(chan struct{}, 1)
	if !env.client.TrackForm(context.Background(), Form{Action: "/signup", Method: "post"}, "Submitted Form", nil,
		func() { submitted <- struct{}{} }) {
		t.Fatal("expected the submission to be suppressed")
	}
	if got := env.rec.list(); !slices.Equal(got, []string{"A.track(Submitted Form)"}) {
		t.Errorf("calls = %v", got)
	}
	select {
	case <-submitted:
	case <-time.After(time.Second):
		t.Fatal("submission was never replayed")
	}
}

func TestTrackForm_NoSubmit(t *testing.T) {
	env := newTestEnv(t, "")
	env.register("A", "", nil, nil)
	env.init(t, Settings{{Name: "A"}})

	if env.client.TrackForm(context.Background(), Form{}, "Submitted Form", nil, nil) {
		t.Error("nothing to replay, submission must not be suppressed")
	}
}
