package ui

import (
	"testing"
	"time"

	"github.com/Gaurav-Gosain/tuidesk/internal/wm"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestAnimator() (*Animator, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	a := NewAnimator()
	a.SetClock(clock.now)
	return a, clock
}

func transition(appID string, kind wm.TransitionKind, d time.Duration) wm.Transition {
	return wm.Transition{
		AppID:    appID,
		Kind:     kind,
		From:     wm.Frame{Rect: wm.Rect{Left: 0, Top: 0, Width: 10, Height: 10}, Opacity: 0},
		To:       wm.Frame{Rect: wm.Rect{Left: 100, Top: 50, Width: 30, Height: 20}, Opacity: 1},
		Duration: d,
	}
}

func TestEaseInOutCubic(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
	}
	for _, tt := range tests {
		if got := easeInOutCubic(tt.in); got != tt.want {
			t.Errorf("easeInOutCubic(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if easeInOutCubic(0.25) >= 0.25 {
		t.Error("expected slow start")
	}
	if easeInOutCubic(0.75) <= 0.75 {
		t.Error("expected slow finish")
	}
}

func TestInterpolate(t *testing.T) {
	tests := []struct {
		start, end int
		progress   float64
		want       int
	}{
		{0, 100, 0, 0},
		{0, 100, 1, 100},
		{0, 100, 0.5, 50},
		{100, 0, 0.25, 75},
		{0, 3, 0.5, 2},
	}
	for _, tt := range tests {
		if got := interpolate(tt.start, tt.end, tt.progress); got != tt.want {
			t.Errorf("interpolate(%d, %d, %v) = %d, want %d", tt.start, tt.end, tt.progress, got, tt.want)
		}
	}
}

func TestAnimatorRunsToCompletion(t *testing.T) {
	a, clock := newTestAnimator()
	calls := 0
	a.Animate(transition("finder", wm.TransitionMinimize, 600*time.Millisecond), func() { calls++ })

	if !a.Active() {
		t.Fatal("expected an active animation")
	}

	clock.advance(300 * time.Millisecond)
	if !a.Update() {
		t.Fatal("animation finished early")
	}
	f, ok := a.Frame("finder")
	if !ok {
		t.Fatal("expected a frame mid-animation")
	}
	if f.Left != 50 || f.Top != 25 || f.Width != 20 || f.Height != 15 {
		t.Errorf("midpoint frame = %+v", f.Rect)
	}
	if f.Opacity != 0.5 {
		t.Errorf("midpoint opacity = %v, want 0.5", f.Opacity)
	}
	if calls != 0 {
		t.Fatal("callback ran before completion")
	}

	clock.advance(400 * time.Millisecond)
	if a.Update() {
		t.Error("animation still running after its duration")
	}
	if calls != 1 {
		t.Errorf("callback ran %d times, want 1", calls)
	}
	if _, ok := a.Frame("finder"); ok {
		t.Error("finished animation still reports a frame")
	}
}

func TestAnimatorSupersedesPerApp(t *testing.T) {
	a, clock := newTestAnimator()
	minimized := false
	a.Animate(transition("finder", wm.TransitionMinimize, 600*time.Millisecond), func() { minimized = true })

	clock.advance(200 * time.Millisecond)
	a.Update()
	a.Animate(transition("finder", wm.TransitionRestore, 600*time.Millisecond), nil)

	clock.advance(time.Second)
	a.Update()
	if minimized {
		t.Error("superseded callback ran")
	}
}

func TestAnimatorIndependentApps(t *testing.T) {
	a, clock := newTestAnimator()
	var done []string
	a.Animate(transition("finder", wm.TransitionOpen, 600*time.Millisecond), func() { done = append(done, "finder") })
	a.Animate(transition("terminal", wm.TransitionOpen, 300*time.Millisecond), func() { done = append(done, "terminal") })

	clock.advance(400 * time.Millisecond)
	a.Update()
	if len(done) != 1 || done[0] != "terminal" {
		t.Fatalf("done = %v, want [terminal]", done)
	}
	clock.advance(400 * time.Millisecond)
	a.Update()
	if len(done) != 2 {
		t.Fatalf("done = %v, want both", done)
	}
}

func TestAnimatorZeroDurationIsSynchronous(t *testing.T) {
	a, _ := newTestAnimator()
	ran := false
	a.Animate(transition("finder", wm.TransitionMinimize, 0), func() { ran = true })

	if !ran {
		t.Error("zero-length transition did not complete immediately")
	}
	if a.Active() {
		t.Error("zero-length transition left an animation behind")
	}
}

func TestAnimatorClosingGhosts(t *testing.T) {
	a, _ := newTestAnimator()
	a.Animate(transition("terminal", wm.TransitionClose, time.Second), nil)
	a.Animate(transition("finder", wm.TransitionClose, time.Second), nil)
	a.Animate(transition("safari", wm.TransitionOpen, time.Second), nil)

	ghosts := a.Closing()
	if len(ghosts) != 2 {
		t.Fatalf("got %d closing animations, want 2", len(ghosts))
	}
	if ghosts[0].AppID != "finder" || ghosts[1].AppID != "terminal" {
		t.Errorf("closing order = %s, %s", ghosts[0].AppID, ghosts[1].AppID)
	}

	a.Cancel("finder")
	if len(a.Closing()) != 1 {
		t.Error("Cancel did not drop the animation")
	}
}

func TestManagerWithAnimatorDefersHide(t *testing.T) {
	a, clock := newTestAnimator()
	m := wm.New(nopHost{}, wm.WithAnimator(a))
	w := m.Open("finder")
	clock.advance(time.Second)
	a.Update()

	m.Minimize("finder")
	if !w.Visible {
		t.Fatal("hidden before animation")
	}
	clock.advance(time.Second)
	a.Update()
	if w.Visible {
		t.Error("still visible after minimize animation")
	}
}

type nopHost struct{}

func (nopHost) DefaultSize(string) wm.Size { return wm.Size{Width: 40, Height: 12} }
func (nopHost) RenderContent(string) wm.Content { return nil }
func (nopHost) OnMount(string, *wm.Window) {}
