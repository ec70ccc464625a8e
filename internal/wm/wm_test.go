package wm_test

import (
	"math/rand"
	"testing"

	"github.com/Gaurav-Gosain/tuidesk/internal/wm"
)

type stubContent struct{ title string }

func (c stubContent) Title() string { return c.title }

// stubHost knows a fixed size table and counts mounts and focus calls.
type stubHost struct {
	sizes   map[string]wm.Size
	mounts  map[string]int
	focuses map[string]int
}

func newStubHost() *stubHost {
	return &stubHost{
		sizes: map[string]wm.Size{
			"finder":     {Width: 800, Height: 600},
			"safari":     {Width: 900, Height: 700},
			"calculator": {Width: 360, Height: 500},
			"terminal":   {Width: 700, Height: 500},
		},
		mounts:  make(map[string]int),
		focuses: make(map[string]int),
	}
}

func (h *stubHost) DefaultSize(appID string) wm.Size {
	if s, ok := h.sizes[appID]; ok {
		return s
	}
	return wm.Size{Width: 600, Height: 400}
}

func (h *stubHost) RenderContent(appID string) wm.Content {
	if _, ok := h.sizes[appID]; !ok {
		return stubContent{title: "App not found"}
	}
	return stubContent{title: appID}
}

func (h *stubHost) OnMount(appID string, _ *wm.Window) { h.mounts[appID]++ }

func (h *stubHost) OnFocus(appID string, _ *wm.Window) { h.focuses[appID]++ }

// pendingAnimator records transitions and holds their callbacks.
type pendingAnimator struct {
	transitions []wm.Transition
	pending     []func()
}

func (a *pendingAnimator) Animate(t wm.Transition, done func()) {
	a.transitions = append(a.transitions, t)
	if done != nil {
		a.pending = append(a.pending, done)
	}
}

func (a *pendingAnimator) flush() {
	for _, done := range a.pending {
		done()
	}
	a.pending = nil
}

func newManager(t *testing.T, opts ...wm.Option) (*wm.Manager, *stubHost) {
	t.Helper()
	host := newStubHost()
	opts = append([]wm.Option{wm.WithViewport(1000, 800)}, opts...)
	return wm.New(host, opts...), host
}

func mustWindow(t *testing.T, m *wm.Manager, appID string) *wm.Window {
	t.Helper()
	w, ok := m.Window(appID)
	if !ok {
		t.Fatalf("expected a window for %q", appID)
	}
	return w
}

func TestClamp(t *testing.T) {
	cfg := wm.DefaultClampConfig()

	tests := []struct {
		name         string
		left, top    int
		vw, vh       int
		wantL, wantT int
	}{
		{"far top-left", -500, -500, 1000, 800, 0, 28},
		{"far bottom-right", 5000, 5000, 1000, 800, 800, 700},
		{"inside", 300, 200, 1000, 800, 300, 200},
		{"under menu bar", 10, 5, 1000, 800, 10, 28},
		{"exact upper bound", 800, 700, 1000, 800, 800, 700},
		{"viewport smaller than visible minimum", 50, 50, 150, 90, -50, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, top := wm.Clamp(tt.left, tt.top, tt.vw, tt.vh, cfg)
			if l != tt.wantL || top != tt.wantT {
				t.Errorf("Clamp(%d, %d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.left, tt.top, tt.vw, tt.vh, l, top, tt.wantL, tt.wantT)
			}
		})
	}
}

func TestTopIndexFloor(t *testing.T) {
	m, _ := newManager(t)
	if got := m.TopIndex(); got != wm.ZFloor {
		t.Fatalf("TopIndex() on empty manager = %d, want %d", got, wm.ZFloor)
	}

	w := m.Open("finder")
	if w.ZIndex != wm.ZFloor+1 {
		t.Errorf("first window z = %d, want %d", w.ZIndex, wm.ZFloor+1)
	}
}

func TestOpenCreatesWithDefaults(t *testing.T) {
	m, host := newManager(t)

	w := m.Open("calculator")
	want := wm.Rect{Left: 100, Top: 100, Width: 360, Height: 500}
	if w.Geometry != want {
		t.Errorf("geometry = %+v, want %+v", w.Geometry, want)
	}
	if w.State != wm.Normal || w.SavedGeometry != nil || !w.Visible {
		t.Errorf("new window state = %v saved=%v visible=%v", w.State, w.SavedGeometry, w.Visible)
	}
	if w.ID == "" {
		t.Error("expected a window ID")
	}
	if host.mounts["calculator"] != 1 {
		t.Errorf("OnMount called %d times, want 1", host.mounts["calculator"])
	}
}

func TestOpenUnknownAppFallsBack(t *testing.T) {
	m, _ := newManager(t)

	w := m.Open("photoshop")
	if w.Geometry.Width != 600 || w.Geometry.Height != 400 {
		t.Errorf("fallback size = %dx%d, want 600x400", w.Geometry.Width, w.Geometry.Height)
	}
	if w.Title() != "App not found" {
		t.Errorf("Title() = %q, want placeholder", w.Title())
	}
}

func TestOpenTwiceOnlyFocuses(t *testing.T) {
	m, host := newManager(t)

	first := m.Open("calc")
	m.Open("finder")
	z := first.ZIndex
	geom := first.Geometry

	second := m.Open("calc")
	if second != first {
		t.Fatal("second Open returned a different record")
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
	if second.ZIndex <= z {
		t.Errorf("z-index did not increase: %d -> %d", z, second.ZIndex)
	}
	if second.Geometry != geom {
		t.Errorf("geometry changed: %+v -> %+v", geom, second.Geometry)
	}
	if host.mounts["calc"] != 1 {
		t.Errorf("OnMount called %d times, want 1", host.mounts["calc"])
	}
	if front, _ := m.Frontmost(); front != first {
		t.Error("reopened window is not frontmost")
	}
}

func TestOpenMinimizedRestores(t *testing.T) {
	m, _ := newManager(t)

	w := m.Open("calc")
	m.Open("terminal")
	m.Minimize("calc")
	if w.State != wm.Minimized {
		t.Fatalf("state = %v, want minimized", w.State)
	}

	again := m.Open("calc")
	if again != w {
		t.Fatal("Open duplicated a minimized window")
	}
	if w.State != wm.Normal || !w.Visible {
		t.Errorf("after reopen state=%v visible=%v", w.State, w.Visible)
	}
	if front, _ := m.Frontmost(); front != w {
		t.Error("restored window is not frontmost")
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestCloseRemovesFromAnyState(t *testing.T) {
	for _, setup := range []struct {
		name string
		fn   func(*wm.Manager)
	}{
		{"normal", func(*wm.Manager) {}},
		{"minimized", func(m *wm.Manager) { m.Minimize("finder") }},
		{"maximized", func(m *wm.Manager) { m.Maximize("finder") }},
		{"minimized from maximized", func(m *wm.Manager) {
			m.Maximize("finder")
			m.Minimize("finder")
		}},
	} {
		t.Run(setup.name, func(t *testing.T) {
			m, _ := newManager(t)
			m.Open("finder")
			setup.fn(m)

			m.Close("finder")
			if _, ok := m.Window("finder"); ok {
				t.Error("window still registered after Close")
			}
			if m.Len() != 0 {
				t.Errorf("Len() = %d, want 0", m.Len())
			}
		})
	}
}

func TestAbsentWindowOperationsAreNoops(t *testing.T) {
	m, _ := newManager(t)
	m.Open("finder")

	m.Close("ghost")
	m.Minimize("ghost")
	m.Restore("ghost")
	m.Focus("ghost")
	m.ToggleMaximize("ghost")
	m.Maximize("ghost")
	m.Unmaximize("ghost")
	if m.BeginDrag("ghost", 0, 0, wm.HitTitleBar) {
		t.Error("BeginDrag started for an absent window")
	}

	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestFocusNotifiesHost(t *testing.T) {
	m, host := newManager(t)
	m.Open("finder")
	m.Open("safari")
	if len(host.focuses) != 0 {
		t.Fatalf("opening new windows sent focus calls: %v", host.focuses)
	}

	steps := []struct {
		name string
		do   func()
		app  string
		want int
	}{
		{"focus", func() { m.Focus("finder") }, "finder", 1},
		{"open existing", func() { m.Open("finder") }, "finder", 2},
		{"restore", func() { m.Minimize("finder"); m.Restore("finder") }, "finder", 3},
		{"focus minimized", func() { m.Minimize("finder"); m.Focus("finder") }, "finder", 3},
		{"drag", func() { m.BeginDrag("safari", 10, 0, wm.HitTitleBar); m.EndDrag() }, "safari", 1},
		{"focus absent", func() { m.Focus("ghost") }, "ghost", 0},
	}
	for _, st := range steps {
		st.do()
		if got := host.focuses[st.app]; got != st.want {
			t.Errorf("%s: OnFocus(%q) called %d times, want %d", st.name, st.app, got, st.want)
		}
	}
}

func TestFocusMinimizedIsNoop(t *testing.T) {
	m, _ := newManager(t)
	w := m.Open("finder")
	m.Minimize("finder")
	z := w.ZIndex

	m.Focus("finder")
	if w.ZIndex != z || w.State != wm.Minimized {
		t.Errorf("Focus changed a minimized window: z %d -> %d, state %v", z, w.ZIndex, w.State)
	}
}

func TestFocusAlwaysClimbs(t *testing.T) {
	m, _ := newManager(t)
	w := m.Open("finder")

	prev := w.ZIndex
	for range 3 {
		m.Focus("finder")
		if w.ZIndex <= prev {
			t.Fatalf("z-index did not climb: %d -> %d", prev, w.ZIndex)
		}
		prev = w.ZIndex
	}
}

func TestMaximizeRoundTrip(t *testing.T) {
	m, _ := newManager(t)
	w := m.Open("terminal")
	m.BeginDrag("terminal", 150, 101, wm.HitTitleBar)
	m.UpdateDrag(173, 140)
	m.EndDrag()
	before := w.Geometry

	m.ToggleMaximize("terminal")
	if w.State != wm.Maximized {
		t.Fatalf("state = %v, want maximized", w.State)
	}
	if w.SavedGeometry == nil || *w.SavedGeometry != before {
		t.Fatalf("saved geometry = %v, want %+v", w.SavedGeometry, before)
	}
	want := wm.Rect{Left: 0, Top: 28, Width: 1000, Height: 800 - 28 - 80}
	if w.Geometry != want {
		t.Errorf("maximized geometry = %+v, want %+v", w.Geometry, want)
	}

	m.ToggleMaximize("terminal")
	if w.State != wm.Normal || w.SavedGeometry != nil {
		t.Fatalf("after unmaximize state=%v saved=%v", w.State, w.SavedGeometry)
	}
	if w.Geometry != before {
		t.Errorf("round trip geometry = %+v, want %+v", w.Geometry, before)
	}
}

func TestReconfigureClampsNormalWindows(t *testing.T) {
	m, _ := newManager(t)
	normal := m.Open("finder")
	normal.Geometry.Left, normal.Geometry.Top = 750, 40

	hidden := m.Open("calculator")
	hidden.Geometry.Left, hidden.Geometry.Top = 10, 30
	m.Minimize("calculator")

	maxed := m.Open("terminal")
	m.Maximize("terminal")

	cfg := wm.DefaultConfig()
	cfg.Clamp = wm.ClampConfig{MinVisibleWidth: 400, MinVisibleHeight: 100, TitlebarHeight: 60}
	m.Reconfigure(cfg)

	if normal.Geometry.Left != 600 || normal.Geometry.Top != 60 {
		t.Errorf("normal window at (%d, %d), want (600, 60)", normal.Geometry.Left, normal.Geometry.Top)
	}
	if hidden.Geometry.Left != 10 || hidden.Geometry.Top != 60 {
		t.Errorf("minimized window at (%d, %d), want (10, 60)", hidden.Geometry.Left, hidden.Geometry.Top)
	}
	want := wm.Rect{Left: 0, Top: 60, Width: 1000, Height: 800 - 60 - 80}
	if maxed.Geometry != want {
		t.Errorf("maximized geometry = %+v, want %+v", maxed.Geometry, want)
	}
}

func TestInvalidMaximizeTransitionsAreNoops(t *testing.T) {
	m, _ := newManager(t)
	w := m.Open("finder")

	m.Unmaximize("finder")
	if w.State != wm.Normal || w.SavedGeometry != nil {
		t.Errorf("Unmaximize on normal window changed it: %v", w.State)
	}

	m.Maximize("finder")
	saved := *w.SavedGeometry
	m.Maximize("finder")
	if *w.SavedGeometry != saved {
		t.Error("second Maximize overwrote saved geometry")
	}

	m.Minimize("finder")
	m.ToggleMaximize("finder")
	if w.State != wm.Minimized {
		t.Errorf("ToggleMaximize on minimized window changed state to %v", w.State)
	}
}

func TestMinimizeRestoreKeepsState(t *testing.T) {
	tests := []struct {
		name     string
		maximize bool
		want     wm.State
	}{
		{"normal", false, wm.Normal},
		{"maximized", true, wm.Maximized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newManager(t)
			w := m.Open("safari")
			original := w.Geometry
			if tt.maximize {
				m.Maximize("safari")
			}
			geom := w.Geometry

			m.Minimize("safari")
			if w.RestoresTo() != tt.want {
				t.Errorf("RestoresTo() = %v, want %v", w.RestoresTo(), tt.want)
			}
			m.Restore("safari")

			if w.State != tt.want {
				t.Errorf("state after restore = %v, want %v", w.State, tt.want)
			}
			if w.Geometry != geom {
				t.Errorf("geometry after restore = %+v, want %+v", w.Geometry, geom)
			}
			if m.Len() != 1 {
				t.Errorf("Len() = %d, want 1", m.Len())
			}
			if tt.maximize {
				m.Unmaximize("safari")
				if w.Geometry != original {
					t.Errorf("unmaximize after restore = %+v, want %+v", w.Geometry, original)
				}
			}
		})
	}
}

func TestMinimizeHidesAfterAnimation(t *testing.T) {
	anim := &pendingAnimator{}
	m, _ := newManager(t, wm.WithAnimator(anim))
	w := m.Open("finder")

	m.Minimize("finder")
	if w.State != wm.Minimized {
		t.Fatalf("state = %v, want minimized immediately", w.State)
	}
	if !w.Visible {
		t.Fatal("window hidden before the animation completed")
	}
	if _, ok := m.WindowAt(w.Geometry.Left+1, w.Geometry.Top+1); ok {
		t.Error("minimized window still hit-testable")
	}

	anim.flush()
	if w.Visible {
		t.Error("window still visible after the animation completed")
	}
}

func TestRestoreBeforeMinimizeCompletesStaysVisible(t *testing.T) {
	anim := &pendingAnimator{}
	m, _ := newManager(t, wm.WithAnimator(anim))
	w := m.Open("finder")

	m.Minimize("finder")
	m.Restore("finder")
	anim.flush()

	if !w.Visible {
		t.Error("late minimize callback hid a restored window")
	}
}

func TestTransitionsReported(t *testing.T) {
	anim := &pendingAnimator{}
	m, _ := newManager(t, wm.WithAnimator(anim), wm.WithDockAnchor(func(string) (int, int) {
		return 500, 760
	}))

	m.Open("finder")
	m.Maximize("finder")
	m.Unmaximize("finder")
	m.Minimize("finder")
	m.Restore("finder")
	m.Close("finder")

	want := []wm.TransitionKind{
		wm.TransitionOpen,
		wm.TransitionMaximize,
		wm.TransitionUnmaximize,
		wm.TransitionMinimize,
		wm.TransitionRestore,
		wm.TransitionClose,
	}
	if len(anim.transitions) != len(want) {
		t.Fatalf("got %d transitions, want %d", len(anim.transitions), len(want))
	}
	for i, k := range want {
		if anim.transitions[i].Kind != k {
			t.Errorf("transition %d = %v, want %v", i, anim.transitions[i].Kind, k)
		}
	}
	if to := anim.transitions[3].To; to.Top != 760 || to.Opacity != 0 {
		t.Errorf("minimize target = %+v, want dock anchor row 760 at opacity 0", to)
	}
}

func TestDragFollowsSnapshot(t *testing.T) {
	m, _ := newManager(t)
	w := m.Open("calculator")

	if !m.BeginDrag("calculator", 120, 105, wm.HitTitleBar) {
		t.Fatal("BeginDrag did not start")
	}
	m.UpdateDrag(170, 145)
	if w.Geometry.Left != 150 || w.Geometry.Top != 140 {
		t.Errorf("after update = (%d, %d), want (150, 140)", w.Geometry.Left, w.Geometry.Top)
	}

	once := w.Geometry
	for range 10 {
		m.UpdateDrag(170, 145)
	}
	if w.Geometry != once {
		t.Errorf("repeated updates drifted: %+v -> %+v", once, w.Geometry)
	}

	m.UpdateDrag(-2000, -2000)
	if w.Geometry.Left != 0 || w.Geometry.Top != 28 {
		t.Errorf("clamped = (%d, %d), want (0, 28)", w.Geometry.Left, w.Geometry.Top)
	}

	m.EndDrag()
	m.UpdateDrag(400, 400)
	if w.Geometry.Left != 0 || w.Geometry.Top != 28 {
		t.Error("UpdateDrag moved a window with no session")
	}
	m.EndDrag()
}

func TestBeginDragGuards(t *testing.T) {
	m, _ := newManager(t)
	a := m.Open("finder")
	b := m.Open("terminal")

	for _, zone := range []wm.HitZone{wm.HitClose, wm.HitMinimize, wm.HitMaximize, wm.HitBody} {
		if m.BeginDrag("finder", 110, 100, zone) {
			t.Errorf("BeginDrag started from zone %v", zone)
		}
	}

	if !m.BeginDrag("finder", 110, 100, wm.HitTitleBar) {
		t.Fatal("BeginDrag from title bar did not start")
	}
	if front, _ := m.Frontmost(); front != a {
		t.Error("dragged window is not frontmost")
	}
	zb := b.ZIndex
	if m.BeginDrag("terminal", 110, 100, wm.HitTitleBar) {
		t.Error("second concurrent drag started")
	}
	if b.ZIndex != zb {
		t.Error("rejected drag still focused the other window")
	}
	if target, _ := m.DragTarget(); target != "finder" {
		t.Errorf("DragTarget() = %q, want finder", target)
	}
}

func TestMaximizedWindowFocusesWithoutDrag(t *testing.T) {
	m, _ := newManager(t)
	m.Open("finder")
	w := m.Open("terminal")
	m.Maximize("terminal")
	m.Focus("finder")

	if m.BeginDrag("terminal", 10, 28, wm.HitTitleBar) {
		t.Error("drag started on a maximized window")
	}
	if front, _ := m.Frontmost(); front != w {
		t.Error("maximized window not focused by title bar press")
	}
}

func TestLifecycleDropsDragSession(t *testing.T) {
	for _, op := range []struct {
		name string
		fn   func(*wm.Manager)
	}{
		{"minimize", func(m *wm.Manager) { m.Minimize("finder") }},
		{"close", func(m *wm.Manager) { m.Close("finder") }},
		{"maximize", func(m *wm.Manager) { m.Maximize("finder") }},
	} {
		t.Run(op.name, func(t *testing.T) {
			m, _ := newManager(t)
			m.Open("finder")
			m.BeginDrag("finder", 110, 100, wm.HitTitleBar)
			op.fn(m)
			if _, ok := m.DragTarget(); ok {
				t.Error("drag session survived")
			}
		})
	}
}

func TestSetViewportRefitsMaximized(t *testing.T) {
	m, _ := newManager(t)
	a := m.Open("finder")
	b := m.Open("safari")
	m.Maximize("finder")
	m.Maximize("safari")
	m.Minimize("safari")
	normal := m.Open("terminal")
	before := normal.Geometry

	m.SetViewport(1600, 1000)
	want := wm.Rect{Left: 0, Top: 28, Width: 1600, Height: 1000 - 28 - 80}
	if a.Geometry != want {
		t.Errorf("maximized geometry = %+v, want %+v", a.Geometry, want)
	}
	if b.Geometry != want {
		t.Errorf("minimized-maximized geometry = %+v, want %+v", b.Geometry, want)
	}
	if normal.Geometry != before {
		t.Errorf("normal window moved: %+v -> %+v", before, normal.Geometry)
	}
}

func TestWindowAtPicksTopmost(t *testing.T) {
	m, _ := newManager(t)
	m.Open("finder")
	top := m.Open("terminal")

	if w, ok := m.WindowAt(150, 150); !ok || w != top {
		t.Errorf("WindowAt = %v, want terminal", w)
	}
	m.Focus("finder")
	if w, _ := m.WindowAt(150, 150); w.AppID != "finder" {
		t.Errorf("WindowAt after focus = %q, want finder", w.AppID)
	}
	if _, ok := m.WindowAt(5, 5); ok {
		t.Error("WindowAt hit empty desktop")
	}
}

func TestStateAllows(t *testing.T) {
	tests := []struct {
		state wm.State
		event wm.Event
		want  bool
	}{
		{wm.Normal, wm.EventMinimize, true},
		{wm.Maximized, wm.EventMinimize, true},
		{wm.Minimized, wm.EventMinimize, false},
		{wm.Minimized, wm.EventRestore, true},
		{wm.Normal, wm.EventRestore, false},
		{wm.Normal, wm.EventMaximize, true},
		{wm.Maximized, wm.EventMaximize, false},
		{wm.Maximized, wm.EventUnmaximize, true},
		{wm.Normal, wm.EventUnmaximize, false},
		{wm.Minimized, wm.EventFocus, false},
		{wm.Minimized, wm.EventClose, true},
	}

	for _, tt := range tests {
		if got := tt.state.Allows(tt.event); got != tt.want {
			t.Errorf("%v.Allows(%v) = %v, want %v", tt.state, tt.event, got, tt.want)
		}
	}
}

// TestRandomSequencesKeepInvariants drives the manager with random operations
// and checks registry uniqueness, z-order and the saved-geometry rule after
// every step.
func TestRandomSequencesKeepInvariants(t *testing.T) {
	apps := []string{"finder", "safari", "calculator", "terminal", "unknown"}
	rng := rand.New(rand.NewSource(42))
	m, _ := newManager(t)

	for step := range 2000 {
		app := apps[rng.Intn(len(apps))]
		var focused string
		switch rng.Intn(9) {
		case 0, 1:
			m.Open(app)
			if w, ok := m.Window(app); ok && w.State != wm.Minimized {
				focused = app
			}
		case 2:
			m.Close(app)
		case 3:
			m.Minimize(app)
		case 4:
			if w, ok := m.Window(app); ok && w.State == wm.Minimized {
				focused = app
			}
			m.Restore(app)
		case 5:
			m.ToggleMaximize(app)
		case 6:
			if w, ok := m.Window(app); ok && w.State != wm.Minimized {
				focused = app
			}
			m.Focus(app)
		case 7:
			if m.BeginDrag(app, rng.Intn(1000), rng.Intn(800), wm.HitTitleBar) {
				focused = app
			}
		case 8:
			m.UpdateDrag(rng.Intn(1200)-100, rng.Intn(1000)-100)
			if rng.Intn(3) == 0 {
				m.EndDrag()
			}
		}

		seenApp := make(map[string]bool)
		seenZ := make(map[int]bool)
		for _, w := range m.Windows() {
			if seenApp[w.AppID] {
				t.Fatalf("step %d: duplicate record for %q", step, w.AppID)
			}
			seenApp[w.AppID] = true
			if seenZ[w.ZIndex] {
				t.Fatalf("step %d: duplicate z-index %d", step, w.ZIndex)
			}
			seenZ[w.ZIndex] = true

			switch w.State {
			case wm.Maximized:
				if w.SavedGeometry == nil {
					t.Fatalf("step %d: maximized %q without saved geometry", step, w.AppID)
				}
			case wm.Normal:
				if w.SavedGeometry != nil {
					t.Fatalf("step %d: normal %q with saved geometry", step, w.AppID)
				}
			}
		}

		if focused != "" {
			front, ok := m.Frontmost()
			if !ok || front.AppID != focused {
				t.Fatalf("step %d: frontmost = %v, want %q", step, front, focused)
			}
		}
		if target, ok := m.DragTarget(); ok {
			if w, live := m.Window(target); !live || w.State != wm.Normal {
				t.Fatalf("step %d: drag session on %q which is not a normal window", step, target)
			}
		}
	}
}
