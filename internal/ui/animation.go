package ui

import (
	"math"
	"slices"
	"time"

	"github.com/Gaurav-Gosain/tuidesk/internal/wm"
)

// Animation is one running window transition.
type Animation struct {
	wm.Transition
	StartTime time.Time
	Progress  float64
	Complete  bool

	done func()
}

// Current returns the interpolated frame at the animation's progress.
func (a *Animation) Current() wm.Frame {
	return wm.Frame{
		Rect: wm.Rect{
			Left:   interpolate(a.From.Left, a.To.Left, a.Progress),
			Top:    interpolate(a.From.Top, a.To.Top, a.Progress),
			Width:  interpolate(a.From.Width, a.To.Width, a.Progress),
			Height: interpolate(a.From.Height, a.To.Height, a.Progress),
		},
		Opacity: a.From.Opacity + (a.To.Opacity-a.From.Opacity)*a.Progress,
	}
}

// Animator is a tick-driven wm.Animator. Each app has at most one running
// animation; starting another one for the same app drops the old one along
// with its completion callback.
type Animator struct {
	animations map[string]*Animation
	now        func() time.Time
}

// NewAnimator returns an animator using the wall clock.
func NewAnimator() *Animator {
	return &Animator{
		animations: make(map[string]*Animation),
		now:        time.Now,
	}
}

// SetClock replaces the time source.
func (a *Animator) SetClock(now func() time.Time) { a.now = now }

// Animate starts t. Zero-length transitions finish immediately.
func (a *Animator) Animate(t wm.Transition, done func()) {
	delete(a.animations, t.AppID)
	if t.Duration <= 0 {
		if done != nil {
			done()
		}
		return
	}
	a.animations[t.AppID] = &Animation{
		Transition: t,
		StartTime:  a.now(),
		done:       done,
	}
}

// Update advances every animation and fires callbacks of the ones that
// completed. It reports whether any animation is still running.
func (a *Animator) Update() bool {
	now := a.now()

	var finished []*Animation
	for id, anim := range a.animations {
		progress := float64(now.Sub(anim.StartTime)) / float64(anim.Duration)
		if progress >= 1.0 {
			progress = 1.0
			anim.Complete = true
		}
		anim.Progress = easeInOutCubic(progress)

		if anim.Complete {
			delete(a.animations, id)
			finished = append(finished, anim)
		}
	}

	// callbacks may start new animations, so they run after the sweep
	for _, anim := range finished {
		if anim.done != nil {
			anim.done()
		}
	}
	return len(a.animations) > 0
}

// Active reports whether anything is animating.
func (a *Animator) Active() bool { return len(a.animations) > 0 }

// Frame returns the current visual frame for appID, if it is animating.
func (a *Animator) Frame(appID string) (wm.Frame, bool) {
	anim, ok := a.animations[appID]
	if !ok {
		return wm.Frame{}, false
	}
	return anim.Current(), true
}

// Closing returns the close animations still playing, for windows that have
// already left the registry. They are sorted by app ID for stable output.
func (a *Animator) Closing() []*Animation {
	var out []*Animation
	for _, anim := range a.animations {
		if anim.Kind == wm.TransitionClose {
			out = append(out, anim)
		}
	}
	slices.SortFunc(out, func(x, y *Animation) int {
		switch {
		case x.AppID < y.AppID:
			return -1
		case x.AppID > y.AppID:
			return 1
		}
		return 0
	})
	return out
}

// Cancel drops the animation for appID without running its callback.
func (a *Animator) Cancel(appID string) { delete(a.animations, appID) }

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	p := 2*t - 2
	return 1 + p*p*p/2
}

func interpolate(start, end int, progress float64) int {
	return start + int(math.Round(float64(end-start)*progress))
}
