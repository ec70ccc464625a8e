package wm

import "time"

// TransitionKind identifies what a visual transition represents.
type TransitionKind int

const (
	TransitionOpen TransitionKind = iota
	TransitionClose
	TransitionMinimize
	TransitionRestore
	TransitionMaximize
	TransitionUnmaximize
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionOpen:
		return "open"
	case TransitionClose:
		return "close"
	case TransitionMinimize:
		return "minimize"
	case TransitionRestore:
		return "restore"
	case TransitionMaximize:
		return "maximize"
	case TransitionUnmaximize:
		return "unmaximize"
	default:
		return "unknown"
	}
}

// Frame is one visual keyframe: geometry plus opacity in [0, 1].
type Frame struct {
	Rect
	Opacity float64
}

// Transition asks the animator to move a window's visual from From to To.
type Transition struct {
	AppID    string
	Kind     TransitionKind
	From     Frame
	To       Frame
	Duration time.Duration
}

// Animator plays visual transitions. The manager never waits on it: state
// is already final when Animate is called. done may be nil; an animator
// that drops a superseded transition must not call its done.
type Animator interface {
	Animate(t Transition, done func())
}

// NopAnimator completes every transition immediately.
type NopAnimator struct{}

// Animate runs done synchronously.
func (NopAnimator) Animate(_ Transition, done func()) {
	if done != nil {
		done()
	}
}
