package input

import (
	"fmt"

	"github.com/zohnannor/mandelbrot-explorer/internal/view"
)

// Request is a side effect the reducer asks of the window boundary. The
// reducer itself only ever mutates the view.
type Request int

const (
	// None requires nothing of the caller.
	None Request = iota
	// SyncNow asks for an immediate synchronization pass instead of waiting
	// for the next frame.
	SyncNow
	// ToggleFullscreen asks the window boundary to apply the view's
	// fullscreen flag.
	ToggleFullscreen
)

// Reducer folds input events into mutations of a single View.
type Reducer struct {
	view *view.View
}

// NewReducer creates a reducer over the given session view.
func NewReducer(v *view.View) *Reducer {
	return &Reducer{view: v}
}

// Apply folds one event into the view and returns the side effect, if any,
// the caller must service. Events outside the closed set panic: the poller
// is the only dispatcher and never produces them.
func (r *Reducer) Apply(ev Event) Request {
	switch ev := ev.(type) {
	case KeyEvent:
		return r.applyKey(ev)
	case CursorEvent:
		// Track the cursor's complex-plane position exactly across the move;
		// while the button is held, dragging pins the plane to the cursor,
		// independent of zoom level.
		x0, y0 := r.view.MouseCoords()
		r.view.MoveMouse(ev.X, ev.Y, ev.Width, ev.Height)
		x1, y1 := r.view.MouseCoords()
		if r.view.MouseClicked() {
			r.view.Translate(x0-x1, y0-y1)
		}
	case ScrollEvent:
		// Scroll up zooms in. With control held the zoom is view-centered,
		// otherwise it is anchored to the cursor.
		if r.view.Ctrl() {
			r.view.Zoom(-ev.Y)
		} else {
			r.view.MouseZoom(-ev.Y)
		}
	case ButtonEvent:
		r.view.SetMouseClicked(ev.Pressed)
	case ModifierEvent:
		r.view.SetCtrl(ev.Ctrl)
	default:
		panic(fmt.Sprintf("input: unexpected event %#v", ev))
	}
	return None
}

func (r *Reducer) applyKey(ev KeyEvent) Request {
	// Presses add a velocity step, releases subtract the same step, so a
	// held key pans at constant speed and releasing it stops exactly.
	step := r.view.Step()
	if !ev.Pressed {
		step = -step
	}

	switch ev.Key {
	case KeyLeft:
		r.view.AddMovement(-step, 0)
	case KeyRight:
		r.view.AddMovement(step, 0)
	case KeyUp:
		r.view.AddMovement(0, step)
	case KeyDown:
		r.view.AddMovement(0, -step)
	case KeySetToggle:
		if ev.Pressed {
			r.view.ToggleMandelbrot()
		}
	case KeyColorToggle:
		if ev.Pressed {
			r.view.ToggleRotateColors()
		}
	case KeyFewerIter:
		if ev.Pressed && r.view.LowerIterations() {
			return SyncNow
		}
	case KeyMoreIter:
		if ev.Pressed && r.view.RaiseIterations() {
			return SyncNow
		}
	case KeyReset:
		if ev.Pressed {
			r.view.Reset()
		}
	case KeyFullscreen:
		if ev.Pressed {
			r.view.ToggleFullscreen()
			return ToggleFullscreen
		}
	default:
		panic(fmt.Sprintf("input: unexpected key %d", ev.Key))
	}
	return None
}
