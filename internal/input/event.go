// Package input translates raw window input into view mutations. A poller
// converts ebiten's per-frame polled state into a closed set of events, and a
// reducer folds those events into the session view.
package input

// Event is one member of the closed set of input events the reducer accepts.
// The poller is the only producer; anything outside this set reaching the
// reducer is a contract violation of the dispatcher, not a recoverable
// condition.
type Event interface {
	isEvent()
}

// KeyEvent is an edge-triggered key press or release. Auto-repeats are
// filtered by the poller and must not be delivered.
type KeyEvent struct {
	Key     Key
	Pressed bool
}

// CursorEvent reports a cursor movement in window pixels, together with the
// window size the position is relative to.
type CursorEvent struct {
	X, Y          float64
	Width, Height float64
}

// ScrollEvent reports vertical wheel movement. Horizontal movement is
// dropped by the poller.
type ScrollEvent struct {
	Y float64
}

// ButtonEvent reports the left mouse button state. Other buttons are dropped
// by the poller.
type ButtonEvent struct {
	Pressed bool
}

// ModifierEvent reports a change of the control-key state.
type ModifierEvent struct {
	Ctrl bool
}

func (KeyEvent) isEvent()      {}
func (CursorEvent) isEvent()   {}
func (ScrollEvent) isEvent()   {}
func (ButtonEvent) isEvent()   {}
func (ModifierEvent) isEvent() {}

// Key identifies the keys the reducer reacts to.
type Key int

const (
	KeyLeft          Key = iota // pan west
	KeyRight                    // pan east
	KeyUp                       // pan north
	KeyDown                     // pan south
	KeySetToggle                // switch Mandelbrot/Julia
	KeyColorToggle              // switch palette rotation
	KeyFewerIter                // shrink the iteration budget
	KeyMoreIter                 // grow the iteration budget
	KeyReset                    // restore the default view
	KeyFullscreen               // toggle the window mode
)
