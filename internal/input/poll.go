package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBindings maps the physical keys to their logical meaning. Edge
// detection through inpututil already filters key auto-repeat.
var keyBindings = map[ebiten.Key]Key{
	ebiten.KeyA:      KeyLeft,
	ebiten.KeyD:      KeyRight,
	ebiten.KeyW:      KeyUp,
	ebiten.KeyS:      KeyDown,
	ebiten.KeySpace:  KeySetToggle,
	ebiten.KeyQ:      KeyColorToggle,
	ebiten.KeyComma:  KeyFewerIter,
	ebiten.KeyPeriod: KeyMoreIter,
	ebiten.KeyR:      KeyReset,
	ebiten.KeyF11:    KeyFullscreen,
}

// polledKeys fixes the iteration order over keyBindings so events are
// emitted deterministically within a frame.
var polledKeys = []ebiten.Key{
	ebiten.KeyA, ebiten.KeyD, ebiten.KeyW, ebiten.KeyS,
	ebiten.KeySpace, ebiten.KeyQ, ebiten.KeyComma, ebiten.KeyPeriod,
	ebiten.KeyR, ebiten.KeyF11,
}

// Poller converts ebiten's polled input state into the closed event set once
// per frame. It remembers the previous cursor and modifier state so it only
// emits events on change, mirroring an event-driven window system.
type Poller struct {
	lastX, lastY float64
	lastCtrl     bool
	sawCursor    bool
}

// NewPoller creates a poller with no remembered state; the first Poll
// reports the initial cursor position and any held modifier.
func NewPoller() *Poller {
	return &Poller{}
}

// Poll gathers this frame's events in a fixed order: modifier change first,
// then button edges, cursor movement, scroll, and finally key edges. The
// caller passes the current render size; ebiten.WindowSize reports the
// windowed size even in fullscreen, so it cannot be used here.
func (p *Poller) Poll(width, height float64) []Event {
	var events []Event

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	if ctrl != p.lastCtrl || !p.sawCursor {
		p.lastCtrl = ctrl
		events = append(events, ModifierEvent{Ctrl: ctrl})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, ButtonEvent{Pressed: true})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		events = append(events, ButtonEvent{Pressed: false})
	}

	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	if !p.sawCursor || fx != p.lastX || fy != p.lastY {
		p.sawCursor = true
		p.lastX, p.lastY = fx, fy
		events = append(events, CursorEvent{X: fx, Y: fy, Width: width, Height: height})
	}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		events = append(events, ScrollEvent{Y: wheelY})
	}

	for _, k := range polledKeys {
		if inpututil.IsKeyJustPressed(k) {
			events = append(events, KeyEvent{Key: keyBindings[k], Pressed: true})
		}
		if inpututil.IsKeyJustReleased(k) {
			events = append(events, KeyEvent{Key: keyBindings[k], Pressed: false})
		}
	}
	return events
}
