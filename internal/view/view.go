// Package view holds the interactive session state of the explorer: the
// region of the complex plane on display, the zoom accumulator, the mode
// flags, and the projection of all of that into the per-frame parameter
// block consumed by the GPU evaluator.
package view

import (
	"math"
	"time"
)

// Bounds for the log-domain zoom accumulator. Past these the float math
// distorts the view visibly, so zooming stops.
const (
	minZooms = -314.0
	maxZooms = 42.0
)

// Iteration budget policy: adjusted in fixed steps, never below the floor and
// never above the ceiling.
const (
	IterStep     = 100
	MinIter      = 100
	MaxIterLimit = math.MaxUint32 / 10
)

// movementFraction scales the per-event keyboard pan distance relative to the
// current zoom factor, so panning speed shrinks as the view zooms in.
const movementFraction = 0.005

// f64Epsilon is the floor for the pan step. Without it the step underflows to
// zero on extreme zoom-ins and keyboard panning freezes entirely.
const f64Epsilon = 0x1p-52

// View is the mutable session state: what region of the complex plane, at
// what zoom, with what mode flags, is currently displayed. A single instance
// is owned by the Game and mutated only on the update thread, so no locking
// is needed.
type View struct {
	start time.Time

	zooms  float64
	offset [2]float64
	mouse  [2]float64 // cursor in [-1,1] window space

	// Accumulated pan velocity from held direction keys, folded into the
	// offset once per frame by Advance.
	movementDelta [2]float64

	ctrlPressed  bool
	mouseClicked bool
	fullscreen   bool

	mandelbrot   bool
	rotateColors bool
	maxIter      uint32
}

// NewView creates the session state with default parameters and starts the
// session clock.
func NewView() *View {
	v := &View{start: time.Now()}
	v.Reset()
	return v
}

// Reset restores the displayed region, mode flags and iteration budget to
// their defaults. The session clock keeps running, and state that mirrors
// physical input (held buttons, modifiers, accumulated velocity) or the
// window mode is left alone so it cannot desync from the device.
func (v *View) Reset() {
	p := DefaultParameters()
	v.zooms = p.Zooms
	v.offset = p.Offset
	v.mouse = p.MousePosition
	v.mandelbrot = p.IsMandelbrot != 0
	v.rotateColors = p.RotateColors != 0
	v.maxIter = p.MaxIter
}

// Translate shifts the view center by the given complex-plane delta.
func (v *View) Translate(dx, dy float64) {
	v.offset[0] += dx
	v.offset[1] += dy
}

// Zoom adds delta to the zoom accumulator, clamps it, and rescales any
// nonzero pan velocity to the step size at the new zoom. The sign of each
// velocity component is preserved so held keys keep their direction.
func (v *View) Zoom(delta float64) {
	v.zooms = clamp(v.zooms+delta, minZooms, maxZooms)

	step := v.Step()
	for i := range v.movementDelta {
		if v.movementDelta[i] != 0 {
			v.movementDelta[i] = math.Copysign(step, v.movementDelta[i])
		}
	}
}

// MouseZoom zooms while keeping the complex-plane point under the cursor
// visually fixed.
func (v *View) MouseZoom(delta float64) {
	x0, y0 := v.MouseCoords()
	v.Zoom(delta)
	x1, y1 := v.MouseCoords()
	v.Translate(x0-x1, y0-y1)
}

// MoveMouse records the cursor position, normalized to [-1,1] window space.
func (v *View) MoveMouse(x, y, width, height float64) {
	v.mouse[0], v.mouse[1] = ScreenToNormalized(x, y, width, height)
}

// MouseCoords returns the cursor position on the complex plane.
func (v *View) MouseCoords() (float64, float64) {
	return NormalizedToComplex(v.mouse[0], v.mouse[1], v.offset[0], v.offset[1], v.ZoomFactor())
}

// ZoomFactor is the linear zoom factor at the current accumulator value.
func (v *View) ZoomFactor() float64 {
	return ZoomFactor(v.zooms)
}

// Step is the per-event keyboard pan distance at the current zoom.
func (v *View) Step() float64 {
	return math.Max(movementFraction*v.ZoomFactor(), f64Epsilon)
}

// AddMovement adjusts the accumulated pan velocity. Key presses add a step,
// releases subtract the same step, so holding a key yields constant velocity
// and releasing it stops.
func (v *View) AddMovement(dx, dy float64) {
	v.movementDelta[0] += dx
	v.movementDelta[1] += dy
}

// MovementDelta returns the accumulated pan velocity.
func (v *View) MovementDelta() (float64, float64) {
	return v.movementDelta[0], v.movementDelta[1]
}

// Zooms returns the log-domain zoom accumulator.
func (v *View) Zooms() float64 { return v.zooms }

// Offset returns the view center on the complex plane.
func (v *View) Offset() (float64, float64) { return v.offset[0], v.offset[1] }

// ToggleMandelbrot switches between the Mandelbrot and Julia sets.
func (v *View) ToggleMandelbrot() { v.mandelbrot = !v.mandelbrot }

// Mandelbrot reports whether the Mandelbrot set is displayed.
func (v *View) Mandelbrot() bool { return v.mandelbrot }

// ToggleRotateColors switches the time-driven palette rotation.
func (v *View) ToggleRotateColors() { v.rotateColors = !v.rotateColors }

// RotateColors reports whether the palette rotates over time.
func (v *View) RotateColors() bool { return v.rotateColors }

// RaiseIterations grows the evaluator budget by one step and reports whether
// it changed. At the ceiling this is a no-op.
func (v *View) RaiseIterations() bool {
	if v.maxIter > MaxIterLimit-IterStep {
		return false
	}
	v.maxIter += IterStep
	return true
}

// LowerIterations shrinks the evaluator budget by one step and reports
// whether it changed. At the floor this is a no-op.
func (v *View) LowerIterations() bool {
	if v.maxIter <= MinIter {
		return false
	}
	v.maxIter -= IterStep
	return true
}

// MaxIterations returns the evaluator iteration budget.
func (v *View) MaxIterations() uint32 { return v.maxIter }

// SetIterations sets the iteration budget, snapped down to a step multiple
// and clamped to the valid range.
func (v *View) SetIterations(n uint32) {
	n -= n % IterStep
	if n < MinIter {
		n = MinIter
	}
	if n > MaxIterLimit {
		n = MaxIterLimit - MaxIterLimit%IterStep
	}
	v.maxIter = n
}

// SetCtrl records the control-key state.
func (v *View) SetCtrl(pressed bool) { v.ctrlPressed = pressed }

// Ctrl reports whether the control key is held.
func (v *View) Ctrl() bool { return v.ctrlPressed }

// SetMouseClicked records the left mouse button state.
func (v *View) SetMouseClicked(pressed bool) { v.mouseClicked = pressed }

// MouseClicked reports whether the left mouse button is held.
func (v *View) MouseClicked() bool { return v.mouseClicked }

// ToggleFullscreen flips the requested window mode.
func (v *View) ToggleFullscreen() { v.fullscreen = !v.fullscreen }

// Fullscreen reports the requested window mode.
func (v *View) Fullscreen() bool { return v.fullscreen }

// Advance folds the accumulated keyboard velocity into the offset and
// projects the state into a ParameterBlock for this frame. It must run
// exactly once per frame, strictly before the draw call; folding here rather
// than in the key handler keeps pan speed independent of the input rate.
func (v *View) Advance(width, height float64) ParameterBlock {
	v.Translate(v.movementDelta[0], v.movementDelta[1])
	return v.Parameters(width, height)
}

// Parameters projects the current state into a ParameterBlock without
// advancing it.
func (v *View) Parameters(width, height float64) ParameterBlock {
	return ParameterBlock{
		Resolution:    [2]float64{width, height},
		Time:          time.Since(v.start).Seconds(),
		Zooms:         v.zooms,
		Offset:        v.offset,
		MousePosition: v.mouse,
		IsMandelbrot:  boolToFloat(v.mandelbrot),
		RotateColors:  boolToFloat(v.rotateColors),
		MaxIter:       v.maxIter,
	}
}

// boolToFloat converts a mode flag to its uniform-buffer representation.
// The parameter block must stay uniformly numeric, so bools only exist on
// the Go side of the contract.
func boolToFloat(b bool) float32 {
	if b {
		return 1.0
	}
	return 0.0
}
