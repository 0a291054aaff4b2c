package view

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZoomClamped(t *testing.T) {
	v := NewView()
	v.Zoom(1e9)
	require.Equal(t, maxZooms, v.Zooms())
	v.Zoom(-1e12)
	require.Equal(t, minZooms, v.Zooms())
	v.Zoom(1)
	require.Equal(t, minZooms+1, v.Zooms())
}

func TestZoomRescalesMovementDelta(t *testing.T) {
	v := NewView()
	v.AddMovement(-v.Step(), v.Step())

	v.Zoom(-20)
	dx, dy := v.MovementDelta()
	require.Equal(t, -v.Step(), dx, "sign must be preserved")
	require.Equal(t, v.Step(), dy)
	require.Equal(t, math.Max(0.005*v.ZoomFactor(), f64Epsilon), v.Step())
}

func TestStepNeverUnderflows(t *testing.T) {
	v := NewView()
	v.Zoom(-1e12) // clamps at the minimum accumulator value
	require.GreaterOrEqual(t, v.Step(), f64Epsilon)
}

func TestMouseZoomAnchorsCursor(t *testing.T) {
	v := NewView()
	v.Zoom(72) // accumulator at 80, factor ~2980.96
	v.MoveMouse(137, 42, 200, 100)

	x0, y0 := v.MouseCoords()
	v.MouseZoom(1)
	x1, y1 := v.MouseCoords()

	tol := 1e-9 * v.ZoomFactor()
	require.InDelta(t, x0, x1, tol)
	require.InDelta(t, y0, y1, tol)
	require.Equal(t, 81.0, v.Zooms())
}

func TestMouseZoomAtWindowCenter(t *testing.T) {
	// Cursor at the normalized origin sits exactly on the view center, so the
	// anchor correction is exactly zero.
	v := NewView()
	v.Zoom(72)
	v.MoveMouse(100, 50, 200, 100)

	x0, y0 := v.MouseCoords()
	v.MouseZoom(1)
	x1, y1 := v.MouseCoords()

	require.Equal(t, x0, x1)
	require.Equal(t, y0, y1)
	require.Equal(t, 81.0, v.Zooms())
}

func TestIterationBudgetBounds(t *testing.T) {
	v := NewView()
	require.Equal(t, uint32(1500), v.MaxIterations())

	require.True(t, v.LowerIterations())
	require.Equal(t, uint32(1400), v.MaxIterations())

	for i := 0; i < 14; i++ {
		v.LowerIterations()
	}
	require.Equal(t, uint32(MinIter), v.MaxIterations())
	require.False(t, v.LowerIterations(), "decrement at the floor is a no-op")
	require.Equal(t, uint32(MinIter), v.MaxIterations())

	v.SetIterations(MaxIterLimit)
	ceiling := v.MaxIterations()
	require.LessOrEqual(t, ceiling, uint32(MaxIterLimit))
	require.False(t, v.RaiseIterations(), "increment at the ceiling is a no-op")
	require.Equal(t, ceiling, v.MaxIterations())
}

func TestSetIterationsSnapsToStep(t *testing.T) {
	v := NewView()
	v.SetIterations(1234)
	require.Equal(t, uint32(1200), v.MaxIterations())
	v.SetIterations(7)
	require.Equal(t, uint32(MinIter), v.MaxIterations())
}

func TestResetRestoresDefaults(t *testing.T) {
	v := NewView()
	v.Zoom(-30)
	v.Translate(1.5, -2.5)
	v.ToggleMandelbrot()
	v.ToggleRotateColors()
	v.RaiseIterations()
	v.ToggleFullscreen()
	v.SetCtrl(true)

	v.Reset()

	def := DefaultParameters()
	require.Equal(t, def.Zooms, v.Zooms())
	ox, oy := v.Offset()
	require.Equal(t, def.Offset[0], ox)
	require.Equal(t, def.Offset[1], oy)
	require.True(t, v.Mandelbrot())
	require.True(t, v.RotateColors())
	require.Equal(t, def.MaxIter, v.MaxIterations())

	// Physical and window state is deliberately untouched.
	require.True(t, v.Fullscreen())
	require.True(t, v.Ctrl())
}

func TestAdvanceFoldsVelocityIntoOffset(t *testing.T) {
	v := NewView()
	step := v.Step()
	v.AddMovement(step, -step)

	ox, oy := v.Offset()
	block := v.Advance(800, 600)

	wantX, wantY := ox+step, oy-step
	require.Equal(t, wantX, block.Offset[0])
	require.Equal(t, wantY, block.Offset[1])
	require.Equal(t, [2]float64{800, 600}, block.Resolution)
	require.GreaterOrEqual(t, block.Time, 0.0)

	// A second frame folds the same velocity again.
	block = v.Advance(800, 600)
	require.Equal(t, wantX+step, block.Offset[0])
	require.Equal(t, wantY-step, block.Offset[1])
}

func TestParametersProjectToggles(t *testing.T) {
	v := NewView()
	v.ToggleMandelbrot()
	block := v.Parameters(640, 480)
	require.Equal(t, float32(0), block.IsMandelbrot)
	require.Equal(t, float32(1), block.RotateColors)

	v.ToggleRotateColors()
	block = v.Parameters(640, 480)
	require.Equal(t, float32(0), block.RotateColors)
}
