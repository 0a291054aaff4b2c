package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zohnannor/mandelbrot-explorer/internal/view"
)

func TestNewEvaluatorCompilesShader(t *testing.T) {
	e, err := NewEvaluator()
	require.NoError(t, err)
	require.NotNil(t, e.shader)
	require.Len(t, e.palette, 3*paletteStops)
}

func TestUploadRoundTrip(t *testing.T) {
	e, err := NewEvaluator()
	require.NoError(t, err)

	p := view.DefaultParameters()
	p.Resolution = [2]float64{640, 480}
	p.Time = 1.5

	require.NoError(t, e.Upload(p.Bytes()))
	require.Equal(t, p, e.params)
}

func TestUploadRejectsMalformedBlock(t *testing.T) {
	e, err := NewEvaluator()
	require.NoError(t, err)

	require.Error(t, e.Upload(nil))
	require.Error(t, e.Upload(make([]byte, 16)))
}

func TestPaletteStops(t *testing.T) {
	p := Palette(paletteStops)
	require.Len(t, p, 3*paletteStops)
	for i, v := range p {
		require.GreaterOrEqual(t, v, float32(0), "component %d", i)
		require.LessOrEqual(t, v, float32(1), "component %d", i)
	}

	// Stops must actually differ, otherwise the gradient collapses.
	first := p[0:3]
	mid := p[9:12]
	require.NotEqual(t, first, mid)
}
