package view

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatCoordTrimsTrailingZeros(t *testing.T) {
	require.Equal(t, "0.5", formatCoord(0.5))
	require.Equal(t, "-0.875", formatCoord(-0.875))
	require.Equal(t, "0.", formatCoord(0))
	require.Equal(t, "1.", formatCoord(1))
}

func TestImagSign(t *testing.T) {
	require.Equal(t, "+", imagSign(0))
	require.Equal(t, "+", imagSign(0.5))
	require.Equal(t, "", imagSign(-0.5), "negative parts carry their own sign")
}

func TestStatusLine(t *testing.T) {
	v := NewView()
	v.Zoom(-8) // accumulator at 0, zoom factor exactly 1

	s := v.Status()
	require.Contains(t, s, "Zoom = x1.")
	require.Contains(t, s, "Max Iter = 1500")
	require.Contains(t, s, "Center = -0.875+0.i")
	require.Contains(t, s, "Mouse = -0.875+0.i", "cursor starts at the normalized origin, on the view center")
}
