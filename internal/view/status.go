package view

import (
	"fmt"
	"strconv"
	"strings"
)

// statusPrecision is the number of fractional digits shown for coordinates
// in the title line; deep zooms need all of them.
const statusPrecision = 20

// Status derives the window title line: the reciprocal zoom factor, the
// iteration budget, and the center and cursor positions on the complex
// plane. Imaginary parts carry an explicit sign and an i suffix.
func (v *View) Status() string {
	mx, my := v.MouseCoords()
	return fmt.Sprintf(
		"Mandelbrot | Zoom = x%s | Max Iter = %d | Center = %s%s%si | Mouse = %s%s%si",
		formatCoord(1/v.ZoomFactor()),
		v.maxIter,
		formatCoord(v.offset[0]), imagSign(v.offset[1]), formatCoord(v.offset[1]),
		formatCoord(mx), imagSign(my), formatCoord(my),
	)
}

// formatCoord renders x with statusPrecision fractional digits and trailing
// zeros trimmed.
func formatCoord(x float64) string {
	return strings.TrimRight(strconv.FormatFloat(x, 'f', statusPrecision, 64), "0")
}

// imagSign is the explicit sign shown before an imaginary part. Negative
// values already carry their minus sign.
func imagSign(y float64) string {
	if y >= 0 {
		return "+"
	}
	return ""
}
