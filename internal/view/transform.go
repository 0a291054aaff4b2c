package view

import "math"

// ZoomFactor converts the log-domain zoom accumulator into the linear factor
// applied to normalized window coordinates. The exponential mapping gives a
// perceptually linear zoom response to linear scroll deltas.
func ZoomFactor(zooms float64) float64 {
	return math.Exp(zooms / 10.0)
}

// ScreenToNormalized maps a pixel position to [-1,1] window space. The y
// component is divided by the aspect ratio so a square region of the complex
// plane stays square on screen.
func ScreenToNormalized(x, y, width, height float64) (float64, float64) {
	aspect := width / height
	nx := x/width*2 - 1
	ny := (y/height*2 - 1) / aspect
	return nx, ny
}

// NormalizedToComplex maps a normalized window position onto the complex
// plane for the given view center and zoom factor. Screen-space y grows
// downward while the imaginary axis grows upward, hence the negation.
func NormalizedToComplex(nx, ny, centerX, centerY, zoomFactor float64) (float64, float64) {
	return nx*zoomFactor + centerX, -ny*zoomFactor + centerY
}

// clamp restricts a value to a given range.
func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
