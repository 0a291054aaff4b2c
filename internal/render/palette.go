package render

import "github.com/lucasb-eyer/go-colorful"

// paletteStops is the number of gradient stops; the shader blends between
// them and wraps the last back to the first. Must match the Palette array
// length in fractal.kage.
const paletteStops = 6

// Palette returns n gradient stops as flattened RGB triples. The hue sweep
// runs in HCL space so neighboring stops stay perceptually evenly spaced.
func Palette(n int) []float32 {
	out := make([]float32, 0, 3*n)
	for i := 0; i < n; i++ {
		h := 360 * float64(i) / float64(n)
		c := colorful.Hcl(h, 0.5, 0.6).Clamped()
		out = append(out, float32(c.R), float32(c.G), float32(c.B))
	}
	return out
}
