// Package render owns the GPU side of the explorer: the per-pixel fractal
// shader, the palette it colors with, and the uniform upload boundary that
// receives the packed parameter block once per frame.
package render

import (
	_ "embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zohnannor/mandelbrot-explorer/internal/view"
)

//go:embed fractal.kage
var fractalSrc []byte

// Uploader receives the packed parameter block once per frame, strictly
// before the draw call.
type Uploader interface {
	Upload(block []byte) error
}

// Evaluator runs the per-pixel fractal program on the GPU. It implements
// Uploader by decoding the wire image back into uniforms for the shader;
// the block is fully written before Draw and not touched again until the
// next frame, so the shader always sees a consistent snapshot.
type Evaluator struct {
	shader  *ebiten.Shader
	palette []float32
	params  view.ParameterBlock
}

// NewEvaluator compiles the fractal shader and builds the palette.
func NewEvaluator() (*Evaluator, error) {
	shader, err := ebiten.NewShader(fractalSrc)
	if err != nil {
		return nil, fmt.Errorf("compiling fractal shader: %w", err)
	}
	return &Evaluator{
		shader:  shader,
		palette: Palette(paletteStops),
	}, nil
}

// Upload decodes and stores the parameter block for the next Draw.
func (e *Evaluator) Upload(block []byte) error {
	params, err := view.DecodeParams(block)
	if err != nil {
		return fmt.Errorf("uploading parameters: %w", err)
	}
	e.params = params
	return nil
}

// Draw evaluates the fractal over the whole target. The shader side has no
// f64, so the uniforms are downconverted here, on the evaluator's side of
// the byte contract.
func (e *Evaluator) Draw(screen *ebiten.Image) {
	p := &e.params
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Resolution":    []float32{float32(p.Resolution[0]), float32(p.Resolution[1])},
		"Time":          float32(p.Time),
		"ZoomFactor":    float32(view.ZoomFactor(p.Zooms)),
		"Offset":        []float32{float32(p.Offset[0]), float32(p.Offset[1])},
		"MousePosition": []float32{float32(p.MousePosition[0]), float32(p.MousePosition[1])},
		"IsMandelbrot":  p.IsMandelbrot,
		"RotateColors":  p.RotateColors,
		"MaxIter":       float32(p.MaxIter),
		"Palette":       e.palette,
	}
	screen.DrawRectShader(w, h, e.shader, op)
}
