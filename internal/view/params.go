package view

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unsafe"
)

// ParameterBlock is the uniform data handed to the per-pixel evaluator once
// per frame. Field order and types are a binary contract with the shader side
// and must not change independently on the two sides.
type ParameterBlock struct {
	Resolution    [2]float64 // window width and height in pixels
	Time          float64    // seconds since session start
	Zooms         float64    // log-domain zoom accumulator
	Offset        [2]float64 // view center on the complex plane
	MousePosition [2]float64 // cursor position in [-1,1] window space
	IsMandelbrot  float32    // 1 renders the Mandelbrot set, 0 the Julia set
	RotateColors  float32    // 1 cycles the palette over time
	MaxIter       uint32     // evaluator iteration budget
	_             uint32     // pad to a multiple of 16 bytes
}

// Uniform buffers require the block size to be a multiple of 16 bytes.
const _ = uint(-(unsafe.Sizeof(ParameterBlock{}) % 16))

// DefaultParameters returns the view parameters shown at startup and after a
// reset.
func DefaultParameters() ParameterBlock {
	return ParameterBlock{
		Zooms:        8.0,
		Offset:       [2]float64{(0.25 - 2.0) / 2.0, 0.0},
		IsMandelbrot: 1.0,
		RotateColors: 1.0,
		MaxIter:      1500,
	}
}

// Size returns the size of the block in bytes.
func (p *ParameterBlock) Size() int {
	return int(unsafe.Sizeof(*p))
}

// Bytes packs the block into its wire image. Both sides of the contract share
// one address space, so the layout is native little-endian with no further
// conversion.
func (p *ParameterBlock) Bytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, p.Size()))
	// Write on a fixed-size struct cannot fail.
	_ = binary.Write(buf, binary.LittleEndian, p)
	return buf.Bytes()
}

// DecodeParams is the evaluator-side inverse of Bytes.
func DecodeParams(data []byte) (ParameterBlock, error) {
	var p ParameterBlock
	if len(data) != p.Size() {
		return p, fmt.Errorf("parameter block is %d bytes, want %d", len(data), p.Size())
	}
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &p); err != nil {
		return p, fmt.Errorf("decoding parameter block: %w", err)
	}
	return p, nil
}
