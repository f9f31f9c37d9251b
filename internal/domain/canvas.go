package domain

import (
	"fmt"
	"image"
	"image/color"
)

// Canvas is a snapshot of the shared canvas, stored row-major.
type Canvas struct {
	size   CanvasSize
	pixels []RGB
}

// NewCanvas builds a canvas from an explicit pixel slice. The slice must hold
// exactly size.Area() entries in row-major order.
func NewCanvas(size CanvasSize, pixels []RGB) (Canvas, error) {
	if len(pixels) != size.Area() {
		return Canvas{}, &OpError{
			Op:   "domain.new_canvas",
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("got %d pixels for a %dx%d canvas: %w", len(pixels), size.Width, size.Height, ErrInvalidInput),
		}
	}
	return Canvas{size: size, pixels: pixels}, nil
}

// DecodeCanvas builds a canvas from the raw /get_pixels stream: three bytes
// (R, G, B) per pixel, rows top to bottom.
func DecodeCanvas(size CanvasSize, stream []byte) (Canvas, error) {
	want := size.Area() * 3
	if len(stream) != want {
		return Canvas{}, &OpError{
			Op:   "domain.decode_canvas",
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("canvas stream is %d bytes, want %d for %dx%d: %w", len(stream), want, size.Width, size.Height, ErrInvalidInput),
		}
	}

	pixels := make([]RGB, size.Area())
	for i := range pixels {
		pixels[i] = RGB{R: stream[i*3], G: stream[i*3+1], B: stream[i*3+2]}
	}
	return Canvas{size: size, pixels: pixels}, nil
}

// Size returns the canvas extent.
func (c Canvas) Size() CanvasSize {
	return c.size
}

// At returns the color at (x, y) and whether the coordinate is on the canvas.
func (c Canvas) At(x, y int) (RGB, bool) {
	if !c.size.Contains(x, y) {
		return RGB{}, false
	}
	return c.pixels[y*c.size.Width+x], true
}

// ToImage renders the canvas as an RGBA image suitable for PNG encoding.
func (c Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.size.Width, c.size.Height))
	for y := 0; y < c.size.Height; y++ {
		for x := 0; x < c.size.Width; x++ {
			p := c.pixels[y*c.size.Width+x]
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff})
		}
	}
	return img
}
