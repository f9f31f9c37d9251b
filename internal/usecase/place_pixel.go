package usecase

import (
	"context"
	"fmt"

	"github.com/purefunctor/pixels/internal/domain"
	"github.com/purefunctor/pixels/internal/ports"
)

// PlaceReport describes the outcome of placing a pixel.
type PlaceReport struct {
	Message string

	// Checked is true when a read-back verification was performed.
	Checked  bool
	Verified bool
	Observed domain.RGB
}

// PlacePixel validates a pixel against the canvas bounds, places it, and
// optionally reads it back to confirm the write landed.
type PlacePixel struct {
	api    ports.CanvasAPI
	verify bool
}

type PlacePixelOption func(*PlacePixel)

// WithVerify enables read-back verification after the write.
func WithVerify(enabled bool) PlacePixelOption {
	return func(uc *PlacePixel) { uc.verify = enabled }
}

func NewPlacePixel(api ports.CanvasAPI, opts ...PlacePixelOption) *PlacePixel {
	uc := &PlacePixel{api: api}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *PlacePixel) Execute(ctx context.Context, p domain.Pixel) (PlaceReport, error) {
	size, err := uc.api.Size(ctx)
	if err != nil {
		return PlaceReport{}, err
	}

	if !size.Contains(p.X, p.Y) {
		return PlaceReport{}, &domain.OpError{
			Op:   "usecase.place_pixel",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("(%d, %d) is outside the %dx%d canvas: %w", p.X, p.Y, size.Width, size.Height, domain.ErrInvalidInput),
		}
	}

	msg, err := uc.api.SetPixel(ctx, p)
	if err != nil {
		return PlaceReport{}, err
	}

	report := PlaceReport{Message: msg}
	if !uc.verify {
		return report, nil
	}

	got, err := uc.api.Pixel(ctx, p.X, p.Y)
	if err != nil {
		return report, err
	}
	report.Checked = true
	report.Observed = got.RGB
	report.Verified = got.RGB == p.RGB
	return report, nil
}
