package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/purefunctor/pixels/internal/domain"
	"github.com/purefunctor/pixels/internal/ports"
)

const defaultInspectConcurrency = 4

// InspectPixels reads several pixels concurrently. Results keep the order of
// the input coordinates.
type InspectPixels struct {
	api         ports.CanvasAPI
	concurrency int
}

type InspectPixelsOption func(*InspectPixels)

// WithConcurrency bounds how many reads run in flight at once.
func WithConcurrency(n int) InspectPixelsOption {
	return func(uc *InspectPixels) { uc.concurrency = n }
}

func NewInspectPixels(api ports.CanvasAPI, opts ...InspectPixelsOption) *InspectPixels {
	uc := &InspectPixels{
		api:         api,
		concurrency: defaultInspectConcurrency,
	}
	for _, opt := range opts {
		opt(uc)
	}
	if uc.concurrency < 1 {
		uc.concurrency = 1
	}
	return uc
}

func (uc *InspectPixels) Execute(ctx context.Context, points []domain.Point) ([]domain.Pixel, error) {
	results := make([]domain.Pixel, len(points))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)

	for i, pt := range points {
		i, pt := i, pt
		g.Go(func() error {
			p, err := uc.api.Pixel(gctx, pt.X, pt.Y)
			if err != nil {
				return err
			}
			results[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
