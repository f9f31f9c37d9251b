package ports

import (
	"context"

	"github.com/purefunctor/pixels/internal/domain"
)

// CanvasAPI is the client-side view of the Pixels canvas endpoints.
type CanvasAPI interface {
	// Size reports the canvas extent.
	Size(ctx context.Context) (domain.CanvasSize, error)

	// Canvas fetches the full canvas for a known size.
	Canvas(ctx context.Context, size domain.CanvasSize) (domain.Canvas, error)

	// Pixel reads a single pixel.
	Pixel(ctx context.Context, x, y int) (domain.Pixel, error)

	// SetPixel places a pixel and returns the API acknowledgment message.
	SetPixel(ctx context.Context, p domain.Pixel) (string, error)
}

// LimitReporter exposes the last observed rate-limit state per endpoint.
type LimitReporter interface {
	Limits() map[string]domain.Limits
}
