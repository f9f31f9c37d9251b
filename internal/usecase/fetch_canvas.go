package usecase

import (
	"context"

	"github.com/purefunctor/pixels/internal/domain"
	"github.com/purefunctor/pixels/internal/ports"
)

// FetchCanvas retrieves the full canvas: the size endpoint first, then the
// binary pixel stream decoded against it.
type FetchCanvas struct {
	api ports.CanvasAPI
}

func NewFetchCanvas(api ports.CanvasAPI) *FetchCanvas {
	return &FetchCanvas{api: api}
}

func (uc *FetchCanvas) Execute(ctx context.Context) (domain.Canvas, error) {
	size, err := uc.api.Size(ctx)
	if err != nil {
		return domain.Canvas{}, err
	}
	return uc.api.Canvas(ctx, size)
}
