package usecase

import (
	"context"

	"github.com/purefunctor/pixels/internal/domain"
	"github.com/purefunctor/pixels/internal/ports"
)

// SnapshotCanvas fetches the canvas and persists it as a snapshot artifact.
type SnapshotCanvas struct {
	fetch *FetchCanvas
	store ports.SnapshotStore
}

func NewSnapshotCanvas(api ports.CanvasAPI, store ports.SnapshotStore) *SnapshotCanvas {
	return &SnapshotCanvas{
		fetch: NewFetchCanvas(api),
		store: store,
	}
}

func (uc *SnapshotCanvas) Execute(ctx context.Context) (string, domain.Canvas, error) {
	canvas, err := uc.fetch.Execute(ctx)
	if err != nil {
		return "", domain.Canvas{}, err
	}

	id, err := uc.store.Save(canvas)
	if err != nil {
		return "", domain.Canvas{}, err
	}
	return id, canvas, nil
}
