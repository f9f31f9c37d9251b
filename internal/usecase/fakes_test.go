package usecase

import (
	"context"
	"sync"

	"github.com/purefunctor/pixels/internal/domain"
)

// fakeCanvasAPI is an in-memory CanvasAPI for usecase tests.
type fakeCanvasAPI struct {
	mu sync.Mutex

	size   domain.CanvasSize
	pixels map[domain.Point]domain.RGB

	sizeErr error
	getErr  error
	setErr  error

	// overwriteOnSet, when non-nil, replaces the stored color right after a
	// set, simulating another client racing on the shared canvas.
	overwriteOnSet *domain.RGB

	setCalls []domain.Pixel
	getCalls []domain.Point
}

func newFakeCanvasAPI(width, height int) *fakeCanvasAPI {
	return &fakeCanvasAPI{
		size:   domain.CanvasSize{Width: width, Height: height},
		pixels: map[domain.Point]domain.RGB{},
	}
}

func (f *fakeCanvasAPI) Size(_ context.Context) (domain.CanvasSize, error) {
	if f.sizeErr != nil {
		return domain.CanvasSize{}, f.sizeErr
	}
	return f.size, nil
}

func (f *fakeCanvasAPI) Canvas(_ context.Context, size domain.CanvasSize) (domain.Canvas, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixels := make([]domain.RGB, size.Area())
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			pixels[y*size.Width+x] = f.pixels[domain.Point{X: x, Y: y}]
		}
	}
	return domain.NewCanvas(size, pixels)
}

func (f *fakeCanvasAPI) Pixel(_ context.Context, x, y int) (domain.Pixel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return domain.Pixel{}, f.getErr
	}
	f.getCalls = append(f.getCalls, domain.Point{X: x, Y: y})
	return domain.Pixel{X: x, Y: y, RGB: f.pixels[domain.Point{X: x, Y: y}]}, nil
}

func (f *fakeCanvasAPI) SetPixel(_ context.Context, p domain.Pixel) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.setErr != nil {
		return "", f.setErr
	}
	f.setCalls = append(f.setCalls, p)
	f.pixels[domain.Point{X: p.X, Y: p.Y}] = p.RGB
	if f.overwriteOnSet != nil {
		f.pixels[domain.Point{X: p.X, Y: p.Y}] = *f.overwriteOnSet
	}
	return "pixel placed", nil
}

// fakeSnapshotStore records saved canvases.
type fakeSnapshotStore struct {
	saved  []domain.Canvas
	nextID string
	err    error
}

func (f *fakeSnapshotStore) Save(c domain.Canvas) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.saved = append(f.saved, c)
	return f.nextID, nil
}

func (f *fakeSnapshotStore) List(_ string) ([]string, error) {
	return nil, nil
}
