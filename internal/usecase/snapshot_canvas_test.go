package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purefunctor/pixels/internal/domain"
)

func TestSnapshotCanvas(t *testing.T) {
	api := newFakeCanvasAPI(4, 4)
	store := &fakeSnapshotStore{nextID: "snap-1"}

	id, canvas, err := NewSnapshotCanvas(api, store).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "snap-1", id)
	assert.Equal(t, domain.CanvasSize{Width: 4, Height: 4}, canvas.Size())
	require.Len(t, store.saved, 1)
}

func TestSnapshotCanvasStoreError(t *testing.T) {
	api := newFakeCanvasAPI(4, 4)
	store := &fakeSnapshotStore{err: errors.New("disk full")}

	_, _, err := NewSnapshotCanvas(api, store).Execute(context.Background())
	require.Error(t, err)
}
