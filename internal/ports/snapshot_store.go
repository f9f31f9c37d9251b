package ports

import "github.com/purefunctor/pixels/internal/domain"

// SnapshotStore persists canvas snapshots for later inspection.
type SnapshotStore interface {
	// Save writes the canvas and returns the snapshot ID.
	Save(c domain.Canvas) (string, error)

	// List returns snapshot filenames matching a glob pattern. An empty
	// pattern matches everything.
	List(pattern string) ([]string, error)
}
