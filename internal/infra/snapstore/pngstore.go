package snapstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"

	"github.com/purefunctor/pixels/internal/domain"
	"github.com/purefunctor/pixels/internal/ports"
)

const defaultSnapshotsDir = "snapshots"

// PNGStore persists canvas snapshots as PNG files alongside a JSONL index.
type PNGStore struct {
	rootDir    string
	dirName    string
	writeIndex bool
	now        func() time.Time
	newSuffix  func() string
}

type Option func(*PNGStore)

// WithIndex enables the snapshots/index.jsonl sidecar.
func WithIndex(enabled bool) Option {
	return func(s *PNGStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *PNGStore) { s.now = now }
}

// WithSuffix overrides ID suffix generation (useful for tests).
func WithSuffix(gen func() string) Option {
	return func(s *PNGStore) { s.newSuffix = gen }
}

func NewPNGStore(root string, cfg domain.Config, opts ...Option) *PNGStore {
	dirName := cfg.Paths.SnapshotsDir
	if strings.TrimSpace(dirName) == "" {
		dirName = defaultSnapshotsDir
	}

	s := &PNGStore{
		rootDir:    root,
		dirName:    dirName,
		writeIndex: true,
		now:        time.Now,
		newSuffix:  shortUUID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.SnapshotStore = (*PNGStore)(nil)

// Save encodes the canvas as PNG and writes it atomically. The snapshot ID
// combines a UTC timestamp with a short random suffix so snapshots taken in
// the same second do not collide.
func (s *PNGStore) Save(c domain.Canvas) (string, error) {
	dir := filepath.Join(s.rootDir, s.dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "snapstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := s.now().UTC()
	id := fmt.Sprintf("%s_%s", ts.Format("20060102T150405Z"), s.newSuffix())
	filename := id + ".png"
	path := filepath.Join(dir, filename)

	var buf bytes.Buffer
	if err := png.Encode(&buf, c.ToImage()); err != nil {
		return "", &domain.OpError{
			Op:   "snapstore.encode",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "snapstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "snapstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filename, c.Size(), ts)
	}

	return id, nil
}

// List returns snapshot filenames under the store directory matching the
// given glob pattern. An empty pattern matches every PNG.
func (s *PNGStore) List(pattern string) ([]string, error) {
	if strings.TrimSpace(pattern) == "" {
		pattern = "*.png"
	}

	dir := filepath.Join(s.rootDir, s.dirName)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, &domain.OpError{
			Op:   "snapstore.list",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	out := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ok, err := doublestar.Match(pattern, e.Name())
		if err != nil {
			return nil, &domain.OpError{
				Op:   "snapstore.list",
				Kind: domain.KindInvalidInput,
				Err:  fmt.Errorf("bad pattern %q: %w", pattern, err),
			}
		}
		if ok {
			out = append(out, e.Name())
		}
	}

	sort.Strings(out)
	return out, nil
}

func (s *PNGStore) appendIndex(dir, id, filename string, size domain.CanvasSize, ts time.Time) error {
	type idx struct {
		ID      string    `json:"id"`
		File    string    `json:"file"`
		Width   int       `json:"width"`
		Height  int       `json:"height"`
		TakenAt time.Time `json:"taken_at"`
	}
	line, err := json.Marshal(idx{
		ID:      id,
		File:    filename,
		Width:   size.Width,
		Height:  size.Height,
		TakenAt: ts,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}

func shortUUID() string {
	return uuid.NewString()[:8]
}
