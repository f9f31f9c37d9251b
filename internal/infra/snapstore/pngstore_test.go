package snapstore

import (
	"bufio"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/purefunctor/pixels/internal/domain"
)

func testCanvas(t *testing.T) domain.Canvas {
	t.Helper()
	c, err := domain.DecodeCanvas(domain.CanvasSize{Width: 2, Height: 1}, []byte{
		0xff, 0x00, 0x00,
		0x00, 0xff, 0x00,
	})
	if err != nil {
		t.Fatalf("failed to build canvas: %v", err)
	}
	return c
}

func TestSaveWritesDecodablePNG(t *testing.T) {
	root := t.TempDir()
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewPNGStore(root, domain.DefaultConfig(),
		WithNow(func() time.Time { return fixed }),
		WithSuffix(func() string { return "abcd1234" }),
	)

	id, err := store.Save(testCanvas(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "20240601T120000Z_abcd1234" {
		t.Fatalf("unexpected id: %s", id)
	}

	path := filepath.Join(root, "snapshots", id+".png")
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("snapshot file missing: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("snapshot is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("unexpected image bounds: %v", img.Bounds())
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("tmp file left behind")
	}
}

func TestSaveAppendsIndex(t *testing.T) {
	root := t.TempDir()
	store := NewPNGStore(root, domain.DefaultConfig())

	if _, err := store.Save(testCanvas(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Save(testCanvas(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(filepath.Join(root, "snapshots", "index.jsonl"))
	if err != nil {
		t.Fatalf("index missing: %v", err)
	}
	defer f.Close()

	lines := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry struct {
			ID     string `json:"id"`
			File   string `json:"file"`
			Width  int    `json:"width"`
			Height int    `json:"height"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("bad index line: %v", err)
		}
		if entry.Width != 2 || entry.Height != 1 {
			t.Fatalf("unexpected index entry: %+v", entry)
		}
		lines++
	}
	if lines != 2 {
		t.Fatalf("expected 2 index lines, got %d", lines)
	}
}

func TestListMatchesPattern(t *testing.T) {
	root := t.TempDir()
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	store := NewPNGStore(root, domain.DefaultConfig(),
		WithNow(func() time.Time {
			n++
			return fixed.Add(time.Duration(n) * time.Second)
		}),
	)

	for i := 0; i < 3; i++ {
		if _, err := store.Save(testCanvas(t)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	all, err := store.List("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(all))
	}

	day, err := store.List("20240601*.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(day) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(day))
	}

	none, err := store.List("19990101*.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %d", len(none))
	}
}

func TestListMissingDir(t *testing.T) {
	store := NewPNGStore(t.TempDir(), domain.DefaultConfig())

	got, err := store.List("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty listing, got %v", got)
	}
}
