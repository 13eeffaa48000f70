package layout

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/desertthunder/focusdeck/internal/models"
	"github.com/desertthunder/focusdeck/internal/shared"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(t.TempDir(), shared.NewLogger(io.Discard))
}

func TestStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	def := models.Rect{X: 0, Y: 0, Width: 30, Height: 10, Z: 1}

	saved := models.Rect{X: 12, Y: 4, Width: 44, Height: 16, Z: 3}
	store.Save("pomodoro", saved)

	got := store.Load("pomodoro", def)
	if got != saved {
		t.Errorf("Load() = %+v, want %+v", got, saved)
	}
}

func TestStoreMissingKeyReturnsDefault(t *testing.T) {
	store := newTestStore(t)
	def := models.Rect{X: 5, Y: 5, Width: 20, Height: 8, Z: 2}

	got := store.Load("todo", def)
	if got != def {
		t.Errorf("Load() = %+v, want default %+v", got, def)
	}
}

func TestStoreCorruptDataReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, shared.NewLogger(io.Discard))
	def := models.Rect{X: 1, Y: 2, Width: 30, Height: 10, Z: 1}

	if err := os.WriteFile(filepath.Join(dir, "playlist.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to plant corrupt state: %v", err)
	}

	got := store.Load("playlist", def)
	if got != def {
		t.Errorf("Load() = %+v, want default %+v", got, def)
	}
}

func TestStoreKeysAreIndependent(t *testing.T) {
	store := newTestStore(t)
	def := models.Rect{Width: 10, Height: 5}

	store.Save("pomodoro", models.Rect{X: 1, Width: 10, Height: 5})
	store.Save("todo", models.Rect{X: 2, Width: 10, Height: 5})

	if got := store.Load("pomodoro", def); got.X != 1 {
		t.Errorf("pomodoro X = %d, want 1", got.X)
	}
	if got := store.Load("todo", def); got.X != 2 {
		t.Errorf("todo X = %d, want 2", got.X)
	}
}
