// Package layout persists per-widget geometry between sessions.
//
// Each widget key maps to one JSON file under the state directory, mirroring
// the browser localStorage the dashboard originally used. The store is
// strictly best-effort: reads fall back to the supplied default and writes
// are last-write-wins; neither ever returns an error to the caller.
package layout

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/focusdeck/internal/models"
)

// Store reads and writes [models.Rect] records keyed by widget name.
type Store struct {
	dir    string
	logger *log.Logger
}

// NewStore creates a Store rooted at dir, creating it if needed. A failure to
// create the directory is logged and leaves the store in read-only
// fall-through mode.
func NewStore(dir string, logger *log.Logger) *Store {
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Warn("failed to create state directory", "dir", dir, "error", err)
	}
	return &Store{dir: dir, logger: logger}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load returns the stored geometry for key, or def when the record is absent
// or unreadable. Corrupt data is logged, never surfaced.
func (s *Store) Load(key string, def models.Rect) models.Rect {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read widget state", "key", key, "error", err)
		}
		return def
	}

	var rect models.Rect
	if err := json.Unmarshal(data, &rect); err != nil {
		s.logger.Warn("corrupt widget state, using default", "key", key, "error", err)
		return def
	}

	return rect
}

// Save writes the geometry for key. Failures are logged and dropped.
func (s *Store) Save(key string, rect models.Rect) {
	data, err := json.Marshal(rect)
	if err != nil {
		s.logger.Warn("failed to encode widget state", "key", key, "error", err)
		return
	}

	if err := os.WriteFile(s.path(key), data, 0644); err != nil {
		s.logger.Warn("failed to save widget state", "key", key, "error", err)
	}
}
