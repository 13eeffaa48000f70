// package testing contains shared testing utilities
package testing

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/desertthunder/focusdeck/internal/client"
	"github.com/desertthunder/focusdeck/internal/models"
	"github.com/desertthunder/focusdeck/internal/shared"
)

// MockPlaylistAPI is a scriptable test double for [client.PlaylistAPI].
//
// The zero value serves empty successful responses; tests populate fields or
// override individual funcs.
type MockPlaylistAPI struct {
	Playlists   []models.Playlist
	VideosByID  map[int64][]models.PlaylistVideo
	Err         error
	ListVideosF func(ctx context.Context, playlistID int64) ([]models.PlaylistVideo, error)
	nextID      int64
}

var _ client.PlaylistAPI = (*MockPlaylistAPI)(nil)

func (m *MockPlaylistAPI) ListPlaylists(ctx context.Context) ([]models.Playlist, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Playlists, nil
}

func (m *MockPlaylistAPI) CreatePlaylist(ctx context.Context, name string) (*models.Playlist, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.nextID++
	playlist := models.Playlist{ID: m.nextID, Name: name}
	m.Playlists = append(m.Playlists, playlist)
	return &playlist, nil
}

func (m *MockPlaylistAPI) DeletePlaylist(ctx context.Context, id int64) error {
	if m.Err != nil {
		return m.Err
	}
	kept := m.Playlists[:0]
	for _, p := range m.Playlists {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	m.Playlists = kept
	if m.VideosByID != nil {
		delete(m.VideosByID, id)
	}
	return nil
}

func (m *MockPlaylistAPI) ListVideos(ctx context.Context, playlistID int64) ([]models.PlaylistVideo, error) {
	if m.ListVideosF != nil {
		return m.ListVideosF(ctx, playlistID)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.VideosByID[playlistID], nil
}

func (m *MockPlaylistAPI) AddVideo(ctx context.Context, playlistID int64, youtubeURL, title string) (*models.PlaylistVideo, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.nextID++
	video := models.PlaylistVideo{ID: m.nextID, PlaylistID: playlistID, YoutubeURL: youtubeURL, Title: title}
	if m.VideosByID == nil {
		m.VideosByID = map[int64][]models.PlaylistVideo{}
	}
	m.VideosByID[playlistID] = append(m.VideosByID[playlistID], video)
	return &video, nil
}

func (m *MockPlaylistAPI) DeleteVideo(ctx context.Context, id int64) error {
	if m.Err != nil {
		return m.Err
	}
	for playlistID, videos := range m.VideosByID {
		kept := videos[:0]
		for _, v := range videos {
			if v.ID != id {
				kept = append(kept, v)
			}
		}
		m.VideosByID[playlistID] = kept
	}
	return nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading a response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

var _ io.ReadCloser = (*FCloser)(nil)

// MustOpenDB opens an in-memory SQLite database with migrations applied.
func MustOpenDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// each pooled connection would get its own in-memory database
	db.SetMaxOpenConns(1)

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

// MustSeedUser inserts a user row and returns its id.
func MustSeedUser(t *testing.T, db *sql.DB, username, email, passwordHash string) int64 {
	t.Helper()
	result, err := db.Exec("INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)", username, email, passwordHash)
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get seeded user id: %v", err)
	}
	return id
}

// AssertErrorIs fails the test when err does not wrap target.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("got error %v, want %v", err, target)
	}
}
