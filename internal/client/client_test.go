package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/focusdeck/internal/client"
	"github.com/desertthunder/focusdeck/internal/shared"
	tu "github.com/desertthunder/focusdeck/internal/testing"
)

func testClient(t *testing.T, handler http.Handler) *client.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := client.NewClient(srv.URL, srv.Client(), shared.NewLogger(io.Discard))
	c.SetSession(&client.Session{Token: "token", UserID: 1, ExpiresAt: time.Now().Add(time.Hour)})
	return c
}

func TestListPlaylists(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer token" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		if r.URL.Path != "/api/playlists" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "user_id": 1, "name": "lofi"},
			{"id": 2, "user_id": 1, "name": "rain"},
		})
	}))

	playlists, err := c.ListPlaylists(context.Background())
	if err != nil {
		t.Fatalf("ListPlaylists() error: %v", err)
	}

	if len(playlists) != 2 {
		t.Fatalf("got %d playlists, want 2", len(playlists))
	}
	if playlists[0].Name != "lofi" || playlists[0].ID != 1 {
		t.Errorf("playlists[0] = %+v", playlists[0])
	}
}

func TestCreatePlaylist(t *testing.T) {
	t.Run("posts the name and returns the new id", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["name"] != "focus" {
				t.Errorf("name = %q, want focus", body["name"])
			}
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]int64{"id": 7})
		}))

		playlist, err := c.CreatePlaylist(context.Background(), "focus")
		if err != nil {
			t.Fatalf("CreatePlaylist() error: %v", err)
		}
		if playlist.ID != 7 || playlist.Name != "focus" {
			t.Errorf("playlist = %+v", playlist)
		}
	})

	t.Run("rejects an empty name locally", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request should be sent")
		}))

		if _, err := c.CreatePlaylist(context.Background(), "  "); !errors.Is(err, shared.ErrValidation) {
			t.Errorf("error = %v, want ErrValidation", err)
		}
	})
}

func TestAddVideo(t *testing.T) {
	t.Run("sends the wire field names", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			if _, ok := body["playlistId"]; !ok {
				t.Error("body should carry playlistId")
			}
			if _, ok := body["youtube_url"]; !ok {
				t.Error("body should carry youtube_url")
			}
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]int64{"id": 3})
		}))

		video, err := c.AddVideo(context.Background(), 1, "https://youtu.be/dQw4w9WgXcQ", "")
		if err != nil {
			t.Fatalf("AddVideo() error: %v", err)
		}
		if video.ID != 3 || video.PlaylistID != 1 {
			t.Errorf("video = %+v", video)
		}
	})

	t.Run("rejects urls without a video id locally", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request should be sent")
		}))

		if _, err := c.AddVideo(context.Background(), 1, "https://example.com/clip", ""); !errors.Is(err, shared.ErrInvalidURL) {
			t.Errorf("error = %v, want ErrInvalidURL", err)
		}
	})
}

func TestRejectedTokenClearsSession(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid token"})
	}))

	_, err := c.ListPlaylists(context.Background())
	if !errors.Is(err, shared.ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
	if c.Session() != nil {
		t.Error("session should be cleared after a token rejection")
	}
}

func TestNotFound(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Playlist not found"})
	}))

	if err := c.DeletePlaylist(context.Background(), 99); !errors.Is(err, shared.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestTransportFailure(t *testing.T) {
	httpClient := &http.Client{Transport: tu.NewMockRoundTripper(nil, errors.New("connection refused"))}
	c := client.NewClient("http://127.0.0.1:1", httpClient, shared.NewLogger(io.Discard))

	if _, err := c.ListPlaylists(context.Background()); !errors.Is(err, shared.ErrRequestFailed) {
		t.Errorf("error = %v, want ErrRequestFailed", err)
	}
}

func TestLogin(t *testing.T) {
	t.Run("installs a session on success", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "" {
				t.Error("credential endpoints must not carry a bearer token")
			}
			json.NewEncoder(w).Encode(map[string]any{
				"success": true, "token": "fresh", "username": "dt", "userId": 9,
			})
		}))
		c.SetSession(nil)

		session, err := c.Login(context.Background(), "dt@example.com", "hunter22")
		if err != nil {
			t.Fatalf("Login() error: %v", err)
		}
		if session.Token != "fresh" || session.UserID != 9 {
			t.Errorf("session = %+v", session)
		}
		if c.Session() != session {
			t.Error("login should install the session on the client")
		}
	})

	t.Run("decodes the message from a 400 rejection", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Wrong password"})
		}))

		_, err := c.Login(context.Background(), "dt@example.com", "nope")
		if !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Fatalf("error = %v, want ErrNotAuthenticated", err)
		}
		if got := err.Error(); !strings.Contains(got, "Wrong password") {
			t.Errorf("error = %q, want the server message", got)
		}
	})
}

func TestRegister(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "User already exists"})
	}))

	err := c.Register(context.Background(), "dt", "dt@example.com", "hunter22")
	if !errors.Is(err, shared.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
	if got := err.Error(); !strings.Contains(got, "User already exists") {
		t.Errorf("error = %q, want the server message", got)
	}
}

func TestSessionPersistence(t *testing.T) {
	path := t.TempDir() + "/session.json"
	session := &client.Session{
		Token:     "token",
		UserID:    4,
		Username:  "dt",
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(client.SessionTTL),
	}

	if err := client.SaveSession(path, session); err != nil {
		t.Fatalf("SaveSession() error: %v", err)
	}

	loaded, err := client.LoadSession(path)
	if err != nil {
		t.Fatalf("LoadSession() error: %v", err)
	}
	if loaded.Token != "token" || loaded.UserID != 4 {
		t.Errorf("loaded = %+v", loaded)
	}
	if !loaded.Valid() {
		t.Error("freshly saved session should be valid")
	}

	if err := client.ClearSession(path); err != nil {
		t.Fatalf("ClearSession() error: %v", err)
	}
	if _, err := client.LoadSession(path); !errors.Is(err, shared.ErrNotAuthenticated) {
		t.Errorf("error = %v, want ErrNotAuthenticated", err)
	}

	// clearing twice is fine
	if err := client.ClearSession(path); err != nil {
		t.Errorf("ClearSession() second call error: %v", err)
	}
}

func TestSessionValid(t *testing.T) {
	tc := []struct {
		name    string
		session *client.Session
		want    bool
	}{
		{name: "nil", session: nil, want: false},
		{name: "no token", session: &client.Session{ExpiresAt: time.Now().Add(time.Hour)}, want: false},
		{name: "expired", session: &client.Session{Token: "t", ExpiresAt: time.Now().Add(-time.Minute)}, want: false},
		{name: "live", session: &client.Session{Token: "t", ExpiresAt: time.Now().Add(time.Hour)}, want: true},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}
