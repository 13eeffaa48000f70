package selection

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/desertthunder/focusdeck/internal/models"
	"github.com/desertthunder/focusdeck/internal/shared"
	tu "github.com/desertthunder/focusdeck/internal/testing"
)

// notifications records every consumer call.
type notifications struct {
	urls []string
}

func (n *notifications) consume(url string) {
	n.urls = append(n.urls, url)
}

func (n *notifications) last(t *testing.T) string {
	t.Helper()
	if len(n.urls) == 0 {
		t.Fatal("consumer was never notified")
	}
	return n.urls[len(n.urls)-1]
}

func newTestController(api *tu.MockPlaylistAPI) (*Controller, *notifications) {
	n := &notifications{}
	c := NewController(api, shared.NewLogger(io.Discard), n.consume)
	return c, n
}

func TestApplyVideos(t *testing.T) {
	t.Run("auto-selects the first video", func(t *testing.T) {
		c, n := newTestController(&tu.MockPlaylistAPI{})
		c.SelectPlaylist(1)

		applied := c.ApplyVideos(1, []models.PlaylistVideo{
			{ID: 10, PlaylistID: 1, YoutubeURL: "https://youtu.be/aaaaaaaaaaa"},
			{ID: 11, PlaylistID: 1, YoutubeURL: "https://youtu.be/bbbbbbbbbbb"},
		})

		if !applied {
			t.Fatal("ApplyVideos should accept a matching playlist")
		}
		if got := n.last(t); got != "https://youtu.be/aaaaaaaaaaa" {
			t.Errorf("notified url = %q, want first video", got)
		}
		if c.CurrentURL() != "https://youtu.be/aaaaaaaaaaa" {
			t.Errorf("CurrentURL() = %q, want first video", c.CurrentURL())
		}
	})

	t.Run("empty list clears the current video", func(t *testing.T) {
		c, n := newTestController(&tu.MockPlaylistAPI{})
		c.SelectPlaylist(1)
		c.ApplyVideos(1, []models.PlaylistVideo{{ID: 10, PlaylistID: 1, YoutubeURL: "https://youtu.be/aaaaaaaaaaa"}})

		c.ApplyVideos(1, nil)

		if got := n.last(t); got != "" {
			t.Errorf("notified url = %q, want empty", got)
		}
		if c.CurrentURL() != "" {
			t.Errorf("CurrentURL() = %q, want empty", c.CurrentURL())
		}
	})

	t.Run("stale response is discarded", func(t *testing.T) {
		c, n := newTestController(&tu.MockPlaylistAPI{})
		c.SelectPlaylist(1)
		c.ApplyVideos(1, []models.PlaylistVideo{{ID: 10, PlaylistID: 1, YoutubeURL: "https://youtu.be/aaaaaaaaaaa"}})

		// the user has moved on before playlist 1's second fetch lands
		c.SelectPlaylist(2)
		applied := c.ApplyVideos(1, []models.PlaylistVideo{{ID: 99, PlaylistID: 1, YoutubeURL: "https://youtu.be/zzzzzzzzzzz"}})

		if applied {
			t.Error("late response for a stale playlist should be discarded")
		}
		if got := n.last(t); got != "https://youtu.be/aaaaaaaaaaa" {
			t.Errorf("notified url = %q, selection should be untouched", got)
		}
	})
}

func TestRefresh(t *testing.T) {
	t.Run("fetches and applies the selected playlist", func(t *testing.T) {
		api := &tu.MockPlaylistAPI{
			VideosByID: map[int64][]models.PlaylistVideo{
				3: {{ID: 30, PlaylistID: 3, YoutubeURL: "https://youtu.be/ccccccccccc"}},
			},
		}
		c, _ := newTestController(api)
		c.SelectPlaylist(3)

		if err := c.Refresh(context.Background()); err != nil {
			t.Fatalf("Refresh() error: %v", err)
		}
		if c.CurrentURL() != "https://youtu.be/ccccccccccc" {
			t.Errorf("CurrentURL() = %q", c.CurrentURL())
		}
	})

	t.Run("no selection clears playback", func(t *testing.T) {
		c, n := newTestController(&tu.MockPlaylistAPI{})

		if err := c.Refresh(context.Background()); err != nil {
			t.Fatalf("Refresh() error: %v", err)
		}
		if got := n.last(t); got != "" {
			t.Errorf("notified url = %q, want empty", got)
		}
	})

	t.Run("fetch failure surfaces", func(t *testing.T) {
		wantErr := errors.New("boom")
		c, _ := newTestController(&tu.MockPlaylistAPI{Err: wantErr})
		c.SelectPlaylist(1)

		if err := c.Refresh(context.Background()); !errors.Is(err, wantErr) {
			t.Errorf("Refresh() error = %v, want %v", err, wantErr)
		}
	})
}

func TestVideoAdded(t *testing.T) {
	t.Run("plays the new video immediately", func(t *testing.T) {
		c, n := newTestController(&tu.MockPlaylistAPI{})
		c.SelectPlaylist(1)
		c.ApplyVideos(1, nil)

		c.VideoAdded(models.PlaylistVideo{ID: 5, PlaylistID: 1, YoutubeURL: "https://youtu.be/ddddddddddd"})

		if got := n.last(t); got != "https://youtu.be/ddddddddddd" {
			t.Errorf("notified url = %q, want the new video", got)
		}
		if len(c.Videos()) != 1 {
			t.Errorf("videos = %d, want 1", len(c.Videos()))
		}
	})

	t.Run("ignores videos for other playlists", func(t *testing.T) {
		c, _ := newTestController(&tu.MockPlaylistAPI{})
		c.SelectPlaylist(1)

		c.VideoAdded(models.PlaylistVideo{ID: 5, PlaylistID: 2, YoutubeURL: "https://youtu.be/ddddddddddd"})

		if len(c.Videos()) != 0 {
			t.Errorf("videos = %d, want 0", len(c.Videos()))
		}
	})
}

func TestVideoDeleted(t *testing.T) {
	c, _ := newTestController(&tu.MockPlaylistAPI{})
	c.SelectPlaylist(1)
	c.ApplyVideos(1, []models.PlaylistVideo{
		{ID: 10, PlaylistID: 1, YoutubeURL: "https://youtu.be/aaaaaaaaaaa"},
		{ID: 11, PlaylistID: 1, YoutubeURL: "https://youtu.be/bbbbbbbbbbb"},
	})

	c.VideoDeleted(10)

	if len(c.Videos()) != 1 || c.Videos()[0].ID != 11 {
		t.Errorf("videos = %+v, want only id 11", c.Videos())
	}
	// the current url stays until the next refresh
	if c.CurrentURL() != "https://youtu.be/aaaaaaaaaaa" {
		t.Errorf("CurrentURL() = %q, want unchanged", c.CurrentURL())
	}
}

func TestClearPlaylist(t *testing.T) {
	c, n := newTestController(&tu.MockPlaylistAPI{})
	c.SelectPlaylist(1)
	c.ApplyVideos(1, []models.PlaylistVideo{{ID: 10, PlaylistID: 1, YoutubeURL: "https://youtu.be/aaaaaaaaaaa"}})

	c.ClearPlaylist()

	if c.SelectedPlaylist() != 0 {
		t.Errorf("SelectedPlaylist() = %d, want 0", c.SelectedPlaylist())
	}
	if got := n.last(t); got != "" {
		t.Errorf("notified url = %q, want empty", got)
	}
}
