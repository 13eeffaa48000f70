// Package selection tracks which video is currently intended to play.
//
// The [Controller] is the single source of truth for the background URL. It
// mediates between the playlist API and the player: selecting a playlist
// auto-plays its first video, adding a video plays it immediately, and an
// emptied playlist stops playback. Responses arriving after the user has
// moved on to another playlist are discarded by subject comparison.
package selection

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/focusdeck/internal/client"
	"github.com/desertthunder/focusdeck/internal/models"
)

// Consumer receives the raw URL intended to play; "" means stop and clear.
type Consumer func(url string)

// Controller owns the selected playlist and video.
type Controller struct {
	api      client.PlaylistAPI
	logger   *log.Logger
	consumer Consumer

	selectedPlaylist int64
	videos           []models.PlaylistVideo
	currentURL       string
}

// NewController creates a Controller notifying the given consumer.
func NewController(api client.PlaylistAPI, logger *log.Logger, consumer Consumer) *Controller {
	return &Controller{api: api, logger: logger, consumer: consumer}
}

func (c *Controller) notify() {
	if c.consumer != nil {
		c.consumer(c.currentURL)
	}
}

// SelectPlaylist records the playlist the user switched to. The video list is
// delivered separately through [Controller.ApplyVideos] once fetched.
func (c *Controller) SelectPlaylist(id int64) {
	c.selectedPlaylist = id
}

// SelectedPlaylist returns the currently selected playlist id, 0 for none.
func (c *Controller) SelectedPlaylist() int64 {
	return c.selectedPlaylist
}

// ClearPlaylist drops the selection and video list and stops playback. Used
// when the selected playlist is deleted or disappears.
func (c *Controller) ClearPlaylist() {
	c.selectedPlaylist = 0
	c.videos = nil
	c.currentURL = ""
	c.notify()
}

// ApplyVideos installs a fetched video list if it still matches the selected
// playlist; late responses for a stale playlist are discarded.
//
// A non-empty list auto-selects its first video. An empty list clears the
// current video and signals the player to stop.
func (c *Controller) ApplyVideos(playlistID int64, videos []models.PlaylistVideo) bool {
	if playlistID != c.selectedPlaylist {
		c.logger.Debug("discarding stale video list", "playlist", playlistID, "selected", c.selectedPlaylist)
		return false
	}

	c.videos = videos
	if len(videos) > 0 {
		c.currentURL = videos[0].YoutubeURL
	} else {
		c.currentURL = ""
	}
	c.notify()
	return true
}

// Refresh fetches the selected playlist's videos and applies them.
func (c *Controller) Refresh(ctx context.Context) error {
	if c.selectedPlaylist == 0 {
		c.ClearPlaylist()
		return nil
	}

	videos, err := c.api.ListVideos(ctx, c.selectedPlaylist)
	if err != nil {
		return err
	}

	c.ApplyVideos(c.selectedPlaylist, videos)
	return nil
}

// SelectVideo sets the current video from an explicit user choice.
func (c *Controller) SelectVideo(url string) {
	c.currentURL = url
	c.notify()
}

// VideoAdded registers a newly created video and plays it immediately.
func (c *Controller) VideoAdded(video models.PlaylistVideo) {
	if video.PlaylistID != c.selectedPlaylist {
		return
	}
	c.videos = append(c.videos, video)
	c.SelectVideo(video.YoutubeURL)
}

// VideoDeleted removes a video from the local list.
//
// If the deleted video was the current one, the selection is left stale on
// purpose until the next refresh; there is no auto re-advance.
func (c *Controller) VideoDeleted(id int64) {
	kept := c.videos[:0]
	for _, v := range c.videos {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	c.videos = kept
}

// CurrentURL returns the URL intended to play, "" when nothing is selected.
func (c *Controller) CurrentURL() string {
	return c.currentURL
}

// Videos returns the cached video list for the selected playlist.
func (c *Controller) Videos() []models.PlaylistVideo {
	return c.videos
}
