package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/focusdeck/internal/models"
	"github.com/desertthunder/focusdeck/internal/player"
)

var (
	_ list.Item = playlistItem{}
	_ list.Item = videoItem{}
)

// playlistItem wraps [models.Playlist] to implement [list.Item].
type playlistItem struct {
	playlist models.Playlist
}

func (i playlistItem) FilterValue() string { return i.playlist.Name }
func (i playlistItem) Title() string       { return i.playlist.Name }
func (i playlistItem) Description() string {
	return fmt.Sprintf("playlist #%d", i.playlist.ID)
}

// videoItem wraps [models.PlaylistVideo] to implement [list.Item].
type videoItem struct {
	video models.PlaylistVideo
}

func (i videoItem) FilterValue() string { return i.video.Label() }
func (i videoItem) Title() string       { return i.video.Label() }
func (i videoItem) Description() string {
	if id := player.ExtractVideoID(i.video.YoutubeURL); id != "" {
		return id
	}
	return i.video.YoutubeURL
}
