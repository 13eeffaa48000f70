package ui

import (
	"time"

	"github.com/desertthunder/focusdeck/internal/models"
)

// tickMsg drives the pomodoro countdown, one per second.
type tickMsg time.Time

type playlistsFetchedMsg struct {
	playlists []models.Playlist
	err       error
}

// videosFetchedMsg carries the playlist id the fetch was issued for so a late
// response can be matched against the current selection.
type videosFetchedMsg struct {
	playlistID int64
	videos     []models.PlaylistVideo
	err        error
}

type playlistCreatedMsg struct {
	playlist *models.Playlist
	err      error
}

type playlistDeletedMsg struct {
	id  int64
	err error
}

type videoAddedMsg struct {
	video *models.PlaylistVideo
	err   error
}

type videoDeletedMsg struct {
	id  int64
	err error
}
