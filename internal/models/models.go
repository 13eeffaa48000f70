package models

import (
	"strings"
	"time"

	"github.com/desertthunder/focusdeck/internal/shared"
)

// User represents an account row. PasswordHash never leaves the server.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Validate checks required user fields.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" || strings.TrimSpace(u.Email) == "" {
		return shared.ErrValidation
	}
	if u.PasswordHash == "" {
		return shared.ErrValidation
	}
	return nil
}

// Playlist represents a named video list owned by a user.
type Playlist struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

// Validate checks required playlist fields.
func (p *Playlist) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return shared.ErrValidation
	}
	return nil
}

// PlaylistVideo represents a YouTube URL belonging to a playlist.
//
// Title is optional; callers fall back to [PlaylistVideo.Label] for display.
type PlaylistVideo struct {
	ID         int64  `json:"id"`
	PlaylistID int64  `json:"playlist_id"`
	YoutubeURL string `json:"youtube_url"`
	Title      string `json:"title"`
}

// Validate checks required video fields.
func (v *PlaylistVideo) Validate() error {
	if v.PlaylistID == 0 || strings.TrimSpace(v.YoutubeURL) == "" {
		return shared.ErrValidation
	}
	return nil
}

// Label returns the display title, deriving one from the URL when unset.
func (v *PlaylistVideo) Label() string {
	if v.Title != "" {
		return v.Title
	}
	return "Untitled Video (" + v.YoutubeURL + ")"
}

// Rect is per-widget geometry persisted client-side between sessions.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
	Z      int `json:"zIndex"`
}

// TodoItem is a to-do entry. Held in memory only; reset on restart.
type TodoItem struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}
