// Package player normalizes YouTube URLs and drives the background player
// through an opaque [Handle]. The adapter owns all interaction with the
// underlying player; callers never reach the handle directly.
package player

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
)

// videoIDPattern matches the 11 character video id in watch, share, embed,
// v/ and e/ style YouTube URLs.
var videoIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:[^/\n\s]+/\S+/|(?:v|e(?:mbed)?)/|\S*?[?&]v=)|youtu\.be/)([a-zA-Z0-9_-]{11})`)

// Playback state codes reported by the underlying player.
const (
	StateEnded     = 0
	StatePlaying   = 1
	StatePaused    = 2
	StateBuffering = 3
)

// ExtractVideoID returns the video id embedded in a YouTube URL, or "" when
// the URL does not contain one.
func ExtractVideoID(url string) string {
	if url == "" {
		return ""
	}
	match := videoIDPattern.FindStringSubmatch(url)
	if match == nil {
		return ""
	}
	return match[1]
}

// NormalizeToEmbed rewrites a YouTube URL into its embeddable form.
//
// Embed URLs pass through unchanged; youtu.be short links are rewritten in
// place; anything else with a recognizable video id becomes a canonical embed
// URL. Empty input stays empty, which callers treat as "clear the background".
func NormalizeToEmbed(url string) string {
	if url == "" {
		return ""
	}
	if strings.Contains(url, "embed") {
		return url
	}
	if strings.Contains(url, "youtu.be/") {
		return strings.Replace(url, "youtu.be/", "youtube.com/embed/", 1)
	}
	if id := ExtractVideoID(url); id != "" {
		return "https://www.youtube.com/embed/" + id
	}
	return url
}

// Handle is the control surface of the underlying embedded player.
type Handle interface {
	LoadVideo(embedURL string)
	Play()
	Pause()
	Stop()
	SetVolume(volume int)
}

// Adapter mediates between the dashboard and the background player.
//
// All control methods are silent no-ops until the player signals readiness.
type Adapter struct {
	handle    Handle
	logger    *log.Logger
	ready     bool
	isPlaying bool
	volume    int
}

// NewAdapter creates an Adapter over the given handle. The handle may be nil
// until [Adapter.Ready] is called.
func NewAdapter(handle Handle, logger *log.Logger) *Adapter {
	return &Adapter{handle: handle, logger: logger, volume: 40}
}

// Ready marks the underlying player as ready and applies the initial volume.
func (a *Adapter) Ready(handle Handle) {
	if handle != nil {
		a.handle = handle
	}
	if a.handle == nil {
		return
	}
	a.ready = true
	a.handle.SetVolume(a.volume)
}

// IsReady reports whether the underlying player accepts commands.
func (a *Adapter) IsReady() bool {
	return a.ready
}

// Load normalizes the URL and hands it to the player. An empty URL stops
// playback and clears the background.
func (a *Adapter) Load(url string) {
	if !a.ready {
		return
	}
	embed := NormalizeToEmbed(url)
	if embed == "" {
		a.handle.Stop()
		a.isPlaying = false
		return
	}
	a.logger.Debug("loading video", "url", embed)
	a.handle.LoadVideo(embed)
}

// Play starts playback if the player is ready.
func (a *Adapter) Play() {
	if !a.ready {
		return
	}
	a.handle.Play()
}

// Pause pauses playback if the player is ready.
func (a *Adapter) Pause() {
	if !a.ready {
		return
	}
	a.handle.Pause()
}

// Toggle flips between play and pause based on the mirrored playback state.
func (a *Adapter) Toggle() {
	if a.isPlaying {
		a.Pause()
	} else {
		a.Play()
	}
}

// SetVolume clamps the volume to 0-100 and applies it when ready.
func (a *Adapter) SetVolume(volume int) {
	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}
	a.volume = volume
	if a.ready {
		a.handle.SetVolume(volume)
	}
}

// Volume returns the last requested volume.
func (a *Adapter) Volume() int {
	return a.volume
}

// HandleStateChange maps a player state code onto the IsPlaying flag.
//
// Unknown codes leave the flag unchanged.
func (a *Adapter) HandleStateChange(state int) {
	switch state {
	case StatePlaying:
		a.isPlaying = true
	case StatePaused, StateBuffering:
		a.isPlaying = false
	}
}

// IsPlaying mirrors the player's last reported playback state.
func (a *Adapter) IsPlaying() bool {
	return a.isPlaying
}
