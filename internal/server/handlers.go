package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/focusdeck/internal/auth"
	"github.com/desertthunder/focusdeck/internal/models"
	"github.com/desertthunder/focusdeck/internal/player"
	"github.com/desertthunder/focusdeck/internal/repositories"
	"github.com/desertthunder/focusdeck/internal/shared"
)

// AuthHandler serves the credential endpoints (register, login).
type AuthHandler struct {
	users  *repositories.UserRepository
	issuer *auth.TokenIssuer
	logger *log.Logger
}

// NewAuthHandler creates an AuthHandler backed by the given repository and issuer.
func NewAuthHandler(users *repositories.UserRepository, issuer *auth.TokenIssuer, logger *log.Logger) *AuthHandler {
	return &AuthHandler{users: users, issuer: issuer, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *AuthHandler) Routes() []string {
	return []string{"POST /api/register", "POST /api/login"}
}

// ServeHTTP dispatches to the register or login flow.
func (h *AuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/register":
		h.register(w, r)
	case "/api/login":
		h.login(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if body.Username == "" || body.Email == "" || body.Password == "" {
		writeFailure(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	hash, err := auth.HashPassword(body.Password)
	if err != nil {
		h.logger.Error("failed to hash password", "error", err)
		writeFailure(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	user := &models.User{Username: body.Username, Email: body.Email, PasswordHash: hash}
	if err := h.users.Create(user); err != nil {
		h.logger.Warn("registration rejected", "email", body.Email, "error", err)
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.Info("user registered", "id", user.ID, "username", user.Username)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.users.GetByEmail(body.Email)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "User not found")
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, body.Password); err != nil {
		writeFailure(w, http.StatusBadRequest, "Wrong password")
		return
	}

	token, err := h.issuer.Issue(user.ID, user.Username)
	if err != nil {
		h.logger.Error("failed to issue token", "error", err)
		writeFailure(w, http.StatusInternalServerError, "Login failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"token":    token,
		"username": user.Username,
		"userId":   user.ID,
	})
}

// PlaylistHandler serves the playlist and playlist-video endpoints.
//
// All routes run behind [BearerAuth]; the owner id comes from the token claims.
type PlaylistHandler struct {
	playlists *repositories.PlaylistRepository
	videos    *repositories.VideoRepository
	logger    *log.Logger
}

// NewPlaylistHandler creates a PlaylistHandler backed by the given repositories.
func NewPlaylistHandler(playlists *repositories.PlaylistRepository, videos *repositories.VideoRepository, logger *log.Logger) *PlaylistHandler {
	return &PlaylistHandler{playlists: playlists, videos: videos, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *PlaylistHandler) Routes() []string {
	return []string{
		"GET /api/playlists",
		"POST /api/playlists",
		"DELETE /api/playlists/{id}",
		"GET /api/playlist_videos/{playlistId}",
		"POST /api/playlist_videos",
		"DELETE /api/playlist_videos/{id}",
	}
}

// ServeHTTP dispatches playlist and video operations by method and path.
func (h *PlaylistHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "No token")
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/playlists":
		h.listPlaylists(w, claims.UserID)
	case r.Method == http.MethodPost && r.URL.Path == "/api/playlists":
		h.createPlaylist(w, r, claims.UserID)
	case r.Method == http.MethodDelete && r.PathValue("id") != "" && pathIsPlaylist(r):
		h.deletePlaylist(w, r, claims.UserID)
	case r.Method == http.MethodGet && r.PathValue("playlistId") != "":
		h.listVideos(w, r, claims.UserID)
	case r.Method == http.MethodPost && r.URL.Path == "/api/playlist_videos":
		h.addVideo(w, r, claims.UserID)
	case r.Method == http.MethodDelete && r.PathValue("id") != "":
		h.deleteVideo(w, r)
	default:
		http.NotFound(w, r)
	}
}

func pathIsPlaylist(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/playlists/")
}

func (h *PlaylistHandler) listPlaylists(w http.ResponseWriter, userID int64) {
	playlists, err := h.playlists.ListByUser(userID)
	if err != nil {
		h.logger.Error("failed to list playlists", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to list playlists")
		return
	}
	writeJSON(w, http.StatusOK, playlists)
}

func (h *PlaylistHandler) createPlaylist(w http.ResponseWriter, r *http.Request, userID int64) {
	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	playlist := &models.Playlist{UserID: userID, Name: body.Name}
	if err := h.playlists.Create(playlist); err != nil {
		if errors.Is(err, shared.ErrValidation) {
			writeMessage(w, http.StatusBadRequest, "Playlist name is required")
			return
		}
		h.logger.Error("failed to create playlist", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to create playlist")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"id": playlist.ID})
}

func (h *PlaylistHandler) deletePlaylist(w http.ResponseWriter, r *http.Request, userID int64) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid playlist id")
		return
	}

	playlist, err := h.playlists.Get(id)
	if err != nil || playlist.UserID != userID {
		writeMessage(w, http.StatusNotFound, "Playlist not found")
		return
	}

	if err := h.playlists.Delete(id); err != nil {
		h.logger.Error("failed to delete playlist", "id", id, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to delete playlist")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *PlaylistHandler) listVideos(w http.ResponseWriter, r *http.Request, userID int64) {
	playlistID, err := strconv.ParseInt(r.PathValue("playlistId"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid playlist id")
		return
	}

	playlist, err := h.playlists.Get(playlistID)
	if err != nil || playlist.UserID != userID {
		writeMessage(w, http.StatusNotFound, "Playlist not found")
		return
	}

	videos, err := h.videos.ListByPlaylist(playlistID)
	if err != nil {
		h.logger.Error("failed to list videos", "playlist", playlistID, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to list videos")
		return
	}
	writeJSON(w, http.StatusOK, videos)
}

func (h *PlaylistHandler) addVideo(w http.ResponseWriter, r *http.Request, userID int64) {
	var body struct {
		PlaylistID int64  `json:"playlistId"`
		YoutubeURL string `json:"youtube_url"`
		Title      string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if player.ExtractVideoID(body.YoutubeURL) == "" {
		writeMessage(w, http.StatusBadRequest, "Invalid YouTube URL")
		return
	}

	playlist, err := h.playlists.Get(body.PlaylistID)
	if err != nil || playlist.UserID != userID {
		writeMessage(w, http.StatusNotFound, "Playlist not found")
		return
	}

	video := &models.PlaylistVideo{PlaylistID: body.PlaylistID, YoutubeURL: body.YoutubeURL, Title: body.Title}
	if err := h.videos.Create(video); err != nil {
		h.logger.Error("failed to add video", "playlist", body.PlaylistID, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to add video")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"id": video.ID})
}

func (h *PlaylistHandler) deleteVideo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid video id")
		return
	}

	if err := h.videos.Delete(id); err != nil {
		if errors.Is(err, shared.ErrVideoNotFound) {
			writeMessage(w, http.StatusNotFound, "Video not found")
			return
		}
		h.logger.Error("failed to delete video", "id", id, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to delete video")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
