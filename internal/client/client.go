// Package client implements the authenticated facade over the dashboard API.
//
// The [Client] attaches the session's bearer token to every playlist call and
// translates HTTP failures into the shared error taxonomy. It never retries:
// transport failures surface as [shared.ErrRequestFailed] and are the UI
// layer's problem to report.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/focusdeck/internal/models"
	"github.com/desertthunder/focusdeck/internal/player"
	"github.com/desertthunder/focusdeck/internal/shared"
)

const defaultBaseURL = "http://127.0.0.1:5000"

// PlaylistAPI is the operation surface widgets program against. The HTTP
// [Client] is the production implementation; tests substitute doubles.
type PlaylistAPI interface {
	ListPlaylists(ctx context.Context) ([]models.Playlist, error)
	CreatePlaylist(ctx context.Context, name string) (*models.Playlist, error)
	DeletePlaylist(ctx context.Context, id int64) error
	ListVideos(ctx context.Context, playlistID int64) ([]models.PlaylistVideo, error)
	AddVideo(ctx context.Context, playlistID int64, youtubeURL, title string) (*models.PlaylistVideo, error)
	DeleteVideo(ctx context.Context, id int64) error
}

// Client talks to the dashboard API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
	logger     *log.Logger
}

var _ PlaylistAPI = (*Client)(nil)

// NewClient creates a Client for the API at baseURL.
func NewClient(baseURL string, httpClient *http.Client, logger *log.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// SetSession attaches a session whose token is sent with all playlist calls.
func (c *Client) SetSession(session *Session) {
	c.session = session
}

// Session returns the current session, nil once cleared.
func (c *Client) Session() *Session {
	return c.session
}

// clearSession drops the session after the server rejects its token.
func (c *Client) clearSession() {
	c.session = nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.session != nil {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		// Token is missing, invalid, or expired. Drop it and force re-auth.
		c.clearSession()
		return fmt.Errorf("%w: %s", shared.ErrUnauthorized, readMessage(resp.Body))
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", shared.ErrNotFound, readMessage(resp.Body))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d: %s", shared.ErrRequestFailed, resp.StatusCode, readMessage(resp.Body))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// readMessage pulls the {message} field out of an error body, falling back to
// the raw text.
func readMessage(body io.Reader) string {
	data, err := io.ReadAll(body)
	if err != nil {
		return ""
	}
	var errResp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return strings.TrimSpace(string(data))
}

// ListPlaylists retrieves the user's playlists in insertion order.
func (c *Client) ListPlaylists(ctx context.Context) ([]models.Playlist, error) {
	var playlists []models.Playlist
	if err := c.doRequest(ctx, http.MethodGet, "/api/playlists", nil, &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}

// CreatePlaylist creates a named playlist. The name must be non-empty.
func (c *Client) CreatePlaylist(ctx context.Context, name string) (*models.Playlist, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: playlist name is required", shared.ErrValidation)
	}

	var created struct {
		ID int64 `json:"id"`
	}
	body := map[string]string{"name": name}
	if err := c.doRequest(ctx, http.MethodPost, "/api/playlists", body, &created); err != nil {
		return nil, err
	}

	return &models.Playlist{ID: created.ID, Name: name}, nil
}

// DeletePlaylist removes a playlist and, by server-side cascade, its videos.
func (c *Client) DeletePlaylist(ctx context.Context, id int64) error {
	return c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/playlists/%d", id), nil, nil)
}

// ListVideos retrieves the videos in a playlist in insertion order.
func (c *Client) ListVideos(ctx context.Context, playlistID int64) ([]models.PlaylistVideo, error) {
	var videos []models.PlaylistVideo
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/playlist_videos/%d", playlistID), nil, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// AddVideo adds a YouTube URL to a playlist. URLs that do not contain a video
// id are rejected locally with [shared.ErrInvalidURL].
func (c *Client) AddVideo(ctx context.Context, playlistID int64, youtubeURL, title string) (*models.PlaylistVideo, error) {
	if player.ExtractVideoID(youtubeURL) == "" {
		return nil, fmt.Errorf("%w: %s", shared.ErrInvalidURL, youtubeURL)
	}

	var created struct {
		ID int64 `json:"id"`
	}
	body := map[string]any{"playlistId": playlistID, "youtube_url": youtubeURL, "title": title}
	if err := c.doRequest(ctx, http.MethodPost, "/api/playlist_videos", body, &created); err != nil {
		return nil, err
	}

	return &models.PlaylistVideo{ID: created.ID, PlaylistID: playlistID, YoutubeURL: youtubeURL, Title: title}, nil
}

// DeleteVideo removes a single video.
func (c *Client) DeleteVideo(ctx context.Context, id int64) error {
	return c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/playlist_videos/%d", id), nil, nil)
}

// authResult is the body of both credential endpoints. Rejections come back
// with status 400 and a populated message, so it is decoded regardless of
// status code.
type authResult struct {
	Success  bool   `json:"success"`
	Token    string `json:"token"`
	Username string `json:"username"`
	UserID   int64  `json:"userId"`
	Message  string `json:"message"`
}

// postCredentials posts to a credential endpoint without a bearer token and
// decodes the body even on rejection.
func (c *Client) postCredentials(ctx context.Context, path string, body any) (*authResult, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	var result authResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: undecodable response (status %d)", shared.ErrRequestFailed, resp.StatusCode)
	}

	return &result, nil
}

// Register creates an account. A rejection surfaces as an error carrying the
// server's message.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	body := map[string]string{"username": username, "email": email, "password": password}

	result, err := c.postCredentials(ctx, "/api/register", body)
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("%w: %s", shared.ErrValidation, result.Message)
	}

	return nil
}

// Login authenticates and installs the resulting session on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}

	result, err := c.postCredentials(ctx, "/api/login", body)
	if err != nil {
		return nil, err
	}
	if !result.Success || result.Token == "" {
		return nil, fmt.Errorf("%w: %s", shared.ErrNotAuthenticated, result.Message)
	}

	now := time.Now()
	session := &Session{
		Token:     result.Token,
		UserID:    result.UserID,
		Username:  result.Username,
		IssuedAt:  now,
		ExpiresAt: now.Add(SessionTTL),
	}
	c.SetSession(session)

	return session, nil
}
