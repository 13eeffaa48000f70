package repositories

import (
	"database/sql"
	"fmt"

	"github.com/desertthunder/focusdeck/internal/models"
	"github.com/desertthunder/focusdeck/internal/shared"
)

// VideoRepository handles [models.PlaylistVideo] persistence.
type VideoRepository struct {
	db *sql.DB
}

// NewVideoRepository creates a new VideoRepository with the given database connection
func NewVideoRepository(db *sql.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create inserts a new video and assigns its generated id.
//
// Fails with [shared.ErrPlaylistNotFound] when the playlist does not exist, so a
// video can never reference a missing parent.
func (r *VideoRepository) Create(video *models.PlaylistVideo) error {
	if err := video.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	var exists bool
	err := r.db.QueryRow("SELECT EXISTS(SELECT 1 FROM playlists WHERE id = ?)", video.PlaylistID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check playlist: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: id %d", shared.ErrPlaylistNotFound, video.PlaylistID)
	}

	query := `
		INSERT INTO playlist_videos (playlist_id, youtube_url, title) VALUES (?, ?, ?)
	`

	result, err := r.db.Exec(query, video.PlaylistID, video.YoutubeURL, nullable(video.Title))
	if err != nil {
		return fmt.Errorf("failed to insert video: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted id: %w", err)
	}

	video.ID = id
	return nil
}

// ListByPlaylist retrieves all videos in a playlist in insertion order.
func (r *VideoRepository) ListByPlaylist(playlistID int64) ([]models.PlaylistVideo, error) {
	query := `
		SELECT id, playlist_id, youtube_url, COALESCE(title, '')
		FROM playlist_videos
		WHERE playlist_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}
	defer rows.Close()

	videos := []models.PlaylistVideo{}
	for rows.Next() {
		var video models.PlaylistVideo
		if err := rows.Scan(&video.ID, &video.PlaylistID, &video.YoutubeURL, &video.Title); err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, video)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return videos, nil
}

// Delete removes a single video by id.
func (r *VideoRepository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM playlist_videos WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: id %d", shared.ErrVideoNotFound, id)
	}

	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
