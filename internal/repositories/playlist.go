package repositories

import (
	"database/sql"
	"fmt"

	"github.com/desertthunder/focusdeck/internal/models"
	"github.com/desertthunder/focusdeck/internal/shared"
)

// PlaylistRepository handles [models.Playlist] persistence.
type PlaylistRepository struct {
	db *sql.DB
}

// NewPlaylistRepository creates a new PlaylistRepository with the given database connection
func NewPlaylistRepository(db *sql.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

// Create inserts a new playlist and assigns its generated id.
func (r *PlaylistRepository) Create(playlist *models.Playlist) error {
	if err := playlist.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO playlists (user_id, name) VALUES (?, ?)
	`

	result, err := r.db.Exec(query, playlist.UserID, playlist.Name)
	if err != nil {
		return fmt.Errorf("failed to insert playlist: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted id: %w", err)
	}

	playlist.ID = id
	return nil
}

// Get retrieves a playlist by id.
func (r *PlaylistRepository) Get(id int64) (*models.Playlist, error) {
	query := `
		SELECT id, user_id, name FROM playlists WHERE id = ?
	`

	var playlist models.Playlist
	err := r.db.QueryRow(query, id).Scan(&playlist.ID, &playlist.UserID, &playlist.Name)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: id %d", shared.ErrPlaylistNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query playlist: %w", err)
	}

	return &playlist, nil
}

// ListByUser retrieves all playlists owned by a user in insertion order.
func (r *PlaylistRepository) ListByUser(userID int64) ([]models.Playlist, error) {
	query := `
		SELECT id, user_id, name FROM playlists WHERE user_id = ? ORDER BY id ASC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlists: %w", err)
	}
	defer rows.Close()

	playlists := []models.Playlist{}
	for rows.Next() {
		var playlist models.Playlist
		if err := rows.Scan(&playlist.ID, &playlist.UserID, &playlist.Name); err != nil {
			return nil, fmt.Errorf("failed to scan playlist: %w", err)
		}
		playlists = append(playlists, playlist)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return playlists, nil
}

// Delete removes a playlist and all of its videos in one transaction.
//
// The explicit video delete is redundant with ON DELETE CASCADE but keeps the
// invariant intact on databases opened without the foreign_keys pragma.
func (r *PlaylistRepository) Delete(id int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec("DELETE FROM playlists WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: id %d", shared.ErrPlaylistNotFound, id)
	}

	if _, err := tx.Exec("DELETE FROM playlist_videos WHERE playlist_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete playlist videos: %w", err)
	}

	return tx.Commit()
}
