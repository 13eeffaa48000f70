// Package repositories provides the persistence layer for the dashboard API.
//
// Each repository wraps a *sql.DB and handles CRUD for one entity type. IDs are
// SQLite AUTOINCREMENT integers, matching the numeric ids the wire format uses.
// Playlist deletion is transactional and relies on ON DELETE CASCADE so videos
// can never outlive their playlist.
package repositories
