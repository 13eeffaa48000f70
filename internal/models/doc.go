// Package models defines domain entities and wire types for the focus dashboard.
//
// The package contains two categories of types:
//
// 1. Persistent entities, stored by the API server and exchanged as JSON:
//   - [User] : Account with username, email, and bcrypt password hash
//   - [Playlist] : Named video list owned by a user
//   - [PlaylistVideo] : YouTube URL belonging to a playlist
//
// 2. Client-side view state, never synced to the server:
//   - [Rect] : Widget geometry (position, size, z order)
//   - [TodoItem] : To-do entry held in memory for the session
//
// Field names on the wire follow the original dashboard API (camelCase for ids,
// snake_case youtube_url), so the JSON tags are load-bearing.
package models
