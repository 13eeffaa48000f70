package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/desertthunder/focusdeck/internal/formatter"
	"github.com/desertthunder/focusdeck/internal/models"
	"github.com/desertthunder/focusdeck/internal/shared"
	"github.com/urfave/cli/v3"
)

// requireSession loads the persisted session into the API client or fails.
func (r *Runner) requireSession() error {
	if !r.restoreSession() {
		return fmt.Errorf("%w: run 'focusdeck auth login'", shared.ErrNotAuthenticated)
	}
	return nil
}

func parseID(raw, what string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", shared.ErrInvalidArgument, what, raw)
	}
	return id, nil
}

// PlaylistList prints the user's playlists.
func (r *Runner) PlaylistList(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	playlists, err := r.api.ListPlaylists(ctx)
	if err != nil {
		return fmt.Errorf("failed to list playlists: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(playlists, cmd.Bool("pretty"))
	}

	if len(playlists) == 0 {
		return r.writePlain("No playlists yet, create one with 'focusdeck playlist create <name>'\n")
	}

	for _, playlist := range playlists {
		r.writePlain("%d\t%s\n", playlist.ID, playlist.Name)
	}
	return nil
}

// PlaylistCreate creates a named playlist.
func (r *Runner) PlaylistCreate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	name := cmd.StringArg("name")
	playlist, err := r.api.CreatePlaylist(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}

	r.logger.Info("playlist created", "id", playlist.ID, "name", playlist.Name)
	return r.writePlain("✓ Created playlist %d: %s\n", playlist.ID, playlist.Name)
}

// PlaylistDelete removes a playlist and all of its videos.
func (r *Runner) PlaylistDelete(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	id, err := parseID(cmd.StringArg("id"), "playlist id")
	if err != nil {
		return err
	}

	if err := r.api.DeletePlaylist(ctx, id); err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}

	return r.writePlain("✓ Deleted playlist %d\n", id)
}

// PlaylistVideos prints the videos in a playlist.
func (r *Runner) PlaylistVideos(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	id, err := parseID(cmd.StringArg("id"), "playlist id")
	if err != nil {
		return err
	}

	videos, err := r.api.ListVideos(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list videos: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(videos, cmd.Bool("pretty"))
	}

	if len(videos) == 0 {
		return r.writePlain("Playlist is empty\n")
	}

	for _, video := range videos {
		r.writePlain("%d\t%s\t%s\n", video.ID, video.Label(), video.YoutubeURL)
	}
	return nil
}

// PlaylistAdd adds a YouTube URL to a playlist.
func (r *Runner) PlaylistAdd(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	id, err := parseID(cmd.StringArg("id"), "playlist id")
	if err != nil {
		return err
	}

	video, err := r.api.AddVideo(ctx, id, cmd.StringArg("url"), cmd.String("title"))
	if err != nil {
		return fmt.Errorf("failed to add video: %w", err)
	}

	return r.writePlain("✓ Added video %d to playlist %d\n", video.ID, id)
}

// PlaylistRemove removes a single video.
func (r *Runner) PlaylistRemove(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	id, err := parseID(cmd.StringArg("video-id"), "video id")
	if err != nil {
		return err
	}

	if err := r.api.DeleteVideo(ctx, id); err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}

	return r.writePlain("✓ Removed video %d\n", id)
}

// PlaylistExport writes a playlist in csv, markdown or text form.
func (r *Runner) PlaylistExport(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	id, err := parseID(cmd.StringArg("id"), "playlist id")
	if err != nil {
		return err
	}

	playlists, err := r.api.ListPlaylists(ctx)
	if err != nil {
		return fmt.Errorf("failed to list playlists: %w", err)
	}

	var playlist *models.Playlist
	for i := range playlists {
		if playlists[i].ID == id {
			playlist = &playlists[i]
			break
		}
	}
	if playlist == nil {
		return fmt.Errorf("%w: playlist %d", shared.ErrPlaylistNotFound, id)
	}

	videos, err := r.api.ListVideos(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list videos: %w", err)
	}

	var data []byte
	switch format := cmd.String("format"); format {
	case "csv":
		data, err = formatter.ExportToCSV(playlist, videos)
	case "md", "markdown":
		data, err = formatter.ExportToMarkdown(playlist, videos)
	case "txt", "text":
		data = formatter.ExportToText(playlist, videos)
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, format)
	}
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if output := cmd.String("output"); output != "" {
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		return r.writePlain("✓ Exported playlist %d to %s\n", id, output)
	}

	_, err = r.output.Write(data)
	return err
}
