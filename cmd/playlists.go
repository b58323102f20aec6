package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lunamoth/spx/internal/formatter"
	"github.com/lunamoth/spx/internal/models"
	"github.com/lunamoth/spx/internal/shared"
	"github.com/lunamoth/spx/internal/spotify"
	"github.com/urfave/cli/v3"
)

const playlistPageSize = 50

// Playlists lists the authorized user's playlists.
func (r *Runner) Playlists(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	r.logger.Info("listing playlists")

	playlists, err := r.fetchAllPlaylists(ctx)
	if err != nil {
		return err
	}

	limit := int(cmd.Int("limit"))
	if limit > 0 && limit < len(playlists) {
		playlists = playlists[:limit]
	}

	if cmd.Bool("json") {
		return r.writeJSON(playlists, cmd.Bool("pretty"))
	}

	r.writePlain("Found %d playlists:\n\n", len(playlists))
	for i, p := range playlists {
		r.writePlain("%d. %s\n", i+1, p.Name)
		if p.Description != "" {
			r.writePlain("   Description: %s\n", p.Description)
		}
		r.writePlain("   ID: %s\n", p.ID)
		r.writePlain("   Tracks: %d\n", p.Tracks.Total)
		r.writePlain("   Visibility: %s\n", shared.VisibilityString(p.Public))
		r.writePlain("\n")
	}

	return nil
}

// PlaylistShow displays one playlist with its tracks.
func (r *Runner) PlaylistShow(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	playlistID := cmd.StringArg("id")
	if playlistID == "" {
		return fmt.Errorf("%w: playlist id", shared.ErrMissingArgument)
	}

	export, err := r.exportPlaylist(ctx, playlistID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(export, cmd.Bool("pretty"))
	}

	r.writePlain("Playlist: %s\n", export.Playlist.Name)
	if export.Playlist.Description != "" {
		r.writePlain("Description: %s\n", export.Playlist.Description)
	}
	r.writePlain("Visibility: %s\n", shared.VisibilityString(export.Playlist.Public))
	r.writePlain("Tracks: %d\n\n", len(export.Tracks))

	for i, track := range export.Tracks {
		r.writePlain("%d. %s - %s [%s]\n", i+1, track.ArtistName(), track.Name,
			shared.FormatDuration(track.DurationMS/1000))
	}

	return nil
}

// PlaylistExport exports a playlist to CSV, Markdown, or plain text.
func (r *Runner) PlaylistExport(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	playlistID := cmd.StringArg("id")
	if playlistID == "" {
		return fmt.Errorf("%w: playlist id", shared.ErrMissingArgument)
	}

	format := cmd.String("format")
	output := cmd.String("output")

	r.logger.Infof("exporting playlist %v as %v", playlistID, format)

	export, err := r.exportPlaylist(ctx, playlistID)
	if err != nil {
		return err
	}

	switch format {
	case "csv":
		result, err := formatter.WriteCSVExport(export, output)
		if err != nil {
			return err
		}
		r.writePlain("✓ Playlist exported\n")
		r.writePlain("  Tracks: %s\n", result.TracksFile)
		r.writePlain("  Metadata: %s\n", result.MetadataFile)

	case "markdown", "md":
		result, err := formatter.WriteMarkdownExport(export, output, export.Playlist.CoverURL())
		if err != nil {
			return err
		}
		r.writePlain("✓ Playlist exported to %s\n", result.Directory)
		for _, file := range result.Files {
			r.writePlain("  %s\n", file)
		}

	case "text", "txt":
		path, err := formatter.WriteTextExport(export, output)
		if err != nil {
			return err
		}
		r.writePlain("✓ Playlist exported to %s\n", path)

	case "json":
		data, err := shared.MarshalJSON(export, true)
		if err != nil {
			return fmt.Errorf("failed to marshal export: %w", err)
		}
		if output == "" {
			output = fmt.Sprintf("%s.json", export.Playlist.ID)
		}
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		r.writePlain("✓ Playlist exported to %s\n", output)

	default:
		return fmt.Errorf("%w: format %q (use csv, markdown, text or json)", shared.ErrInvalidArgument, format)
	}

	r.writePlain("  Playlist: %s\n", export.Playlist.Name)
	r.writePlain("  Tracks: %d\n", len(export.Tracks))
	return nil
}

// PlaylistCover prints a playlist's cover image URLs.
func (r *Runner) PlaylistCover(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	playlistID := cmd.StringArg("id")
	if playlistID == "" {
		return fmt.Errorf("%w: playlist id", shared.ErrMissingArgument)
	}

	resp, err := r.client.GetPlaylistCoverImage(ctx, playlistID)
	if err != nil {
		return err
	}

	return r.writeResponse(resp, cmd.Bool("pretty"))
}

// fetchAllPlaylists pages through the user's playlists until exhausted.
func (r *Runner) fetchAllPlaylists(ctx context.Context) ([]models.Playlist, error) {
	var playlists []models.Playlist

	offset := 0
	for {
		resp, err := r.client.GetCurrentUserPlaylists(ctx, &spotify.PageOpts{
			Limit:  playlistPageSize,
			Offset: offset,
		})
		if err != nil {
			return nil, err
		}

		var page models.PlaylistPage
		if err := r.decode(resp, &page); err != nil {
			return nil, err
		}

		playlists = append(playlists, page.Items...)
		if page.Next == nil || len(page.Items) == 0 {
			break
		}
		offset += len(page.Items)
	}

	return playlists, nil
}

// exportPlaylist fetches a playlist and all of its tracks.
func (r *Runner) exportPlaylist(ctx context.Context, playlistID string) (*models.PlaylistExport, error) {
	resp, err := r.client.GetPlaylist(ctx, playlistID, nil)
	if err != nil {
		return nil, err
	}

	var playlist models.Playlist
	if err := r.decode(resp, &playlist); err != nil {
		return nil, err
	}

	export := &models.PlaylistExport{Playlist: playlist}

	offset := 0
	for {
		resp, err := r.client.GetPlaylistItems(ctx, playlistID, &spotify.PlaylistItemsOpts{
			Limit:  playlistPageSize,
			Offset: offset,
		})
		if err != nil {
			return nil, err
		}

		var page models.PlaylistItemPage
		if err := r.decode(resp, &page); err != nil {
			return nil, err
		}

		for _, item := range page.Items {
			export.Tracks = append(export.Tracks, item.Track)
		}

		if page.Next == nil || len(page.Items) == 0 {
			break
		}
		offset += len(page.Items)
	}

	return export, nil
}
