package main

import (
	"context"
	"fmt"

	"github.com/lunamoth/spx/internal/models"
	"github.com/lunamoth/spx/internal/shared"
	"github.com/lunamoth/spx/internal/spotify"
	"github.com/urfave/cli/v3"
)

// Search queries the catalog and prints matches.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: search query", shared.ErrMissingArgument)
	}

	types := spotify.ListFromString(cmd.String("type"))
	opts := &spotify.SearchOpts{
		Market: cmd.String("market"),
		Limit:  int(cmd.Int("limit")),
		Offset: int(cmd.Int("offset")),
	}

	r.logger.Infof("searching for %q across %v", query, types.String())

	resp, err := r.client.Search(ctx, query, types, opts)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeResponse(resp, cmd.Bool("pretty"))
	}

	var result struct {
		Tracks *struct {
			Items []models.Track `json:"items"`
		} `json:"tracks"`
		Artists *struct {
			Items []models.Artist `json:"items"`
		} `json:"artists"`
		Albums *struct {
			Items []models.Album `json:"items"`
		} `json:"albums"`
		Playlists *struct {
			Items []models.Playlist `json:"items"`
		} `json:"playlists"`
	}
	if err := r.decode(resp, &result); err != nil {
		return err
	}

	if result.Tracks != nil && len(result.Tracks.Items) > 0 {
		r.writePlain("Tracks:\n")
		for i, track := range result.Tracks.Items {
			r.writePlain("%d. %s - %s [%s]\n", i+1, track.ArtistName(), track.Name,
				shared.FormatDuration(track.DurationMS/1000))
		}
		r.writePlain("\n")
	}

	if result.Artists != nil && len(result.Artists.Items) > 0 {
		r.writePlain("Artists:\n")
		for i, artist := range result.Artists.Items {
			r.writePlain("%d. %s (%s)\n", i+1, artist.Name, artist.ID)
		}
		r.writePlain("\n")
	}

	if result.Albums != nil && len(result.Albums.Items) > 0 {
		r.writePlain("Albums:\n")
		for i, album := range result.Albums.Items {
			r.writePlain("%d. %s (%s)\n", i+1, album.Name, album.ReleaseDate)
		}
		r.writePlain("\n")
	}

	if result.Playlists != nil && len(result.Playlists.Items) > 0 {
		r.writePlain("Playlists:\n")
		for i, playlist := range result.Playlists.Items {
			r.writePlain("%d. %s (%d tracks)\n", i+1, playlist.Name, playlist.Tracks.Total)
		}
	}

	return nil
}
