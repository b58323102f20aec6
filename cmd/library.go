package main

import (
	"context"
	"fmt"

	"github.com/lunamoth/spx/internal/shared"
	"github.com/lunamoth/spx/internal/spotify"
	"github.com/urfave/cli/v3"
)

// Catalog and library lookups. Output is the raw API response; these
// commands exist for scripting and inspection, so no table rendering.

// AlbumGet fetches one album or several when the id argument is comma
// separated.
func (r *Runner) AlbumGet(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	ids := spotify.ListFromString(cmd.StringArg("id"))
	if ids.IsZero() {
		return fmt.Errorf("%w: album id", shared.ErrMissingArgument)
	}

	opts := &spotify.MarketOpts{Market: cmd.String("market")}

	var resp *spotify.Response
	var err error
	if values := ids.Values(); len(values) == 1 {
		resp, err = r.client.GetAlbum(ctx, values[0], opts)
	} else {
		resp, err = r.client.GetAlbums(ctx, ids, opts)
	}
	if err != nil {
		return err
	}

	return r.writeResponse(resp, cmd.Bool("pretty"))
}

// AlbumTracks fetches an album's tracks with pagination.
func (r *Runner) AlbumTracks(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	albumID := cmd.StringArg("id")
	if albumID == "" {
		return fmt.Errorf("%w: album id", shared.ErrMissingArgument)
	}

	resp, err := r.client.GetAlbumTracks(ctx, albumID, &spotify.MarketPageOpts{
		Market: cmd.String("market"),
		Limit:  int(cmd.Int("limit")),
		Offset: int(cmd.Int("offset")),
	})
	if err != nil {
		return err
	}

	return r.writeResponse(resp, cmd.Bool("pretty"))
}

// AlbumsSaved fetches the user's saved albums.
func (r *Runner) AlbumsSaved(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	resp, err := r.client.GetSavedAlbums(ctx, &spotify.MarketPageOpts{
		Market: cmd.String("market"),
		Limit:  int(cmd.Int("limit")),
		Offset: int(cmd.Int("offset")),
	})
	if err != nil {
		return err
	}

	return r.writeResponse(resp, cmd.Bool("pretty"))
}

// ArtistGet fetches one artist or several when the id argument is comma
// separated.
func (r *Runner) ArtistGet(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	ids := spotify.ListFromString(cmd.StringArg("id"))
	if ids.IsZero() {
		return fmt.Errorf("%w: artist id", shared.ErrMissingArgument)
	}

	var resp *spotify.Response
	var err error
	if values := ids.Values(); len(values) == 1 {
		resp, err = r.client.GetArtist(ctx, values[0])
	} else {
		resp, err = r.client.GetArtists(ctx, ids)
	}
	if err != nil {
		return err
	}

	return r.writeResponse(resp, cmd.Bool("pretty"))
}

// ArtistAlbums fetches an artist's albums, filtered by include groups.
func (r *Runner) ArtistAlbums(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	artistID := cmd.StringArg("id")
	if artistID == "" {
		return fmt.Errorf("%w: artist id", shared.ErrMissingArgument)
	}

	resp, err := r.client.GetArtistAlbums(ctx, artistID, &spotify.ArtistAlbumsOpts{
		IncludeGroups: spotify.ListFromString(cmd.String("groups")),
		Market:        cmd.String("market"),
		Limit:         int(cmd.Int("limit")),
		Offset:        int(cmd.Int("offset")),
	})
	if err != nil {
		return err
	}

	return r.writeResponse(resp, cmd.Bool("pretty"))
}

// ArtistTopTracks fetches an artist's top tracks.
func (r *Runner) ArtistTopTracks(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	artistID := cmd.StringArg("id")
	if artistID == "" {
		return fmt.Errorf("%w: artist id", shared.ErrMissingArgument)
	}

	resp, err := r.client.GetArtistTopTracks(ctx, artistID, &spotify.MarketOpts{
		Market: cmd.String("market"),
	})
	if err != nil {
		return err
	}

	return r.writeResponse(resp, cmd.Bool("pretty"))
}

// ArtistRelated fetches artists similar to the given artist.
func (r *Runner) ArtistRelated(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	artistID := cmd.StringArg("id")
	if artistID == "" {
		return fmt.Errorf("%w: artist id", shared.ErrMissingArgument)
	}

	resp, err := r.client.GetRelatedArtists(ctx, artistID)
	if err != nil {
		return err
	}

	return r.writeResponse(resp, cmd.Bool("pretty"))
}

// TrackGet fetches one track or several when the id argument is comma
// separated.
func (r *Runner) TrackGet(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	ids := spotify.ListFromString(cmd.StringArg("id"))
	if ids.IsZero() {
		return fmt.Errorf("%w: track id", shared.ErrMissingArgument)
	}

	opts := &spotify.MarketOpts{Market: cmd.String("market")}

	var resp *spotify.Response
	var err error
	if values := ids.Values(); len(values) == 1 {
		resp, err = r.client.GetTrack(ctx, values[0], opts)
	} else {
		resp, err = r.client.GetTracks(ctx, ids, opts)
	}
	if err != nil {
		return err
	}

	return r.writeResponse(resp, cmd.Bool("pretty"))
}

// TracksSaved fetches the user's saved tracks.
func (r *Runner) TracksSaved(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	resp, err := r.client.GetSavedTracks(ctx, &spotify.MarketPageOpts{
		Market: cmd.String("market"),
		Limit:  int(cmd.Int("limit")),
		Offset: int(cmd.Int("offset")),
	})
	if err != nil {
		return err
	}

	return r.writeResponse(resp, cmd.Bool("pretty"))
}
