package main

import (
	"context"
	"fmt"

	"github.com/lunamoth/spx/internal/shared"
	"github.com/lunamoth/spx/internal/spotify"
	"github.com/urfave/cli/v3"
)

// BrowseNewReleases fetches newly released albums.
func (r *Runner) BrowseNewReleases(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	resp, err := r.client.GetNewReleases(ctx, &spotify.PageOpts{
		Limit:  int(cmd.Int("limit")),
		Offset: int(cmd.Int("offset")),
	})
	if err != nil {
		return err
	}

	return r.writeResponse(resp, cmd.Bool("pretty"))
}

// BrowseCategories fetches the browse category index, or a single category
// when an id argument is given.
func (r *Runner) BrowseCategories(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	locale := cmd.String("locale")

	if categoryID := cmd.StringArg("id"); categoryID != "" {
		resp, err := r.client.GetBrowseCategory(ctx, categoryID, &spotify.CategoryOpts{Locale: locale})
		if err != nil {
			return err
		}
		return r.writeResponse(resp, cmd.Bool("pretty"))
	}

	resp, err := r.client.GetBrowseCategories(ctx, &spotify.BrowseCategoriesOpts{
		Locale: locale,
		Limit:  int(cmd.Int("limit")),
		Offset: int(cmd.Int("offset")),
	})
	if err != nil {
		return err
	}

	return r.writeResponse(resp, cmd.Bool("pretty"))
}

// BrowseMarkets fetches the markets where the catalog is available.
func (r *Runner) BrowseMarkets(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	resp, err := r.client.GetAvailableMarkets(ctx)
	if err != nil {
		return err
	}

	return r.writeResponse(resp, cmd.Bool("pretty"))
}

// ShowGet fetches one show or several when the id argument is comma
// separated.
func (r *Runner) ShowGet(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	ids := spotify.ListFromString(cmd.StringArg("id"))
	if ids.IsZero() {
		return fmt.Errorf("%w: show id", shared.ErrMissingArgument)
	}

	opts := &spotify.MarketOpts{Market: cmd.String("market")}

	var resp *spotify.Response
	var err error
	if values := ids.Values(); len(values) == 1 {
		resp, err = r.client.GetShow(ctx, values[0], opts)
	} else {
		resp, err = r.client.GetShows(ctx, ids, opts)
	}
	if err != nil {
		return err
	}

	return r.writeResponse(resp, cmd.Bool("pretty"))
}

// ShowEpisodes fetches a show's episodes with pagination.
func (r *Runner) ShowEpisodes(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	showID := cmd.StringArg("id")
	if showID == "" {
		return fmt.Errorf("%w: show id", shared.ErrMissingArgument)
	}

	resp, err := r.client.GetShowEpisodes(ctx, showID, &spotify.MarketPageOpts{
		Market: cmd.String("market"),
		Limit:  int(cmd.Int("limit")),
		Offset: int(cmd.Int("offset")),
	})
	if err != nil {
		return err
	}

	return r.writeResponse(resp, cmd.Bool("pretty"))
}

// ShowsSaved fetches the user's saved shows.
func (r *Runner) ShowsSaved(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	resp, err := r.client.GetSavedShows(ctx, &spotify.PageOpts{
		Limit:  int(cmd.Int("limit")),
		Offset: int(cmd.Int("offset")),
	})
	if err != nil {
		return err
	}

	return r.writeResponse(resp, cmd.Bool("pretty"))
}

// EpisodeGet fetches one episode or several when the id argument is comma
// separated.
func (r *Runner) EpisodeGet(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	ids := spotify.ListFromString(cmd.StringArg("id"))
	if ids.IsZero() {
		return fmt.Errorf("%w: episode id", shared.ErrMissingArgument)
	}

	opts := &spotify.MarketOpts{Market: cmd.String("market")}

	var resp *spotify.Response
	var err error
	if values := ids.Values(); len(values) == 1 {
		resp, err = r.client.GetEpisode(ctx, values[0], opts)
	} else {
		resp, err = r.client.GetEpisodes(ctx, ids, opts)
	}
	if err != nil {
		return err
	}

	return r.writeResponse(resp, cmd.Bool("pretty"))
}

// EpisodesSaved fetches the user's saved episodes.
func (r *Runner) EpisodesSaved(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	resp, err := r.client.GetSavedEpisodes(ctx, &spotify.MarketPageOpts{
		Market: cmd.String("market"),
		Limit:  int(cmd.Int("limit")),
		Offset: int(cmd.Int("offset")),
	})
	if err != nil {
		return err
	}

	return r.writeResponse(resp, cmd.Bool("pretty"))
}

// AudiobookGet fetches one audiobook or several when the id argument is
// comma separated.
func (r *Runner) AudiobookGet(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	ids := spotify.ListFromString(cmd.StringArg("id"))
	if ids.IsZero() {
		return fmt.Errorf("%w: audiobook id", shared.ErrMissingArgument)
	}

	opts := &spotify.MarketOpts{Market: cmd.String("market")}

	var resp *spotify.Response
	var err error
	if values := ids.Values(); len(values) == 1 {
		resp, err = r.client.GetAudiobook(ctx, values[0], opts)
	} else {
		resp, err = r.client.GetAudiobooks(ctx, ids, opts)
	}
	if err != nil {
		return err
	}

	return r.writeResponse(resp, cmd.Bool("pretty"))
}

// AudiobookChapters fetches an audiobook's chapters with pagination.
func (r *Runner) AudiobookChapters(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	audiobookID := cmd.StringArg("id")
	if audiobookID == "" {
		return fmt.Errorf("%w: audiobook id", shared.ErrMissingArgument)
	}

	resp, err := r.client.GetAudiobookChapters(ctx, audiobookID, &spotify.MarketPageOpts{
		Market: cmd.String("market"),
		Limit:  int(cmd.Int("limit")),
		Offset: int(cmd.Int("offset")),
	})
	if err != nil {
		return err
	}

	return r.writeResponse(resp, cmd.Bool("pretty"))
}

// AudiobooksSaved fetches the user's saved audiobooks.
func (r *Runner) AudiobooksSaved(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	resp, err := r.client.GetSavedAudiobooks(ctx, &spotify.PageOpts{
		Limit:  int(cmd.Int("limit")),
		Offset: int(cmd.Int("offset")),
	})
	if err != nil {
		return err
	}

	return r.writeResponse(resp, cmd.Bool("pretty"))
}

// ChapterGet fetches one chapter or several when the id argument is comma
// separated.
func (r *Runner) ChapterGet(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	ids := spotify.ListFromString(cmd.StringArg("id"))
	if ids.IsZero() {
		return fmt.Errorf("%w: chapter id", shared.ErrMissingArgument)
	}

	opts := &spotify.MarketOpts{Market: cmd.String("market")}

	var resp *spotify.Response
	var err error
	if values := ids.Values(); len(values) == 1 {
		resp, err = r.client.GetChapter(ctx, values[0], opts)
	} else {
		resp, err = r.client.GetChapters(ctx, ids, opts)
	}
	if err != nil {
		return err
	}

	return r.writeResponse(resp, cmd.Bool("pretty"))
}
