package main

import (
	"context"
	"fmt"

	"github.com/lunamoth/spx/internal/models"
	"github.com/lunamoth/spx/internal/shared"
	"github.com/lunamoth/spx/internal/spotify"
	"github.com/urfave/cli/v3"
)

// MeProfile displays the authorized user's profile.
func (r *Runner) MeProfile(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	resp, err := r.client.Me(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeResponse(resp, cmd.Bool("pretty"))
	}

	var profile models.Profile
	if err := r.decode(resp, &profile); err != nil {
		return err
	}

	r.writePlain("Display name: %s\n", profile.DisplayName)
	r.writePlain("ID: %s\n", profile.ID)
	if profile.Email != "" {
		r.writePlain("Email: %s\n", profile.Email)
	}
	if profile.Country != "" {
		r.writePlain("Country: %s\n", profile.Country)
	}
	if profile.Product != "" {
		r.writePlain("Product: %s\n", profile.Product)
	}
	r.writePlain("Followers: %d\n", profile.Followers.Total)

	return nil
}

// MeTop displays the user's top tracks or artists over a time range.
func (r *Runner) MeTop(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	itemType, err := spotify.ParseTopItemType(cmd.String("type"))
	if err != nil {
		return fmt.Errorf("%w: use 'tracks' or 'artists'", err)
	}

	opts := &spotify.TopItemsOpts{
		Limit:  int(cmd.Int("limit")),
		Offset: int(cmd.Int("offset")),
	}

	if tr := cmd.String("range"); tr != "" {
		timeRange, err := spotify.ParseTimeRange(tr)
		if err != nil {
			return fmt.Errorf("%w: use short_term, medium_term or long_term", err)
		}
		opts.TimeRange = timeRange
	}

	resp, err := r.client.GetUserTopItems(ctx, itemType, opts)
	if err != nil {
		return err
	}

	if cmd.Bool("json") || itemType == spotify.TopItemArtists {
		return r.writeResponse(resp, cmd.Bool("pretty"))
	}

	var page struct {
		Items []models.Track `json:"items"`
	}
	if err := r.decode(resp, &page); err != nil {
		return err
	}

	for i, track := range page.Items {
		r.writePlain("%d. %s - %s [%s]\n", i+1, track.ArtistName(), track.Name,
			shared.FormatDuration(track.DurationMS/1000))
	}

	return nil
}

// UserProfile displays another user's public profile.
func (r *Runner) UserProfile(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	userID := cmd.StringArg("id")
	if userID == "" {
		return fmt.Errorf("%w: user id", shared.ErrMissingArgument)
	}

	resp, err := r.client.GetUserProfile(ctx, userID)
	if err != nil {
		return err
	}

	return r.writeResponse(resp, cmd.Bool("pretty"))
}
