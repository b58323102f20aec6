package main

import (
	"context"
	"fmt"

	"github.com/lunamoth/spx/internal/models"
	"github.com/lunamoth/spx/internal/shared"
	"github.com/lunamoth/spx/internal/spotify"
	"github.com/urfave/cli/v3"
)

// PlayerStatus displays the current playback state.
func (r *Runner) PlayerStatus(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	resp, err := r.client.GetPlaybackState(ctx, &spotify.PlayerStateOpts{
		Market: cmd.String("market"),
	})
	if err != nil {
		return err
	}

	if resp.StatusCode == 204 {
		return r.writePlain("Nothing playing\n")
	}

	if cmd.Bool("json") {
		return r.writeResponse(resp, cmd.Bool("pretty"))
	}

	var state struct {
		IsPlaying  bool          `json:"is_playing"`
		ProgressMS int           `json:"progress_ms"`
		Device     models.Device `json:"device"`
		Item       models.Track  `json:"item"`
	}
	if err := r.decode(resp, &state); err != nil {
		return err
	}

	if state.IsPlaying {
		r.writePlain("▶ %s - %s\n", state.Item.ArtistName(), state.Item.Name)
	} else {
		r.writePlain("⏸ %s - %s\n", state.Item.ArtistName(), state.Item.Name)
	}
	r.writePlain("  %s / %s\n", shared.FormatDuration(state.ProgressMS/1000),
		shared.FormatDuration(state.Item.DurationMS/1000))
	if state.Device.Name != "" {
		r.writePlain("  Device: %s (%s)\n", state.Device.Name, state.Device.Type)
	}

	return nil
}

// PlayerDevices lists the devices available for playback.
func (r *Runner) PlayerDevices(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	resp, err := r.client.GetAvailableDevices(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeResponse(resp, cmd.Bool("pretty"))
	}

	var devices models.DeviceList
	if err := r.decode(resp, &devices); err != nil {
		return err
	}

	if len(devices.Devices) == 0 {
		return r.writePlain("No devices available\n")
	}

	for _, device := range devices.Devices {
		marker := " "
		if device.IsActive {
			marker = "*"
		}
		r.writePlain("%s %s (%s) vol %d%%\n", marker, device.Name, device.Type, device.VolumePercent)
		r.writePlain("  ID: %s\n", device.ID)
	}

	return nil
}

// PlayerPlay starts or resumes playback.
//
// Bare track IDs are accepted; the request layer qualifies them into
// spotify:track URIs.
func (r *Runner) PlayerPlay(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	opts := &spotify.ResumePlaybackOpts{
		DeviceID:   cmd.String("device"),
		TrackIDs:   spotify.ListFromString(cmd.String("tracks")),
		ContextURI: cmd.String("context"),
		PositionMS: int(cmd.Int("position")),
	}

	resp, err := r.client.ResumePlayback(ctx, opts)
	if err != nil {
		return err
	}
	if err := r.decode(resp, nil); err != nil {
		return err
	}

	return r.writePlain("▶ Playing\n")
}

// PlayerPause pauses playback.
func (r *Runner) PlayerPause(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	resp, err := r.client.PausePlayback(ctx, cmd.String("device"))
	if err != nil {
		return err
	}
	if err := r.decode(resp, nil); err != nil {
		return err
	}

	return r.writePlain("⏸ Paused\n")
}

// PlayerNext skips to the next track.
func (r *Runner) PlayerNext(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	resp, err := r.client.SkipToNext(ctx, cmd.String("device"))
	if err != nil {
		return err
	}
	if err := r.decode(resp, nil); err != nil {
		return err
	}

	return r.writePlain("⏭ Skipped\n")
}

// PlayerPrevious skips to the previous track.
func (r *Runner) PlayerPrevious(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	resp, err := r.client.SkipToPrevious(ctx, cmd.String("device"))
	if err != nil {
		return err
	}
	if err := r.decode(resp, nil); err != nil {
		return err
	}

	return r.writePlain("⏮ Skipped back\n")
}

// PlayerSeek seeks to a position in the current track, in seconds.
func (r *Runner) PlayerSeek(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	seconds := int(cmd.Int("to"))
	if seconds < 0 {
		return fmt.Errorf("%w: position must be non-negative", shared.ErrInvalidArgument)
	}

	resp, err := r.client.SeekToPosition(ctx, seconds*1000, cmd.String("device"))
	if err != nil {
		return err
	}
	if err := r.decode(resp, nil); err != nil {
		return err
	}

	return r.writePlain("→ Seeked to %s\n", shared.FormatDuration(seconds))
}

// PlayerVolume sets the playback volume.
func (r *Runner) PlayerVolume(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	percent := int(cmd.Int("percent"))
	if percent < 0 || percent > 100 {
		return fmt.Errorf("%w: volume must be between 0 and 100", shared.ErrInvalidArgument)
	}

	resp, err := r.client.SetPlaybackVolume(ctx, percent, cmd.String("device"))
	if err != nil {
		return err
	}
	if err := r.decode(resp, nil); err != nil {
		return err
	}

	return r.writePlain("🔊 Volume set to %d%%\n", percent)
}

// PlayerRepeat sets the repeat mode.
func (r *Runner) PlayerRepeat(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	mode, err := spotify.ParseRepeatMode(cmd.StringArg("mode"))
	if err != nil {
		return fmt.Errorf("%w: use track, context or off", err)
	}

	resp, err := r.client.SetRepeatMode(ctx, mode, cmd.String("device"))
	if err != nil {
		return err
	}
	if err := r.decode(resp, nil); err != nil {
		return err
	}

	return r.writePlain("🔁 Repeat set to %s\n", mode)
}

// PlayerShuffle toggles shuffle on or off.
func (r *Runner) PlayerShuffle(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	state := cmd.Bool("on")
	resp, err := r.client.TogglePlaybackShuffle(ctx, state, cmd.String("device"))
	if err != nil {
		return err
	}
	if err := r.decode(resp, nil); err != nil {
		return err
	}

	if state {
		return r.writePlain("🔀 Shuffle on\n")
	}
	return r.writePlain("→ Shuffle off\n")
}

// PlayerTransfer moves playback to another device.
func (r *Runner) PlayerTransfer(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	deviceID := cmd.StringArg("device")
	if deviceID == "" {
		return fmt.Errorf("%w: device id", shared.ErrMissingArgument)
	}

	resp, err := r.client.TransferPlayback(ctx, spotify.NewList(deviceID), cmd.Bool("play"))
	if err != nil {
		return err
	}
	if err := r.decode(resp, nil); err != nil {
		return err
	}

	return r.writePlain("→ Playback transferred\n")
}

// PlayerQueue shows the playback queue or appends to it.
func (r *Runner) PlayerQueue(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	if uri := cmd.String("add"); uri != "" {
		resp, err := r.client.AddToQueue(ctx, uri, cmd.String("device"))
		if err != nil {
			return err
		}
		if err := r.decode(resp, nil); err != nil {
			return err
		}
		return r.writePlain("✓ Added to queue\n")
	}

	resp, err := r.client.GetUserQueue(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeResponse(resp, cmd.Bool("pretty"))
	}

	var queue struct {
		CurrentlyPlaying *models.Track  `json:"currently_playing"`
		Queue            []models.Track `json:"queue"`
	}
	if err := r.decode(resp, &queue); err != nil {
		return err
	}

	if queue.CurrentlyPlaying != nil {
		r.writePlain("Now: %s - %s\n\n", queue.CurrentlyPlaying.ArtistName(), queue.CurrentlyPlaying.Name)
	}
	for i, track := range queue.Queue {
		r.writePlain("%d. %s - %s\n", i+1, track.ArtistName(), track.Name)
	}

	return nil
}

// PlayerRecent shows recently played tracks within an optional cursor window.
func (r *Runner) PlayerRecent(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	resp, err := r.client.GetRecentlyPlayed(ctx, &spotify.RecentlyPlayedOpts{
		Limit:  cmd.Int("limit"),
		After:  cmd.Int64("after"),
		Before: cmd.Int64("before"),
	})
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeResponse(resp, cmd.Bool("pretty"))
	}

	var history struct {
		Items []struct {
			Track    models.Track `json:"track"`
			PlayedAt string       `json:"played_at"`
		} `json:"items"`
	}
	if err := r.decode(resp, &history); err != nil {
		return err
	}

	for i, item := range history.Items {
		r.writePlain("%d. %s - %s (%s)\n", i+1, item.Track.ArtistName(), item.Track.Name, item.PlayedAt)
	}

	return nil
}
