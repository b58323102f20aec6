package spotify

import (
	"context"
	"fmt"

	"github.com/lunamoth/spx/internal/shared"
)

// PlayerStateOpts shapes playback-state and currently-playing lookups.
type PlayerStateOpts struct {
	Market string
	// AdditionalTypes widens the item types considered playing
	// ("track", "episode"), comma-joined or as elements.
	AdditionalTypes List
}

// ResumePlaybackOpts shapes a start/resume request.
//
// TrackIDs and ContextURI select what to play; leaving both unset resumes
// the current context. DeviceID targets a specific device.
type ResumePlaybackOpts struct {
	DeviceID   string
	TrackIDs   List
	ContextURI string
	PositionMS int
}

// RecentlyPlayedOpts shapes the recently-played cursor window.
//
// After and Before are Unix millisecond timestamps and are mutually
// exclusive: only one may shape the result window.
type RecentlyPlayedOpts struct {
	Limit  int
	After  int64
	Before int64
}

// GetPlaybackState retrieves information about the user's current playback.
func (c *Client) GetPlaybackState(ctx context.Context, opts *PlayerStateOpts) (*Response, error) {
	if opts == nil {
		opts = &PlayerStateOpts{}
	}

	p := NewParams()
	p.Set("market", opts.Market)
	p.SetList("additional_types", opts.AdditionalTypes)

	return c.get(ctx, "/me/player", p)
}

// TransferPlayback moves playback onto the given device.
func (c *Client) TransferPlayback(ctx context.Context, deviceIDs List, play bool) (*Response, error) {
	p := NewParams()
	p.SetStrings("device_ids", deviceIDs.Values())
	p.SetBool("play", play)

	return c.put(ctx, "/me/player", p)
}

// GetAvailableDevices retrieves the devices available for playback.
func (c *Client) GetAvailableDevices(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/me/player/devices", nil)
}

// GetCurrentlyPlaying retrieves the item currently playing.
func (c *Client) GetCurrentlyPlaying(ctx context.Context, opts *PlayerStateOpts) (*Response, error) {
	if opts == nil {
		opts = &PlayerStateOpts{}
	}

	p := NewParams()
	p.Set("market", opts.Market)
	p.SetList("additional_types", opts.AdditionalTypes)

	return c.get(ctx, "/me/player/currently-playing", p)
}

// ResumePlayback starts or resumes playback.
//
// Track IDs are rewritten into fully qualified "spotify:track:<id>" URIs
// for the "uris" body field; the playback endpoint does not accept bare IDs.
func (c *Client) ResumePlayback(ctx context.Context, opts *ResumePlaybackOpts) (*Response, error) {
	if opts == nil {
		opts = &ResumePlaybackOpts{}
	}

	p := NewParams()
	p.Set("device_id", opts.DeviceID)
	if !opts.TrackIDs.IsZero() {
		p.SetStrings("uris", TrackURIs(opts.TrackIDs))
	}
	p.Set("context_uri", opts.ContextURI)
	if opts.PositionMS > 0 {
		p.SetInt("position_ms", opts.PositionMS)
	}

	return c.put(ctx, "/me/player/play", p)
}

// PausePlayback pauses playback, optionally on a specific device.
func (c *Client) PausePlayback(ctx context.Context, deviceID string) (*Response, error) {
	p := NewParams()
	p.Set("device_id", deviceID)

	return c.put(ctx, "/me/player/pause", p)
}

// SkipToNext skips to the next track in the queue.
func (c *Client) SkipToNext(ctx context.Context, deviceID string) (*Response, error) {
	p := NewParams()
	p.Set("device_id", deviceID)

	return c.post(ctx, "/me/player/next", p)
}

// SkipToPrevious skips to the previous track.
func (c *Client) SkipToPrevious(ctx context.Context, deviceID string) (*Response, error) {
	p := NewParams()
	p.Set("device_id", deviceID)

	return c.post(ctx, "/me/player/previous", p)
}

// SeekToPosition seeks to the given position in the current track.
func (c *Client) SeekToPosition(ctx context.Context, positionMS int, deviceID string) (*Response, error) {
	p := NewParams()
	p.SetInt("position_ms", positionMS)
	p.Set("device_id", deviceID)

	return c.put(ctx, "/me/player/seek", p)
}

// SetRepeatMode sets the repeat state for playback.
func (c *Client) SetRepeatMode(ctx context.Context, mode RepeatMode, deviceID string) (*Response, error) {
	p := NewParams()
	p.Set("state", mode.String())
	p.Set("device_id", deviceID)

	return c.put(ctx, "/me/player/repeat", p)
}

// SetPlaybackVolume sets the playback volume as a percentage.
func (c *Client) SetPlaybackVolume(ctx context.Context, percent int, deviceID string) (*Response, error) {
	p := NewParams()
	p.SetInt("volume_percent", percent)
	p.Set("device_id", deviceID)

	return c.put(ctx, "/me/player/volume", p)
}

// TogglePlaybackShuffle turns shuffle on or off.
func (c *Client) TogglePlaybackShuffle(ctx context.Context, state bool, deviceID string) (*Response, error) {
	p := NewParams()
	p.SetBool("state", state)
	p.Set("device_id", deviceID)

	return c.put(ctx, "/me/player/shuffle", p)
}

// GetRecentlyPlayed retrieves the user's recently played tracks.
//
// The API defines after and before as mutually exclusive cursors, so
// supplying both fails with [shared.ErrConflictingParams] before any
// network call.
func (c *Client) GetRecentlyPlayed(ctx context.Context, opts *RecentlyPlayedOpts) (*Response, error) {
	if opts == nil {
		opts = &RecentlyPlayedOpts{}
	}

	if opts.After > 0 && opts.Before > 0 {
		return nil, fmt.Errorf("%w: after and before are mutually exclusive", shared.ErrConflictingParams)
	}

	p := NewParams()
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	p.SetInt("limit", limit)
	if opts.After > 0 {
		p.SetInt64("after", opts.After)
	}
	if opts.Before > 0 {
		p.SetInt64("before", opts.Before)
	}

	return c.get(ctx, "/me/player/recently-played", p)
}

// GetUserQueue retrieves the user's current playback queue.
func (c *Client) GetUserQueue(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/me/player/queue", nil)
}

// AddToQueue appends an item to the user's playback queue.
func (c *Client) AddToQueue(ctx context.Context, uri string, deviceID string) (*Response, error) {
	if uri == "" {
		return nil, fmt.Errorf("%w: uri", shared.ErrMissingArgument)
	}

	p := NewParams()
	p.Set("uri", uri)
	p.Set("device_id", deviceID)

	return c.post(ctx, "/me/player/queue", p)
}
