package spotify

import "context"

// PlaylistOpts shapes a single-playlist lookup.
type PlaylistOpts struct {
	Market string
	// Fields restricts the returned fields, comma-joined or as elements.
	Fields List
	// AdditionalTypes widens the item types returned ("track", "episode").
	AdditionalTypes List
}

// PlaylistItemsOpts shapes a playlist-items lookup.
type PlaylistItemsOpts struct {
	Market          string
	Fields          List
	AdditionalTypes List
	Limit           int
	Offset          int
}

// GetPlaylist retrieves a playlist owned or followed by a user.
func (c *Client) GetPlaylist(ctx context.Context, playlistID string, opts *PlaylistOpts) (*Response, error) {
	if opts == nil {
		opts = &PlaylistOpts{}
	}

	p := NewParams()
	p.Set("market", opts.Market)
	p.SetList("fields", opts.Fields)
	p.SetList("additional_types", opts.AdditionalTypes)

	return c.get(ctx, "/playlists/"+playlistID, p)
}

// GetPlaylistItems retrieves a playlist's items with pagination.
func (c *Client) GetPlaylistItems(ctx context.Context, playlistID string, opts *PlaylistItemsOpts) (*Response, error) {
	if opts == nil {
		opts = &PlaylistItemsOpts{}
	}

	p := NewParams()
	p.Set("market", opts.Market)
	p.SetList("fields", opts.Fields)
	p.SetList("additional_types", opts.AdditionalTypes)
	p.SetPage(opts.Limit, opts.Offset)

	return c.get(ctx, "/playlists/"+playlistID+"/tracks", p)
}

// GetCurrentUserPlaylists retrieves the current user's playlists.
func (c *Client) GetCurrentUserPlaylists(ctx context.Context, opts *PageOpts) (*Response, error) {
	if opts == nil {
		opts = &PageOpts{}
	}

	p := NewParams()
	p.SetPage(opts.Limit, opts.Offset)

	return c.get(ctx, "/me/playlists", p)
}

// GetUserPlaylists retrieves the public playlists of another user.
func (c *Client) GetUserPlaylists(ctx context.Context, userID string, opts *PageOpts) (*Response, error) {
	if opts == nil {
		opts = &PageOpts{}
	}

	p := NewParams()
	p.SetPage(opts.Limit, opts.Offset)

	return c.get(ctx, "/users/"+userID+"/playlists", p)
}

// GetPlaylistCoverImage retrieves the cover images for a playlist.
func (c *Client) GetPlaylistCoverImage(ctx context.Context, playlistID string) (*Response, error) {
	return c.get(ctx, "/playlists/"+playlistID+"/images", nil)
}
