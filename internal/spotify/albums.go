package spotify

import "context"

// GetAlbum retrieves catalog information for a single album.
func (c *Client) GetAlbum(ctx context.Context, albumID string, opts *MarketOpts) (*Response, error) {
	if opts == nil {
		opts = &MarketOpts{}
	}

	p := NewParams()
	p.Set("market", opts.Market)

	return c.get(ctx, "/albums/"+albumID, p)
}

// GetAlbums retrieves catalog information for several albums in one call.
//
// IDs may be supplied comma-joined or as individual elements; they reach
// the wire as a single comma-separated "ids" parameter.
func (c *Client) GetAlbums(ctx context.Context, albumIDs List, opts *MarketOpts) (*Response, error) {
	if opts == nil {
		opts = &MarketOpts{}
	}

	p := NewParams()
	p.SetList("ids", albumIDs)
	p.Set("market", opts.Market)

	return c.get(ctx, "/albums", p)
}

// GetAlbumTracks retrieves an album's tracks with pagination.
func (c *Client) GetAlbumTracks(ctx context.Context, albumID string, opts *MarketPageOpts) (*Response, error) {
	if opts == nil {
		opts = &MarketPageOpts{}
	}

	p := NewParams()
	p.Set("market", opts.Market)
	p.SetPage(opts.Limit, opts.Offset)

	return c.get(ctx, "/albums/"+albumID+"/tracks", p)
}

// GetSavedAlbums retrieves albums saved in the current user's library.
func (c *Client) GetSavedAlbums(ctx context.Context, opts *MarketPageOpts) (*Response, error) {
	if opts == nil {
		opts = &MarketPageOpts{}
	}

	p := NewParams()
	p.SetPage(opts.Limit, opts.Offset)
	p.Set("market", opts.Market)

	return c.get(ctx, "/me/albums", p)
}

// GetNewReleases retrieves new album releases featured on Spotify.
func (c *Client) GetNewReleases(ctx context.Context, opts *PageOpts) (*Response, error) {
	if opts == nil {
		opts = &PageOpts{}
	}

	p := NewParams()
	p.SetPage(opts.Limit, opts.Offset)

	return c.get(ctx, "/browse/new-releases", p)
}
