package spotify

import "context"

// GetTrack retrieves catalog information for a single track.
func (c *Client) GetTrack(ctx context.Context, trackID string, opts *MarketOpts) (*Response, error) {
	if opts == nil {
		opts = &MarketOpts{}
	}

	p := NewParams()
	p.Set("market", opts.Market)

	return c.get(ctx, "/tracks/"+trackID, p)
}

// GetTracks retrieves catalog information for several tracks in one call.
func (c *Client) GetTracks(ctx context.Context, trackIDs List, opts *MarketOpts) (*Response, error) {
	if opts == nil {
		opts = &MarketOpts{}
	}

	p := NewParams()
	p.SetList("ids", trackIDs)
	p.Set("market", opts.Market)

	return c.get(ctx, "/tracks", p)
}

// GetSavedTracks retrieves tracks saved in the current user's library.
func (c *Client) GetSavedTracks(ctx context.Context, opts *MarketPageOpts) (*Response, error) {
	if opts == nil {
		opts = &MarketPageOpts{}
	}

	p := NewParams()
	p.Set("market", opts.Market)
	p.SetPage(opts.Limit, opts.Offset)

	return c.get(ctx, "/me/tracks", p)
}
