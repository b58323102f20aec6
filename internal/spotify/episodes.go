package spotify

import "context"

// GetEpisode retrieves catalog information for a single podcast episode.
func (c *Client) GetEpisode(ctx context.Context, episodeID string, opts *MarketOpts) (*Response, error) {
	if opts == nil {
		opts = &MarketOpts{}
	}

	p := NewParams()
	p.Set("market", opts.Market)

	return c.get(ctx, "/episodes/"+episodeID, p)
}

// GetEpisodes retrieves catalog information for several episodes in one call.
func (c *Client) GetEpisodes(ctx context.Context, episodeIDs List, opts *MarketOpts) (*Response, error) {
	if opts == nil {
		opts = &MarketOpts{}
	}

	p := NewParams()
	p.SetList("ids", episodeIDs)
	p.Set("market", opts.Market)

	return c.get(ctx, "/episodes", p)
}

// GetSavedEpisodes retrieves episodes saved in the current user's library.
func (c *Client) GetSavedEpisodes(ctx context.Context, opts *MarketPageOpts) (*Response, error) {
	if opts == nil {
		opts = &MarketPageOpts{}
	}

	p := NewParams()
	p.Set("market", opts.Market)
	p.SetPage(opts.Limit, opts.Offset)

	return c.get(ctx, "/me/episodes", p)
}
