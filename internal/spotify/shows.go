package spotify

import "context"

// GetShow retrieves catalog information for a single podcast show.
func (c *Client) GetShow(ctx context.Context, showID string, opts *MarketOpts) (*Response, error) {
	if opts == nil {
		opts = &MarketOpts{}
	}

	p := NewParams()
	p.Set("market", opts.Market)

	return c.get(ctx, "/shows/"+showID, p)
}

// GetShows retrieves catalog information for several shows in one call.
func (c *Client) GetShows(ctx context.Context, showIDs List, opts *MarketOpts) (*Response, error) {
	if opts == nil {
		opts = &MarketOpts{}
	}

	p := NewParams()
	p.SetList("ids", showIDs)
	p.Set("market", opts.Market)

	return c.get(ctx, "/shows", p)
}

// GetShowEpisodes retrieves a show's episodes with pagination.
func (c *Client) GetShowEpisodes(ctx context.Context, showID string, opts *MarketPageOpts) (*Response, error) {
	if opts == nil {
		opts = &MarketPageOpts{}
	}

	p := NewParams()
	p.Set("market", opts.Market)
	p.SetPage(opts.Limit, opts.Offset)

	return c.get(ctx, "/shows/"+showID+"/episodes", p)
}

// GetSavedShows retrieves shows saved in the current user's library.
func (c *Client) GetSavedShows(ctx context.Context, opts *PageOpts) (*Response, error) {
	if opts == nil {
		opts = &PageOpts{}
	}

	p := NewParams()
	p.SetPage(opts.Limit, opts.Offset)

	return c.get(ctx, "/me/shows", p)
}
