package spotify

import "context"

// GetAudiobook retrieves catalog information for a single audiobook.
func (c *Client) GetAudiobook(ctx context.Context, audiobookID string, opts *MarketOpts) (*Response, error) {
	if opts == nil {
		opts = &MarketOpts{}
	}

	p := NewParams()
	p.Set("market", opts.Market)

	return c.get(ctx, "/audiobooks/"+audiobookID, p)
}

// GetAudiobooks retrieves catalog information for several audiobooks in one call.
func (c *Client) GetAudiobooks(ctx context.Context, audiobookIDs List, opts *MarketOpts) (*Response, error) {
	if opts == nil {
		opts = &MarketOpts{}
	}

	p := NewParams()
	p.SetList("ids", audiobookIDs)
	p.Set("market", opts.Market)

	return c.get(ctx, "/audiobooks", p)
}

// GetAudiobookChapters retrieves an audiobook's chapters with pagination.
func (c *Client) GetAudiobookChapters(ctx context.Context, audiobookID string, opts *MarketPageOpts) (*Response, error) {
	if opts == nil {
		opts = &MarketPageOpts{}
	}

	p := NewParams()
	p.Set("market", opts.Market)
	p.SetPage(opts.Limit, opts.Offset)

	return c.get(ctx, "/audiobooks/"+audiobookID+"/chapters", p)
}

// GetSavedAudiobooks retrieves audiobooks saved in the current user's library.
func (c *Client) GetSavedAudiobooks(ctx context.Context, opts *PageOpts) (*Response, error) {
	if opts == nil {
		opts = &PageOpts{}
	}

	p := NewParams()
	p.SetPage(opts.Limit, opts.Offset)

	return c.get(ctx, "/me/audiobooks", p)
}
