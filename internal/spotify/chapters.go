package spotify

import "context"

// GetChapter retrieves catalog information for a single audiobook chapter.
func (c *Client) GetChapter(ctx context.Context, chapterID string, opts *MarketOpts) (*Response, error) {
	if opts == nil {
		opts = &MarketOpts{}
	}

	p := NewParams()
	p.Set("market", opts.Market)

	return c.get(ctx, "/chapters/"+chapterID, p)
}

// GetChapters retrieves catalog information for several chapters in one call.
func (c *Client) GetChapters(ctx context.Context, chapterIDs List, opts *MarketOpts) (*Response, error) {
	if opts == nil {
		opts = &MarketOpts{}
	}

	p := NewParams()
	p.SetList("ids", chapterIDs)
	p.Set("market", opts.Market)

	return c.get(ctx, "/chapters", p)
}
