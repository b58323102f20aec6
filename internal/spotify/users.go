package spotify

import "context"

// TopItemsOpts shapes a top-items lookup.
type TopItemsOpts struct {
	// TimeRange selects the affinity window; the API default is
	// medium_term when omitted.
	TimeRange TimeRange
	Limit     int
	Offset    int
}

// GetCurrentUserProfile retrieves the profile of the authorized user.
func (c *Client) GetCurrentUserProfile(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/me", nil)
}

// Me retrieves the authenticated user.
//
// Alias for [Client.GetCurrentUserProfile].
func (c *Client) Me(ctx context.Context) (*Response, error) {
	return c.GetCurrentUserProfile(ctx)
}

// GetUserProfile retrieves the public profile of another user.
func (c *Client) GetUserProfile(ctx context.Context, userID string) (*Response, error) {
	return c.get(ctx, "/users/"+userID, nil)
}

// GetUserTopItems retrieves the user's top tracks or artists over a
// time range.
func (c *Client) GetUserTopItems(ctx context.Context, itemType TopItemType, opts *TopItemsOpts) (*Response, error) {
	if opts == nil {
		opts = &TopItemsOpts{}
	}

	p := NewParams()
	p.Set("time_range", opts.TimeRange.String())
	p.SetPage(opts.Limit, opts.Offset)

	return c.get(ctx, "/me/top/"+itemType.String(), p)
}

// GetTopTracks retrieves the user's top tracks.
//
// Delegates to [Client.GetUserTopItems] with a fixed type tag.
func (c *Client) GetTopTracks(ctx context.Context, opts *TopItemsOpts) (*Response, error) {
	return c.GetUserTopItems(ctx, TopItemTracks, opts)
}

// GetTopArtists retrieves the user's top artists.
//
// Delegates to [Client.GetUserTopItems] with a fixed type tag.
func (c *Client) GetTopArtists(ctx context.Context, opts *TopItemsOpts) (*Response, error) {
	return c.GetUserTopItems(ctx, TopItemArtists, opts)
}
