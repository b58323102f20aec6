package spotify

import "context"

// ArtistAlbumsOpts filters an artist's discography.
type ArtistAlbumsOpts struct {
	// IncludeGroups selects album types (album, single, appears_on,
	// compilation), comma-joined or as elements.
	IncludeGroups List
	Market        string
	Limit         int
	Offset        int
}

// GetArtist retrieves catalog information for a single artist.
func (c *Client) GetArtist(ctx context.Context, artistID string) (*Response, error) {
	return c.get(ctx, "/artists/"+artistID, nil)
}

// GetArtists retrieves catalog information for several artists in one call.
func (c *Client) GetArtists(ctx context.Context, artistIDs List) (*Response, error) {
	p := NewParams()
	p.SetList("ids", artistIDs)

	return c.get(ctx, "/artists", p)
}

// GetArtistAlbums retrieves an artist's albums with pagination.
func (c *Client) GetArtistAlbums(ctx context.Context, artistID string, opts *ArtistAlbumsOpts) (*Response, error) {
	if opts == nil {
		opts = &ArtistAlbumsOpts{}
	}

	p := NewParams()
	p.SetList("include_groups", opts.IncludeGroups)
	p.Set("market", opts.Market)
	p.SetPage(opts.Limit, opts.Offset)

	return c.get(ctx, "/artists/"+artistID+"/albums", p)
}

// GetArtistTopTracks retrieves an artist's top tracks by market.
func (c *Client) GetArtistTopTracks(ctx context.Context, artistID string, opts *MarketOpts) (*Response, error) {
	if opts == nil {
		opts = &MarketOpts{}
	}

	p := NewParams()
	p.Set("market", opts.Market)

	return c.get(ctx, "/artists/"+artistID+"/top-tracks", p)
}

// GetRelatedArtists retrieves artists similar to the given artist.
func (c *Client) GetRelatedArtists(ctx context.Context, artistID string) (*Response, error) {
	return c.get(ctx, "/artists/"+artistID+"/related-artists", nil)
}
