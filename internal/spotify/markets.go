package spotify

import "context"

// GetAvailableMarkets retrieves the markets where Spotify is available.
func (c *Client) GetAvailableMarkets(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/markets", nil)
}
