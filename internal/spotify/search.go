package spotify

import (
	"context"
	"fmt"

	"github.com/lunamoth/spx/internal/shared"
)

// SearchOpts shapes a catalog search.
type SearchOpts struct {
	Market string
	Limit  int
	Offset int
	// IncludeExternal set to "audio" marks externally hosted audio as
	// playable in the response.
	IncludeExternal string
}

// Search queries the catalog for items matching the given query string.
//
// Types selects the item types to search across (album, artist, playlist,
// track, show, episode, audiobook) and is required, as is the query itself.
func (c *Client) Search(ctx context.Context, query string, types List, opts *SearchOpts) (*Response, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}
	if types.IsZero() {
		return nil, fmt.Errorf("%w: search types", shared.ErrMissingArgument)
	}

	if opts == nil {
		opts = &SearchOpts{}
	}

	p := NewParams()
	p.Set("q", query)
	p.SetList("type", types)
	p.Set("market", opts.Market)
	p.SetPage(opts.Limit, opts.Offset)
	p.Set("include_external", opts.IncludeExternal)

	return c.get(ctx, "/search", p)
}
