package spotify

import "context"

// BrowseCategoriesOpts paginates and localizes the category list.
type BrowseCategoriesOpts struct {
	// Locale is an ISO 639-1 language code joined with an ISO 3166-1
	// country code by an underscore, e.g. "sv_SE".
	Locale string
	Limit  int
	Offset int
}

// CategoryOpts localizes a single category lookup.
type CategoryOpts struct {
	Locale string
}

// GetBrowseCategories retrieves the categories used to tag items on Spotify.
func (c *Client) GetBrowseCategories(ctx context.Context, opts *BrowseCategoriesOpts) (*Response, error) {
	if opts == nil {
		opts = &BrowseCategoriesOpts{}
	}

	p := NewParams()
	p.Set("locale", opts.Locale)
	p.SetPage(opts.Limit, opts.Offset)

	return c.get(ctx, "/browse/categories", p)
}

// GetBrowseCategory retrieves a single browse category.
func (c *Client) GetBrowseCategory(ctx context.Context, categoryID string, opts *CategoryOpts) (*Response, error) {
	if opts == nil {
		opts = &CategoryOpts{}
	}

	p := NewParams()
	p.Set("locale", opts.Locale)

	return c.get(ctx, "/browse/categories/"+categoryID, p)
}
