package spotify

// Option structs shared by catalog operations. A zero value means "omit
// from the wire"; limit/offset fall back to the documented 20/0 defaults.

// MarketOpts narrows catalog lookups to an ISO 3166-1 alpha-2 market.
type MarketOpts struct {
	Market string
}

// PageOpts paginates list endpoints.
type PageOpts struct {
	Limit  int
	Offset int
}

// MarketPageOpts combines market filtering with pagination.
type MarketPageOpts struct {
	Market string
	Limit  int
	Offset int
}
