package webread

import "context"

// Page is one readable web page in a result set.
type Page struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PageService answers queries with ordered, readable page records.
type PageService interface {
	// SearchPages resolves the query to candidate pages, reduces each to
	// readable text, and returns the surviving pages in candidate order.
	// The returned slice is never nil and never longer than query.N.
	// Individual page failures are skipped, not returned.
	SearchPages(ctx context.Context, query *Query) ([]*Page, error)
}
