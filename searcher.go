package webread

import "context"

// SearchResult is one candidate page returned by a web search provider.
type SearchResult struct {
	URL         string
	Title       string
	Description string
}

// Searcher queries a web search provider for candidate pages.
type Searcher interface {
	// Search returns up to count candidates for the query, in provider
	// ranking order. A provider-side failure returns EUPSTREAM carrying
	// the provider's HTTP status and response body.
	Search(ctx context.Context, key string, query string, count int) ([]SearchResult, error)
}
