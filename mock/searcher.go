package mock

import (
	"context"

	"github.com/fwojciec/webread"
)

var _ webread.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of webread.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, key string, query string, count int) ([]webread.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, key string, query string, count int) ([]webread.SearchResult, error) {
	return s.SearchFn(ctx, key, query, count)
}
