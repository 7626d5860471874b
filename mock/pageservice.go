package mock

import (
	"context"

	"github.com/fwojciec/webread"
)

var _ webread.PageService = (*PageService)(nil)

// PageService is a mock implementation of webread.PageService.
type PageService struct {
	SearchPagesFn func(ctx context.Context, query *webread.Query) ([]*webread.Page, error)
}

func (s *PageService) SearchPages(ctx context.Context, query *webread.Query) ([]*webread.Page, error) {
	return s.SearchPagesFn(ctx, query)
}
