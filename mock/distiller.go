package mock

import (
	"context"

	"github.com/fwojciec/webread"
)

var _ webread.Distiller = (*Distiller)(nil)

// Distiller is a mock implementation of webread.Distiller.
type Distiller struct {
	DistillFn func(ctx context.Context, text string, query string, queryContext string) (string, error)
}

func (d *Distiller) Distill(ctx context.Context, text string, query string, queryContext string) (string, error) {
	return d.DistillFn(ctx, text, query, queryContext)
}
