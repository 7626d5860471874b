package webread

import "context"

// NotRelevant is the exact completion a Distiller produces when a page
// contains nothing relevant to the query.
const NotRelevant = "NOT RELEVANT"

// Distiller reduces page text to the content relevant to a query.
type Distiller interface {
	// Distill returns the query-relevant portion of text. queryContext is
	// optional caller-supplied focus. A page with no relevant content
	// yields NotRelevant. An empty completion is an error.
	Distill(ctx context.Context, text string, query string, queryContext string) (string, error)
}
