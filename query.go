package webread

// Bounds on the number of pages a single query may request.
const (
	DefaultN = 3
	MinN     = 1
	MaxN     = 15
)

// Query describes a single retrieval request: a web search for Q, or a
// direct fetch of URL. When both are set, URL wins.
type Query struct {
	// Q is the web search query.
	Q string `json:"q"`

	// URL requests a single page directly, bypassing search.
	URL string `json:"url"`

	// Context optionally focuses relevance distillation, e.g. a topic the
	// caller is researching.
	Context string `json:"search_context"`

	// N caps the number of returned pages. Must be within [MinN, MaxN].
	N int `json:"n"`

	// SearchKey is the search credential resolved for this request.
	// Never serialized.
	SearchKey string `json:"-"`
}

// Validate returns EINVALID if the query cannot be served.
func (q *Query) Validate() error {
	if q.Q == "" && q.URL == "" {
		return Errorf(EINVALID, "Either 'url' or 'q' parameter must be provided")
	}
	if q.N < MinN || q.N > MaxN {
		return Errorf(EINVALID, "'n' must be between %d and %d", MinN, MaxN)
	}
	return nil
}
