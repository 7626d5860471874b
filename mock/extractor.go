package mock

import "github.com/fwojciec/webread"

var _ webread.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webread.Extractor.
type Extractor struct {
	ExtractFn func(html string, baseURL string) (*webread.ExtractResult, error)
}

func (e *Extractor) Extract(html string, baseURL string) (*webread.ExtractResult, error) {
	return e.ExtractFn(html, baseURL)
}
