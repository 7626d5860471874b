package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/webread"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements webread.Extractor at compile time.
var _ webread.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the main article from HTML.
// The article content is converted to Markdown by the injected Converter.
type Extractor struct {
	conv webread.Converter
}

// NewExtractor creates a new readability-based Extractor.
func NewExtractor(conv webread.Converter) *Extractor {
	return &Extractor{conv: conv}
}

// Extract processes raw HTML fetched from baseURL.
func (e *Extractor) Extract(rawHTML string, baseURL string) (*webread.ExtractResult, error) {
	if rawHTML == "" {
		return nil, webread.Errorf(webread.EINVALID, "empty HTML input")
	}

	pageURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, webread.Errorf(webread.EINVALID, "invalid base URL: %v", err)
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), pageURL)
	if err != nil {
		return nil, err
	}

	var text string
	if article.Content != "" {
		text, err = e.conv.Convert(article.Content)
		if err != nil {
			return nil, err
		}
	}

	return &webread.ExtractResult{
		Title: article.Title,
		Text:  strings.TrimSpace(text),
	}, nil
}
