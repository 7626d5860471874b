package trafilatura

import (
	"bytes"
	"errors"
	"net/url"
	"strings"

	"github.com/fwojciec/webread"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements webread.Extractor at compile time.
var _ webread.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main article from HTML.
// The article content is converted to Markdown by the injected Converter,
// so boilerplate removal and link handling differ from the DOM extractor.
type Extractor struct {
	conv webread.Converter
}

// NewExtractor creates a new article-focused Extractor.
func NewExtractor(conv webread.Converter) *Extractor {
	return &Extractor{conv: conv}
}

// Extract processes raw HTML fetched from baseURL.
func (e *Extractor) Extract(rawHTML string, baseURL string) (*webread.ExtractResult, error) {
	if rawHTML == "" {
		return nil, errors.New("empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(baseURL); err == nil {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var text string
	if result.ContentNode != nil {
		contentHTML, err := renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
		text, err = e.conv.Convert(contentHTML)
		if err != nil {
			return nil, err
		}
	}

	return &webread.ExtractResult{
		Title: result.Metadata.Title,
		Text:  strings.TrimSpace(text),
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
