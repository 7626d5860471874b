// Package goquery provides the DOM-based implementation of webread.Extractor.
// It reduces a raw HTML page to readable text: the title is pulled from the
// <title> element, links are rewritten to inline "text (url)" annotations,
// non-content elements are removed, and the remaining text nodes are joined
// in document order.
package goquery

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webread"
	"golang.org/x/net/html"
)

// Ensure Extractor implements webread.Extractor at compile time.
var _ webread.Extractor = (*Extractor)(nil)

// Extractor reduces raw HTML to readable text without fetching anything.
type Extractor struct{}

// NewExtractor creates a new DOM-based Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML fetched from baseURL.
//
// Anchors are annotated in place before any text is collected: the anchor's
// content becomes "text (url)" where url is the resolved href with its
// http(s) scheme stripped for display. Only scheme-relative ("//host/p")
// and root-relative ("/p") hrefs are resolved; other hrefs are used as-is.
func (e *Extractor) Extract(rawHTML string, baseURL string) (*webread.ExtractResult, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, webread.Errorf(webread.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, webread.Errorf(webread.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		resolved := resolveHref(base, href)

		text := strings.TrimSpace(sel.Text())
		if text == "" {
			text = "Link"
		}

		sel.SetText(fmt.Sprintf("%s (%s)", text, stripScheme(resolved)))
	})

	doc.Find("meta, footer, nav, script, style, button, form").Remove()
	doc.Find("link[rel~=stylesheet]").Remove()

	var lines []string
	for _, node := range doc.Selection.Nodes {
		collectText(node, &lines)
	}

	return &webread.ExtractResult{
		Title: title,
		Text:  strings.Join(lines, "\n"),
	}, nil
}

// resolveHref resolves scheme-relative and root-relative hrefs against the
// base URL. Any other href is returned unchanged.
func resolveHref(base *url.URL, href string) string {
	switch {
	case strings.HasPrefix(href, "//"):
		return "https:" + href
	case strings.HasPrefix(href, "/"):
		return base.Scheme + "://" + base.Host + href
	default:
		return href
	}
}

// stripScheme removes a leading http:// or https:// for display.
func stripScheme(u string) string {
	if after, ok := strings.CutPrefix(u, "http://"); ok {
		return after
	}
	if after, ok := strings.CutPrefix(u, "https://"); ok {
		return after
	}
	return u
}

// collectText gathers trimmed, non-empty text nodes in document order.
func collectText(n *html.Node, lines *[]string) {
	if n.Type == html.TextNode {
		if s := strings.TrimSpace(n.Data); s != "" {
			*lines = append(*lines, s)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, lines)
	}
}
