// Package gemini implements relevance distillation and token counting on
// top of the Google Gemini API.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/webread"
	"google.golang.org/genai"
)

// DefaultModel is the model used for relevance distillation.
const DefaultModel = "gemini-2.5-flash-lite"

// DefaultMaxChars caps how much page text is sent to the model per call.
const DefaultMaxChars = 200_000

// Ensure Distiller implements webread.Distiller at compile time.
var _ webread.Distiller = (*Distiller)(nil)

// Distiller implements webread.Distiller using Google Gemini.
type Distiller struct {
	client   *genai.Client
	model    string
	maxChars int
}

// Option configures a Distiller.
type Option func(*Distiller)

// WithModel overrides the distillation model.
// Defaults to DefaultModel if not specified.
func WithModel(model string) Option {
	return func(d *Distiller) {
		d.model = model
	}
}

// WithMaxChars overrides the page text budget.
func WithMaxChars(n int) Option {
	return func(d *Distiller) {
		d.maxChars = n
	}
}

// NewDistiller creates a new Distiller.
func NewDistiller(client *genai.Client, opts ...Option) *Distiller {
	d := &Distiller{
		client:   client,
		model:    DefaultModel,
		maxChars: DefaultMaxChars,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Distill returns the query-relevant portion of text, or webread.NotRelevant
// when the page has nothing to do with the query. Page text beyond the
// character budget is truncated before prompting.
func (d *Distiller) Distill(ctx context.Context, text, query, queryContext string) (string, error) {
	if text == "" {
		return "", webread.Errorf(webread.EINVALID, "text required")
	}
	if query == "" && queryContext == "" {
		return "", webread.Errorf(webread.EINVALID, "query or context required")
	}

	if len(text) > d.maxChars {
		text = text[:d.maxChars]
	}

	prompt := BuildUserPrompt(text, query, queryContext)
	config := BuildConfig()

	result, err := d.client.Models.GenerateContent(ctx, d.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", webread.Errorf(webread.EINTERNAL, "gemini returned nil result")
	}

	completion := strings.TrimSpace(result.Text())
	if completion == "" {
		return "", webread.Errorf(webread.EINTERNAL, "gemini returned an empty completion")
	}

	return completion, nil
}

// BuildConfig returns the GenerateContentConfig for distillation calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: fmt.Sprintf("You are a machine that takes in the text of a webpage and a search query. "+
					"If the query is relevant to the page, return a comprehensive yet focused version of the page containing all the relevant information. "+
					"If the query is not relevant to the page, return %q and nothing else. "+
					"Do not add your own commentary. Retain URLs as they are. Be concise yet precise. "+
					"Output properly annotated Markdown.", webread.NotRelevant),
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the query and page text.
// The query and optional context are joined into one query block.
func BuildUserPrompt(text, query, queryContext string) string {
	query = strings.TrimSpace(query)
	queryContext = strings.TrimSpace(queryContext)

	combined := query
	if queryContext != "" {
		if combined != "" {
			combined += "\n"
		}
		combined += queryContext
	}

	var sb strings.Builder
	sb.WriteString("SEARCH QUERY:\n")
	sb.WriteString(combined)
	sb.WriteString("\n\nWEBPAGE TEXT:\n")
	sb.WriteString(text)
	return sb.String()
}
