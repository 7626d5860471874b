package webread

// Config holds process-wide settings resolved once at startup.
type Config struct {
	// SearchKey authenticates to the web search provider.
	SearchKey string

	// GeminiKey authenticates to the distillation model.
	// Empty disables distillation.
	GeminiKey string
}

// SearchCredential resolves the search credential for one request: a
// non-empty per-request override wins, otherwise the configured key.
func (c Config) SearchCredential(override string) string {
	if override != "" {
		return override
	}
	return c.SearchKey
}

// DistillationEnabled reports whether relevance distillation is configured.
func (c Config) DistillationEnabled() bool {
	return c.GeminiKey != ""
}
