package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/webread"
)

// Server runs the HTTP API until its context is cancelled.
type Server interface {
	Run(ctx context.Context) error
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Config  webread.Config
	Service webread.PageService
	History webread.HistoryService
	Tokens  webread.TokenCounter
	Server  Server
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BraveKey     string        `help:"Brave Search API key" env:"BRAVE_SEARCH_API_KEY"`
	GeminiKey    string        `help:"Gemini API key; enables relevance distillation" env:"GEMINI_API_KEY"`
	GeminiModel  string        `help:"Distillation model" default:"gemini-2.5-flash-lite"`
	DB           string        `help:"SQLite path for search history; empty disables history" env:"WEBREAD_DB"`
	FetchTimeout time.Duration `help:"Per-page fetch timeout" default:"5s"`
	Concurrency  int           `short:"c" default:"10" help:"Concurrent fetch limit"`
	FetchRPS     float64       `name:"fetch-rps" default:"2" help:"Per-domain requests per second"`
	Extractor    string        `enum:"dom,article,readability" default:"dom" help:"Extraction strategy"`
	Verbose      bool          `short:"v" help:"Log pipeline activity to stderr"`

	Serve   ServeCmd   `cmd:"" help:"Run the HTTP API server"`
	Search  SearchCmd  `cmd:"" help:"Retrieve readable pages for a query or URL"`
	History HistoryCmd `cmd:"" help:"Show or prune recorded searches"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address" default:":8000"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query   string `arg:"" optional:"" help:"Search query"`
	URL     string `help:"Fetch this page directly instead of searching"`
	N       int    `short:"n" default:"3" help:"Maximum pages to return"`
	Context string `help:"Focus for relevance distillation"`
	Tokens  bool   `help:"Report per-page size and approximate token count"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int           `default:"20" help:"Maximum records to show"`
	Prune time.Duration `help:"Delete records older than this duration"`
}
