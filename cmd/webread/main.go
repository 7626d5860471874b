package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/webread"
	"github.com/fwojciec/webread/brave"
	"github.com/fwojciec/webread/gemini"
	webgin "github.com/fwojciec/webread/gin"
	"github.com/fwojciec/webread/goquery"
	"github.com/fwojciec/webread/htmltomarkdown"
	webhttp "github.com/fwojciec/webread/http"
	"github.com/fwojciec/webread/readability"
	"github.com/fwojciec/webread/retrieve"
	webslog "github.com/fwojciec/webread/slog"
	"github.com/fwojciec/webread/sqlite"
	"github.com/fwojciec/webread/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// DB is the history database. Open only when a path was configured.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webread"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'webread --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Kong reports the full command path, e.g. "search <query>".
	cmd := kongCtx.Command()
	if i := strings.IndexByte(cmd, ' '); i >= 0 {
		cmd = cmd[:i]
	}

	deps.Config = webread.Config{
		SearchKey: cli.BraveKey,
		GeminiKey: cli.GeminiKey,
	}

	// The server always logs; one-shot commands only with --verbose.
	var logOutput io.Writer = io.Discard
	if cli.Verbose || cmd == "serve" {
		logOutput = stderr
	}
	logger := slog.New(slog.NewTextHandler(logOutput, nil))

	// Open the history database when configured
	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()

		deps.History = webslog.NewLoggingHistoryService(sqlite.NewHistoryService(m.DB), logger)
	}

	// Wire the retrieval pipeline for commands that answer queries
	if cmd == "serve" || cmd == "search" {
		fetcher := webhttp.NewFetcher(webhttp.WithTimeout(cli.FetchTimeout))
		defer fetcher.Close()

		var extractor webread.Extractor
		switch cli.Extractor {
		case "article":
			extractor = trafilatura.NewExtractor(htmltomarkdown.NewConverter())
		case "readability":
			extractor = readability.NewExtractor(htmltomarkdown.NewConverter())
		default:
			extractor = goquery.NewExtractor()
		}

		var distiller webread.Distiller
		if deps.Config.DistillationEnabled() {
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  cli.GeminiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			distiller = webslog.NewLoggingDistiller(gemini.NewDistiller(client, gemini.WithModel(cli.GeminiModel)), logger)
		}

		retriever := &retrieve.Retriever{
			Searcher:    webslog.NewLoggingSearcher(brave.NewSearcher(), logger),
			Fetcher:     webslog.NewLoggingFetcher(fetcher, logger),
			Extractor:   webslog.NewLoggingExtractor(extractor, logger),
			Distiller:   distiller,
			Limiter:     retrieve.NewDomainLimiter(cli.FetchRPS, 1),
			History:     deps.History,
			Config:      deps.Config,
			Concurrency: cli.Concurrency,
		}
		deps.Service = webslog.NewLoggingPageService(retriever, logger)
	}

	if cmd == "serve" {
		deps.Server = webgin.New(deps.Service, deps.Config, logger, webgin.WithAddr(cli.Serve.Addr))
	}

	if cmd == "search" && cli.Search.Tokens {
		// Token counting is best-effort; without a tokenizer the summary
		// simply omits counts.
		if counter, err := gemini.NewTokenCounter(tokenizerModel); err == nil {
			deps.Tokens = counter
		}
	}

	return kongCtx.Run(deps)
}

// tokenizerModel is used for token counting. The local tokenizer supports a
// fixed model list, so this stays pinned independently of --gemini-model.
const tokenizerModel = "gemini-2.5-flash"
