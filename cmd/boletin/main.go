package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/amontero/boletin"
	"github.com/amontero/boletin/crawl"
	"github.com/amontero/boletin/etree"
	"github.com/amontero/boletin/fs"
	"github.com/amontero/boletin/gemini"
	"github.com/amontero/boletin/goquery"
	boehttp "github.com/amontero/boletin/http"
	boeslog "github.com/amontero/boletin/slog"
	"github.com/amontero/boletin/sqlite"
	"github.com/amontero/boletin/vector"
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
	// Database path. Set before calling Run().
	DBPath string

	// DataDir holds the vector index and scraped pages.
	DataDir string

	// BaseURL overrides the gazette API host. Empty means production.
	BaseURL string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services, injectable for end-to-end testing. Nil fields are wired
	// with the real implementations by Run().
	Articles  boletin.ArticleService
	Gazette   boletin.GazetteClient
	Embedder  boletin.Embedder
	Fetcher   boletin.PageFetcher
	Extractor boletin.TextExtractor
	Pages     boletin.PageStore
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:  defaultDBPath(),
		DataDir: defaultDataDir(),
		BaseURL: os.Getenv("BOLETIN_BASE_URL"),
	}
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
		kong.Name("boletin"),
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
		return fmt.Errorf("no command specified. Run 'boletin --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set BOLETIN_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	verbose := os.Getenv("BOLETIN_VERBOSE") != ""
	logger := stdslog.New(stdslog.NewTextHandler(stderr, nil))

	// Wire core services into dependencies
	if m.Articles == nil {
		m.Articles = sqlite.NewArticleService(m.DB)
	}
	if verbose {
		m.Articles = boeslog.NewLoggingArticleService(m.Articles, logger)
	}
	deps.Articles = m.Articles

	if m.Gazette == nil {
		var opts []boehttp.Option
		if m.BaseURL != "" {
			opts = append(opts, boehttp.WithBaseURL(m.BaseURL))
		}
		client := boehttp.NewClient(opts...)
		m.Gazette = client
		if m.Fetcher == nil {
			m.Fetcher = client
		}
	}
	if verbose {
		m.Gazette = boeslog.NewLoggingGazetteClient(m.Gazette, logger)
	}
	deps.Gazette = m.Gazette

	// Wire command-specific dependencies based on command
	if cmd == "crawl" {
		deps.Crawler = &crawl.Crawler{
			Gazette:     deps.Gazette,
			Index:       &etree.IndexParser{},
			Parser:      &etree.ArticleParser{},
			Articles:    deps.Articles,
			Limiter:     crawl.NewLimiter(cli.Crawl.Rate),
			Concurrency: cli.Crawl.Concurrency,
		}
	}

	if cmd == "index" || cmd == "search" {
		if m.Embedder == nil {
			apiKey := os.Getenv("GEMINI_API_KEY")
			if apiKey == "" {
				fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
				return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
			}

			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}

			m.Embedder = gemini.NewEmbedder(client)
		}

		if err := os.MkdirAll(m.DataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory %q: %w", m.DataDir, err)
		}
		deps.Builder = &vector.Builder{Dir: m.DataDir, Embedder: m.Embedder}
	}

	if cmd == "scrape" {
		if m.Fetcher == nil {
			var opts []boehttp.Option
			if m.BaseURL != "" {
				opts = append(opts, boehttp.WithBaseURL(m.BaseURL))
			}
			m.Fetcher = boehttp.NewClient(opts...)
		}
		if m.Extractor == nil {
			m.Extractor = &goquery.Extractor{}
		}
		if m.Pages == nil {
			m.Pages = fs.NewWriter(filepath.Join(m.DataDir, "pages"))
		}
		deps.Fetcher = m.Fetcher
		deps.Extractor = m.Extractor
		deps.Pages = m.Pages
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("BOLETIN_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "boletin.db"
	}
	dir := filepath.Join(home, ".boletin")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "boletin.db")
}

func defaultDataDir() string {
	if path := os.Getenv("BOLETIN_DATA"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "data"
	}
	return filepath.Join(home, ".boletin", "data")
}
