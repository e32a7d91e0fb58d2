package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/hostwalk/hostwalk"
	"github.com/hostwalk/hostwalk/crawl"
	"github.com/hostwalk/hostwalk/goquery"
	hosthttp "github.com/hostwalk/hostwalk/http"
	"github.com/hostwalk/hostwalk/regex"
	hostslog "github.com/hostwalk/hostwalk/slog"
	"github.com/hostwalk/hostwalk/sqlite"
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

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	WalkService hostwalk.WalkService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("hostwalk"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'hostwalk --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags.
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set HOSTWALK_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.WalkService = sqlite.NewWalkService(m.DB)
	deps.DB = m.DB
	deps.Walks = m.WalkService
	deps.Sitemaps = hosthttp.NewSitemapSource(nil)

	// Wire command-specific dependencies based on command.
	if cmd == "walk" || cmd == "images" {
		var fetcher hostwalk.Fetcher = &crawl.RetryFetcher{
			Fetcher: hosthttp.NewFetcher(),
			Delays:  crawl.DefaultRetryDelays(),
		}
		if cli.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			fetcher = hostslog.NewLoggingFetcher(fetcher, logger)
		}
		defer fetcher.Close()
		deps.Fetcher = fetcher
	}

	if cmd == "walk" {
		var extractor hostwalk.Extractor = regex.NewLinkExtractor()
		if cli.Walk.DOM {
			extractor = goquery.NewLinkExtractor()
		}

		var robots hostwalk.RobotsPolicy
		if cli.Walk.Robots {
			robots, err = hosthttp.PrepareRobots(ctx, nil, cli.Walk.URL)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: use --robots=false to walk without robots.txt enforcement")
				return fmt.Errorf("failed to prepare robots policy: %w", err)
			}
		}

		var limiter hostwalk.DomainLimiter
		if cli.Walk.RPS > 0 {
			limiter = crawl.NewDomainLimiter(cli.Walk.RPS)
		}

		var seeds []string
		if cli.Walk.Sitemap {
			seeds, err = deps.Sitemaps.Discover(ctx, cli.Walk.URL)
			if err != nil {
				return fmt.Errorf("failed to discover sitemap URLs: %w", err)
			}
		}

		deps.Walker = &crawl.Walker{
			Source:    &crawl.Source{Fetcher: deps.Fetcher, Extractor: extractor},
			Robots:    robots,
			Limiter:   limiter,
			UserAgent: hosthttp.DefaultUserAgent,
			MaxPages:  cli.Walk.MaxPages,
			Seeds:     seeds,
		}
	}

	if cmd == "robots" {
		robots, err := hosthttp.PrepareRobots(ctx, nil, cli.Robots.URL)
		if err != nil {
			return fmt.Errorf("failed to prepare robots policy: %w", err)
		}
		deps.Robots = robots
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("HOSTWALK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "hostwalk.db"
	}
	dir := filepath.Join(home, ".hostwalk")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "hostwalk.db")
}
