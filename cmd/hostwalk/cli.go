package main

import (
	"context"
	"io"

	"github.com/hostwalk/hostwalk"
	"github.com/hostwalk/hostwalk/crawl"
	"github.com/hostwalk/hostwalk/sqlite"
)

// SitemapDiscoverer is the subset of the sitemap source the CLI needs.
type SitemapDiscoverer interface {
	Discover(ctx context.Context, siteURL string) ([]string, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Walks    hostwalk.WalkService
	Walker   *crawl.Walker
	Fetcher  hostwalk.Fetcher
	Sitemaps SitemapDiscoverer
	Robots   hostwalk.RobotsPolicy
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log each fetch to stderr"`

	Walk    WalkCmd    `cmd:"" help:"Walk a site's same-host link graph"`
	Images  ImagesCmd  `cmd:"" help:"List image URLs referenced by a page"`
	Sitemap SitemapCmd `cmd:"" help:"Discover URLs from a site's sitemaps"`
	Robots  RobotsCmd  `cmd:"" help:"Check whether robots.txt allows a URL"`
	List    ListCmd    `cmd:"" help:"List stored walk records"`
	Rm      RmCmd      `cmd:"" help:"Delete a stored walk record"`
}

// WalkCmd is the "walk" subcommand.
type WalkCmd struct {
	URL      string  `arg:"" help:"Start URL"`
	Strategy string  `short:"s" default:"breadth-first" help:"Traversal strategy (breadth-first or depth-first)"`
	MaxPages int     `short:"n" help:"Stop after visiting this many pages (0 = no cap)"`
	DOM      bool    `help:"Extract links with an HTML parser instead of regexes"`
	RPS      float64 `help:"Per-domain requests per second (0 = unlimited)"`
	Robots   bool    `help:"Honor the site's robots.txt"`
	Sitemap  bool    `help:"Seed the frontier from the site's sitemaps"`
	NoSave   bool    `help:"Do not store a walk record"`
}

// ImagesCmd is the "images" subcommand.
type ImagesCmd struct {
	URL string `arg:"" help:"Page URL"`
	DOM bool   `help:"Extract images with an HTML parser instead of regexes"`
}

// SitemapCmd is the "sitemap" subcommand.
type SitemapCmd struct {
	URL string `arg:"" help:"Site URL"`
}

// RobotsCmd is the "robots" subcommand.
type RobotsCmd struct {
	URL       string `arg:"" help:"URL to check"`
	UserAgent string `default:"hostwalk/1.0" help:"User agent to check against"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	StartURL string `help:"Only show walks from this start URL"`
	Limit    int    `default:"20" help:"Maximum number of records to show"`
}

// RmCmd is the "rm" subcommand.
type RmCmd struct {
	ID string `arg:"" help:"Walk record ID"`
}
