package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	main "github.com/hostwalk/hostwalk/cmd/hostwalk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sitemapStub struct {
	urls []string
	err  error
}

func (s *sitemapStub) Discover(context.Context, string) ([]string, error) {
	return s.urls, s.err
}

func TestSitemapCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints discovered URLs", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Sitemaps: &sitemapStub{urls: []string{
				"https://example.com/",
				"https://example.com/about",
			}},
		}

		cmd := &main.SitemapCmd{URL: "https://example.com"}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "https://example.com/\nhttps://example.com/about\n", stdout.String())
	})

	t.Run("reports when no sitemap URLs are found", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Sitemaps: &sitemapStub{},
		}

		cmd := &main.SitemapCmd{URL: "https://example.com"}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No sitemap URLs found.")
	})

	t.Run("returns error when discovery fails", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Sitemaps: &sitemapStub{err: errors.New("fetch sitemap: connection refused")},
		}

		cmd := &main.SitemapCmd{URL: "https://example.com"}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
