package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/hostwalk/hostwalk"
	main "github.com/hostwalk/hostwalk/cmd/hostwalk"
	"github.com/hostwalk/hostwalk/crawl"
	"github.com/hostwalk/hostwalk/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints visited URLs in traversal order and records the walk", func(t *testing.T) {
		t.Parallel()

		var created *hostwalk.WalkRecord
		walks := &mock.WalkService{
			CreateWalkFn: func(_ context.Context, rec *hostwalk.WalkRecord) error {
				rec.ID = "walk-123"
				created = rec
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Walks:  walks,
			Walker: &crawl.Walker{
				Source: mock.GraphSource(map[string][]string{
					"https://example.com/":  {"https://example.com/a", "https://example.com/b"},
					"https://example.com/a": {},
					"https://example.com/b": {},
				}),
			},
		}

		cmd := &main.WalkCmd{URL: "https://example.com/", Strategy: "breadth-first"}

		err := cmd.Run(deps)
		require.NoError(t, err)

		assert.Equal(t,
			"https://example.com/\nhttps://example.com/a\nhttps://example.com/b\n",
			stdout.String())
		assert.Contains(t, stderr.String(), "visited 3 pages")

		require.NotNil(t, created)
		assert.Equal(t, "https://example.com/", created.StartURL)
		assert.Equal(t, hostwalk.StrategyBreadthFirst, created.Strategy)
		assert.Equal(t, 3, created.Visited)
		assert.NotEmpty(t, created.Fingerprint)
		assert.False(t, created.StartedAt.IsZero())
	})

	t.Run("rejects an unknown strategy before any fetch", func(t *testing.T) {
		t.Parallel()

		fetched := false
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Walker: &crawl.Walker{
				Source: &mock.LinkSource{
					LinksFn: func(context.Context, string) ([]string, error) {
						fetched = true
						return nil, nil
					},
				},
			},
		}

		cmd := &main.WalkCmd{URL: "https://example.com/", Strategy: "sideways"}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, hostwalk.EINVALID, hostwalk.ErrorCode(err))
		assert.False(t, fetched)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("reports fetch failures to stderr and keeps walking", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Walker: &crawl.Walker{
				Source: &mock.LinkSource{
					LinksFn: func(_ context.Context, pageURL string) ([]string, error) {
						switch pageURL {
						case "https://example.com/":
							return []string{"https://example.com/broken", "https://example.com/ok"}, nil
						case "https://example.com/broken":
							return nil, errors.New("connection refused")
						default:
							return nil, nil
						}
					},
				},
			},
		}

		cmd := &main.WalkCmd{URL: "https://example.com/", Strategy: "breadth-first", NoSave: true}

		err := cmd.Run(deps)
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "https://example.com/broken")
		assert.Contains(t, stdout.String(), "https://example.com/ok")
		assert.Contains(t, stderr.String(), "fetch failed: https://example.com/broken")
		assert.Contains(t, stderr.String(), "1 failed")
	})

	t.Run("with --no-save does not record the walk", func(t *testing.T) {
		t.Parallel()

		createCalled := false
		walks := &mock.WalkService{
			CreateWalkFn: func(context.Context, *hostwalk.WalkRecord) error {
				createCalled = true
				return nil
			},
		}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Walks:  walks,
			Walker: &crawl.Walker{
				Source: mock.GraphSource(map[string][]string{"https://example.com/": {}}),
			},
		}

		cmd := &main.WalkCmd{URL: "https://example.com/", Strategy: "dfs", NoSave: true}

		require.NoError(t, cmd.Run(deps))
		assert.False(t, createCalled)
	})

	t.Run("returns error when recording fails", func(t *testing.T) {
		t.Parallel()

		walks := &mock.WalkService{
			CreateWalkFn: func(context.Context, *hostwalk.WalkRecord) error {
				return hostwalk.Errorf(hostwalk.EINTERNAL, "database error")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Walks:  walks,
			Walker: &crawl.Walker{
				Source: mock.GraphSource(map[string][]string{"https://example.com/": {}}),
			},
		}

		cmd := &main.WalkCmd{URL: "https://example.com/", Strategy: "breadth-first"}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "failed to record walk")
	})
}
