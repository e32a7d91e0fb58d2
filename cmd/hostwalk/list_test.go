package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/hostwalk/hostwalk"
	main "github.com/hostwalk/hostwalk/cmd/hostwalk"
	"github.com/hostwalk/hostwalk/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists walks with ID, strategy, and page count", func(t *testing.T) {
		t.Parallel()

		walks := &mock.WalkService{
			FindWalksFn: func(_ context.Context, _ hostwalk.WalkFilter) ([]*hostwalk.WalkRecord, error) {
				return []*hostwalk.WalkRecord{
					{
						ID:          "walk-123",
						StartURL:    "https://example.com/docs",
						Strategy:    hostwalk.StrategyBreadthFirst,
						Visited:     42,
						Fingerprint: "a1b2c3d4e5f60718",
						StartedAt:   time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC),
					},
					{
						ID:        "walk-456",
						StartURL:  "https://other.example.com/",
						Strategy:  hostwalk.StrategyDepthFirst,
						Visited:   7,
						StartedAt: time.Date(2026, 8, 26, 11, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Walks:  walks,
		}

		cmd := &main.ListCmd{Limit: 20}

		err := cmd.Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "walk-123")
		assert.Contains(t, output, "walk-456")
		assert.Contains(t, output, "breadth-first")
		assert.Contains(t, output, "depth-first")
		assert.Contains(t, output, "42 pages")
		assert.Contains(t, output, "a1b2c3d4e5f60718")
	})

	t.Run("passes start URL filter through", func(t *testing.T) {
		t.Parallel()

		var gotFilter hostwalk.WalkFilter
		walks := &mock.WalkService{
			FindWalksFn: func(_ context.Context, filter hostwalk.WalkFilter) ([]*hostwalk.WalkRecord, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Walks:  walks,
		}

		cmd := &main.ListCmd{StartURL: "https://example.com/", Limit: 5}

		require.NoError(t, cmd.Run(deps))
		require.NotNil(t, gotFilter.StartURL)
		assert.Equal(t, "https://example.com/", *gotFilter.StartURL)
		assert.Equal(t, 5, gotFilter.Limit)
	})

	t.Run("shows helpful message when no walks exist", func(t *testing.T) {
		t.Parallel()

		walks := &mock.WalkService{
			FindWalksFn: func(_ context.Context, _ hostwalk.WalkFilter) ([]*hostwalk.WalkRecord, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Walks:  walks,
		}

		cmd := &main.ListCmd{}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No walks")
	})

	t.Run("returns error when FindWalks fails", func(t *testing.T) {
		t.Parallel()

		walks := &mock.WalkService{
			FindWalksFn: func(_ context.Context, _ hostwalk.WalkFilter) ([]*hostwalk.WalkRecord, error) {
				return nil, hostwalk.Errorf(hostwalk.EINTERNAL, "database error")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Walks:  walks,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
