package mock

import (
	"context"

	"github.com/hostwalk/hostwalk"
)

var _ hostwalk.LinkSource = (*LinkSource)(nil)

// LinkSource is a mock implementation of hostwalk.LinkSource.
type LinkSource struct {
	LinksFn func(ctx context.Context, pageURL string) ([]string, error)
}

func (s *LinkSource) Links(ctx context.Context, pageURL string) ([]string, error) {
	return s.LinksFn(ctx, pageURL)
}

// GraphSource builds a LinkSource that serves a static link graph.
// URLs absent from the graph return no links.
func GraphSource(graph map[string][]string) *LinkSource {
	return &LinkSource{
		LinksFn: func(_ context.Context, pageURL string) ([]string, error) {
			return graph[pageURL], nil
		},
	}
}
