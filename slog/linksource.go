package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/hostwalk/hostwalk"
)

// Ensure LoggingLinkSource implements hostwalk.LinkSource.
var _ hostwalk.LinkSource = (*LoggingLinkSource)(nil)

// LoggingLinkSource wraps a LinkSource with per-page logging.
type LoggingLinkSource struct {
	next   hostwalk.LinkSource
	logger *slog.Logger
}

// NewLoggingLinkSource creates a new LoggingLinkSource.
func NewLoggingLinkSource(next hostwalk.LinkSource, logger *slog.Logger) *LoggingLinkSource {
	return &LoggingLinkSource{next: next, logger: logger}
}

// Links delegates to the wrapped source and logs the operation.
func (s *LoggingLinkSource) Links(ctx context.Context, pageURL string) (links []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("links",
			"url", pageURL,
			"count", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Links(ctx, pageURL)
}
