package main

import (
	"fmt"
	"time"

	"github.com/hostwalk/hostwalk"
	"github.com/hostwalk/hostwalk/crawl"
)

// Run executes the walk command. Visited URLs are printed to stdout as
// they are dequeued; failures and the summary go to stderr so the URL
// stream stays pipeable.
func (c *WalkCmd) Run(deps *Dependencies) error {
	strategy, err := hostwalk.ParseStrategy(c.Strategy)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hostwalk.ErrorMessage(err))
		return err
	}

	started := time.Now().UTC()
	result, err := deps.Walker.Walk(deps.Ctx, c.URL, strategy, func(event crawl.VisitEvent) {
		switch event.Type {
		case crawl.EventVisited:
			fmt.Fprintln(deps.Stdout, event.URL)
		case crawl.EventFetchFailed:
			fmt.Fprintf(deps.Stderr, "fetch failed: %s: %s\n", event.URL, event.Err)
		case crawl.EventRobotsSkipped:
			fmt.Fprintf(deps.Stderr, "robots skip: %s\n", event.URL)
		}
	})
	if result != nil {
		fmt.Fprintf(deps.Stderr, "visited %d pages (%d failed, %d robots-skipped, ~%d links) in %s\n",
			result.Visited, result.Failed, result.RobotsSkipped, result.DistinctLinks,
			result.Duration.Round(time.Millisecond))
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hostwalk.ErrorMessage(err))
		return err
	}

	if c.NoSave || deps.Walks == nil {
		return nil
	}

	rec := &hostwalk.WalkRecord{
		StartURL:      c.URL,
		Strategy:      strategy,
		Visited:       result.Visited,
		Failed:        result.Failed,
		RobotsSkipped: result.RobotsSkipped,
		Fingerprint:   result.Fingerprint,
		Duration:      result.Duration,
		StartedAt:     started,
	}
	if err := deps.Walks.CreateWalk(deps.Ctx, rec); err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to record walk: %s\n", hostwalk.ErrorMessage(err))
		return err
	}
	return nil
}
