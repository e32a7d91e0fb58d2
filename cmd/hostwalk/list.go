package main

import (
	"fmt"

	"github.com/hostwalk/hostwalk"
	"github.com/hostwalk/hostwalk/crawl"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := hostwalk.WalkFilter{Limit: c.Limit}
	if c.StartURL != "" {
		filter.StartURL = &c.StartURL
	}

	recs, err := deps.Walks.FindWalks(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hostwalk.ErrorMessage(err))
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No walks recorded. Use 'hostwalk walk' to run one.")
		return nil
	}

	for _, r := range recs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %-13s  %4d pages  %s  %s\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04"), r.Strategy,
			r.Visited, r.Fingerprint, crawl.TruncateURL(r.StartURL, 48))
	}
	return nil
}
