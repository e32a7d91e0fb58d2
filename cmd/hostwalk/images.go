package main

import (
	"fmt"

	"github.com/hostwalk/hostwalk"
	"github.com/hostwalk/hostwalk/crawl"
	"github.com/hostwalk/hostwalk/goquery"
	"github.com/hostwalk/hostwalk/regex"
)

// Run executes the images command.
func (c *ImagesCmd) Run(deps *Dependencies) error {
	page, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hostwalk.ErrorMessage(err))
		return err
	}

	var extractor hostwalk.Extractor = regex.NewImageExtractor()
	if c.DOM {
		extractor = goquery.NewImageExtractor()
	}

	refs, err := extractor.Extract(page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hostwalk.ErrorMessage(err))
		return err
	}

	urls, err := crawl.ResolveRefs(c.URL, refs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hostwalk.ErrorMessage(err))
		return err
	}

	seen := make(map[string]struct{}, len(urls))
	printed := 0
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		fmt.Fprintln(deps.Stdout, u)
		printed++
	}

	if printed == 0 {
		fmt.Fprintln(deps.Stdout, "No images found.")
	}
	return nil
}
