// Package crawl provides the same-host link-graph traversal engine and
// its supporting pieces: the frontier, the visited set, the link source
// composition, and the optional retry and rate-limit decorators.
package crawl

import (
	"context"
	"net/url"
	"time"

	"github.com/hostwalk/hostwalk"
	"github.com/hostwalk/hostwalk/bloom"
)

// Sizing for the approximate distinct-link counter.
const (
	// linkCounterExpectedURLs is the expected number of discovered links
	// for Bloom filter sizing.
	linkCounterExpectedURLs = 10000
	// linkCounterFalsePositiveRate is the acceptable false positive rate
	// for the distinct-link estimate.
	linkCounterFalsePositiveRate = 0.01
)

// EventType indicates the type of visit event.
type EventType int

const (
	// EventVisited is emitted once per unique URL, in dequeue order.
	// The sequence of EventVisited URLs is the traversal's output.
	EventVisited EventType = iota

	// EventFetchFailed reports a per-URL link retrieval failure. The URL
	// was already emitted; its link set is treated as empty and the walk
	// continues.
	EventFetchFailed

	// EventRobotsSkipped reports a URL the robots policy disallowed.
	// The URL is neither emitted nor expanded.
	EventRobotsSkipped
)

// VisitEvent reports progress during a walk.
type VisitEvent struct {
	Type EventType
	URL  string
	Err  error
}

// VisitFunc is called as URLs are processed. Events arrive in traversal
// order on the walking goroutine, so the consumer sees each visited URL
// before the next page is fetched.
type VisitFunc func(event VisitEvent)

// Result holds the outcome of a completed walk.
type Result struct {
	Visited       int
	Failed        int
	RobotsSkipped int
	DistinctLinks uint
	Fingerprint   string
	Duration      time.Duration
}

// Walker drives a traversal of the same-host link graph. The zero
// value is not usable; Source must be set. Robots and Limiter are
// optional gates consulted per URL when non-nil.
//
// A Walker holds no state between calls: every Walk creates a fresh
// frontier and visited set, so concurrent walks on separate Walker
// values never share mutable state.
type Walker struct {
	Source    hostwalk.LinkSource
	Robots    hostwalk.RobotsPolicy
	Limiter   hostwalk.DomainLimiter
	UserAgent string

	// MaxPages caps the number of emitted URLs; 0 means no cap.
	MaxPages int

	// Seeds are extra URLs pushed after the start URL, e.g. from
	// sitemap discovery.
	Seeds []string
}

// Walk traverses the link graph reachable from startURL, visiting each
// URL at most once and emitting EventVisited per URL in an order
// determined by strategy. An invalid strategy fails with EINVALID
// before any side effects. Link retrieval failures are absorbed per URL
// (the URL's link set is treated as empty) and surfaced as
// EventFetchFailed.
//
// With StrategyDepthFirst the most recently pushed link is explored
// next: siblings discovered together come back in reverse discovery
// order. For the graph A -> {B, C}, B -> {D} the emission order is
// A, C, B, D.
//
// Walk terminates when the frontier is empty, the MaxPages cap is
// reached, or ctx is canceled; cancellation returns the partial Result
// alongside the context's error.
func (w *Walker) Walk(ctx context.Context, startURL string, strategy hostwalk.Strategy, visit VisitFunc) (*Result, error) {
	if !strategy.Valid() {
		return nil, hostwalk.Errorf(hostwalk.EINVALID, "unknown strategy %q", string(strategy))
	}

	frontier := NewFrontier()
	visited := NewVisitedSet()

	// The single polymorphism point: the strategy picks the insertion
	// side once, before the loop.
	push := frontier.PushBack
	if strategy == hostwalk.StrategyDepthFirst {
		push = frontier.PushFront
	}

	push(startURL)
	for _, seed := range w.Seeds {
		push(seed)
	}

	seenLinks := bloom.NewFilter(linkCounterExpectedURLs, linkCounterFalsePositiveRate)
	digest := NewDigest()
	started := time.Now()
	var result Result

	for {
		if w.MaxPages > 0 && result.Visited >= w.MaxPages {
			break
		}

		current, ok := frontier.Pop()
		if !ok {
			break
		}

		if err := ctx.Err(); err != nil {
			w.finish(&result, seenLinks, digest, started)
			return &result, err
		}

		// Duplicate frontier entries are reconciled here, not at
		// insertion time.
		if visited.Contains(current) {
			continue
		}

		if w.Robots != nil && !w.Robots.Allowed(ctx, current, w.UserAgent) {
			// Mark so the URL is never re-checked via another path.
			visited.Mark(current)
			result.RobotsSkipped++
			emit(visit, VisitEvent{Type: EventRobotsSkipped, URL: current})
			continue
		}

		visited.Mark(current)
		result.Visited++
		digest.Add(current)
		emit(visit, VisitEvent{Type: EventVisited, URL: current})

		if w.Limiter != nil {
			if host := hostOf(current); host != "" {
				if err := w.Limiter.Wait(ctx, host); err != nil {
					w.finish(&result, seenLinks, digest, started)
					return &result, err
				}
			}
		}

		links, err := w.Source.Links(ctx, current)
		if err != nil {
			result.Failed++
			emit(visit, VisitEvent{Type: EventFetchFailed, URL: current, Err: err})
			continue
		}

		for _, link := range links {
			seenLinks.Add(link)
			if visited.Contains(link) {
				continue
			}
			push(link)
		}
	}

	w.finish(&result, seenLinks, digest, started)
	return &result, nil
}

func (w *Walker) finish(result *Result, seenLinks *bloom.Filter, digest *Digest, started time.Time) {
	result.DistinctLinks = seenLinks.EstimatedCount()
	result.Fingerprint = digest.Sum()
	result.Duration = time.Since(started)
}

func emit(visit VisitFunc, event VisitEvent) {
	if visit != nil {
		visit(event)
	}
}

func hostOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Hostname()
}
