package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/hostwalk/hostwalk"
)

// Compile-time interface verification.
var _ hostwalk.LinkSource = (*Source)(nil)

// Source implements hostwalk.LinkSource by composing a page fetcher
// with a reference extractor. Extracted references are resolved against
// the fetched page's URL and filtered to the page's own hostname.
type Source struct {
	Fetcher   hostwalk.Fetcher
	Extractor hostwalk.Extractor
}

// Links fetches pageURL and returns its same-host outbound links.
// Malformed references are dropped; fragments are stripped so URLs
// differing only by fragment collapse to one entry. A fetch or extract
// failure is reported as an error, distinct from a page that genuinely
// has no same-host links.
func (s *Source) Links(ctx context.Context, pageURL string) ([]string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, hostwalk.Errorf(hostwalk.EINVALID, "invalid page URL %q: %v", pageURL, err)
	}
	host := base.Hostname()

	page, err := s.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}

	refs, err := s.Extractor.Extract(page)
	if err != nil {
		return nil, fmt.Errorf("extract links from %s: %w", pageURL, err)
	}

	links := make([]string, 0, len(refs))
	for _, ref := range refs {
		if isNonHTTPRef(ref) {
			continue
		}
		resolved := resolveRef(base, ref)
		if resolved == "" {
			continue
		}
		parsed, err := url.Parse(resolved)
		if err != nil || parsed.Hostname() != host {
			continue
		}
		links = append(links, resolved)
	}
	return links, nil
}

// ResolveRefs resolves raw extracted references against pageURL and
// returns the absolute HTTP(S) URLs. Unlike Links, cross-host results
// are kept; asset references like images commonly live on other hosts.
func ResolveRefs(pageURL string, refs []string) ([]string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, hostwalk.Errorf(hostwalk.EINVALID, "invalid page URL %q: %v", pageURL, err)
	}

	urls := make([]string, 0, len(refs))
	for _, ref := range refs {
		if isNonHTTPRef(ref) {
			continue
		}
		if resolved := resolveRef(base, ref); resolved != "" {
			urls = append(urls, resolved)
		}
	}
	return urls, nil
}

// isNonHTTPRef reports whether ref can never resolve to a fetchable
// page (javascript:, mailto:, etc., or a bare fragment).
func isNonHTTPRef(ref string) bool {
	lower := strings.ToLower(strings.TrimSpace(ref))
	switch {
	case lower == "", strings.HasPrefix(lower, "#"):
		return true
	case strings.HasPrefix(lower, "javascript:"),
		strings.HasPrefix(lower, "mailto:"),
		strings.HasPrefix(lower, "tel:"),
		strings.HasPrefix(lower, "data:"):
		return true
	}
	return false
}

// resolveRef resolves ref against the page URL it was found on and
// returns the absolute URL with any fragment stripped. Returns "" for
// references that cannot be resolved or use a non-HTTP scheme.
func resolveRef(base *url.URL, ref string) string {
	parsed, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(parsed)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	resolved.Fragment = ""
	return resolved.String()
}
