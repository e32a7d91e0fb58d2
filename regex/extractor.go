// Package regex provides pattern-matching implementations of
// hostwalk.Extractor. Extraction captures the first quoted value of an
// href or src attribute inside anchor and img tags; it does not parse
// the DOM. For markup too irregular for pattern matching, use the
// goquery package instead.
package regex

import (
	"regexp"

	"github.com/hostwalk/hostwalk"
)

// Compile-time interface verification.
var _ hostwalk.Extractor = (*Extractor)(nil)

var (
	hrefPattern = regexp.MustCompile(`(?i)<a[^>]+href=["'](.*?)["']`)
	srcPattern  = regexp.MustCompile(`(?i)<img[^>]+src=["'](.*?)["']`)
)

// Extractor extracts raw attribute values from HTML using a
// case-insensitive, non-greedy regular expression. Tags without a
// closing quote yield no match rather than an error.
type Extractor struct {
	pattern *regexp.Regexp
}

// NewLinkExtractor creates an Extractor that captures anchor href values.
func NewLinkExtractor() *Extractor {
	return &Extractor{pattern: hrefPattern}
}

// NewImageExtractor creates an Extractor that captures img src values.
func NewImageExtractor() *Extractor {
	return &Extractor{pattern: srcPattern}
}

// Extract returns the captured attribute values in document order.
// The error result is always nil; it exists to satisfy
// hostwalk.Extractor.
func (e *Extractor) Extract(html string) ([]string, error) {
	matches := e.pattern.FindAllStringSubmatch(html, -1)
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, m[1])
	}
	return refs, nil
}
