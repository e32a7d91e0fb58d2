package crawl

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Digest accumulates an emitted URL sequence into a fingerprint.
// Two walks over the same host produce the same fingerprint iff they
// emitted the same URLs in the same order, so stored fingerprints show
// when a site's link graph has changed between runs.
type Digest struct {
	h *xxhash.Digest
}

// NewDigest creates an empty Digest.
func NewDigest() *Digest {
	return &Digest{h: xxhash.New()}
}

// Add appends url to the sequence.
func (d *Digest) Add(url string) {
	_, _ = d.h.WriteString(url)
	_, _ = d.h.WriteString("\n")
}

// Sum returns the fingerprint of the sequence added so far.
func (d *Digest) Sum() string {
	return fmt.Sprintf("%016x", d.h.Sum64())
}

// Fingerprint computes the fingerprint of a complete URL sequence.
func Fingerprint(urls []string) string {
	d := NewDigest()
	for _, u := range urls {
		d.Add(u)
	}
	return d.Sum()
}

// TruncateURL shortens a URL for display, keeping the end which is more
// informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		// Too short for "..." prefix, just return dots
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}
