// Package goquery provides DOM-based implementations of
// hostwalk.Extractor. Unlike the regex package it parses the document,
// so it tolerates unquoted attributes and other markup the pattern
// contract gives up on.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hostwalk/hostwalk"
)

// Compile-time interface verification.
var _ hostwalk.Extractor = (*Extractor)(nil)

// Extractor extracts attribute values by walking the parsed document.
type Extractor struct {
	selector string
	attr     string
}

// NewLinkExtractor creates an Extractor that collects anchor href values.
func NewLinkExtractor() *Extractor {
	return &Extractor{selector: "a[href]", attr: "href"}
}

// NewImageExtractor creates an Extractor that collects img src values.
func NewImageExtractor() *Extractor {
	return &Extractor{selector: "img[src]", attr: "src"}
}

// Extract returns the raw attribute values in document order.
// Values are returned unresolved; resolution against the page URL is the
// caller's job, matching the regex extractor's contract.
func (e *Extractor) Extract(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, hostwalk.Errorf(hostwalk.EINVALID, "failed to parse HTML: %v", err)
	}

	var refs []string
	doc.Find(e.selector).Each(func(_ int, sel *goquery.Selection) {
		val, exists := sel.Attr(e.attr)
		if !exists || val == "" {
			return
		}
		refs = append(refs, val)
	})
	return refs, nil
}
