package mock

import "github.com/hostwalk/hostwalk"

var _ hostwalk.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of hostwalk.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]string, error)
}

func (e *Extractor) Extract(html string) ([]string, error) {
	return e.ExtractFn(html)
}
