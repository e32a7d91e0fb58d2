package hostwalk

import "context"

// Fetcher retrieves page content from URLs.
type Fetcher interface {
	// Fetch downloads the page at url and returns its body as text.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
