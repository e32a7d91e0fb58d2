package hostwalk

import "context"

// LinkSource provides the same-host outbound links for a page.
// Implementations fetch the page, extract anchor targets, resolve
// relative references against the fetched page's URL, and keep only
// links whose hostname matches the page's hostname.
//
// A nil error with an empty slice means the page genuinely has no
// same-host links. A retrieval failure is reported as a non-nil error so
// callers can tell the two apart.
type LinkSource interface {
	Links(ctx context.Context, pageURL string) ([]string, error)
}
