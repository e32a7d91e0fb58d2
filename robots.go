package hostwalk

import "context"

// RobotsPolicy answers robots.txt permission checks for a host.
// A policy is prepared once (loading the host's robots.txt) and queried
// many times; construction is explicit so multiple policies can coexist.
type RobotsPolicy interface {
	// Allowed reports whether userAgent may fetch url.
	Allowed(ctx context.Context, url, userAgent string) bool
}
