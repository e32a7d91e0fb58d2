package mock

import (
	"context"

	"github.com/hostwalk/hostwalk"
)

var _ hostwalk.RobotsPolicy = (*RobotsPolicy)(nil)

// RobotsPolicy is a mock implementation of hostwalk.RobotsPolicy.
type RobotsPolicy struct {
	AllowedFn func(ctx context.Context, url, userAgent string) bool
}

func (p *RobotsPolicy) Allowed(ctx context.Context, url, userAgent string) bool {
	return p.AllowedFn(ctx, url, userAgent)
}

var _ hostwalk.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of hostwalk.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
