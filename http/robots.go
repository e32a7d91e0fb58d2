package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/temoto/robotstxt"

	"github.com/hostwalk/hostwalk"
)

// Compile-time interface verification.
var _ hostwalk.RobotsPolicy = (*Robots)(nil)
var _ hostwalk.RobotsPolicy = (*AllowAll)(nil)

// Robots answers robots.txt permission checks for a single host. The
// policy is loaded once by PrepareRobots and queried many times; it
// holds no global state, so multiple policies for different hosts can
// coexist.
type Robots struct {
	host string
	data *robotstxt.RobotsData
}

// PrepareRobots fetches and parses the robots.txt for the host of
// siteURL. Status codes are interpreted per convention: 4xx means
// everything is allowed, 5xx means everything is disallowed.
func PrepareRobots(ctx context.Context, client *http.Client, siteURL string) (*Robots, error) {
	if client == nil {
		client = http.DefaultClient
	}

	parsed, err := url.Parse(siteURL)
	if err != nil {
		return nil, hostwalk.Errorf(hostwalk.EINVALID, "invalid site URL: %v", err)
	}

	robotsURL := &url.URL{Scheme: parsed.Scheme, Host: parsed.Host, Path: "/robots.txt"}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("new robots request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch robots.txt: %w", err)
	}
	defer resp.Body.Close()

	// Cap the body; robots files have no business being larger.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read robots.txt: %w", err)
	}

	data, err := robotstxt.FromStatusAndBytes(resp.StatusCode, body)
	if err != nil {
		return nil, fmt.Errorf("parse robots.txt: %w", err)
	}

	return &Robots{host: parsed.Hostname(), data: data}, nil
}

// Allowed reports whether userAgent may fetch rawURL. URLs that fail to
// parse are disallowed. URLs on other hosts are allowed; this policy
// only speaks for its own host.
func (r *Robots) Allowed(_ context.Context, rawURL, userAgent string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if parsed.Hostname() != r.host {
		return true
	}

	group := r.data.FindGroup(userAgent)
	if group == nil {
		return true
	}
	path := parsed.EscapedPath()
	if path == "" {
		path = "/"
	}
	return group.Test(path)
}

// AllowAll is the policy used when robots enforcement is disabled.
type AllowAll struct{}

// Allowed always reports true.
func (AllowAll) Allowed(context.Context, string, string) bool { return true }
