package main

import (
	"fmt"
)

// Run executes the robots command.
func (c *RobotsCmd) Run(deps *Dependencies) error {
	if deps.Robots.Allowed(deps.Ctx, c.URL, c.UserAgent) {
		fmt.Fprintf(deps.Stdout, "allowed: %s\n", c.URL)
	} else {
		fmt.Fprintf(deps.Stdout, "disallowed: %s\n", c.URL)
	}
	return nil
}
