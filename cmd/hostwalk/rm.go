package main

import (
	"fmt"

	"github.com/hostwalk/hostwalk"
)

// Run executes the rm command.
func (c *RmCmd) Run(deps *Dependencies) error {
	if err := deps.Walks.DeleteWalk(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hostwalk.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted walk %s\n", c.ID)
	return nil
}
