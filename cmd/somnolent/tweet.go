package main

import (
	"fmt"

	"github.com/fwojciec/somnolent"
)

// TweetCmd composes a tweet and posts it.
type TweetCmd struct {
	DryRun bool
}

// Run executes the tweet command.
func (c *TweetCmd) Run(deps *Dependencies) error {
	tw, err := deps.Composer.Compose(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", somnolent.ErrorMessage(err))
		return err
	}

	if c.DryRun {
		fmt.Fprintln(deps.Stdout, tw.Text)
		return nil
	}

	post, err := deps.Publisher.Publish(deps.Ctx, tw.Text)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", somnolent.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Posted %s: %s\n", post.ID, tw.Text)
	return nil
}
