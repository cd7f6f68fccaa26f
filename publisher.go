package somnolent

import "context"

// Post is a published status update.
type Post struct {
	ID   string
	Text string
}

// Publisher posts text to a social network.
type Publisher interface {
	Publish(ctx context.Context, text string) (*Post, error)
}
