package mock

import (
	"context"

	"github.com/fwojciec/somnolent"
)

var _ somnolent.Publisher = (*Publisher)(nil)

// Publisher is a mock implementation of somnolent.Publisher.
type Publisher struct {
	PublishFn func(ctx context.Context, text string) (*somnolent.Post, error)
}

func (p *Publisher) Publish(ctx context.Context, text string) (*somnolent.Post, error) {
	return p.PublishFn(ctx, text)
}
