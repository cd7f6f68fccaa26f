package mock

import (
	"context"

	"github.com/fwojciec/somnolent"
)

var _ somnolent.StoryParser = (*StoryParser)(nil)

// StoryParser is a mock implementation of somnolent.StoryParser.
type StoryParser struct {
	ParseFn func(html string) (*somnolent.Story, error)
}

func (p *StoryParser) Parse(html string) (*somnolent.Story, error) {
	return p.ParseFn(html)
}

var _ somnolent.StoryLocator = (*StoryLocator)(nil)

// StoryLocator is a mock implementation of somnolent.StoryLocator.
type StoryLocator struct {
	LocateFn func(html string) (int, error)
}

func (l *StoryLocator) Locate(html string) (int, error) {
	return l.LocateFn(html)
}

var _ somnolent.StoryService = (*StoryService)(nil)

// StoryService is a mock implementation of somnolent.StoryService.
type StoryService struct {
	RandomExcerptFn func(ctx context.Context) (*somnolent.Excerpt, error)
}

func (s *StoryService) RandomExcerpt(ctx context.Context) (*somnolent.Excerpt, error) {
	return s.RandomExcerptFn(ctx)
}
