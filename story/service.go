// Package story composes the locator, parser and sentence extractor into
// random story excerpts.
package story

import (
	"context"
	"math/rand/v2"

	"github.com/fwojciec/somnolent"
)

// Ensure Service implements somnolent.StoryService at compile time.
var _ somnolent.StoryService = (*Service)(nil)

// Service draws a random sentence from a random published story.
// It performs no retries; every failure is returned unchanged.
type Service struct {
	Site      somnolent.Site
	Fetcher   somnolent.Fetcher
	Locator   somnolent.StoryLocator
	Parser    somnolent.StoryParser
	Sentences somnolent.SentenceExtractor

	// IntN returns a random integer in [0, n). Defaults to math/rand/v2.IntN.
	IntN func(n int) int
}

// RandomExcerpt fetches the index page to learn the newest story, picks a
// story uniformly from 1 through the newest, and returns its title with
// one randomly selected sentence of its body.
func (s *Service) RandomExcerpt(ctx context.Context) (*somnolent.Excerpt, error) {
	index, err := s.Fetcher.Fetch(ctx, s.Site.IndexURL)
	if err != nil {
		return nil, err
	}

	latest, err := s.Locator.Locate(index)
	if err != nil {
		return nil, err
	}

	id := s.intN(latest) + 1
	url := s.Site.StoryURL(id)

	page, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	story, err := s.Parser.Parse(page)
	if err != nil {
		return nil, err
	}

	sentences, err := s.Sentences.ExtractSentences(story.Body)
	if err != nil {
		return nil, err
	}

	sentence, err := s.Sentences.SelectOne(sentences)
	if err != nil {
		return nil, err
	}

	return &somnolent.Excerpt{
		StoryID:  id,
		URL:      url,
		Title:    story.Title,
		Sentence: sentence,
	}, nil
}

func (s *Service) intN(n int) int {
	if s.IntN != nil {
		return s.IntN(n)
	}
	return rand.IntN(n)
}
