package mock

import "github.com/fwojciec/somnolent"

var _ somnolent.SentenceExtractor = (*SentenceExtractor)(nil)

// SentenceExtractor is a mock implementation of somnolent.SentenceExtractor.
type SentenceExtractor struct {
	ExtractSentencesFn func(body string) ([]string, error)
	SelectOneFn        func(sentences []string) (string, error)
}

func (e *SentenceExtractor) ExtractSentences(body string) ([]string, error) {
	return e.ExtractSentencesFn(body)
}

func (e *SentenceExtractor) SelectOne(sentences []string) (string, error) {
	return e.SelectOneFn(sentences)
}
