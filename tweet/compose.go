// Package tweet turns story excerpts into status updates that fit a
// length limit.
package tweet

import (
	"context"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/somnolent"
	"github.com/fwojciec/somnolent/bloom"
)

// Limits used when the Composer fields are zero.
const (
	DefaultMaxLength = 140
	DefaultMaxTries  = 5
)

// Tweet is a composed status update and the excerpt it was built from.
type Tweet struct {
	Text     string
	Excerpt  *somnolent.Excerpt
	Attempts int
}

// Composer draws excerpts until one fits in a tweet.
type Composer struct {
	Stories somnolent.StoryService

	// MaxLength is the limit in code points. Defaults to DefaultMaxLength.
	MaxLength int

	// MaxTries bounds the number of excerpts drawn. Defaults to DefaultMaxTries.
	MaxTries int

	// Logger receives a debug record for every rejected attempt.
	// Defaults to discarding.
	Logger *slog.Logger
}

// Compose returns the first excerpt that fits, formatted as the sentence
// followed by the title as a hashtag. When that is too long the sentence
// alone is used if it fits; otherwise a new excerpt is drawn.
// Excerpts failing with ENOSENTENCE count as attempts. Other errors are
// returned immediately. Returns EEXHAUSTED when every attempt is used up.
func (c *Composer) Compose(ctx context.Context) (*Tweet, error) {
	maxLength, maxTries := c.MaxLength, c.MaxTries
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	if maxTries <= 0 {
		maxTries = DefaultMaxTries
	}
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	tooLong := bloom.NewFilter(uint(maxTries), 0.01)
	for attempt := 1; attempt <= maxTries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		excerpt, err := c.Stories.RandomExcerpt(ctx)
		if somnolent.ErrorCode(err) == somnolent.ENOSENTENCE {
			logger.Debug("attempt rejected", "attempt", attempt, "reason", "no sentence", "err", err)
			continue
		} else if err != nil {
			return nil, err
		}

		if text := excerpt.Sentence + " " + Hashtagify(excerpt.Title); utf8.RuneCountInString(text) <= maxLength {
			return &Tweet{Text: text, Excerpt: excerpt, Attempts: attempt}, nil
		}
		if utf8.RuneCountInString(excerpt.Sentence) <= maxLength {
			return &Tweet{Text: excerpt.Sentence, Excerpt: excerpt, Attempts: attempt}, nil
		}

		reason := "too long"
		if tooLong.TestAndAdd(excerpt.Sentence) {
			reason = "too long, drawn before"
		}
		logger.Debug("attempt rejected", "attempt", attempt, "reason", reason, "story", excerpt.StoryID,
			"chars", utf8.RuneCountInString(excerpt.Sentence))
	}

	return nil, somnolent.Errorf(somnolent.EEXHAUSTED, "failed to find a valid sentence after %d tries", maxTries)
}

// Hashtagify returns title as a hashtag: words capitalized and joined,
// with periods and apostrophes removed, e.g. "the dog's day." becomes
// "#TheDogsDay".
func Hashtagify(title string) string {
	var b strings.Builder
	b.WriteByte('#')
	for _, word := range strings.Fields(title) {
		r, size := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToTitle(r))
		b.WriteString(strings.ToLower(word[size:]))
	}
	return strings.NewReplacer(".", "", "'", "").Replace(b.String())
}
