// Package regexp2 implements sentence segmentation with
// github.com/dlclark/regexp2, whose lookaround support lets a single
// pattern refuse to end a sentence at an abbreviation.
package regexp2

import (
	"math/rand/v2"
	"slices"
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"
	"github.com/fwojciec/somnolent"
)

// Ensure Segmenter implements somnolent.SentenceExtractor at compile time.
var _ somnolent.SentenceExtractor = (*Segmenter)(nil)

// Segmenter splits text into sentences without breaking at known
// abbreviations. The compiled pattern is read-only after construction,
// so a Segmenter is safe for concurrent use.
type Segmenter struct {
	re   *regexp2.Regexp
	intN func(n int) int
}

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithIntN sets the source of random indexes used by SelectOne.
// Defaults to math/rand/v2.IntN.
func WithIntN(fn func(n int) int) Option {
	return func(s *Segmenter) {
		s.intN = fn
	}
}

// NewSegmenter compiles the segmentation pattern for abbr.
func NewSegmenter(abbr somnolent.Abbreviations, opts ...Option) (*Segmenter, error) {
	re, err := regexp2.Compile(Pattern(abbr), regexp2.Singleline)
	if err != nil {
		return nil, somnolent.Errorf(somnolent.EINVALID, "invalid abbreviations: %v", err)
	}

	s := &Segmenter{
		re:   re,
		intN: rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Pattern returns the segmentation pattern for abbr. A sentence starts at
// a letter or digit and extends lazily to the first '.', '?' or '!' that is
// neither preceded by a case permutation of a lookbehind abbreviation nor
// followed by a case permutation of a lookahead abbreviation.
func Pattern(abbr somnolent.Abbreviations) string {
	var b strings.Builder
	b.WriteString(`[\p{L}\p{N}].*?`)
	if alt := alternation(CasePermutations(abbr.Lookbehind)); alt != "" {
		b.WriteString(`(?<!` + alt + `)`)
	}
	b.WriteString(`[.?!]`)
	if alt := alternation(CasePermutations(abbr.Lookahead)); alt != "" {
		b.WriteString(`(?!` + alt + `)`)
	}
	return b.String()
}

// CasePermutations returns every upper/lower case spelling of every word.
// A word of n characters yields 2^n spellings; characters without case
// produce repeated spellings.
func CasePermutations(words []string) []string {
	var perms []string
	for _, word := range words {
		runes := []rune(word)
		n := len(runes)
		buf := make([]rune, n)
		for mask := 0; mask < 1<<n; mask++ {
			for i, r := range runes {
				if mask&(1<<i) != 0 {
					buf[i] = unicode.ToUpper(r)
				} else {
					buf[i] = unicode.ToLower(r)
				}
			}
			perms = append(perms, string(buf))
		}
	}
	return perms
}

// alternation joins the distinct, non-empty words into a non-capturing
// group of escaped literals. It returns "" when there are none.
func alternation(words []string) string {
	var lits []string
	for _, w := range words {
		if w == "" {
			continue
		}
		lits = append(lits, regexp2.Escape(w))
	}
	if len(lits) == 0 {
		return ""
	}
	slices.Sort(lits)
	lits = slices.Compact(lits)
	return "(?:" + strings.Join(lits, "|") + ")"
}

// ExtractSentences returns the sentences of body in order. Runs of
// whitespace inside a sentence are collapsed to a single space.
func (s *Segmenter) ExtractSentences(body string) ([]string, error) {
	var sentences []string

	m, err := s.re.FindStringMatch(body)
	for ; m != nil && err == nil; m, err = s.re.FindNextMatch(m) {
		sentences = append(sentences, strings.Join(strings.Fields(m.String()), " "))
	}
	if err != nil {
		return nil, somnolent.Errorf(somnolent.EINTERNAL, "match sentences: %v", err)
	}

	if len(sentences) == 0 {
		return nil, somnolent.Errorf(somnolent.ENOSENTENCE, "no sentence found")
	}
	return sentences, nil
}

// SelectOne picks one of sentences uniformly at random.
func (s *Segmenter) SelectOne(sentences []string) (string, error) {
	if len(sentences) == 0 {
		return "", somnolent.Errorf(somnolent.ENOSENTENCE, "no sentence to select from")
	}
	return sentences[s.intN(len(sentences))], nil
}
