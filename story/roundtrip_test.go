package story_test

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/fwojciec/somnolent"
	"github.com/fwojciec/somnolent/goquery"
	"github.com/fwojciec/somnolent/html"
	"github.com/fwojciec/somnolent/mock"
	"github.com/fwojciec/somnolent/regexp2"
	"github.com/fwojciec/somnolent/story"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RandomExcerpt_Pipeline(t *testing.T) {
	t.Parallel()

	pages := map[string]string{
		"http://example.com/": `<html><body>
<a href="http://example.com/about.html">About</a>
<a href="http://example.com/stories/2.html">Latest: The Visit</a>
<a href="http://example.com/stories/1.html">The Nap</a>
</body></html>`,
		"http://example.com/stories/1.html": `<html><head><title>The Nap</title></head><body>
<p class="byline">By someone. Somewhere.</p>
<p>Mr. Grey lay down at noon.</p>
<p>He woke at dusk&hellip; and wondered why&#33;</p>
</body></html>`,
	}
	fetcher := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			page, ok := pages[url]
			if !ok {
				return "", somnolent.Errorf(somnolent.EFETCH, "HTTP 404 for %s", url)
			}
			return page, nil
		},
	}
	seg, err := regexp2.NewSegmenter(somnolent.DefaultAbbreviations(), regexp2.WithIntN(func(int) int { return 0 }))
	require.NoError(t, err)

	svc := &story.Service{
		Site:      site,
		Fetcher:   fetcher,
		Locator:   goquery.NewLocator(site.BaseURL),
		Parser:    html.NewParser(),
		Sentences: seg,
		IntN:      func(int) int { return 0 },
	}

	excerpt, err := svc.RandomExcerpt(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, excerpt.StoryID)
	assert.Equal(t, "The Nap", excerpt.Title)
	assert.Equal(t, "Mr. Grey lay down at noon.", excerpt.Sentence)
}

// TestParseAndSegment_SyntheticCorpus builds random story pages mixing
// entities, attribute-bearing tags and abbreviations, and checks that
// parsing then segmenting never fails unexpectedly and never ends a
// sentence at an abbreviation.
func TestParseAndSegment_SyntheticCorpus(t *testing.T) {
	t.Parallel()

	abbr := somnolent.Abbreviations{Lookbehind: []string{"dr", "mr"}}
	seg, err := regexp2.NewSegmenter(abbr)
	require.NoError(t, err)
	parser := html.NewParser()

	rng := rand.New(rand.NewPCG(1, 2))
	for i := range 300 {
		doc := syntheticPage(rng)

		st, err := parser.Parse(doc)
		require.NoError(t, err, "document %d: %s", i, doc)

		sentences, err := seg.ExtractSentences(st.Body)
		if err != nil {
			assert.Equal(t, somnolent.ENOSENTENCE, somnolent.ErrorCode(err), "document %d", i)
			continue
		}

		for _, s := range sentences {
			require.NotEmpty(t, s)
			assert.Contains(t, ".?!", s[len(s)-1:], "document %d: %q", i, s)
			head := strings.ToLower(s[:len(s)-1])
			for _, a := range abbr.Lookbehind {
				assert.False(t, strings.HasSuffix(head, a), "document %d: split after abbreviation in %q", i, s)
			}
		}
	}
}

func syntheticPage(rng *rand.Rand) string {
	words := []string{"the", "cat", "slept", "Dr", "dR", "MR", "mr", "night", "7", "Élan"}
	refs := []string{"&amp;", "&#65;", "&#x42;", "&rsquo;", "&nbsp;"}
	puncts := []string{"", "", "", ",", ".", "?", "!"}
	pick := func(xs []string) string { return xs[rng.IntN(len(xs))] }

	var b strings.Builder
	if rng.IntN(2) == 0 {
		b.WriteString("<title>")
	} else {
		b.WriteString(`<title id="t">`)
	}
	fmt.Fprintf(&b, "%s %s</title>\n", pick(words), pick(refs))

	for range rng.IntN(5) + 1 {
		switch rng.IntN(4) {
		case 0:
			b.WriteString(`<p class="note">`)
		case 1:
			b.WriteString("<div>")
		default:
			b.WriteString("<p>")
		}
		for range rng.IntN(12) + 1 {
			b.WriteString(pick(words))
			if rng.IntN(5) == 0 {
				b.WriteString(pick(refs))
			}
			b.WriteString(pick(puncts))
			if rng.IntN(6) == 0 {
				b.WriteString(`\n`)
			}
			b.WriteString(" ")
		}
		if rng.IntN(3) == 0 {
			b.WriteString("<em>emphasis.</em> tail.")
		}
		b.WriteString("</p>\n")
	}
	return b.String()
}
