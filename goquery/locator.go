// Package goquery locates the newest story on the site's index page using
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/somnolent"
)

// Ensure Locator implements somnolent.StoryLocator at compile time.
var _ somnolent.StoryLocator = (*Locator)(nil)

// Locator finds the newest story linked from the index page. The index
// links to the newest story before any other, so the first anchor whose
// href is a story URL wins.
type Locator struct {
	baseURL string
	storyRe *regexp.Regexp
}

// NewLocator creates a Locator for story URLs of the form
// "<baseURL><digits>.html". The base URL is matched exactly.
func NewLocator(baseURL string) *Locator {
	return &Locator{
		baseURL: baseURL,
		storyRe: regexp.MustCompile(`^` + regexp.QuoteMeta(baseURL) + `([0-9]+)\.html$`),
	}
}

// Locate returns the identifier of the first story linked from html.
// Only the first matching anchor is considered. Returns ENOSTORY if no
// anchor links to a story or if that anchor's identifier is not a
// positive integer.
func (l *Locator) Locate(html string) (int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0, somnolent.Errorf(somnolent.EINVALID, "failed to parse HTML: %v", err)
	}

	var digits string
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		if m := l.storyRe.FindStringSubmatch(href); m != nil {
			digits = m[1]
			return false
		}
		return true
	})

	if digits == "" {
		return 0, somnolent.Errorf(somnolent.ENOSTORY, "no story linked from index under %s", l.baseURL)
	}
	id, err := strconv.Atoi(digits)
	if err != nil || id < 1 {
		return 0, somnolent.Errorf(somnolent.ENOSTORY, "invalid story identifier %q", digits)
	}
	return id, nil
}
