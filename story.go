package somnolent

import (
	"context"
	"strconv"
	"strings"
)

// Story is a story page reduced to its title and body text.
type Story struct {
	Title string
	Body  string
}

// Excerpt is a single sentence drawn from a story, together with the
// story it came from.
type Excerpt struct {
	StoryID  int
	URL      string
	Title    string
	Sentence string
}

// Site describes where stories are published.
type Site struct {
	// BaseURL is the prefix of every story URL, e.g. "http://example.com/stories/".
	BaseURL string

	// IndexURL is the page that links to the newest story.
	IndexURL string
}

// Default site locations.
const (
	DefaultBaseURL  = "http://somnolentworks.com/stories/"
	DefaultIndexURL = "http://somnolentworks.com/"
)

// DefaultSite returns the site configuration for somnolentworks.com.
func DefaultSite() Site {
	return Site{BaseURL: DefaultBaseURL, IndexURL: DefaultIndexURL}
}

// Validate returns an error if the site contains invalid fields.
func (s Site) Validate() error {
	if s.BaseURL == "" {
		return Errorf(EINVALID, "site base URL required")
	}
	if s.IndexURL == "" {
		return Errorf(EINVALID, "site index URL required")
	}
	if !strings.HasPrefix(s.BaseURL, "http://") && !strings.HasPrefix(s.BaseURL, "https://") {
		return Errorf(EINVALID, "site base URL must be absolute: %q", s.BaseURL)
	}
	return nil
}

// StoryURL returns the URL of the story with the given identifier.
func (s Site) StoryURL(id int) string {
	return s.BaseURL + strconv.Itoa(id) + ".html"
}

// StoryParser recovers a Story from a story page.
type StoryParser interface {
	// Parse never fails on malformed markup. Only character reference
	// decoding errors (EUNKNOWNENTITY, EINVALIDCODEPOINT) are returned.
	Parse(html string) (*Story, error)
}

// StoryLocator finds the identifier of the newest story on the index page.
type StoryLocator interface {
	// Locate returns ENOSTORY if the page links to no story.
	Locate(html string) (int, error)
}

// StoryService produces random excerpts from the published stories.
type StoryService interface {
	// RandomExcerpt picks a random story no newer than the latest one and
	// returns its title with one randomly selected sentence.
	RandomExcerpt(ctx context.Context) (*Excerpt, error)
}
