// Package html recovers story titles and bodies from story pages using the
// golang.org/x/net/html tokenizer as a stream of markup events.
package html

import (
	"strings"

	"github.com/fwojciec/somnolent"
)

// Ensure Parser implements somnolent.StoryParser at compile time.
var _ somnolent.StoryParser = (*Parser)(nil)

// State is the parser's position relative to the tags it collects.
type State int

// Parser states.
const (
	StateNone State = iota
	StateInTitle
	StateInBody
)

// Tags whose text is collected. Story pages mark up the title and body
// paragraphs without attributes; any attribute disqualifies the tag.
const (
	TitleTag = "title"
	BodyTag  = "p"
)

// escapedWhitespace strips the two-character escapes ("\n", "\t", "\r")
// that appear in pages which went through a printable byte representation.
var escapedWhitespace = strings.NewReplacer(`\n`, "", `\t`, "", `\r`, "")

// Transition applies ev to state s. It returns the next state and the
// text the event appends to the accumulator selected by s.
// Only character reference decoding can fail.
func Transition(s State, ev Event) (State, string, error) {
	switch ev.Kind {
	case StartTagEvent:
		if ev.HasAttr {
			return StateNone, "", nil
		}
		switch ev.Data {
		case TitleTag:
			return StateInTitle, "", nil
		case BodyTag:
			return StateInBody, "", nil
		}
		return StateNone, "", nil
	case EndTagEvent:
		return StateNone, "", nil
	}

	if s == StateNone {
		return s, "", nil
	}

	switch ev.Kind {
	case TextEvent:
		return s, strings.TrimSpace(escapedWhitespace.Replace(ev.Data)), nil
	case EntityRefEvent:
		r, err := DecodeEntity(ev.Data)
		if err != nil {
			return s, "", err
		}
		return s, string(r), nil
	case CharRefEvent:
		r, err := DecodeCharRef(ev.Data)
		if err != nil {
			return s, "", err
		}
		return s, string(r), nil
	}
	return s, "", nil
}

// Parser extracts stories from story pages.
// It holds no state between calls and is safe for concurrent use.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse returns the title and body text of the story page doc.
func (p *Parser) Parse(doc string) (*somnolent.Story, error) {
	var title, body strings.Builder
	state := StateNone

	for ev := range Events(doc) {
		next, text, err := Transition(state, ev)
		if err != nil {
			return nil, err
		}
		switch state {
		case StateInTitle:
			title.WriteString(text)
		case StateInBody:
			body.WriteString(text)
		}
		state = next
	}

	return &somnolent.Story{
		Title: title.String(),
		Body:  body.String(),
	}, nil
}
