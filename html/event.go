package html

import (
	"iter"
	"strings"

	"golang.org/x/net/html"
)

// EventKind identifies the kind of a markup event.
type EventKind int

// Markup event kinds.
const (
	StartTagEvent EventKind = iota
	EndTagEvent
	TextEvent
	EntityRefEvent
	CharRefEvent
)

// Event is one item of a document's markup stream.
type Event struct {
	Kind EventKind

	// Data is the lower-cased tag name for tag events, the literal text for
	// TextEvent, the reference name for EntityRefEvent ("amp") and the
	// reference number for CharRefEvent ("65", "x41").
	Data string

	// HasAttr reports whether a start tag carries any attributes.
	HasAttr bool
}

// Events returns the markup events of doc in document order.
// Every range over the sequence tokenizes doc from the beginning.
//
// Self-closing tags produce a start event followed by an end event.
// Comments and doctypes produce no events. Character references are
// reported as separate events only when terminated by ';'; anything
// else starting with '&' stays part of the surrounding text.
func Events(doc string) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		z := html.NewTokenizer(strings.NewReader(doc))
		for {
			tt := z.Next()
			switch tt {
			case html.ErrorToken:
				return
			case html.StartTagToken, html.SelfClosingTagToken:
				name, hasAttr := z.TagName()
				tag := string(name)
				if !yield(Event{Kind: StartTagEvent, Data: tag, HasAttr: hasAttr}) {
					return
				}
				if tt == html.SelfClosingTagToken && !yield(Event{Kind: EndTagEvent, Data: tag}) {
					return
				}
			case html.EndTagToken:
				name, _ := z.TagName()
				if !yield(Event{Kind: EndTagEvent, Data: string(name)}) {
					return
				}
			case html.TextToken:
				if !splitReferences(string(z.Raw()), yield) {
					return
				}
			}
		}
	}
}

// splitReferences yields raw text as alternating text and reference
// events. It returns false if yield asked to stop.
func splitReferences(raw string, yield func(Event) bool) bool {
	start := 0
	for i := 0; i < len(raw); {
		if raw[i] != '&' {
			i++
			continue
		}
		ev, n := scanReference(raw[i:])
		if n == 0 {
			i++
			continue
		}
		if start < i && !yield(Event{Kind: TextEvent, Data: raw[start:i]}) {
			return false
		}
		if !yield(ev) {
			return false
		}
		i += n
		start = i
	}
	if start < len(raw) {
		return yield(Event{Kind: TextEvent, Data: raw[start:]})
	}
	return true
}

// scanReference reports the character reference at the start of s and
// its length in bytes. The length is zero if s does not begin with a
// complete reference.
func scanReference(s string) (Event, int) {
	if len(s) < 3 || s[0] != '&' {
		return Event{}, 0
	}

	if s[1] == '#' {
		j := 2
		hex := s[j] == 'x' || s[j] == 'X'
		if hex {
			j++
		}
		first := j
		for j < len(s) && isDigit(s[j], hex) {
			j++
		}
		if j == first || j >= len(s) || s[j] != ';' {
			return Event{}, 0
		}
		return Event{Kind: CharRefEvent, Data: s[2:j]}, j + 1
	}

	if !isLetter(s[1]) {
		return Event{}, 0
	}
	j := 2
	for j < len(s) && (isLetter(s[j]) || isDigit(s[j], false)) {
		j++
	}
	if j >= len(s) || s[j] != ';' {
		return Event{}, 0
	}
	return Event{Kind: EntityRefEvent, Data: s[1:j]}, j + 1
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDigit(c byte, hex bool) bool {
	if '0' <= c && c <= '9' {
		return true
	}
	return hex && ('a' <= c && c <= 'f' || 'A' <= c && c <= 'F')
}
