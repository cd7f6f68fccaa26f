package somnolent

// Abbreviations holds the tokens that must not be mistaken for the end of
// a sentence. Entries are lower-case canonical forms.
type Abbreviations struct {
	// Lookbehind tokens may appear immediately before a terminal
	// punctuation mark, e.g. "dr" in "Dr. Smith".
	Lookbehind []string

	// Lookahead tokens may appear immediately after a terminal
	// punctuation mark.
	Lookahead []string
}

// DefaultAbbreviations returns the honorifics found in the stories.
// Entries that end common words ("st" in "first", "ms" in "items") are
// left out because matching is not anchored to a word boundary.
func DefaultAbbreviations() Abbreviations {
	return Abbreviations{
		Lookbehind: []string{"mr", "mrs", "dr", "prof", "jr", "sr", "vs"},
		Lookahead:  []string{},
	}
}

// SentenceExtractor splits story text into sentences.
type SentenceExtractor interface {
	// ExtractSentences returns every sentence in body.
	// Returns ENOSENTENCE if there are none.
	ExtractSentences(body string) ([]string, error)

	// SelectOne picks one of sentences uniformly at random.
	// Returns ENOSENTENCE if sentences is empty.
	SelectOne(sentences []string) (string, error)
}
