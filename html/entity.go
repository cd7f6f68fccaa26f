package html

import (
	"strconv"
	"unicode/utf8"

	"github.com/fwojciec/somnolent"
	"golang.org/x/net/html"
)

// DecodeEntity returns the code point of a named character reference,
// given without its leading '&' and trailing ';' (e.g. "amp").
// Names outside the HTML5 table, and the few names that expand to more
// than one code point, return EUNKNOWNENTITY.
func DecodeEntity(name string) (rune, error) {
	ref := "&" + name + ";"
	s := html.UnescapeString(ref)
	if s == ref {
		return 0, somnolent.Errorf(somnolent.EUNKNOWNENTITY, "unknown entity %q", name)
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return 0, somnolent.Errorf(somnolent.EUNKNOWNENTITY, "unknown entity %q", name)
	}
	return r, nil
}

// DecodeCharRef returns the code point of a numeric character reference,
// given without its leading "&#" and trailing ';'. A leading 'x' or 'X'
// selects hexadecimal (e.g. "65" and "x41" both decode to 'A').
// Values outside the Unicode range, surrogates, and malformed numbers
// return EINVALIDCODEPOINT.
func DecodeCharRef(ref string) (rune, error) {
	digits, base := ref, 10
	if len(ref) > 0 && (ref[0] == 'x' || ref[0] == 'X') {
		digits, base = ref[1:], 16
	}
	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, somnolent.Errorf(somnolent.EINVALIDCODEPOINT, "invalid character reference %q", ref)
	}
	r := rune(v)
	if v > utf8.MaxRune || !utf8.ValidRune(r) {
		return 0, somnolent.Errorf(somnolent.EINVALIDCODEPOINT, "character reference %q is out of range", ref)
	}
	return r, nil
}
