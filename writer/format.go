package writer

import (
	"strings"

	"github.com/comcifs/gocif/unicodeutil"
	"github.com/comcifs/gocif/value"
)

// isValidBareWord reports whether s can be written as a CIF bare
// (unquoted) value: non-empty, every rune is an "ordinary" character
// (unicodeutil.IsOrdinaryChar already excludes whitespace, the quote
// characters, and the reserved leading characters '_', '#', '$', ';',
// '[', ']', '{', '}' — which as a side effect also rules out every
// reserved keyword, since they all contain '_'), is not the reserved
// '?'/'.' tokens, and does not parse as a number (which would silently
// change the value's kind on re-read).
func isValidBareWord(s string) bool {
	if s == "" || s == "?" || s == "." {
		return false
	}
	for _, r := range s {
		if !unicodeutil.IsOrdinaryChar(r) {
			return false
		}
	}
	if _, ok := value.ParseNumb(s); ok {
		return false
	}
	return true
}

// delimKind enumerates the candidate CHAR delimiter forms, narrowest
// first (spec.md §4.4 "Choose the narrowest permissible delimiter").
type delimKind int

const (
	delimBare delimKind = iota
	delimSingle
	delimDouble
	delimTripleSingle
	delimTripleDouble
	delimText
)

// chooseDelim picks the narrowest delimiter that can represent s,
// following the reference writer's presence-based heuristic
// (other_examples/..._BurntSushi-cif__write.go.go formatStr): a
// multi-line value always needs a text field (or, in CIF 2, a triple
// quote if narrower); a value containing both quote characters needs a
// text field; otherwise the quote character not present in the value is
// used. This is deliberately conservative — a quote character present
// anywhere disqualifies that delimiter, even where the CIF grammar would
// tolerate it if not immediately followed by whitespace — trading a few
// extra text-field emissions for a heuristic simple enough to always be
// correct.
func chooseDelim(s string, cif2 bool) delimKind {
	if isValidBareWord(s) {
		return delimBare
	}

	multiline := strings.ContainsRune(s, '\n')
	seenSingle := strings.ContainsRune(s, '\'')
	seenDouble := strings.ContainsRune(s, '"')

	if !multiline {
		switch {
		case !seenSingle && !seenDouble:
			return delimSingle
		case seenSingle && !seenDouble:
			return delimDouble
		case !seenSingle && seenDouble:
			return delimSingle
		}
		// both quote kinds present inline: fall through to text/triple forms
	}

	if cif2 {
		hasTripleSingle := strings.Contains(s, "'''")
		hasTripleDouble := strings.Contains(s, "\"\"\"")
		// A triple-quoted form is narrower than a text field when the
		// content is short; the reference writer has no CIF 2
		// equivalent, so this chooses whichever triple the content
		// doesn't itself contain, preferring single per spec.md §4.4
		// "triple-quoted forms may be chosen when shorter than a text
		// field".
		if !hasTripleSingle && len(s) < maxLineLength-6 {
			return delimTripleSingle
		}
		if !hasTripleDouble && len(s) < maxLineLength-6 {
			return delimTripleDouble
		}
	}

	return delimText
}
