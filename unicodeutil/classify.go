// Package unicodeutil implements the Unicode-level utilities the CIF
// lexer and data model share: code-point classification, name
// normalization, and encoding detection.
package unicodeutil

import "unicode"

// IsWhitespace reports whether r is CIF inline whitespace (space or tab).
// End-of-line characters are classified separately by IsEOL.
func IsWhitespace(r rune) bool {
	return r == ' ' || r == '\t'
}

// IsEOL reports whether r is a line terminator. CR, LF and CRLF are
// folded to a single logical newline upstream (see the tokenizer
// package); this only classifies the raw code point.
func IsEOL(r rune) bool {
	return r == '\n' || r == '\r'
}

// IsOrdinaryChar reports whether r is a CIF "ordinary" character: any
// character allowed in a bare (unquoted) value that is not whitespace,
// a quote, or a reserved leading character.
func IsOrdinaryChar(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return false
	case '"', '#', '$', '\'', '_', ';', '[', ']', '{', '}':
		return false
	}
	return IsPrintable(r)
}

// IsNameStart reports whether r may begin a data name, block code or
// frame code (the character immediately following the leading '_').
func IsNameStart(r rune) bool {
	return IsNameContinue(r)
}

// IsNameContinue reports whether r may appear in a data name after the
// first character: letters, digits, underscore, and CIF's allowed
// punctuation, but never whitespace or a structural delimiter.
func IsNameContinue(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '"', '\'', '#', '$', ';', '[', ']', '{', '}', ':':
		return false
	}
	return IsPrintable(r)
}

// IsPrintable reports whether r is in the CIF-allowed repertoire:
// any Unicode code point except disallowed C0/C1 controls, lone
// surrogates, and non-characters. Tab, newline, carriage return and
// form feed are allowed even though they are C0 controls.
func IsPrintable(r rune) bool {
	switch r {
	case '\t', '\n', '\r', '\f', '\v':
		return true
	}
	if r < 0x20 || r == 0x7f {
		return false
	}
	if r >= 0x80 && r <= 0x9f {
		return false // disallowed C1 controls
	}
	if IsSurrogate(r) {
		return false
	}
	if IsNonCharacter(r) {
		return false
	}
	return true
}

// IsSurrogate reports whether r is a lone surrogate half. Valid Go
// runes from UTF-8 decoding never legitimately carry one, but malformed
// input (or code points supplied directly as integers) can.
func IsSurrogate(r rune) bool {
	return r >= 0xd800 && r <= 0xdfff
}

// IsNonCharacter reports whether r is one of the 66 code points
// permanently reserved by Unicode as "not a character" (U+FDD0..U+FDEF
// and the last two code points of each plane).
func IsNonCharacter(r rune) bool {
	if r >= 0xfdd0 && r <= 0xfdef {
		return true
	}
	return r&0xfffe == 0xfffe
}

// IsASCII reports whether r fits CIF 1.1's 7-bit repertoire (plus tab).
func IsASCII(r rune) bool {
	return r <= 0x7f
}

// IsControl reports whether r is a Unicode control character (Go's
// unicode.IsControl).
func IsControl(r rune) bool {
	return unicode.IsControl(r)
}
