package unicodeutil

import "testing"

func TestIsWhitespace(t *testing.T) {
	for _, r := range []rune{' ', '\t'} {
		if !IsWhitespace(r) {
			t.Errorf("%q: expected whitespace", r)
		}
	}
	for _, r := range []rune{'\n', '\r', 'a', '_'} {
		if IsWhitespace(r) {
			t.Errorf("%q: expected not whitespace", r)
		}
	}
}

func TestIsEOL(t *testing.T) {
	for _, r := range []rune{'\n', '\r'} {
		if !IsEOL(r) {
			t.Errorf("%q: expected EOL", r)
		}
	}
	if IsEOL(' ') {
		t.Errorf("space should not be EOL")
	}
}

func TestIsOrdinaryChar(t *testing.T) {
	reserved := []rune{' ', '\t', '\n', '\r', '"', '#', '$', '\'', '_', ';', '[', ']', '{', '}'}
	for _, r := range reserved {
		if IsOrdinaryChar(r) {
			t.Errorf("%q: expected not ordinary", r)
		}
	}
	for _, r := range []rune{'a', 'Z', '0', '-', '.'} {
		if !IsOrdinaryChar(r) {
			t.Errorf("%q: expected ordinary", r)
		}
	}
}

func TestIsNameContinue(t *testing.T) {
	for _, r := range []rune{' ', '\t', '\n', '\r', '"', '\'', '#', '$', ';', '[', ']', '{', '}', ':'} {
		if IsNameContinue(r) {
			t.Errorf("%q: expected disallowed in a data name", r)
		}
	}
	for _, r := range []rune{'a', '_', '-', '1'} {
		if !IsNameContinue(r) {
			t.Errorf("%q: expected allowed in a data name", r)
		}
	}
}

func TestIsNameStartMatchesContinue(t *testing.T) {
	for _, r := range []rune{'a', '_', ':', ' '} {
		if IsNameStart(r) != IsNameContinue(r) {
			t.Errorf("%q: IsNameStart and IsNameContinue disagree", r)
		}
	}
}

func TestIsPrintable(t *testing.T) {
	cases := []struct {
		r    rune
		want bool
	}{
		{'a', true},
		{'\t', true},
		{'\n', true},
		{'\r', true},
		{'\f', true},
		{'\v', true},
		{0x00, false},
		{0x1f, false},
		{0x7f, false},
		{0x80, false},
		{0x9f, false},
		{0xa0, true},
		{0xd800, false},  // surrogate
		{0xfdd0, false},  // non-character
		{0x1fffe, false}, // non-character (plane boundary)
	}
	for _, c := range cases {
		if got := IsPrintable(c.r); got != c.want {
			t.Errorf("IsPrintable(%#x) = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestIsSurrogate(t *testing.T) {
	if !IsSurrogate(0xd800) || !IsSurrogate(0xdfff) {
		t.Errorf("expected surrogate range to be detected")
	}
	if IsSurrogate(0xd7ff) || IsSurrogate(0xe000) {
		t.Errorf("expected values just outside the surrogate range to be rejected")
	}
}

func TestIsNonCharacter(t *testing.T) {
	if !IsNonCharacter(0xfdd0) || !IsNonCharacter(0xfdef) {
		t.Errorf("expected the FDD0..FDEF block to be non-characters")
	}
	if !IsNonCharacter(0xfffe) || !IsNonCharacter(0x10ffff) {
		t.Errorf("expected each plane's last two code points to be non-characters")
	}
	if IsNonCharacter('a') {
		t.Errorf("ordinary letter misclassified as non-character")
	}
}

func TestIsASCII(t *testing.T) {
	if !IsASCII(0x7f) || IsASCII(0x80) {
		t.Errorf("IsASCII boundary wrong")
	}
}

func TestIsControl(t *testing.T) {
	if !IsControl(0x01) {
		t.Errorf("expected 0x01 to be a control character")
	}
	if IsControl('a') {
		t.Errorf("letter misclassified as control")
	}
}
