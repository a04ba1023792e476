package tokenizer

import (
	"strings"
	"testing"
)

func tokenizeAll(t *testing.T, input string, opts Options) ([]Token, []Code) {
	t.Helper()
	var codes []Code
	if opts.ErrorCallback == nil {
		opts.ErrorCallback = func(code Code, pos Position, text string) int {
			codes = append(codes, code)
			return 0 // request built-in recovery, never abort
		}
	}
	tk, err := NewTokenizer(strings.NewReader(input), opts)
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	var toks []Token
	for {
		tok, err := tk.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			break
		}
	}
	return toks, codes
}

func TestCIF1BracketsAreNotDelimiters(t *testing.T) {
	toks, codes := tokenizeAll(t, "_a [1]\n", Options{})
	// In CIF 1.1, '[' and ']' never start ListOpen/ListClose tokens; they
	// fall through to lexBare and the whole run becomes one Bare token.
	if len(toks) < 2 || toks[1].Kind != Bare || toks[1].Text != "[1]" {
		t.Fatalf("got %+v, want a single Bare token \"[1]\"", toks)
	}
	if len(codes) != 1 || codes[0] != CIF_INVALID_BARE_VALUE {
		t.Errorf("got codes %v, want [CIF_INVALID_BARE_VALUE]", codes)
	}
}

func TestCIF2BracketsAreDelimiters(t *testing.T) {
	toks, codes := tokenizeAll(t, "_a [ 1 ]\n", Options{DefaultToCIF2: true})
	if len(codes) != 0 {
		t.Fatalf("unexpected codes in CIF 2 mode: %v", codes)
	}
	kinds := make([]Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	want := []Kind{DataName, ListOpen, Bare, ListClose, EOF}
	if len(kinds) != len(want) {
		t.Fatalf("got kinds %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestCIF2TableAndColonDelimiters(t *testing.T) {
	toks, _ := tokenizeAll(t, "{ 'k' : 1 }\n", Options{DefaultToCIF2: true})
	kinds := make([]Kind, 0, len(toks))
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	want := []Kind{TableOpen, SQString, Colon, Bare, TableClose, EOF}
	if len(kinds) != len(want) {
		t.Fatalf("got kinds %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestCIF1ColonIsBare(t *testing.T) {
	toks, _ := tokenizeAll(t, "a:b\n", Options{})
	if toks[0].Kind != Bare || toks[0].Text != "a:b" {
		t.Errorf("got %+v, want a single Bare token \"a:b\"", toks[0])
	}
}

func TestVersionMarkerCIF2ForcesBracketDispatch(t *testing.T) {
	input := "#\\CIF_2.0\ndata_x\n_a [1]\n"
	var codes []Code
	tk, err := NewTokenizer(strings.NewReader(input), Options{
		ErrorCallback: func(code Code, pos Position, text string) int {
			codes = append(codes, code)
			return 0
		},
	})
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	if tk.Version != "2.0" || !tk.CIF2 {
		t.Fatalf("got Version=%q CIF2=%v, want 2.0/true", tk.Version, tk.CIF2)
	}
	for {
		tok, err := tk.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if tok.Kind == EOF {
			break
		}
	}
	if len(codes) != 0 {
		t.Errorf("unexpected codes under the CIF 2 marker: %v", codes)
	}
}

func TestVersionMarkerCIF1LeavesCIF2Off(t *testing.T) {
	input := "#\\CIF_1.1\ndata_x\n"
	tk, err := NewTokenizer(strings.NewReader(input), Options{})
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	if tk.Version != "1.1" || tk.CIF2 {
		t.Fatalf("got Version=%q CIF2=%v, want 1.1/false", tk.Version, tk.CIF2)
	}
}

func TestMissingSpaceAfterTripleQuote(t *testing.T) {
	toks, codes := tokenizeAll(t, "'''abc'''def\n", Options{DefaultToCIF2: true})
	if toks[0].Kind != TSQString || toks[0].Text != "abc" {
		t.Fatalf("got %+v, want TSQString \"abc\"", toks[0])
	}
	if len(codes) != 1 || codes[0] != CIF_MISSING_SPACE {
		t.Errorf("got codes %v, want [CIF_MISSING_SPACE]", codes)
	}
	if toks[1].Kind != Bare || toks[1].Text != "def" {
		t.Errorf("got %+v, want Bare \"def\" following the triple-quoted string", toks[1])
	}
}

func TestTripleQuoteFollowedBySpaceIsClean(t *testing.T) {
	_, codes := tokenizeAll(t, "'''abc''' def\n", Options{DefaultToCIF2: true})
	if len(codes) != 0 {
		t.Errorf("unexpected codes: %v", codes)
	}
}

func TestMissingSpaceAfterTextField(t *testing.T) {
	toks, codes := tokenizeAll(t, ";line one\n;rest\n", Options{})
	if toks[0].Kind != TextField {
		t.Fatalf("got %+v, want a TextField token", toks[0])
	}
	if len(codes) != 1 || codes[0] != CIF_MISSING_SPACE {
		t.Errorf("got codes %v, want [CIF_MISSING_SPACE]", codes)
	}
}

func TestTextFieldFollowedByNewlineIsClean(t *testing.T) {
	_, codes := tokenizeAll(t, ";line one\n;\ndata_x\n", Options{})
	if len(codes) != 0 {
		t.Errorf("unexpected codes: %v", codes)
	}
}

func TestSingleQuotedStringNeverTriggersMissingSpace(t *testing.T) {
	// The closing quote's own lookahead already requires trailing
	// whitespace/EOF to be recognized as a close; an embedded quote not
	// followed by whitespace is just more string content, not a
	// CIF_MISSING_SPACE condition.
	toks, codes := tokenizeAll(t, "'it's fine' x\n", Options{})
	if toks[0].Kind != SQString {
		t.Fatalf("got %+v, want SQString", toks[0])
	}
	if len(codes) != 0 {
		t.Errorf("unexpected codes: %v", codes)
	}
}

func TestLexKeywordsAndDataName(t *testing.T) {
	toks, _ := tokenizeAll(t, "data_x\nloop_\n_a\nsave_frm\nsave_\nglobal_\nstop_\n", Options{})
	want := []Kind{
		DataBlockHeader, LoopKeyword, DataName,
		SaveFrameHeader, SaveFrameEnd, GlobalKeyword, StopKeyword, EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Kind, k)
		}
	}
	if toks[0].Text != "x" {
		t.Errorf("DataBlockHeader text: got %q, want %q", toks[0].Text, "x")
	}
	if toks[2].Text != "a" {
		t.Errorf("DataName text: got %q, want %q", toks[2].Text, "a")
	}
	if toks[3].Text != "frm" {
		t.Errorf("SaveFrameHeader text: got %q, want %q", toks[3].Text, "frm")
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	tk, err := NewTokenizer(strings.NewReader("loop_ _a\n"), Options{})
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	first, _ := tk.Peek()
	firstAgain, _ := tk.Peek()
	if first != firstAgain {
		t.Fatalf("Peek is not idempotent: %+v != %+v", first, firstAgain)
	}
	second, _ := tk.PeekPeek()
	if second.Kind != DataName {
		t.Fatalf("PeekPeek: got %v, want DataName", second.Kind)
	}
	consumed, _ := tk.Next()
	if consumed != first {
		t.Fatalf("Next did not return the peeked token: %+v != %+v", consumed, first)
	}
	next, _ := tk.Peek()
	if next != second {
		t.Fatalf("window did not slide: Peek()=%+v, want %+v", next, second)
	}
}

func TestErrorCallbackAbortsParsing(t *testing.T) {
	const abortCode = Code(9999)
	tk, err := NewTokenizer(strings.NewReader("[1]\n"), Options{
		ErrorCallback: func(code Code, pos Position, text string) int {
			return int(abortCode)
		},
	})
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	// The invalid bare value is detected while filling the lookahead
	// window during construction; a nonzero callback return must
	// propagate as the tokenizer's own error, not be swallowed.
	_, aErr := tk.Peek()
	if aErr == nil {
		t.Fatalf("expected a propagated abort error")
	}
	if code, ok := aErr.(Code); !ok || code != abortCode {
		t.Fatalf("got error %v, want Code(%d)", aErr, abortCode)
	}
}

func textFieldOf(t *testing.T, toks []Token) Token {
	t.Helper()
	for _, tok := range toks {
		if tok.Kind == TextField {
			return tok
		}
	}
	t.Fatalf("no TextField token in %+v", toks)
	return Token{}
}

// TestTextFieldFoldGenuineBreakThenFold covers a non-folded line
// immediately followed by a folded one: the newline belongs right after
// the non-folded line, not after the folded continuation (the bug was
// emitting "AAABBB\nCCC" instead of "AAA\nBBBCCC").
func TestTextFieldFoldGenuineBreakThenFold(t *testing.T) {
	input := "_x\n;AAA\nBBB\\\nCCC\n;\n"
	toks, codes := tokenizeAll(t, input, Options{DefaultToCIF2: true})
	if len(codes) != 0 {
		t.Fatalf("unexpected codes: %v", codes)
	}
	field := textFieldOf(t, toks)
	want := "AAA\nBBBCCC"
	if field.Text != want {
		t.Fatalf("got %q, want %q", field.Text, want)
	}
}

// TestTextFieldPrefixAndFoldCombine covers spec.md §8 scenario 6: a
// text-prefix marker line combined with fold-continuations among the
// prefixed lines.
func TestTextFieldPrefixAndFoldCombine(t *testing.T) {
	input := "_x\n;PFX\\\nPFXline1\\\nPFXline2\nPFXline3\n;\n"
	toks, codes := tokenizeAll(t, input, Options{DefaultToCIF2: true})
	if len(codes) != 0 {
		t.Fatalf("unexpected codes: %v", codes)
	}
	field := textFieldOf(t, toks)
	want := "line1line2\nline3"
	if field.Text != want {
		t.Fatalf("got %q, want %q", field.Text, want)
	}
}
