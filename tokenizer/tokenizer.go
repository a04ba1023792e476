// Package tokenizer implements the CIF lexer (spec.md §4.1): encoding
// detection and transcoding, line/column tracking with CR/CRLF/LF
// folding, repertoire enforcement, and the token grammar (block/frame
// headers, loop_, data names, the four quoting styles, text fields with
// line-folding and text-prefix decoding, list/table delimiters).
//
// The Tokenizer exposes the teacher's double-lookahead read pattern
// (parser/tokenizer/token.go: Peek/PeekPeek/NextToken over a cached
// two-token window). The parser itself only consults one token ahead
// (Peek); PeekPeek exposes the second token of the window.
package tokenizer

import (
	"bytes"
	"io"
	"strings"

	"github.com/comcifs/gocif/unicodeutil"
)

const maxLineLength = 2048

// Tokenizer turns a decoded CIF byte stream into a sequence of Tokens.
type Tokenizer struct {
	runes  []rune
	lineAt []int
	colAt  []int
	pos    int

	opts Options

	// double lookahead, mirroring the teacher's Tokenizer.aToken/aaToken.
	aToken  Token
	aErr    error
	aaToken Token
	aaErr   error

	// Version is the CIF version marker found at the start of input, if
	// any ("1.1" or "2.0"); CIF2 reports whether CIF 2 grammar (list,
	// table, triple-quote literals) is in effect.
	Version string
	CIF2    bool

	atLineStart bool
}

// NewTokenizer detects the encoding of r's bytes, transcodes to UTF-8,
// normalizes line endings, and prepares a ready-to-use Tokenizer
// (spec.md §4.1 "Input"/"Encoding detection"/"Line handling").
func NewTokenizer(r io.Reader, opts Options) (*Tokenizer, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var enc unicodeutil.Encoding
	var isCIF2 bool
	if opts.ForceDefaultEncoding {
		enc = encodingFromName(opts.DefaultEncodingName)
	} else {
		det := unicodeutil.DetectEncoding(raw)
		enc = det.Encoding
		isCIF2 = det.IsCIF2
		if det.HasBOM || det.IsCIF2 {
			raw = raw[det.BOMLen:]
		}
		if enc == unicodeutil.EncodingUnknown {
			enc = encodingFromName(opts.DefaultEncodingName)
		}
	}

	decoded, err := io.ReadAll(unicodeutil.NewDecoder(bytes.NewReader(raw), enc))
	if err != nil {
		return nil, err
	}

	tk := &Tokenizer{opts: opts, atLineStart: true}
	if isCIF2 {
		tk.Version = "2.0"
		tk.CIF2 = true
	} else {
		tk.CIF2 = opts.DefaultToCIF2
	}

	if isCIF2 && enc != unicodeutil.EncodingUTF8 {
		if abortErr := tk.opts.reportError(CIF_WRONG_ENCODING, Position{1, 1}, ""); abortErr != nil {
			return nil, abortErr
		}
	}

	if err := tk.loadRunes(string(decoded)); err != nil {
		return nil, err
	}
	if err := tk.detectLeadingVersionComment(); err != nil {
		return nil, err
	}

	tk.aToken, tk.aErr = tk.rawNext()
	tk.aaToken, tk.aaErr = tk.rawNext()
	return tk, nil
}

func encodingFromName(name string) unicodeutil.Encoding {
	switch strings.ToLower(name) {
	case "utf-16le":
		return unicodeutil.EncodingUTF16LE
	case "utf-16be":
		return unicodeutil.EncodingUTF16BE
	case "utf-32le":
		return unicodeutil.EncodingUTF32LE
	case "utf-32be":
		return unicodeutil.EncodingUTF32BE
	default:
		return unicodeutil.EncodingUTF8
	}
}

func (tk *Tokenizer) loadRunes(s string) error {
	line, col := 1, 1
	rs := []rune(s)
	lineStart := 0
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case r == '\r':
			i++
			if i < len(rs) && rs[i] == '\n' {
				i++
			}
			r = '\n'
		case r == '\n', tk.opts.isExtraEOL(r):
			i++
			r = '\n'
		default:
			if code := checkRepertoire(r, tk.CIF2); code != CIF_OK {
				if err := tk.opts.reportError(code, Position{line, col}, string(r)); err != nil {
					return err
				}
			}
			i++
		}

		tk.runes = append(tk.runes, r)
		tk.lineAt = append(tk.lineAt, line)
		tk.colAt = append(tk.colAt, col)

		if r == '\n' {
			if col-1 > maxLineLength {
				if err := tk.opts.reportError(CIF_OVERLENGTH_LINE, Position{line, 1}, ""); err != nil {
					return err
				}
			}
			line++
			col = 1
			lineStart = len(tk.runes)
		} else {
			col++
		}
		_ = lineStart
	}
	return nil
}

// checkRepertoire classifies a decoded code point per spec.md §4.1
// "Repertoire enforcement".
func checkRepertoire(r rune, cif2 bool) Code {
	if unicodeutil.IsSurrogate(r) || unicodeutil.IsNonCharacter(r) {
		return CIF_INVALID_CHAR
	}
	switch r {
	case '\t', '\n', '\r', '\f', '\v':
		// always allowed
	default:
		if r < 0x20 || r == 0x7f || (r >= 0x80 && r <= 0x9f) {
			return CIF_DISALLOWED_CHAR
		}
	}
	if !cif2 && !unicodeutil.IsASCII(r) && r != '\t' {
		return CIF_DISALLOWED_CHAR
	}
	return CIF_OK
}

func (tk *Tokenizer) posAt(idx int) Position {
	if idx >= 0 && idx < len(tk.lineAt) {
		return Position{tk.lineAt[idx], tk.colAt[idx]}
	}
	if len(tk.lineAt) == 0 {
		return Position{1, 1}
	}
	return Position{tk.lineAt[len(tk.lineAt)-1], tk.colAt[len(tk.colAt)-1] + 1}
}

// detectLeadingVersionComment recognizes "#\CIF_1.1" or "#\CIF_2.0" at
// the very start of input, the recommended version annotation (spec.md
// §4.1; grounded on the reference lexer's lexVersion).
func (tk *Tokenizer) detectLeadingVersionComment() error {
	if tk.Version != "" { // already fixed by the CIF2 byte marker
		return nil
	}
	if len(tk.runes) == 0 || tk.runes[0] != '#' {
		return nil
	}
	const v11 = "\\CIF_1.1"
	const v20 = "\\CIF_2.0"
	rest := string(tk.runes[1:min(len(tk.runes), 1+len(v11))])
	switch rest {
	case v11:
		tk.Version = "1.1"
		tk.pos = 1 + len(v11)
		return nil
	case v20:
		tk.Version = "2.0"
		tk.CIF2 = true
		tk.pos = 1 + len(v20)
		return nil
	}
	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Peek returns the next token without consuming it (cheap: it is a
// cached value, same contract as the teacher's PeekToken).
func (tk *Tokenizer) Peek() (Token, error) { return tk.aToken, tk.aErr }

// PeekPeek returns the token after Peek without consuming anything.
func (tk *Tokenizer) PeekPeek() (Token, error) { return tk.aaToken, tk.aaErr }

// Next consumes and returns the next token, refilling the lookahead
// window (teacher's NextToken sliding-window shift).
func (tk *Tokenizer) Next() (Token, error) {
	t, err := tk.aToken, tk.aErr
	tk.aToken, tk.aErr = tk.aaToken, tk.aaErr
	tk.aaToken, tk.aaErr = tk.rawNext()
	return t, err
}

func (tk *Tokenizer) peekRune() (rune, bool) {
	if tk.pos >= len(tk.runes) {
		return 0, false
	}
	return tk.runes[tk.pos], true
}

func (tk *Tokenizer) peekRuneAt(n int) (rune, bool) {
	idx := tk.pos + n
	if idx >= len(tk.runes) {
		return 0, false
	}
	return tk.runes[idx], true
}

func (tk *Tokenizer) readRune() (rune, bool) {
	r, ok := tk.peekRune()
	if ok {
		tk.pos++
	}
	return r, ok
}

// peekLiteral reports whether the literal s (ASCII) matches the input at
// the current position, case-insensitively.
func (tk *Tokenizer) peekLiteral(s string) bool {
	if tk.pos+len(s) > len(tk.runes) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if lower(tk.runes[tk.pos+i]) != lower(rune(s[i])) {
			return false
		}
	}
	return true
}

func lower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func isNonBlank(r rune) bool {
	return unicodeutil.IsOrdinaryChar(r) || r == '"' || r == '#' || r == '$' || r == '\'' || r == '_' || r == ';' || r == '[' || r == ']' || r == '{' || r == '}' || r == ':'

}

// skipWSAndComments consumes whitespace runs and '#' comments, firing
// the whitespace callback once for the whole maximal run (spec.md §4.1
// "Whitespace callback").
func (tk *Tokenizer) skipWSAndComments() {
	start := tk.pos
	for {
		r, ok := tk.peekRune()
		if !ok {
			break
		}
		if r == '\n' {
			tk.pos++
			tk.atLineStart = true
			continue
		}
		if unicodeutil.IsWhitespace(r) || tk.opts.isExtraWS(r) {
			tk.pos++
			continue
		}
		if r == '#' {
			for {
				r2, ok2 := tk.peekRune()
				if !ok2 || r2 == '\n' {
					break
				}
				tk.pos++
			}
			continue
		}
		break
	}
	if tk.pos > start {
		tk.opts.reportWhitespace(tk.posAt(start), string(tk.runes[start:tk.pos]))
	}
}

// rawNext performs the actual lexing, advancing tk.pos.
func (tk *Tokenizer) rawNext() (Token, error) {
	tk.skipWSAndComments()

	startPos := tk.posAt(tk.pos)
	r, ok := tk.peekRune()
	if !ok {
		return Token{Kind: EOF, Pos: startPos}, nil
	}
	wasLineStart := tk.atLineStart
	tk.atLineStart = false

	switch {
	case r == '_':
		return tk.lexDataName(startPos)
	case r == '\'':
		return tk.lexQuoted(startPos, '\'', SQString, TSQString)
	case r == '"':
		return tk.lexQuoted(startPos, '"', DQString, TDQString)
	case r == ';' && wasLineStart:
		return tk.lexTextField(startPos)
	// The list/table/colon punctuation below is CIF 2 only (spec.md
	// §4.2); in CIF 1.1 these characters fall through to lexKeyword/
	// lexBare, where '[' and ']' are caught as CIF_INVALID_BARE_VALUE.
	case r == '[' && tk.CIF2:
		tk.pos++
		return Token{Kind: ListOpen, Text: "[", Pos: startPos}, nil
	case r == ']' && tk.CIF2:
		tk.pos++
		return Token{Kind: ListClose, Text: "]", Pos: startPos}, nil
	case r == '{' && tk.CIF2:
		tk.pos++
		return Token{Kind: TableOpen, Text: "{", Pos: startPos}, nil
	case r == '}' && tk.CIF2:
		tk.pos++
		return Token{Kind: TableClose, Text: "}", Pos: startPos}, nil
	case r == ':' && tk.CIF2:
		tk.pos++
		return Token{Kind: Colon, Text: ":", Pos: startPos}, nil
	}

	if kw, text, matched := tk.lexKeyword(); matched {
		return Token{Kind: kw, Text: text, Pos: startPos}, nil
	}

	return tk.lexBare(startPos)
}

func (tk *Tokenizer) lexDataName(startPos Position) (Token, error) {
	tk.pos++ // consume '_'
	start := tk.pos
	for {
		r, ok := tk.peekRune()
		if !ok || !unicodeutil.IsNameContinue(r) {
			break
		}
		tk.pos++
	}
	return Token{Kind: DataName, Text: string(tk.runes[start:tk.pos]), Pos: startPos}, nil
}

// lexKeyword recognizes data_/loop_/save_/global_/stop_ prefixes,
// grounded on the reference lexer's strings.ToLower(peekAt(5))
// comparisons.
func (tk *Tokenizer) lexKeyword() (Kind, string, bool) {
	switch {
	case tk.peekLiteral("data_"):
		tk.pos += 5
		start := tk.pos
		for {
			r, ok := tk.peekRune()
			if !ok || !isNonBlank(r) {
				break
			}
			tk.pos++
		}
		return DataBlockHeader, string(tk.runes[start:tk.pos]), true
	case tk.peekLiteral("save_"):
		tk.pos += 5
		start := tk.pos
		for {
			r, ok := tk.peekRune()
			if !ok || !isNonBlank(r) {
				break
			}
			tk.pos++
		}
		suffix := string(tk.runes[start:tk.pos])
		if suffix == "" {
			return SaveFrameEnd, "", true
		}
		return SaveFrameHeader, suffix, true
	case tk.peekLiteral("loop_") && tk.wordBoundaryAfter(5):
		tk.pos += 5
		return LoopKeyword, "loop_", true
	case tk.peekLiteral("global_") && tk.wordBoundaryAfter(7):
		tk.pos += 7
		return GlobalKeyword, "global_", true
	case tk.peekLiteral("stop_") && tk.wordBoundaryAfter(5):
		tk.pos += 5
		return StopKeyword, "stop_", true
	}
	return 0, "", false
}

func (tk *Tokenizer) wordBoundaryAfter(n int) bool {
	r, ok := tk.peekRuneAt(n)
	return !ok || !isNonBlank(r)
}

// lexQuoted lexes a single- or double-quoted (or, in CIF 2, triple-
// quoted) string, per spec.md §4.1 "Delimited strings".
func (tk *Tokenizer) lexQuoted(startPos Position, quote rune, singleKind, tripleKind Kind) (Token, error) {
	if tk.CIF2 {
		r1, ok1 := tk.peekRuneAt(1)
		r2, ok2 := tk.peekRuneAt(2)
		if ok1 && ok2 && r1 == quote && r2 == quote {
			tk.pos += 3
			start := tk.pos
			for {
				r, ok := tk.peekRune()
				if !ok {
					if err := tk.opts.reportError(CIF_UNCLOSED_TEXT, startPos, ""); err != nil {
						return Token{}, err
					}
					return Token{Kind: tripleKind, Text: string(tk.runes[start:tk.pos]), Pos: startPos}, nil
				}
				if r == quote {
					r1, ok1 := tk.peekRuneAt(1)
					r2, ok2 := tk.peekRuneAt(2)
					if ok1 && ok2 && r1 == quote && r2 == quote {
						text := string(tk.runes[start:tk.pos])
						tk.pos += 3
						if err := tk.requireSpaceAfter(startPos); err != nil {
							return Token{}, err
						}
						return Token{Kind: tripleKind, Text: text, Pos: startPos}, nil
					}
				}
				tk.pos++
			}
		}
	}

	tk.pos++ // opening quote
	start := tk.pos
	for {
		r, ok := tk.peekRune()
		if !ok {
			if err := tk.opts.reportError(CIF_MISSING_ENDQUOTE, startPos, ""); err != nil {
				return Token{}, err
			}
			return Token{Kind: singleKind, Text: string(tk.runes[start:tk.pos]), Pos: startPos}, nil
		}
		if r == quote {
			nr, nok := tk.peekRuneAt(1)
			if !nok || unicodeutil.IsWhitespace(nr) || nr == '\n' {
				text := string(tk.runes[start:tk.pos])
				tk.pos++
				return Token{Kind: singleKind, Text: text, Pos: startPos}, nil
			}
		}
		tk.pos++
	}
}

// lexTextField lexes a ';'-delimited text field, applying line-folding
// and text-prefix decoding per spec.md §4.1 "Text field decoding".
func (tk *Tokenizer) lexTextField(startPos Position) (Token, error) {
	tk.pos++ // consume leading ';'
	var lines []string
	cur := []rune{}
	for {
		r, ok := tk.peekRune()
		if !ok {
			lines = append(lines, string(cur))
			if err := tk.opts.reportError(CIF_UNCLOSED_TEXT, startPos, ""); err != nil {
				return Token{}, err
			}
			break
		}
		if r == '\n' {
			tk.pos++
			lines = append(lines, string(cur))
			cur = nil
			if nr, nok := tk.peekRune(); nok && nr == ';' {
				tk.pos++
				if err := tk.requireSpaceAfter(startPos); err != nil {
					return Token{}, err
				}
				break
			}
			continue
		}
		cur = append(cur, r)
		tk.pos++
	}

	text := decodeTextField(lines, tk.foldingEnabled(), tk.prefixEnabled(), startPos, tk.opts)
	return Token{Kind: TextField, Text: text, Pos: startPos}, nil
}

// requireSpaceAfter enforces spec.md §4.2 "Missing inline whitespace
// between a closing delimiter and the next token yields
// CIF_MISSING_SPACE; recovery assumes a space." Single/double-quoted
// strings never reach this check: their own closing-quote scan already
// requires the quote to be followed by whitespace before it is accepted
// as a close, so they can never abut the next token.
func (tk *Tokenizer) requireSpaceAfter(delimPos Position) error {
	r, ok := tk.peekRune()
	if !ok || unicodeutil.IsWhitespace(r) || r == '\n' {
		return nil
	}
	return tk.opts.reportError(CIF_MISSING_SPACE, delimPos, string(r))
}

func (tk *Tokenizer) foldingEnabled() bool {
	switch tk.opts.LineFoldingModifier {
	case -1:
		return false
	case 1:
		return true
	default:
		return tk.CIF2
	}
}

func (tk *Tokenizer) prefixEnabled() bool {
	switch tk.opts.TextPrefixingModifier {
	case -1:
		return false
	case 1:
		return true
	default:
		return true
	}
}

// decodeTextField implements the fold/prefix protocol decoding (spec.md
// §4.1): prefix is stripped first per line, then folding is undone.
func decodeTextField(lines []string, fold, prefix bool, pos Position, opts Options) string {
	if len(lines) == 0 {
		return ""
	}

	prefixStr := ""
	if prefix && len(lines) > 0 {
		first := lines[0]
		if strings.HasSuffix(first, "\\") {
			candidate := strings.TrimSuffix(first, "\\")
			if candidate != "" {
				prefixStr = candidate
				lines[0] = ""
				for i := 1; i < len(lines); i++ {
					if strings.HasPrefix(lines[i], prefixStr) {
						lines[i] = strings.TrimPrefix(lines[i], prefixStr)
					} else if lines[i] != "" {
						opts.reportError(CIF_MISSING_PREFIX, Position{pos.Line + i, 1}, lines[i])
					}
				}
			}
		}
	}

	if fold {
		var folded strings.Builder
		first := true
		skip := true
		// prevContinued tracks whether the immediately preceding emitted
		// line ended with a fold backslash: only then is the newline
		// before the current line suppressed. A non-folded line followed
		// by a folded one is still a genuine line break at the point it
		// starts, even though the folded line itself joins onward.
		prevContinued := false
		for _, l := range lines {
			if skip {
				if strings.TrimSpace(l) == "\\" || l == "" {
					skip = false
					continue
				}
				skip = false
			}
			continued := strings.HasSuffix(l, "\\")
			text := l
			if continued {
				text = strings.TrimSuffix(l, "\\")
			}
			if !first && !prevContinued {
				folded.WriteByte('\n')
			}
			folded.WriteString(text)
			first = false
			prevContinued = continued
		}
		return folded.String()
	}

	return strings.Join(lines, "\n")
}

// lexBare consumes a run of non-blank characters as a bare token: the
// caller (parser) classifies it as NUMB/CHAR/UNK/NA (spec.md §4.2 "Value
// classification").
func (tk *Tokenizer) lexBare(startPos Position) (Token, error) {
	if (tk.runes[tk.pos] == '[' || tk.runes[tk.pos] == ']') && !tk.CIF2 {
		if err := tk.opts.reportError(CIF_INVALID_BARE_VALUE, startPos, string(tk.runes[tk.pos])); err != nil {
			return Token{}, err
		}
	}
	if tk.runes[tk.pos] == '$' && tk.CIF2 {
		if err := tk.opts.reportError(CIF_INVALID_BARE_VALUE, startPos, "$"); err != nil {
			return Token{}, err
		}
	}
	start := tk.pos
	for {
		r, ok := tk.peekRune()
		if !ok || unicodeutil.IsWhitespace(r) || r == '\n' || tk.opts.isExtraWS(r) {
			break
		}
		tk.pos++
	}
	return Token{Kind: Bare, Text: string(tk.runes[start:tk.pos]), Pos: startPos}, nil
}
