package tokenizer

// ErrorCallback is invoked for every diagnostic the lexer detects
// (spec.md §4.2 "Error callback", shared with the parser). A nonzero
// return aborts lexing with that result; zero requests the lexer's
// built-in recovery (skip/continue) for that condition.
type ErrorCallback func(code Code, pos Position, text string) int

// WhitespaceCallback is invoked for every maximal whitespace or comment
// run, when registered (spec.md §4.1 "Whitespace callback").
type WhitespaceCallback func(pos Position, text string)

// Options configures a Tokenizer (spec.md §4.1 "Input", §6.2).
type Options struct {
	// DefaultToCIF2 selects CIF 2 semantics (list/table literals, triple
	// quotes) when the input carries no explicit version marker and
	// encoding detection did not already decide CIF 2.
	DefaultToCIF2 bool

	// DefaultEncodingName names the encoding to assume absent a BOM or
	// version marker. Empty means UTF-8.
	DefaultEncodingName string

	// ForceDefaultEncoding bypasses BOM/marker sniffing entirely.
	ForceDefaultEncoding bool

	// ExtraWSChars and ExtraEOLChars extend the inline-whitespace and
	// end-of-line classifications beyond space/tab and CR/LF.
	ExtraWSChars  []rune
	ExtraEOLChars []rune

	// LineFoldingModifier and TextPrefixingModifier override the
	// version's default handling of the line-folding and text-prefix
	// protocols in text fields: -1 force off, +1 force on, 0 use the
	// default (line folding: on for CIF 2, off for CIF 1.1; text
	// prefixing: on for both versions — DESIGN.md Open Question
	// resolution 3).
	LineFoldingModifier   int
	TextPrefixingModifier int

	ErrorCallback      ErrorCallback
	WhitespaceCallback WhitespaceCallback
}

// DefaultOptions returns the documented zero-value behavior (DESIGN.md
// Open Question resolution 3): UTF-8, CIF 1.1 unless a version marker
// says otherwise, protocol modifiers at version default.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) isExtraWS(r rune) bool {
	for _, e := range o.ExtraWSChars {
		if e == r {
			return true
		}
	}
	return false
}

func (o Options) isExtraEOL(r rune) bool {
	for _, e := range o.ExtraEOLChars {
		if e == r {
			return true
		}
	}
	return false
}

func (o Options) reportError(code Code, pos Position, text string) error {
	if o.ErrorCallback == nil {
		return nil
	}
	if rc := o.ErrorCallback(code, pos, text); rc != 0 {
		return Code(rc)
	}
	return nil
}

func (o Options) reportWhitespace(pos Position, text string) {
	if o.WhitespaceCallback != nil {
		o.WhitespaceCallback(pos, text)
	}
}
