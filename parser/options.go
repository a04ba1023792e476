package parser

import "github.com/comcifs/gocif/tokenizer"

// Options configures a parse (spec.md §6.2 "Parser API contract").
type Options struct {
	DefaultToCIF2         bool
	DefaultEncodingName   string
	ForceDefaultEncoding  bool
	LineFoldingModifier   int
	TextPrefixingModifier int

	// MaxFrameDepth bounds save-frame nesting: 0 forbids frames, 1 allows
	// one level, negative is unlimited (spec.md §4.2 "Save frames").
	// The zero value forbids frames; DefaultOptions sets -1, unlimited
	// (DESIGN.md Open Question resolution 3).
	MaxFrameDepth int

	// Handler receives structural traversal callbacks as the parser
	// descends the input (spec.md §6.3). Nil means no callbacks.
	Handler *Handler

	// WhitespaceCallback and ErrorCallback mirror spec.md §6.2's fields
	// of the same name; ErrorCallback additionally lets a caller abort
	// (nonzero return) or request built-in recovery (zero return) for
	// any diagnostic, lexer-level or parser-level alike.
	WhitespaceCallback tokenizer.WhitespaceCallback
	ErrorCallback      tokenizer.ErrorCallback

	// Sink, when false, runs the parser in syntax-only mode (spec.md
	// §4.2 "Syntax-only mode"): no CIF object is materialized, but
	// syntactic and most semantic checks (duplicate block/item) still
	// run and callbacks still fire.
	Sink bool
}

// DefaultOptions returns the documented defaults (DESIGN.md Open
// Question resolution 3): UTF-8, CIF 1.1 unless a version marker
// overrides it, protocol modifiers at version default, unlimited save
// frame nesting, sink enabled (materialize a CIF).
func DefaultOptions() Options {
	return Options{MaxFrameDepth: -1, Sink: true}
}

func (o Options) tokenizerOptions() tokenizer.Options {
	return tokenizer.Options{
		DefaultToCIF2:         o.DefaultToCIF2,
		DefaultEncodingName:   o.DefaultEncodingName,
		ForceDefaultEncoding:  o.ForceDefaultEncoding,
		LineFoldingModifier:   o.LineFoldingModifier,
		TextPrefixingModifier: o.TextPrefixingModifier,
		WhitespaceCallback:    o.WhitespaceCallback,
		ErrorCallback:         o.ErrorCallback,
	}
}
