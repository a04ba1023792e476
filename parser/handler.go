package parser

import "github.com/comcifs/gocif/value"

// HandlerResult is the return type of every Handler callback (spec.md
// §6.3). A positive value is a Code used to abort parsing with that
// result.
type HandlerResult int

const (
	Continue     HandlerResult = 0
	SkipCurrent  HandlerResult = -1
	SkipSiblings HandlerResult = -2
	End          HandlerResult = -3
)

// Handler is a record of optional structural callbacks, fired by both
// the parser and (spec.md §6.3) a separate tree walker as it descends a
// CIF. A nil field means "no callback" and is treated as returning
// Continue.
//
// SkipCurrent and SkipSiblings only withhold further callback
// invocations for the node just entered (and, for SkipSiblings, its
// remaining siblings); they never affect the CIF the parser builds in
// Sink mode, which is always complete regardless of what the handler
// chooses to be notified about. End stops the callback traversal
// immediately (the parse itself finishes with CIF_FINISHED, which
// Code.OK() treats as success). A positive result aborts the parse
// with that code, exactly as if reportError's callback had returned
// it.
type Handler struct {
	CIFStart func() HandlerResult
	CIFEnd   func() HandlerResult

	BlockStart func(code string) HandlerResult
	BlockEnd   func(code string) HandlerResult

	FrameStart func(code string) HandlerResult
	FrameEnd   func(code string) HandlerResult

	LoopStart func(category string) HandlerResult
	LoopEnd   func() HandlerResult

	PacketStart func() HandlerResult
	PacketEnd   func() HandlerResult

	Item func(name string, v value.Value) HandlerResult
}

func fire(cb func() HandlerResult) HandlerResult {
	if cb == nil {
		return Continue
	}
	return cb()
}

func fireCode(cb func(string) HandlerResult, s string) HandlerResult {
	if cb == nil {
		return Continue
	}
	return cb(s)
}

func fireItem(cb func(string, value.Value) HandlerResult, name string, v value.Value) HandlerResult {
	if cb == nil {
		return Continue
	}
	return cb(name, v)
}

// handlerAction is the decoded meaning of a HandlerResult: whether to
// abort outright (abort != 0), stop the whole traversal successfully
// (stop), withhold callbacks for the node's own children (skipChildren),
// and/or withhold callbacks for the remaining siblings at this level
// (skipSiblings, which implies skipChildren).
type handlerAction struct {
	skipChildren bool
	skipSiblings bool
	stop         bool
	abort        Code
}

func interpretResult(hr HandlerResult) handlerAction {
	switch {
	case hr > 0:
		return handlerAction{abort: Code(hr)}
	case hr == End:
		return handlerAction{stop: true}
	case hr == SkipSiblings:
		return handlerAction{skipChildren: true, skipSiblings: true}
	case hr == SkipCurrent:
		return handlerAction{skipChildren: true}
	default: // Continue, or an unrecognized negative value
		return handlerAction{}
	}
}
