// Package parser implements the CIF parser state machine (spec.md
// §4.2): block, save-frame and loop grammar, value classification
// (§4.3's number grammar via package value), list/table literals, and
// the structural traversal callbacks and result-code reporting of
// §6.2/§6.3. It consumes tokens from package tokenizer and, unless run
// in syntax-only mode, materializes a *model.CIF.
//
// Grounded on the teacher's parser/parser.go: a token-driven recursive
// descent over the tokenizer's lookahead window, with
// log.Parse.Printf tracing at the same granularity the teacher uses for
// ParseObject/parseArray/parseDict.
package parser

import (
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/log"

	"github.com/comcifs/gocif/model"
	"github.com/comcifs/gocif/tokenizer"
	"github.com/comcifs/gocif/value"
)

// Parser holds the state of a single parse: the tokenizer, the options,
// and (in sink mode) the CIF object under construction.
type Parser struct {
	tk   *tokenizer.Tokenizer
	opts Options
	cif  *model.CIF

	pendingPacket model.Packet // accumulates one loop row across parseLoop's round-robin values

	// suppress withholds callback invocations (spec.md §6.3
	// SKIP_CURRENT/SKIP_SIBLINGS) for the subtree currently being
	// parsed; it never affects model construction or tokenizing.
	suppress bool
}

// Parse tokenizes and parses r as a whole CIF stream, returning the
// materialized CIF (nil in syntax-only mode) and the result code
// (spec.md §6.2 "Result code").
func Parse(r io.Reader, opts Options) (*model.CIF, Code) {
	tk, err := tokenizer.NewTokenizer(r, opts.tokenizerOptions())
	if err != nil {
		if code, ok := err.(Code); ok {
			return nil, code
		}
		log.Parse.Printf("Parse: tokenizer init failed: %v\n", err)
		return nil, CIF_ERROR
	}

	p := &Parser{tk: tk, opts: opts}
	if opts.Sink {
		p.cif = model.New()
		p.cif.Version = tk.Version
	}

	code := p.run()
	log.Parse.Printf("Parse: finished with %s\n", code)
	return p.cif, code
}

func (p *Parser) handler() *Handler {
	if p.suppress {
		return &Handler{}
	}
	if p.opts.Handler != nil {
		return p.opts.Handler
	}
	return &Handler{}
}

// runSuppressed invokes f (a node's parse function) with p.suppress
// forced true for its duration when an earlier sibling at this level
// requested SkipSiblings, restoring the prior value afterward. f's own
// (Code, stopSiblings) result is returned unchanged.
func (p *Parser) runSuppressed(forceSuppress bool, f func() (Code, bool)) (Code, bool) {
	save := p.suppress
	if forceSuppress {
		p.suppress = true
	}
	code, stop := f()
	p.suppress = save
	return code, stop
}

// reportError invokes the shared error callback. It returns 0 when
// parsing should use the built-in recovery for code, or the caller's
// chosen abort code otherwise.
func (p *Parser) reportError(code Code, pos tokenizer.Position, text string) Code {
	if p.opts.ErrorCallback == nil {
		return 0
	}
	if rc := p.opts.ErrorCallback(code, pos, text); rc != 0 {
		return Code(rc)
	}
	return 0
}

func (p *Parser) peek() (tokenizer.Token, error) { return p.tk.Peek() }

// blockHandle and frameHandle convert a possibly-nil *model.Block/*model.Frame
// to a model.ContainerHandle, producing a true nil interface (rather than a
// non-nil interface wrapping a nil pointer) when the pointer is nil. In
// syntax-only mode (no sink) the block/frame pointer stays nil throughout a
// container's parse; passing it to an interface-typed parameter directly
// would make every downstream "c != nil" check evaluate true and panic on
// the first method call through the nil receiver.
func blockHandle(b *model.Block) model.ContainerHandle {
	if b == nil {
		return nil
	}
	return b
}

func frameHandle(f *model.Frame) model.ContainerHandle {
	if f == nil {
		return nil
	}
	return f
}

// run implements the TOP state (spec.md §4.2 "Top-level grammar").
func (p *Parser) run() Code {
	a := interpretResult(fire(p.handler().CIFStart))
	if a.abort != 0 {
		return a.abort
	}
	if a.stop {
		return CIF_FINISHED
	}
	save := p.suppress
	if a.skipChildren {
		p.suppress = true
	}
	defer func() { p.suppress = save }()

	suppressSiblings := false
	for {
		tok, err := p.peek()
		if err != nil {
			return err.(Code)
		}
		switch tok.Kind {
		case tokenizer.EOF:
			ea := interpretResult(fire(p.handler().CIFEnd))
			if ea.abort != 0 {
				return ea.abort
			}
			return CIF_OK
		case tokenizer.DataBlockHeader:
			code, stop := p.runSuppressed(suppressSiblings, p.parseBlock)
			if code != CIF_OK {
				return code
			}
			if stop {
				suppressSiblings = true
			}
		default:
			if abort := p.reportError(CIF_NO_BLOCK_HEADER, tok.Pos, tok.Text); abort != 0 {
				return abort
			}
			p.tk.Next() // recovery: discard the stray token
		}
	}
}

// parseBlock returns the parse result plus whether the handler asked to
// skip the remaining sibling blocks (spec.md §6.3 SKIP_SIBLINGS).
func (p *Parser) parseBlock() (Code, bool) {
	tok, _ := p.tk.Next()
	code := tok.Text
	log.Parse.Printf("parseBlock: data_%s\n", code)

	var block *model.Block
	if p.cif != nil {
		b, err := p.cif.CreateBlock(code)
		if err != nil {
			rc := CIF_INVALID_BLOCKCODE
			if err == model.ErrDuplicateCode {
				rc = CIF_DUP_BLOCKCODE
			}
			if abort := p.reportError(rc, tok.Pos, code); abort != 0 {
				return abort, false
			}
			b = model.NewBlockUnchecked(code)
		}
		block = b
	}

	a := interpretResult(fireCode(p.handler().BlockStart, code))
	if a.abort != 0 {
		return a.abort, false
	}
	if a.stop {
		return CIF_FINISHED, false
	}
	save := p.suppress
	if a.skipChildren {
		p.suppress = true
	}
	c := p.parseContainerBody(blockHandle(block), false, 0)
	p.suppress = save
	if c != CIF_OK {
		return c, false
	}
	ea := interpretResult(fireCode(p.handler().BlockEnd, code))
	if ea.abort != 0 {
		return ea.abort, false
	}
	if ea.stop {
		return CIF_FINISHED, false
	}
	return CIF_OK, a.skipSiblings || ea.skipSiblings
}

// parseContainerBody implements the shared BLOCK/FRAME state (spec.md
// §4.2): items, loops, and nested save frames, until a terminator that
// belongs to an enclosing level is seen (left unconsumed for the
// caller) or, for a frame, its own 'save_' terminator is consumed.
func (p *Parser) parseContainerBody(c model.ContainerHandle, isFrame bool, frameDepth int) Code {
	suppressSiblings := false
	for {
		tok, err := p.peek()
		if err != nil {
			return err.(Code)
		}
		switch tok.Kind {
		case tokenizer.EOF:
			if isFrame {
				if abort := p.reportError(CIF_EOF_IN_FRAME, tok.Pos, ""); abort != 0 {
					return abort
				}
			}
			return CIF_OK
		case tokenizer.DataBlockHeader:
			if isFrame {
				if abort := p.reportError(CIF_NO_FRAME_TERM, tok.Pos, tok.Text); abort != 0 {
					return abort
				}
			}
			return CIF_OK // do not consume; caller (block body or TOP) re-handles it
		case tokenizer.SaveFrameEnd:
			p.tk.Next()
			if isFrame {
				return CIF_OK
			}
			if abort := p.reportError(CIF_UNEXPECTED_TERM, tok.Pos, ""); abort != 0 {
				return abort
			}
		case tokenizer.SaveFrameHeader:
			code, stop := p.runSuppressed(suppressSiblings, func() (Code, bool) { return p.parseFrame(c, frameDepth) })
			if code != CIF_OK {
				return code
			}
			if stop {
				suppressSiblings = true
			}
		case tokenizer.LoopKeyword:
			code, stop := p.runSuppressed(suppressSiblings, func() (Code, bool) { return p.parseLoop(c) })
			if code != CIF_OK {
				return code
			}
			if stop {
				suppressSiblings = true
			}
		case tokenizer.DataName:
			code, stop := p.runSuppressed(suppressSiblings, func() (Code, bool) { return p.parseScalarItem(c) })
			if code != CIF_OK {
				return code
			}
			if stop {
				suppressSiblings = true
			}
		case tokenizer.GlobalKeyword:
			p.tk.Next()
			if abort := p.reportError(CIF_RESERVED_WORD, tok.Pos, "global_"); abort != 0 {
				return abort
			}
		case tokenizer.StopKeyword:
			p.tk.Next()
			if abort := p.reportError(CIF_RESERVED_WORD, tok.Pos, "stop_"); abort != 0 {
				return abort
			}
		default:
			p.tk.Next()
			if abort := p.reportError(CIF_MISSING_VALUE, tok.Pos, tok.Text); abort != 0 {
				return abort
			}
		}
	}
}

// parseFrame returns the parse result plus whether the handler asked to
// skip the remaining siblings at this container level (spec.md §6.3
// SKIP_SIBLINGS).
func (p *Parser) parseFrame(parent model.ContainerHandle, frameDepth int) (Code, bool) {
	tok, _ := p.tk.Next()
	code := tok.Text
	log.Parse.Printf("parseFrame: save_%s\n", code)

	if p.opts.MaxFrameDepth == 0 || (p.opts.MaxFrameDepth > 0 && frameDepth >= p.opts.MaxFrameDepth) {
		if abort := p.reportError(CIF_FRAME_NOT_ALLOWED, tok.Pos, code); abort != 0 {
			return abort, false
		}
	}

	var frame *model.Frame
	if parent != nil {
		f, err := model.NewFrame(code)
		if err != nil {
			rc := CIF_INVALID_FRAMECODE
			if abort := p.reportError(rc, tok.Pos, code); abort != 0 {
				return abort, false
			}
			f = model.NewFrameUnchecked(code)
		}
		if err := parent.AddFrame(f); err != nil {
			if abort := p.reportError(CIF_DUP_FRAMECODE, tok.Pos, code); abort != 0 {
				return abort, false
			}
		}
		frame = f
	}

	a := interpretResult(fireCode(p.handler().FrameStart, code))
	if a.abort != 0 {
		return a.abort, false
	}
	if a.stop {
		return CIF_FINISHED, false
	}
	save := p.suppress
	if a.skipChildren {
		p.suppress = true
	}
	c := p.parseContainerBody(frameHandle(frame), true, frameDepth+1)
	p.suppress = save
	if c != CIF_OK {
		return c, false
	}
	ea := interpretResult(fireCode(p.handler().FrameEnd, code))
	if ea.abort != 0 {
		return ea.abort, false
	}
	if ea.stop {
		return CIF_FINISHED, false
	}
	return CIF_OK, a.skipSiblings || ea.skipSiblings
}

// parseScalarItem implements VALUE_EXPECTED (spec.md §4.2 "Scalar
// items").
// parseScalarItem returns the parse result plus whether the handler
// asked to skip the remaining siblings at this container level (spec.md
// §6.3 SKIP_SIBLINGS). A scalar item is reported to the handler as a
// one-item packet, bracketed by PacketStart/PacketEnd like a loop row.
func (p *Parser) parseScalarItem(c model.ContainerHandle) (Code, bool) {
	nameTok, _ := p.tk.Next()
	name := "_" + nameTok.Text

	valTok, err := p.peek()
	if err != nil {
		return err.(Code), false
	}
	if isLoopOrNameOrTerm(valTok) {
		if abort := p.reportError(CIF_MISSING_VALUE, nameTok.Pos, name); abort != 0 {
			return abort, false
		}
		return CIF_OK, false
	}

	v, code := p.parseValue()
	if code != CIF_OK {
		return code, false
	}

	extra, err := p.peek()
	if err == nil && !isLoopOrNameOrTerm(extra) && extra.Kind != tokenizer.EOF {
		if abort := p.reportError(CIF_UNEXPECTED_VALUE, extra.Pos, extra.Text); abort != 0 {
			return abort, false
		}
		for {
			t, err := p.peek()
			if err != nil || isLoopOrNameOrTerm(t) || t.Kind == tokenizer.EOF {
				break
			}
			p.tk.Next()
		}
	}

	if c != nil {
		if err := c.SetScalar(name, v); err != nil {
			log.Parse.Printf("parseScalarItem: SetScalar(%s): %v\n", name, err)
		}
	}

	pa := interpretResult(fire(p.handler().PacketStart))
	if pa.abort != 0 {
		return pa.abort, false
	}
	if pa.stop {
		return CIF_FINISHED, false
	}
	var ia handlerAction
	if !pa.skipChildren {
		ia = interpretResult(fireItem(p.handler().Item, name, v))
		if ia.abort != 0 {
			return ia.abort, false
		}
		if ia.stop {
			return CIF_FINISHED, false
		}
	}
	ea := interpretResult(fire(p.handler().PacketEnd))
	if ea.abort != 0 {
		return ea.abort, false
	}
	if ea.stop {
		return CIF_FINISHED, false
	}
	return CIF_OK, pa.skipSiblings || ia.skipSiblings || ea.skipSiblings
}

// isLoopOrNameOrTerm reports whether tok begins a new item/loop/frame or
// ends the current container — i.e. it cannot be a value token.
func isLoopOrNameOrTerm(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.DataName, tokenizer.LoopKeyword, tokenizer.SaveFrameEnd,
		tokenizer.SaveFrameHeader, tokenizer.DataBlockHeader,
		tokenizer.GlobalKeyword, tokenizer.StopKeyword:
		return true
	}
	return false
}

// parseLoop implements LOOP_HEADER then LOOP_VALUES (spec.md §4.2
// "Loops").
// parseLoop returns the parse result plus whether the handler asked to
// skip the remaining siblings at this container level (spec.md §6.3
// SKIP_SIBLINGS).
func (p *Parser) parseLoop(c model.ContainerHandle) (Code, bool) {
	loopTok, _ := p.tk.Next()

	var names []string
	for {
		tok, err := p.peek()
		if err != nil {
			return err.(Code), false
		}
		if tok.Kind != tokenizer.DataName {
			break
		}
		p.tk.Next()
		names = append(names, "_"+tok.Text)
	}
	if len(names) == 0 {
		if abort := p.reportError(CIF_NULL_LOOP, loopTok.Pos, ""); abort != 0 {
			return abort, false
		}
		return CIF_OK, false
	}

	a := interpretResult(fireCode(p.handler().LoopStart, ""))
	if a.abort != 0 {
		return a.abort, false
	}
	if a.stop {
		return CIF_FINISHED, false
	}
	save := p.suppress
	if a.skipChildren {
		p.suppress = true
	}

	var loop *model.Loop
	if c != nil {
		l, err := model.NewLoop(nil, names)
		if err != nil {
			// A name repeated within this loop's own header (distinct
			// from CIF_DUP_ITEMNAME, which is a collision against an
			// item already declared elsewhere in the container).
			if abort := p.reportError(CIF_DUP_LOOPNAME, loopTok.Pos, ""); abort != 0 {
				p.suppress = save
				return abort, false
			}
		} else if err := c.AddLoop(l); err != nil {
			rc := CIF_DUP_ITEMNAME
			if err == model.ErrCategoryNotUnique {
				rc = CIF_CAT_NOT_UNIQUE
			}
			if abort := p.reportError(rc, loopTok.Pos, ""); abort != 0 {
				p.suppress = save
				return abort, false
			}
		} else {
			loop = l
		}
	}

	values := 0
	packetSuppressed := false
	var itemsSuppressed bool
	for {
		tok, err := p.peek()
		if err != nil {
			p.suppress = save
			return err.(Code), false
		}
		if tok.Kind == tokenizer.EOF || tok.Kind == tokenizer.DataName ||
			tok.Kind == tokenizer.LoopKeyword || tok.Kind == tokenizer.SaveFrameEnd ||
			tok.Kind == tokenizer.SaveFrameHeader || tok.Kind == tokenizer.DataBlockHeader ||
			tok.Kind == tokenizer.GlobalKeyword || tok.Kind == tokenizer.StopKeyword {
			break
		}
		v, code := p.parseValue()
		if code != CIF_OK {
			p.suppress = save
			return code, false
		}
		// In syntax-only mode (no container) there is no model loop, but
		// the packet and item callbacks still fire.
		if loop != nil || c == nil {
			idx := values % len(names)
			if idx == 0 {
				p.pendingPacket = model.NewPacket()
				packetSave := p.suppress
				if packetSuppressed {
					p.suppress = true
				}
				pa := interpretResult(fire(p.handler().PacketStart))
				p.suppress = packetSave
				if pa.abort != 0 {
					p.suppress = save
					return pa.abort, false
				}
				if pa.stop {
					p.suppress = save
					return CIF_FINISHED, false
				}
				itemsSuppressed = pa.skipChildren
				if pa.skipSiblings {
					packetSuppressed = true
				}
			}
			p.pendingPacket.Set(names[idx], v)
			if !itemsSuppressed && !packetSuppressed {
				ia := interpretResult(fireItem(p.handler().Item, names[idx], v))
				if ia.abort != 0 {
					p.suppress = save
					return ia.abort, false
				}
				if ia.stop {
					p.suppress = save
					return CIF_FINISHED, false
				}
				if ia.skipSiblings {
					itemsSuppressed = true
				}
			}
			if idx == len(names)-1 {
				if loop != nil {
					if err := loop.AddPacket(p.pendingPacket); err != nil {
						log.Parse.Printf("parseLoop: AddPacket: %v\n", err)
					}
				}
				packetSave := p.suppress
				if packetSuppressed {
					p.suppress = true
				}
				ea := interpretResult(fire(p.handler().PacketEnd))
				p.suppress = packetSave
				if ea.abort != 0 {
					p.suppress = save
					return ea.abort, false
				}
				if ea.stop {
					p.suppress = save
					return CIF_FINISHED, false
				}
				if ea.skipSiblings {
					packetSuppressed = true
				}
			}
		}
		values++
	}

	if values%len(names) != 0 {
		if abort := p.reportError(CIF_PARTIAL_PACKET, loopTok.Pos, ""); abort != 0 {
			p.suppress = save
			return abort, false
		}
	}
	if values == 0 {
		if abort := p.reportError(CIF_EMPTY_LOOP, loopTok.Pos, ""); abort != 0 {
			p.suppress = save
			return abort, false
		}
		if c != nil {
			c.PruneEmptyLoops()
		}
	}
	p.suppress = save
	ea := interpretResult(fire(p.handler().LoopEnd))
	if ea.abort != 0 {
		return ea.abort, false
	}
	if ea.stop {
		return CIF_FINISHED, false
	}
	return CIF_OK, a.skipSiblings || ea.skipSiblings
}

// parseValue implements VALUE classification (spec.md §4.2 "Value
// classification") plus LIST_VALUES/TABLE_ENTRIES/TABLE_VALUE for CIF 2
// aggregate literals.
func (p *Parser) parseValue() (value.Value, Code) {
	tok, err := p.tk.Next()
	if err != nil {
		return nil, err.(Code)
	}

	switch {
	case tok.Kind.IsString():
		return value.Char(tok.Text), CIF_OK
	case tok.Kind == tokenizer.ListOpen:
		if !p.tk.CIF2 {
			if abort := p.reportError(CIF_INVALID_BARE_VALUE, tok.Pos, tok.Text); abort != 0 {
				return nil, abort
			}
			return value.Unknown{}, CIF_OK
		}
		return p.parseList(tok.Pos)
	case tok.Kind == tokenizer.TableOpen:
		if !p.tk.CIF2 {
			if abort := p.reportError(CIF_INVALID_BARE_VALUE, tok.Pos, tok.Text); abort != 0 {
				return nil, abort
			}
			return value.Unknown{}, CIF_OK
		}
		return p.parseTable(tok.Pos)
	case tok.Kind == tokenizer.ListClose || tok.Kind == tokenizer.TableClose:
		if abort := p.reportError(CIF_UNEXPECTED_DELIM, tok.Pos, tok.Text); abort != 0 {
			return nil, abort
		}
		return value.Unknown{}, CIF_OK
	case tok.Kind == tokenizer.DataName || tok.Kind == tokenizer.LoopKeyword ||
		tok.Kind == tokenizer.GlobalKeyword || tok.Kind == tokenizer.StopKeyword:
		if abort := p.reportError(CIF_RESERVED_WORD, tok.Pos, tok.Text); abort != 0 {
			return nil, abort
		}
		return value.Unknown{}, CIF_OK
	case tok.Kind != tokenizer.Bare:
		if abort := p.reportError(CIF_MISSING_VALUE, tok.Pos, tok.Text); abort != 0 {
			return nil, abort
		}
		return value.Unknown{}, CIF_OK
	}

	switch tok.Text {
	case "?":
		return value.Unknown{}, CIF_OK
	case ".":
		return value.NA{}, CIF_OK
	}
	if n, ok := value.ParseNumb(tok.Text); ok {
		return n, CIF_OK
	}
	return value.Char(tok.Text), CIF_OK
}

func (p *Parser) parseList(openPos tokenizer.Position) (value.Value, Code) {
	var list value.List
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err.(Code)
		}
		if tok.Kind == tokenizer.ListClose {
			p.tk.Next()
			return list, CIF_OK
		}
		if tok.Kind == tokenizer.EOF {
			if abort := p.reportError(CIF_MISSING_DELIM, openPos, ""); abort != 0 {
				return nil, abort
			}
			return list, CIF_OK
		}
		v, code := p.parseValue()
		if code != CIF_OK {
			return nil, code
		}
		list = append(list, v)
	}
}

func (p *Parser) parseTable(openPos tokenizer.Position) (value.Value, Code) {
	t := value.NewTable()
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err.(Code)
		}
		if tok.Kind == tokenizer.TableClose {
			p.tk.Next()
			return t, CIF_OK
		}
		if tok.Kind == tokenizer.EOF {
			if abort := p.reportError(CIF_MISSING_DELIM, openPos, ""); abort != 0 {
				return nil, abort
			}
			return t, CIF_OK
		}

		key, code := p.parseTableKey()
		if code != CIF_OK {
			return nil, code
		}

		colonTok, err := p.peek()
		if err != nil {
			return nil, err.(Code)
		}
		if colonTok.Kind != tokenizer.Colon {
			if abort := p.reportError(CIF_MISSING_KEY, colonTok.Pos, colonTok.Text); abort != 0 {
				return nil, abort
			}
		} else {
			p.tk.Next()
		}

		v, code := p.parseValue()
		if code != CIF_OK {
			return nil, code
		}
		if key != "" {
			t.Set(key, v)
		}
	}
}

// parseTableKey implements the key half of an `entry`: a quoted key,
// never a bare word (spec.md §4.2 "List and table literals").
func (p *Parser) parseTableKey() (string, Code) {
	tok, err := p.tk.Next()
	if err != nil {
		return "", err.(Code)
	}
	switch tok.Kind {
	case tokenizer.SQString, tokenizer.DQString:
		return tok.Text, CIF_OK
	case tokenizer.TSQString, tokenizer.TDQString, tokenizer.TextField:
		if abort := p.reportError(CIF_MISQUOTED_KEY, tok.Pos, tok.Text); abort != 0 {
			return "", abort
		}
		return tok.Text, CIF_OK
	case tokenizer.Colon:
		if abort := p.reportError(CIF_NULL_KEY, tok.Pos, ""); abort != 0 {
			return "", abort
		}
		return "", CIF_OK
	case tokenizer.Bare:
		if abort := p.reportError(CIF_UNQUOTED_KEY, tok.Pos, tok.Text); abort != 0 {
			return "", abort
		}
		return tok.Text, CIF_OK
	default:
		if abort := p.reportError(CIF_DISALLOWED_VALUE, tok.Pos, tok.Text); abort != 0 {
			return "", abort
		}
		return "", CIF_OK
	}
}
