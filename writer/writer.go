package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/log"

	"github.com/comcifs/gocif/model"
	"github.com/comcifs/gocif/value"
)

// Write serializes cif to w per spec.md §4.4: the version marker (v2
// only), then each data block and its contents in insertion order.
func Write(w io.Writer, cif *model.CIF, opts Options) error {
	o := newOutput(w)
	if opts.isV2() {
		o.str("#\\CIF_2.0\n")
	}
	for _, b := range cif.Blocks() {
		if err := writeBlock(o, b, opts); err != nil {
			log.Parse.Printf("Write: data_%s: %v\n", b.Code(), err)
			return err
		}
	}
	return o.err
}

// WriteBlock serializes a single data block (with its own save frames
// and loops), the "or block/frame" half of spec.md §4.4's "Given a CIF
// (or block/frame)".
func WriteBlock(w io.Writer, b *model.Block, opts Options) error {
	o := newOutput(w)
	if err := writeBlock(o, b, opts); err != nil {
		return err
	}
	return o.err
}

// WriteFrame serializes a single save frame in isolation (its
// 'save_<code>' … 'save_' wrapper plus contents), useful for tools that
// extract one frame without its parent block.
func WriteFrame(w io.Writer, f *model.Frame, opts Options) error {
	o := newOutput(w)
	if err := writeFrame(o, f, opts); err != nil {
		return err
	}
	return o.err
}

func writeBlock(o *output, b *model.Block, opts Options) error {
	o.ensureLineStart()
	o.f("data_%s\n", b.Code())
	return writeContainerBody(o, b, opts)
}

func writeFrame(o *output, f *model.Frame, opts Options) error {
	o.ensureLineStart()
	o.f("save_%s\n", f.Code())
	if err := writeContainerBody(o, f, opts); err != nil {
		return err
	}
	o.ensureLineStart()
	o.str("save_\n")
	return nil
}

// writeContainerBody emits a container's loops (scalars loop as bare
// name/value pairs, every other loop as loop_ + names + packets) and
// its nested save frames, per spec.md §4.4 "Emit each block as data_
// ... then its contents; save frames as save_ ... save_" and "Emit each
// loop: if the loop is the scalars loop, emit its items as name/value
// pairs one per line; otherwise emit loop_ ...".
func writeContainerBody(o *output, c model.ContainerHandle, opts Options) error {
	for _, l := range c.Loops() {
		if l.IsScalars() {
			if err := writeScalars(o, l, opts); err != nil {
				return err
			}
			continue
		}
		if err := writeLoop(o, l, opts); err != nil {
			return err
		}
	}
	for _, f := range c.Frames() {
		if err := writeFrame(o, f, opts); err != nil {
			return err
		}
	}
	return nil
}

func writeScalars(o *output, l *model.Loop, opts Options) error {
	packets := l.Packets()
	if len(packets) == 0 {
		return nil
	}
	p := packets[0] // scalars loop is constrained to at most one packet
	for _, name := range p.Names() {
		v, _ := p.Get(name)
		o.ensureLineStart()
		o.f("%s ", name)
		if err := writeValue(o, v, opts); err != nil {
			return err
		}
		o.ensureLineStart()
	}
	return nil
}

func writeLoop(o *output, l *model.Loop, opts Options) error {
	o.ensureLineStart()
	o.str("loop_\n")
	for _, name := range l.Names() {
		o.f("%s\n", name)
	}
	for _, p := range l.Packets() {
		for _, name := range l.Names() {
			v, _ := p.Get(name)
			if o.lineLen > 0 {
				o.str(" ")
			}
			if err := writeValue(o, v, opts); err != nil {
				return err
			}
		}
		o.ensureLineStart()
	}
	return nil
}

// writeValue dispatches on v's kind (spec.md §4.4's UNK/NA/NUMB/CHAR/
// LIST/TABLE emission rules).
func writeValue(o *output, v value.Value, opts Options) error {
	switch val := v.(type) {
	case value.Unknown:
		o.str("?")
		return nil
	case value.NA:
		o.str(".")
		return nil
	case value.Numb:
		return writeNumb(o, val)
	case value.Char:
		return writeChar(o, string(val), opts)
	case value.List:
		return writeList(o, val, opts)
	case *value.Table:
		return writeTable(o, val, opts)
	default:
		return fmt.Errorf("writer: unsupported value kind %v", v.Kind())
	}
}

func writeNumb(o *output, n value.Numb) error {
	tok := n.Format()
	if len(tok) > maxLineLength {
		return ErrNumberTooLong
	}
	if !o.fits(len(tok)) {
		o.newline()
	}
	o.str(tok)
	return nil
}

func writeList(o *output, l value.List, opts Options) error {
	if !opts.isV2() {
		return ErrUnsupportedInVersion
	}
	o.str("[")
	for i, e := range l {
		if i > 0 {
			o.str(" ")
		}
		if err := writeValue(o, e, opts); err != nil {
			return err
		}
	}
	o.str("]")
	return nil
}

func writeTable(o *output, t *value.Table, opts Options) error {
	if !opts.isV2() {
		return ErrUnsupportedInVersion
	}
	o.str("{")
	for i, k := range t.Keys() {
		if i > 0 {
			o.str(" ")
		}
		if err := writeKey(o, k); err != nil {
			return err
		}
		o.str(":")
		v, _ := t.Get(k)
		if err := writeValue(o, v, opts); err != nil {
			return err
		}
	}
	o.str("}")
	return nil
}

// writeKey emits a table key, which spec.md §4.2 requires to be a
// quoted string (a bare key yields CIF_UNQUOTED_KEY; a triple-quoted or
// text-field key yields CIF_MISQUOTED_KEY) — so, unlike writeChar, this
// never chooses a bare, triple-quoted, or text-field form.
func writeKey(o *output, s string) error {
	if strings.ContainsRune(s, '\n') {
		return fmt.Errorf("writer: table key %q cannot contain a newline", s)
	}
	seenSingle := strings.ContainsRune(s, '\'')
	seenDouble := strings.ContainsRune(s, '"')
	if seenSingle && seenDouble {
		return fmt.Errorf("writer: table key %q contains both quote characters, cannot be quoted unambiguously", s)
	}
	if seenSingle {
		o.str("\"" + s + "\"")
	} else {
		o.str("'" + s + "'")
	}
	return nil
}

// writeChar emits a CHAR value using the narrowest delimiter chooseDelim
// selects, promoting to a text field if the chosen inline form would
// overflow the current line (spec.md §4.4 "Values causing a line to
// exceed 2048 code points must be emitted as text fields").
func writeChar(o *output, s string, opts Options) error {
	kind := chooseDelim(s, opts.isV2())

	if kind != delimText && !o.fits(len([]rune(s))+2) {
		kind = delimText
	}

	switch kind {
	case delimBare:
		o.str(s)
	case delimSingle:
		o.str("'" + s + "'")
	case delimDouble:
		o.str("\"" + s + "\"")
	case delimTripleSingle:
		o.str("'''" + s + "'''")
	case delimTripleDouble:
		o.str("\"\"\"" + s + "\"\"\"")
	case delimText:
		writeTextFieldValue(o, s, opts)
	}
	return nil
}

func writeTextFieldValue(o *output, s string, opts Options) {
	o.ensureLineStart()
	fold := opts.LineFold && opts.isV2()
	lines := encodeTextField(s, fold)

	o.str(";")
	o.str(lines[0])
	o.newline()
	for i := 1; i < len(lines); i++ {
		o.str(lines[i])
		o.newline()
	}
	o.str(";")
	o.newline()
}
