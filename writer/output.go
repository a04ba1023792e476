package writer

import (
	"fmt"
	"io"
)

const maxLineLength = 2048

// output accumulates written bytes and defers error reporting, the same
// shape as the teacher's PDF writer output type: every call that can
// fail just sets err and becomes a no-op, and the caller checks err once
// at the end instead of threading it through every helper.
type output struct {
	dst io.Writer
	err error

	// lineLen tracks the code-point length of the current physical
	// line, so callers can decide whether a token still fits (spec.md
	// §6.1's 2048 code point line limit, spec.md §4.4 "Values causing a
	// line to exceed 2048 code points must be emitted as text fields").
	lineLen int
}

func newOutput(dst io.Writer) *output {
	return &output{dst: dst}
}

func (o *output) str(s string) {
	if o.err != nil {
		return
	}
	if _, err := io.WriteString(o.dst, s); err != nil {
		o.err = err
		return
	}
	for _, r := range s {
		if r == '\n' {
			o.lineLen = 0
		} else {
			o.lineLen++
		}
	}
}

func (o *output) f(format string, args ...interface{}) {
	o.str(fmt.Sprintf(format, args...))
}

// newline ends the current line unconditionally.
func (o *output) newline() { o.str("\n") }

// ensureLineStart writes a newline first if the current line is
// non-empty, so the caller can guarantee its token starts in column 1
// (block/frame/loop headers and text-field delimiters must).
func (o *output) ensureLineStart() {
	if o.lineLen > 0 {
		o.newline()
	}
}

// fits reports whether appending n more code points to the current line
// would stay within the line length limit.
func (o *output) fits(n int) bool {
	return o.lineLen+n <= maxLineLength
}
