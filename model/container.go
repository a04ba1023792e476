package model

import (
	"github.com/comcifs/gocif/unicodeutil"
	"github.com/comcifs/gocif/value"
)

// maxLineLength is the CIF line length limit (spec.md §6.1), which also
// bounds block/frame code and data name length.
const maxLineLength = 2048

// Container is embedded by both Block and Frame: a code plus an ordered
// collection of loops. Item names are globally unique within a
// container (an item belongs to exactly one loop). Spec.md §3
// "Container".
type Container struct {
	code   string
	loops  []*Loop
	frames []*Frame
}

// ValidateCode checks a block/frame code against spec.md §6.1: non-empty,
// no whitespace/controls, within the line length limit.
func ValidateCode(code string) error {
	if code == "" {
		return ErrEmptyCode
	}
	if len([]rune(code)) > maxLineLength {
		return ErrInvalidCode
	}
	for _, r := range code {
		if unicodeutil.IsWhitespace(r) || unicodeutil.IsEOL(r) || !unicodeutil.IsPrintable(r) {
			return ErrInvalidCode
		}
	}
	return nil
}

// Code returns the container's code (block or frame name).
func (c *Container) Code() string { return c.code }

// Loops returns the container's loops in insertion order, including the
// reserved scalars loop if present.
func (c *Container) Loops() []*Loop {
	out := make([]*Loop, len(c.loops))
	copy(out, c.loops)
	return out
}

// LookupLoop returns the loop that declares an item equivalent to name,
// if any.
func (c *Container) LookupLoop(name string) (*Loop, bool) {
	for _, l := range c.loops {
		if l.HasName(name) {
			return l, true
		}
	}
	return nil, false
}

// AddLoop appends a new loop to the container, enforcing: item-name
// uniqueness across the whole container (spec.md §3), at most one
// scalars loop (category == "") per container, and that no two loops
// share a non-empty category (spec.md §3; category names are compared
// byte-for-byte, not normalized).
func (c *Container) AddLoop(l *Loop) error {
	if l.IsScalars() {
		for _, existing := range c.loops {
			if existing.IsScalars() {
				return ErrCategoryInUse
			}
		}
	} else if cat := l.Category(); cat != nil && *cat != "" {
		for _, existing := range c.loops {
			if existing.Category() != nil && *existing.Category() == *cat {
				return ErrCategoryNotUnique
			}
		}
	}
	for _, name := range l.Names() {
		if _, found := c.LookupLoop(name); found {
			return ErrDuplicateItem
		}
	}
	c.loops = append(c.loops, l)
	return nil
}

// scalarsLoop returns the container's reserved scalars loop, creating it
// if absent.
func (c *Container) scalarsLoop() *Loop {
	for _, l := range c.loops {
		if l.IsScalars() {
			return l
		}
	}
	empty := ""
	l := &Loop{category: &empty, originalNames: map[string]string{}}
	c.loops = append(c.loops, l)
	return l
}

// SetScalar sets (or replaces) the value of an unlooped item, which
// lives in the container's reserved scalars loop (spec.md §4.2 "Scalar
// items join the container's single reserved 'scalars' loop.").
func (c *Container) SetScalar(name string, v value.Value) error {
	if existing, found := c.LookupLoop(name); found && !existing.IsScalars() {
		return ErrDuplicateItem
	}
	l := c.scalarsLoop()
	if !l.HasName(name) {
		if err := l.AddItem(name); err != nil {
			return err
		}
	}
	if l.Len() == 0 {
		p := NewPacket()
		p.Set(name, v)
		return l.AddPacket(p)
	}
	row := l.packets[0]
	row.Set(name, v)
	l.packets[0] = row
	return nil
}

// GetScalar returns the value of an unlooped item.
func (c *Container) GetScalar(name string) (value.Value, bool) {
	l, found := c.LookupLoop(name)
	if !found || !l.IsScalars() || l.Len() == 0 {
		return nil, false
	}
	return l.packets[0].Get(name)
}

// PruneEmptyLoops removes every loop with zero packets from the
// container (spec.md §3: "A utility operation removes all empty loops
// from a container.").
func (c *Container) PruneEmptyLoops() {
	kept := c.loops[:0]
	for _, l := range c.loops {
		if l.Len() > 0 {
			kept = append(kept, l)
		}
	}
	c.loops = kept
}

// Frames returns the container's save frames in insertion order. A save
// frame may itself hold further save frames (spec.md §4.2 "Save
// frames"), up to whatever nesting limit the parser's
// Options.MaxFrameDepth enforces; the model itself places no limit.
func (c *Container) Frames() []*Frame {
	out := make([]*Frame, len(c.frames))
	copy(out, c.frames)
	return out
}

// LookupFrame returns the save frame whose code is equivalent to code,
// if any.
func (c *Container) LookupFrame(code string) (*Frame, bool) {
	for _, f := range c.frames {
		if unicodeutil.NamesEqual(f.Code(), code) {
			return f, true
		}
	}
	return nil, false
}

// AddFrame appends f to the container, enforcing save-frame code
// uniqueness within this immediate parent (spec.md §3: "save frame codes
// are unique within their immediate parent container").
func (c *Container) AddFrame(f *Frame) error {
	if _, found := c.LookupFrame(f.Code()); found {
		return ErrDuplicateCode
	}
	c.frames = append(c.frames, f)
	return nil
}

func (c *Container) clone() Container {
	out := Container{code: c.code}
	for _, l := range c.loops {
		out.loops = append(out.loops, l.Clone())
	}
	for _, f := range c.frames {
		out.frames = append(out.frames, f.Clone())
	}
	return out
}

// Frame is a save frame: a container nested inside a data block or
// another save frame. Structurally identical to a data block. Spec.md
// §3 "Save frame".
type Frame struct {
	Container
}

// NewFrame constructs a frame with the given code.
func NewFrame(code string) (*Frame, error) {
	if err := ValidateCode(code); err != nil {
		return nil, err
	}
	return &Frame{Container{code: code}}, nil
}

// NewFrameUnchecked builds a frame bypassing code validation, for parser
// error recovery: a frame with an invalid or duplicate code still needs
// somewhere to attach the items that follow it (spec.md §4.2 "parsing
// continues" after reporting the error).
func NewFrameUnchecked(code string) *Frame {
	return &Frame{Container{code: code}}
}

// Clone returns a deep, independent copy, including nested save frames.
func (f *Frame) Clone() *Frame {
	return &Frame{f.Container.clone()}
}

// Block is a top-level data block: a container plus an ordered
// collection of save frames. Spec.md §3 "Container"/"CIF".
type Block struct {
	Container
}

// NewBlock constructs a block with the given code.
func NewBlock(code string) (*Block, error) {
	if err := ValidateCode(code); err != nil {
		return nil, err
	}
	return &Block{Container: Container{code: code}}, nil
}

// NewBlockUnchecked builds a block bypassing code validation, for parser
// error recovery (see NewFrameUnchecked).
func NewBlockUnchecked(code string) *Block {
	return &Block{Container{code: code}}
}

// Clone returns a deep, independent copy, including all save frames.
func (b *Block) Clone() *Block {
	return &Block{b.Container.clone()}
}
