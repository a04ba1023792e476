// Package model implements the CIF data model: the typed value system's
// containers (spec.md §3) — packets, loops, data blocks, save frames —
// and the whole-CIF object that holds data blocks and enforces code
// uniqueness. It also specifies the store interface (spec.md §6.4) that
// is the boundary between this in-memory model and a pluggable
// persistent backend.
package model

import "github.com/comcifs/gocif/unicodeutil"

// CIF is an ordered collection of data blocks with unique normalized
// codes (spec.md §3 "CIF"). The zero value is an empty, ready-to-use
// CIF.
type CIF struct {
	Version string // e.g. "2.0"; empty means no version marker was seen/will be written

	blocks []*Block
}

// New returns an empty CIF.
func New() *CIF { return &CIF{} }

// Blocks returns the CIF's data blocks in insertion order.
func (c *CIF) Blocks() []*Block {
	out := make([]*Block, len(c.blocks))
	copy(out, c.blocks)
	return out
}

// LookupBlock returns the data block whose code is equivalent to code,
// if any.
func (c *CIF) LookupBlock(code string) (*Block, bool) {
	for _, b := range c.blocks {
		if unicodeutil.NamesEqual(b.Code(), code) {
			return b, true
		}
	}
	return nil, false
}

// AddBlock appends b to the CIF, enforcing data-block code uniqueness
// (spec.md §3: "Data block codes are unique in the CIF").
func (c *CIF) AddBlock(b *Block) error {
	if _, found := c.LookupBlock(b.Code()); found {
		return ErrDuplicateCode
	}
	c.blocks = append(c.blocks, b)
	return nil
}

// CreateBlock validates code, constructs a new block, and appends it.
// It is the convenience entry point used by the parser and by callers
// building a CIF programmatically.
func (c *CIF) CreateBlock(code string) (*Block, error) {
	b, err := NewBlock(code)
	if err != nil {
		return nil, err
	}
	if err := c.AddBlock(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Clone returns a deep, independent copy of the whole CIF.
func (c *CIF) Clone() *CIF {
	out := &CIF{Version: c.Version}
	for _, b := range c.blocks {
		out.blocks = append(out.blocks, b.Clone())
	}
	return out
}
