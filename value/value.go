// Package value implements the CIF value system: the six-variant sum
// type (character, number-with-uncertainty, list, table, N/A, unknown)
// that every CIF data item, loop packet cell, and table entry holds.
//
// Values are created independently and are deep-copied on insertion into
// a container (packet, list or table); the container thereafter owns the
// copy. This mirrors the PDF teacher's model.UPValue / parser.Object
// contract (construct, then Clone on insert).
package value

import "github.com/comcifs/gocif/unicodeutil"

// Kind discriminates the Value variants.
type Kind uint8

const (
	KindChar Kind = iota
	KindNumb
	KindList
	KindTable
	KindNA
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindChar:
		return "CHAR"
	case KindNumb:
		return "NUMB"
	case KindList:
		return "LIST"
	case KindTable:
		return "TABLE"
	case KindNA:
		return "NA"
	case KindUnknown:
		return "UNK"
	default:
		return "<invalid kind>"
	}
}

// Value is the common interface implemented by all six CIF value
// variants: Char, Numb, List, *Table, NA, Unknown.
type Value interface {
	// Kind reports which of the six variants this value is.
	Kind() Kind

	// Clone returns a deep, independent copy. Containers call Clone when
	// a value is inserted; the caller's original is never aliased by the
	// container.
	Clone() Value

	// String returns a debug representation; it is not the CIF wire
	// form (see the writer package for that).
	String() string
}

// Char is the CHAR variant: a parsed character string, with any CIF
// delimiters, line-folding, and text-prefix protocol already decoded.
type Char string

func (v Char) Kind() Kind     { return KindChar }
func (v Char) Clone() Value   { return v }
func (v Char) String() string { return string(v) }

// NA is the inapplicable value ('.' in CIF source).
type NA struct{}

func (NA) Kind() Kind     { return KindNA }
func (v NA) Clone() Value { return v }
func (NA) String() string { return "." }

// Unknown is the unknown value ('?' in CIF source).
type Unknown struct{}

func (Unknown) Kind() Kind     { return KindUnknown }
func (v Unknown) Clone() Value { return v }
func (Unknown) String() string { return "?" }

// List is the LIST variant: an ordered sequence of values (CIF 2 only).
type List []Value

func (v List) Kind() Kind { return KindList }

func (v List) Clone() Value {
	if v == nil {
		return List(nil)
	}
	out := make(List, len(v))
	for i, e := range v {
		out[i] = e.Clone()
	}
	return out
}

func (v List) String() string {
	s := "["
	for i, e := range v {
		if i > 0 {
			s += " "
		}
		s += e.String()
	}
	return s + "]"
}

// Equal reports deep structural equality, used by the round-trip
// testable property in spec.md §8.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Char:
		return av == b.(Char)
	case NA, Unknown:
		return true
	case List:
		bv := b.(List)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Numb:
		bv := b.(Numb)
		return av.Negative == bv.Negative && av.Digits == bv.Digits &&
			av.Scale == bv.Scale && av.HasSU == bv.HasSU && av.SUDigits == bv.SUDigits
	case *Table:
		return av.equal(b.(*Table))
	}
	return false
}

// normalizeKey is the shared normalization used by both Table keys and
// (in package model) packet item names: name-equality uses
// unicodeutil.Normalize, but the most recently inserted original form is
// preserved for enumeration.
func normalizeKey(s string) string { return unicodeutil.Normalize(s) }
