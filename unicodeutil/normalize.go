package unicodeutil

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// foldCaser implements Unicode default case folding (cases.Fold is
// locale-independent by construction: unlike Title/Upper/Lower it has no
// Turkic-specific dotted-I variant, which is exactly the "default Turkic
// handling" spec.md §3 asks for).
var foldCaser = cases.Fold()

// Normalize implements the CIF name-equality transform: NFD, then
// Unicode case-fold (default, non-Turkic), then NFC. Two strings denote
// the same CIF name, block code, frame code, or table key iff their
// Normalize forms are equal.
func Normalize(s string) string {
	d := norm.NFD.String(s)
	f := foldCaser.String(d)
	return norm.NFC.String(f)
}

// NamesEqual reports whether a and b are the same CIF name under
// normalization.
func NamesEqual(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
