package unicodeutil

import "testing"

func TestNormalizeCaseFold(t *testing.T) {
	if Normalize("_cell_length_a") != Normalize("_Cell_Length_A") {
		t.Errorf("expected case-insensitive names to normalize equal")
	}
}

func TestNormalizeNFDNFCRoundTrip(t *testing.T) {
	// "café" as a single precomposed é vs. as e + combining acute accent
	// must normalize to the same form (NFD then NFC collapses both).
	precomposed := "café"
	decomposed := "café"
	if Normalize(precomposed) != Normalize(decomposed) {
		t.Errorf("expected precomposed and decomposed forms to normalize equal")
	}
}

func TestNamesEqual(t *testing.T) {
	if !NamesEqual("_atom_site_label", "_Atom_Site_Label") {
		t.Errorf("expected names to be equal under normalization")
	}
	if NamesEqual("_atom_site_label", "_atom_site_type_symbol") {
		t.Errorf("expected distinct names to compare unequal")
	}
}

func TestNamesEqualNotTurkicDotted(t *testing.T) {
	// Default (non-Turkic) case folding: "I" folds to "i", not "ı".
	if !NamesEqual("I", "i") {
		t.Errorf("expected default case folding of I/i")
	}
}
