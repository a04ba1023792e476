package unicodeutil

import (
	"bytes"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// Encoding identifies the text encoding detected (or forced) for a CIF
// byte stream, per spec.md §4.1.
type Encoding uint8

const (
	// EncodingUnknown means detection found nothing conclusive and the
	// caller-supplied or system default encoding should be used.
	EncodingUnknown Encoding = iota
	EncodingUTF8
	EncodingUTF16LE
	EncodingUTF16BE
	EncodingUTF32LE
	EncodingUTF32BE
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "UTF-8"
	case EncodingUTF16LE:
		return "UTF-16LE"
	case EncodingUTF16BE:
		return "UTF-16BE"
	case EncodingUTF32LE:
		return "UTF-32LE"
	case EncodingUTF32BE:
		return "UTF-32BE"
	default:
		return "unknown"
	}
}

var (
	bomUTF8    = []byte{0xef, 0xbb, 0xbf}
	bomUTF16LE = []byte{0xff, 0xfe}
	bomUTF16BE = []byte{0xfe, 0xff}
	bomUTF32LE = []byte{0xff, 0xfe, 0x00, 0x00}
	bomUTF32BE = []byte{0x00, 0x00, 0xfe, 0xff}

	cif2Marker = []byte("#\\CIF_2.0")
)

// DetectResult reports what DetectEncoding found.
type DetectResult struct {
	Encoding Encoding
	// HasBOM is true when the detection was driven by a byte-order mark;
	// the BOM bytes must then be skipped before decoding.
	HasBOM bool
	// BOMLen is the number of leading bytes consumed as a BOM.
	BOMLen int
	// IsCIF2 is true when the leading bytes matched the literal CIF 2.0
	// version marker "#\CIF_2.0", which also fixes the encoding to UTF-8.
	IsCIF2 bool
}

// DetectEncoding inspects the leading bytes of a CIF stream and
// implements spec.md §4.1's detection algorithm: BOM sniffing first,
// then a null-byte heuristic for BOM-less UTF-16/32, then the literal
// "#\CIF_2.0" marker, in that priority order.
func DetectEncoding(lead []byte) DetectResult {
	switch {
	case bytes.HasPrefix(lead, bomUTF32LE):
		return DetectResult{Encoding: EncodingUTF32LE, HasBOM: true, BOMLen: 4}
	case bytes.HasPrefix(lead, bomUTF32BE):
		return DetectResult{Encoding: EncodingUTF32BE, HasBOM: true, BOMLen: 4}
	case bytes.HasPrefix(lead, bomUTF8):
		return DetectResult{Encoding: EncodingUTF8, HasBOM: true, BOMLen: 3}
	case bytes.HasPrefix(lead, bomUTF16LE):
		return DetectResult{Encoding: EncodingUTF16LE, HasBOM: true, BOMLen: 2}
	case bytes.HasPrefix(lead, bomUTF16BE):
		return DetectResult{Encoding: EncodingUTF16BE, HasBOM: true, BOMLen: 2}
	}

	if len(lead) >= 4 {
		switch {
		case lead[0] == 0 && lead[1] == 0 && (lead[2] != 0 || lead[3] != 0):
			return DetectResult{Encoding: EncodingUTF32BE}
		case lead[2] == 0 && lead[3] == 0 && (lead[0] != 0 || lead[1] != 0):
			return DetectResult{Encoding: EncodingUTF32LE}
		case lead[0] == 0 && lead[1] != 0 && lead[2] == 0 && lead[3] != 0:
			return DetectResult{Encoding: EncodingUTF16BE}
		case lead[0] != 0 && lead[1] == 0 && lead[2] != 0 && lead[3] == 0:
			return DetectResult{Encoding: EncodingUTF16LE}
		}
	}

	if bytes.HasPrefix(lead, cif2Marker) {
		return DetectResult{Encoding: EncodingUTF8, IsCIF2: true}
	}

	return DetectResult{Encoding: EncodingUnknown}
}

// NewDecoder returns an io.Reader that transcodes r from enc to UTF-8.
// EncodingUnknown and EncodingUTF8 both pass the bytes through
// unmodified (CIF 2 requires UTF-8; a non-UTF-8 encoding paired with CIF
// 2 is a semantic error reported by the caller, not a decoding failure).
func NewDecoder(r io.Reader, enc Encoding) io.Reader {
	var e encoding.Encoding
	switch enc {
	case EncodingUTF16LE:
		e = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case EncodingUTF16BE:
		e = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case EncodingUTF32LE:
		e = utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
	case EncodingUTF32BE:
		e = utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
	default:
		return r
	}
	return transform.NewReader(r, e.NewDecoder())
}
