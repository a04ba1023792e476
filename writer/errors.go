package writer

import "errors"

// ErrUnsupportedInVersion is returned when a value kind (LIST or TABLE)
// is written under CIF 1.1, which has no aggregate literal syntax
// (spec.md §4.4 "Writing LIST/TABLE in v1 mode is an error"; Open
// Question resolution in DESIGN.md).
var ErrUnsupportedInVersion = errors.New("writer: value kind is not representable in the target CIF version")

// ErrNumberTooLong is returned when a NUMB's preserved text form alone
// exceeds the CIF line length limit and cannot be wrapped (spec.md
// §6.1's 2048 code point line limit applies to every token).
var ErrNumberTooLong = errors.New("writer: number token exceeds the maximum line length")
