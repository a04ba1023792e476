package model

import "errors"

// Misuse and semantic errors returned directly by the model API
// (spec.md §7 kinds 3 and 4). Parse-time errors, which additionally
// carry a line/column and a result code, live in package parser.
var (
	ErrEmptyCode         = errors.New("model: block/frame code must be non-empty")
	ErrInvalidCode       = errors.New("model: code contains a disallowed character or exceeds the line length limit")
	ErrDuplicateCode     = errors.New("model: duplicate block/frame code")
	ErrNullLoop          = errors.New("model: a loop must declare at least one item name")
	ErrDuplicateItem     = errors.New("model: item name already exists in this container")
	ErrNoSuchLoop        = errors.New("model: no such loop in this container")
	ErrWrongLoop         = errors.New("model: packet does not belong to this loop")
	ErrAmbiguousItem     = errors.New("model: item name does not uniquely identify a loop column")
	ErrInvalidPacket     = errors.New("model: packet contains a name not declared by the loop")
	ErrReservedLoop      = errors.New("model: the scalars loop (category \"\") holds at most one packet")
	ErrCategoryInUse     = errors.New("model: at most one loop may have the empty (\"scalars\") category")
	ErrCategoryFixed     = errors.New("model: a loop's category may not change to or from empty")
	ErrCategoryNotUnique = errors.New("model: a non-empty loop category must be unique within the container")
	ErrInvalidHandle     = errors.New("model: operation on an invalidated handle")
	ErrIteratorState     = errors.New("model: packet iterator is not in the required state for this operation")
	ErrNotSupported      = errors.New("model: operation not supported by this store")
)
