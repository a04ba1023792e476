package tokenizer

// Code is the result-code enumeration shared by the lexer and the parser
// (spec.md §6.5): a single flat space of success/diagnostic codes, in the
// same style as the teacher's tokenizer.Kind.String() switch
// (parser/tokenizer/token.go). The parser package re-exports this type as
// parser.Code so callers never need to import both packages to handle
// errors.
type Code uint16

const (
	CIF_OK Code = iota
	CIF_FINISHED

	// general
	CIF_ERROR
	CIF_NOMEM
	CIF_INVALID_HANDLE
	CIF_INTERNAL_ERROR
	CIF_ARGUMENT_ERROR
	CIF_MISUSE
	CIF_NOT_SUPPORTED
	CIF_ENVIRONMENT_ERROR
	CIF_CLIENT_ERROR

	// block/frame/item naming
	CIF_DUP_BLOCKCODE
	CIF_INVALID_BLOCKCODE
	CIF_MISSING_BLOCKCODE
	CIF_DUP_FRAMECODE
	CIF_INVALID_FRAMECODE
	CIF_MISSING_FRAMECODE
	CIF_DUP_ITEMNAME
	CIF_INVALID_ITEMNAME
	CIF_MISSING_ITEMNAME

	// loop / container invariants
	CIF_DUP_LOOPNAME
	CIF_CAT_NOT_UNIQUE
	CIF_NO_SUCH_LOOP
	CIF_RESERVED_LOOP
	CIF_WRONG_LOOP
	CIF_EMPTY_LOOP
	CIF_NULL_LOOP
	CIF_AMBIGUOUS_ITEM
	CIF_INVALID_PACKET
	CIF_PARTIAL_PACKET

	// value-level
	CIF_DISALLOWED_VALUE
	CIF_INVALID_NUMBER
	CIF_INVALID_INDEX
	CIF_INVALID_BARE_VALUE

	// I/O / encoding
	CIF_INVALID_CHAR
	CIF_UNMAPPED_CHAR
	CIF_DISALLOWED_CHAR
	CIF_MISSING_SPACE
	CIF_MISSING_ENDQUOTE
	CIF_UNCLOSED_TEXT
	CIF_OVERLENGTH_LINE
	CIF_DISALLOWED_INITIAL_CHAR
	CIF_WRONG_ENCODING

	// structural parse
	CIF_NO_BLOCK_HEADER
	CIF_FRAME_NOT_ALLOWED
	CIF_NO_FRAME_TERM
	CIF_UNEXPECTED_TERM
	CIF_EOF_IN_FRAME
	CIF_RESERVED_WORD
	CIF_MISSING_VALUE
	CIF_UNEXPECTED_VALUE
	CIF_UNEXPECTED_DELIM
	CIF_MISSING_DELIM
	CIF_MISSING_KEY
	CIF_UNQUOTED_KEY
	CIF_MISQUOTED_KEY
	CIF_NULL_KEY
	CIF_MISSING_PREFIX
)

var codeNames = map[Code]string{
	CIF_OK:                      "CIF_OK",
	CIF_FINISHED:                "CIF_FINISHED",
	CIF_ERROR:                   "CIF_ERROR",
	CIF_NOMEM:                   "CIF_NOMEM",
	CIF_INVALID_HANDLE:          "CIF_INVALID_HANDLE",
	CIF_INTERNAL_ERROR:          "CIF_INTERNAL_ERROR",
	CIF_ARGUMENT_ERROR:          "CIF_ARGUMENT_ERROR",
	CIF_MISUSE:                  "CIF_MISUSE",
	CIF_NOT_SUPPORTED:           "CIF_NOT_SUPPORTED",
	CIF_ENVIRONMENT_ERROR:       "CIF_ENVIRONMENT_ERROR",
	CIF_CLIENT_ERROR:            "CIF_CLIENT_ERROR",
	CIF_DUP_BLOCKCODE:           "CIF_DUP_BLOCKCODE",
	CIF_INVALID_BLOCKCODE:       "CIF_INVALID_BLOCKCODE",
	CIF_MISSING_BLOCKCODE:       "CIF_MISSING_BLOCKCODE",
	CIF_DUP_FRAMECODE:           "CIF_DUP_FRAMECODE",
	CIF_INVALID_FRAMECODE:       "CIF_INVALID_FRAMECODE",
	CIF_MISSING_FRAMECODE:       "CIF_MISSING_FRAMECODE",
	CIF_DUP_ITEMNAME:            "CIF_DUP_ITEMNAME",
	CIF_INVALID_ITEMNAME:        "CIF_INVALID_ITEMNAME",
	CIF_MISSING_ITEMNAME:        "CIF_MISSING_ITEMNAME",
	CIF_DUP_LOOPNAME:            "CIF_DUP_LOOPNAME",
	CIF_CAT_NOT_UNIQUE:          "CIF_CAT_NOT_UNIQUE",
	CIF_NO_SUCH_LOOP:            "CIF_NO_SUCH_LOOP",
	CIF_RESERVED_LOOP:           "CIF_RESERVED_LOOP",
	CIF_WRONG_LOOP:              "CIF_WRONG_LOOP",
	CIF_EMPTY_LOOP:              "CIF_EMPTY_LOOP",
	CIF_NULL_LOOP:               "CIF_NULL_LOOP",
	CIF_AMBIGUOUS_ITEM:          "CIF_AMBIGUOUS_ITEM",
	CIF_INVALID_PACKET:          "CIF_INVALID_PACKET",
	CIF_PARTIAL_PACKET:          "CIF_PARTIAL_PACKET",
	CIF_DISALLOWED_VALUE:        "CIF_DISALLOWED_VALUE",
	CIF_INVALID_NUMBER:          "CIF_INVALID_NUMBER",
	CIF_INVALID_INDEX:           "CIF_INVALID_INDEX",
	CIF_INVALID_BARE_VALUE:      "CIF_INVALID_BARE_VALUE",
	CIF_INVALID_CHAR:            "CIF_INVALID_CHAR",
	CIF_UNMAPPED_CHAR:           "CIF_UNMAPPED_CHAR",
	CIF_DISALLOWED_CHAR:         "CIF_DISALLOWED_CHAR",
	CIF_MISSING_SPACE:           "CIF_MISSING_SPACE",
	CIF_MISSING_ENDQUOTE:        "CIF_MISSING_ENDQUOTE",
	CIF_UNCLOSED_TEXT:           "CIF_UNCLOSED_TEXT",
	CIF_OVERLENGTH_LINE:         "CIF_OVERLENGTH_LINE",
	CIF_DISALLOWED_INITIAL_CHAR: "CIF_DISALLOWED_INITIAL_CHAR",
	CIF_WRONG_ENCODING:          "CIF_WRONG_ENCODING",
	CIF_NO_BLOCK_HEADER:         "CIF_NO_BLOCK_HEADER",
	CIF_FRAME_NOT_ALLOWED:       "CIF_FRAME_NOT_ALLOWED",
	CIF_NO_FRAME_TERM:           "CIF_NO_FRAME_TERM",
	CIF_UNEXPECTED_TERM:         "CIF_UNEXPECTED_TERM",
	CIF_EOF_IN_FRAME:            "CIF_EOF_IN_FRAME",
	CIF_RESERVED_WORD:           "CIF_RESERVED_WORD",
	CIF_MISSING_VALUE:           "CIF_MISSING_VALUE",
	CIF_UNEXPECTED_VALUE:        "CIF_UNEXPECTED_VALUE",
	CIF_UNEXPECTED_DELIM:        "CIF_UNEXPECTED_DELIM",
	CIF_MISSING_DELIM:           "CIF_MISSING_DELIM",
	CIF_MISSING_KEY:             "CIF_MISSING_KEY",
	CIF_UNQUOTED_KEY:            "CIF_UNQUOTED_KEY",
	CIF_MISQUOTED_KEY:           "CIF_MISQUOTED_KEY",
	CIF_NULL_KEY:                "CIF_NULL_KEY",
	CIF_MISSING_PREFIX:          "CIF_MISSING_PREFIX",
}

func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return "CIF_UNKNOWN_CODE"
}

// Error lets Code satisfy the error interface directly (spec.md §6.2
// "Result code"), so a parse result can be returned and handled with
// ordinary Go error-handling idiom while still being type-asserted back
// to a Code when a caller needs the exact value.
func (c Code) Error() string { return c.String() }

// OK reports whether c represents successful completion.
func (c Code) OK() bool { return c == CIF_OK || c == CIF_FINISHED }
