package parser

import "github.com/comcifs/gocif/tokenizer"

// Code is the spec.md §6.5 result-code enumeration. It is a type alias
// for tokenizer.Code so the lexer and the parser share one numbering
// without an import cycle (the lexer-level codes, e.g.
// CIF_MISSING_ENDQUOTE, are detected before a parser even exists).
type Code = tokenizer.Code

const (
	CIF_OK                      = tokenizer.CIF_OK
	CIF_FINISHED                = tokenizer.CIF_FINISHED
	CIF_ERROR                   = tokenizer.CIF_ERROR
	CIF_NOMEM                   = tokenizer.CIF_NOMEM
	CIF_INVALID_HANDLE          = tokenizer.CIF_INVALID_HANDLE
	CIF_INTERNAL_ERROR          = tokenizer.CIF_INTERNAL_ERROR
	CIF_ARGUMENT_ERROR          = tokenizer.CIF_ARGUMENT_ERROR
	CIF_MISUSE                  = tokenizer.CIF_MISUSE
	CIF_NOT_SUPPORTED           = tokenizer.CIF_NOT_SUPPORTED
	CIF_ENVIRONMENT_ERROR       = tokenizer.CIF_ENVIRONMENT_ERROR
	CIF_CLIENT_ERROR            = tokenizer.CIF_CLIENT_ERROR
	CIF_DUP_BLOCKCODE           = tokenizer.CIF_DUP_BLOCKCODE
	CIF_INVALID_BLOCKCODE       = tokenizer.CIF_INVALID_BLOCKCODE
	CIF_MISSING_BLOCKCODE       = tokenizer.CIF_MISSING_BLOCKCODE
	CIF_DUP_FRAMECODE           = tokenizer.CIF_DUP_FRAMECODE
	CIF_INVALID_FRAMECODE       = tokenizer.CIF_INVALID_FRAMECODE
	CIF_MISSING_FRAMECODE       = tokenizer.CIF_MISSING_FRAMECODE
	CIF_DUP_ITEMNAME            = tokenizer.CIF_DUP_ITEMNAME
	CIF_INVALID_ITEMNAME        = tokenizer.CIF_INVALID_ITEMNAME
	CIF_MISSING_ITEMNAME        = tokenizer.CIF_MISSING_ITEMNAME
	CIF_DUP_LOOPNAME            = tokenizer.CIF_DUP_LOOPNAME
	CIF_CAT_NOT_UNIQUE          = tokenizer.CIF_CAT_NOT_UNIQUE
	CIF_NO_SUCH_LOOP            = tokenizer.CIF_NO_SUCH_LOOP
	CIF_RESERVED_LOOP           = tokenizer.CIF_RESERVED_LOOP
	CIF_WRONG_LOOP              = tokenizer.CIF_WRONG_LOOP
	CIF_EMPTY_LOOP              = tokenizer.CIF_EMPTY_LOOP
	CIF_NULL_LOOP               = tokenizer.CIF_NULL_LOOP
	CIF_AMBIGUOUS_ITEM          = tokenizer.CIF_AMBIGUOUS_ITEM
	CIF_INVALID_PACKET          = tokenizer.CIF_INVALID_PACKET
	CIF_PARTIAL_PACKET          = tokenizer.CIF_PARTIAL_PACKET
	CIF_DISALLOWED_VALUE        = tokenizer.CIF_DISALLOWED_VALUE
	CIF_INVALID_NUMBER          = tokenizer.CIF_INVALID_NUMBER
	CIF_INVALID_INDEX           = tokenizer.CIF_INVALID_INDEX
	CIF_INVALID_BARE_VALUE      = tokenizer.CIF_INVALID_BARE_VALUE
	CIF_INVALID_CHAR            = tokenizer.CIF_INVALID_CHAR
	CIF_UNMAPPED_CHAR           = tokenizer.CIF_UNMAPPED_CHAR
	CIF_DISALLOWED_CHAR         = tokenizer.CIF_DISALLOWED_CHAR
	CIF_MISSING_SPACE           = tokenizer.CIF_MISSING_SPACE
	CIF_MISSING_ENDQUOTE        = tokenizer.CIF_MISSING_ENDQUOTE
	CIF_UNCLOSED_TEXT           = tokenizer.CIF_UNCLOSED_TEXT
	CIF_OVERLENGTH_LINE         = tokenizer.CIF_OVERLENGTH_LINE
	CIF_DISALLOWED_INITIAL_CHAR = tokenizer.CIF_DISALLOWED_INITIAL_CHAR
	CIF_WRONG_ENCODING          = tokenizer.CIF_WRONG_ENCODING
	CIF_NO_BLOCK_HEADER         = tokenizer.CIF_NO_BLOCK_HEADER
	CIF_FRAME_NOT_ALLOWED       = tokenizer.CIF_FRAME_NOT_ALLOWED
	CIF_NO_FRAME_TERM           = tokenizer.CIF_NO_FRAME_TERM
	CIF_UNEXPECTED_TERM         = tokenizer.CIF_UNEXPECTED_TERM
	CIF_EOF_IN_FRAME            = tokenizer.CIF_EOF_IN_FRAME
	CIF_RESERVED_WORD           = tokenizer.CIF_RESERVED_WORD
	CIF_MISSING_VALUE           = tokenizer.CIF_MISSING_VALUE
	CIF_UNEXPECTED_VALUE        = tokenizer.CIF_UNEXPECTED_VALUE
	CIF_UNEXPECTED_DELIM        = tokenizer.CIF_UNEXPECTED_DELIM
	CIF_MISSING_DELIM           = tokenizer.CIF_MISSING_DELIM
	CIF_MISSING_KEY             = tokenizer.CIF_MISSING_KEY
	CIF_UNQUOTED_KEY            = tokenizer.CIF_UNQUOTED_KEY
	CIF_MISQUOTED_KEY           = tokenizer.CIF_MISQUOTED_KEY
	CIF_NULL_KEY                = tokenizer.CIF_NULL_KEY
	CIF_MISSING_PREFIX          = tokenizer.CIF_MISSING_PREFIX
)
