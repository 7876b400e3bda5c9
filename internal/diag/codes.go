package diag

import (
	"fmt"
)

// Code identifies a diagnostic kind. Codes are grouped by the stage that
// produces them: 1xxx lexical, 2xxx syntax, 3xxx semantic, 4xxx I/O.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnrecognizedChar   Code = 1001
	LexUnterminatedString Code = 1002
	LexUnterminatedChar   Code = 1003
	LexNewlineInChar      Code = 1004
	LexInvalidChar        Code = 1005
	LexInvalidToken       Code = 1006
	LexBadLongLiteral     Code = 1007

	// Syntax
	SynInfo             Code = 2000
	SynExpectType       Code = 2001
	SynExpectIdentifier Code = 2002
	SynExpectLiteral    Code = 2003
	SynUnexpectedToken  Code = 2004
	SynUnexpectedEOF    Code = 2005

	// Semantic
	SemaInfo          Code = 3000
	SemaReservedName  Code = 3001
	SemaDuplicateName Code = 3002
	SemaTypeMismatch  Code = 3003

	// I/O
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	LexInfo:               "Lexical information",
	LexUnrecognizedChar:   "Unrecognized character",
	LexUnterminatedString: "Unterminated string literal",
	LexUnterminatedChar:   "Unterminated char literal",
	LexNewlineInChar:      "Newline inside char literal",
	LexInvalidChar:        "Invalid char literal",
	LexInvalidToken:       "Invalid token",
	LexBadLongLiteral:     "Invalid long literal with decimal point",
	SynInfo:               "Syntax information",
	SynExpectType:         "Expected type",
	SynExpectIdentifier:   "Expected identifier",
	SynExpectLiteral:      "Expected literal",
	SynUnexpectedToken:    "Unexpected token",
	SynUnexpectedEOF:      "Unexpected end of input",
	SemaInfo:              "Semantic information",
	SemaReservedName:      "Invalid identifier (reserved)",
	SemaDuplicateName:     "Duplicate variable name",
	SemaTypeMismatch:      "Type mismatch",
	IOLoadFileError:       "Failed to load file",
}

// ID returns the stable textual identifier of the code, e.g. DCL2001.
func (c Code) ID() string {
	return fmt.Sprintf("DCL%04d", uint16(c))
}

func (c Code) String() string {
	if desc, ok := codeDescription[c]; ok {
		return desc
	}
	return fmt.Sprintf("DCL%04d", uint16(c))
}

// Stage reports the pipeline stage family a code belongs to:
// "lexical", "syntax", "semantic", or "io".
func (c Code) Stage() string {
	switch {
	case c >= 1000 && c < 2000:
		return "lexical"
	case c >= 2000 && c < 3000:
		return "syntax"
	case c >= 3000 && c < 4000:
		return "semantic"
	case c >= 4000 && c < 5000:
		return "io"
	default:
		return "unknown"
	}
}
