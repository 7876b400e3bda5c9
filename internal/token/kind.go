package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input. A token stream contains
	// exactly one EOF token, always last.
	EOF

	// Ident represents an identifier token.
	Ident
	// TypeName represents one of the built-in declaration type names
	// (byte, short, int, long, float, double, boolean, char, String).
	TypeName

	// IntLit represents an integer literal.
	IntLit
	// LongLit represents an integer literal with an l/L suffix.
	LongLit
	// FloatLit represents a numeric literal with an f/F suffix.
	FloatLit
	// DoubleLit represents a numeric literal with a decimal point or a
	// d/D suffix.
	DoubleLit
	// CharLit represents a character literal; Text holds the content
	// between the quotes.
	CharLit
	// StringLit represents a string literal; Text holds the content
	// between the quotes with escapes kept verbatim.
	StringLit
	// BoolLit represents the literals 'true' and 'false'.
	BoolLit

	// Assign represents '='.
	Assign
	// Comma represents ','.
	Comma
	// Semicolon represents ';'.
	Semicolon
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	TypeName:  "TypeName",
	IntLit:    "IntLit",
	LongLit:   "LongLit",
	FloatLit:  "FloatLit",
	DoubleLit: "DoubleLit",
	CharLit:   "CharLit",
	StringLit: "StringLit",
	BoolLit:   "BoolLit",
	Assign:    "Assign",
	Comma:     "Comma",
	Semicolon: "Semicolon",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// IsLiteral reports whether the kind is a literal usable as an initializer.
func (k Kind) IsLiteral() bool {
	switch k {
	case IntLit, LongLit, FloatLit, DoubleLit, CharLit, StringLit, BoolLit:
		return true
	default:
		return false
	}
}
