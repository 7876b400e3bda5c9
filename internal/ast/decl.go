// Package ast holds the syntax tree for the declaration language. The
// grammar is flat (a program is a list of declaration statements), so the
// tree is a plain slice of value types rather than an arena.
package ast

import (
	"declet/internal/source"
	"declet/internal/token"
)

// Initializer is the optional '= literal' part of a declarator.
type Initializer struct {
	Kind token.Kind // literal kind (IntLit..BoolLit)
	Text string     // literal lexeme as written
}

// Declarator is one 'name [= literal]' unit inside a declaration statement.
type Declarator struct {
	Name string
	Line uint32
	Span source.Span
	Init *Initializer // nil when no initializer was parsed
}

// Declaration is one 'type name[, name]... ;' statement. A parsed
// declaration always has at least one declarator; statements that failed
// entirely yield no Declaration node, only diagnostics.
type Declaration struct {
	TypeName    string
	Span        source.Span
	Declarators []Declarator
}
