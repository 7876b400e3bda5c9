package parser

import (
	"declet/internal/ast"
	"declet/internal/diag"
	"declet/internal/token"
)

// Options configures a parse run.
type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is exhausted.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Result carries the declarations recognized by a parse run. When the
// reporter is a BagReporter, Bag points at its bag.
type Result struct {
	Decls []ast.Declaration
	Bag   *diag.Bag
}

// Parser holds the state for parsing one token stream.
type Parser struct {
	tokens []token.Token
	pos    int
	opts   Options
}

// Parse recognizes declaration statements in tokens. The stream is expected
// to end with exactly one EOF token; parsing never mutates it. Every error
// path makes strict forward progress, so termination is bounded by the
// token count.
func Parse(tokens []token.Token, opts Options) Result {
	p := Parser{
		tokens: tokens,
		pos:    0,
		opts:   opts,
	}

	decls := p.parseProgram()

	var bag *diag.Bag
	switch br := opts.Reporter.(type) {
	case *diag.BagReporter:
		bag = br.Bag
	case diag.BagReporter:
		bag = br.Bag
	}
	return Result{
		Decls: decls,
		Bag:   bag,
	}
}

// parseProgram is the top-level statement loop: declarations until EOF,
// resynchronizing past the next ';' when the upcoming token cannot start a
// declaration.
func (p *Parser) parseProgram() []ast.Declaration {
	var decls []ast.Declaration
	for !p.atEOF() {
		decl, ok := p.parseDeclaration()
		if ok {
			decls = append(decls, decl)
		}

		if !p.atEOF() && !p.at(token.TypeName) {
			p.resyncUntil(token.Semicolon)
			if p.at(token.Semicolon) {
				p.advance()
			}
		}
	}
	return decls
}
