package parser

import (
	"fmt"

	"declet/internal/ast"
	"declet/internal/diag"
	"declet/internal/token"
)

// parseDeclaration recognizes one declaration statement:
//
//	TypeName Declarator (',' Declarator)* ';'
//	Declarator = Ident ('=' Literal)?
//
// It returns ok=false when the statement yields no declarators, so callers
// never see an empty declaration.
func (p *Parser) parseDeclaration() (ast.Declaration, bool) {
	typeTok := p.peek()
	if typeTok.Kind != token.TypeName {
		p.errAt(typeTok, diag.SynExpectType, fmt.Sprintf("expected type but found %q", typeTok.Text))
		p.advance()
		return ast.Declaration{}, false
	}
	p.advance()

	decl := ast.Declaration{
		TypeName: typeTok.Text,
		Span:     typeTok.Span,
	}

	for {
		idTok := p.peek()
		if idTok.Kind != token.Ident {
			p.errAt(idTok, diag.SynExpectIdentifier, fmt.Sprintf("expected identifier but found %q", idTok.Text))
			p.resyncUntil(token.Comma, token.Semicolon)
		} else {
			p.advance()
			d := ast.Declarator{
				Name: idTok.Text,
				Line: idTok.Line,
				Span: idTok.Span,
			}
			if p.at(token.Assign) {
				p.advance()
				lit := p.peek()
				if lit.IsLiteral() {
					p.advance()
					d.Init = &ast.Initializer{Kind: lit.Kind, Text: lit.Text}
					d.Span = d.Span.Cover(lit.Span)
				} else {
					p.errAt(lit, diag.SynExpectLiteral, fmt.Sprintf("expected literal but found %q", lit.Text))
					p.resyncUntil(token.Comma, token.Semicolon)
				}
			}
			decl.Declarators = append(decl.Declarators, d)
		}

		switch p.peek().Kind {
		case token.Comma:
			p.advance()

		case token.Semicolon:
			semi := p.advance()
			decl.Span = decl.Span.Cover(semi.Span)
			return p.finishDeclaration(decl)

		case token.EOF:
			p.errAt(p.peek(), diag.SynUnexpectedEOF, "unexpected end of input; missing ';'")
			return p.finishDeclaration(decl)

		default:
			bad := p.peek()
			p.errAt(bad, diag.SynUnexpectedToken, fmt.Sprintf("unexpected token %q", bad.Text))
			p.resyncUntil(token.Comma, token.Semicolon)
			switch p.peek().Kind {
			case token.Comma:
				p.advance()
			case token.Semicolon:
				semi := p.advance()
				decl.Span = decl.Span.Cover(semi.Span)
				return p.finishDeclaration(decl)
			default:
				p.errAt(p.peek(), diag.SynUnexpectedEOF, "unexpected end of input; missing ';'")
				return p.finishDeclaration(decl)
			}
		}
	}
}

func (p *Parser) finishDeclaration(decl ast.Declaration) (ast.Declaration, bool) {
	return decl, len(decl.Declarators) > 0
}
