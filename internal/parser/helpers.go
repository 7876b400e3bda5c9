package parser

import (
	"declet/internal/diag"
	"declet/internal/token"
)

// peek returns the current token without consuming it. Past the end of the
// stream it keeps returning the final token, which is EOF for any stream
// the lexer produced.
func (p *Parser) peek() token.Token {
	if p.pos >= len(p.tokens) {
		if len(p.tokens) == 0 {
			return token.Token{Kind: token.EOF}
		}
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

func (p *Parser) at(kind token.Kind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) atEOF() bool {
	return p.at(token.EOF)
}

// advance consumes the current token and returns it. The cursor never moves
// past the trailing EOF.
func (p *Parser) advance() token.Token {
	t := p.peek()
	if p.pos < len(p.tokens) && t.Kind != token.EOF {
		p.pos++
	}
	return t
}

// resyncUntil is the shared recovery primitive: it advances the cursor until
// the current token's kind is one of kinds, or EOF. The matching token is
// left unconsumed so the caller decides what to do with it.
func (p *Parser) resyncUntil(kinds ...token.Kind) {
	for !p.atEOF() {
		cur := p.peek().Kind
		for _, k := range kinds {
			if cur == k {
				return
			}
		}
		p.advance()
	}
}

// errAt reports a syntax error anchored at tok.
func (p *Parser) errAt(tok token.Token, code diag.Code, msg string) {
	if p.opts.Enough() {
		return
	}
	p.opts.CurrentErrors++
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, tok.Line, tok.Span, msg)
	}
}
