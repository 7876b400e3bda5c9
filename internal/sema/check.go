package sema

import (
	"fmt"

	"declet/internal/ast"
	"declet/internal/diag"
)

// Options configures an analysis run. Reserved defaults to the built-in
// reserved-name set when nil.
type Options struct {
	Reporter diag.Reporter
	Reserved map[string]struct{}
}

// Analyzer performs the single declaration-checking pass: reserved names,
// duplicate names across the whole program, and initializer type
// compatibility. The checks do not short-circuit; one declarator can
// produce several diagnostics.
type Analyzer struct {
	opts Options
	seen map[string]struct{}
}

// NewAnalyzer returns an analyzer ready to check one program.
func NewAnalyzer(opts Options) *Analyzer {
	if opts.Reserved == nil {
		opts.Reserved = reservedWords
	}
	return &Analyzer{
		opts: opts,
		seen: make(map[string]struct{}),
	}
}

// Check walks the declarations in order and reports semantic errors. It
// never mutates decls.
func Check(decls []ast.Declaration, opts Options) {
	NewAnalyzer(opts).Check(decls)
}

func (a *Analyzer) Check(decls []ast.Declaration) {
	for i := range decls {
		a.checkDeclaration(&decls[i])
	}
}

func (a *Analyzer) checkDeclaration(decl *ast.Declaration) {
	for i := range decl.Declarators {
		a.checkDeclarator(decl.TypeName, &decl.Declarators[i])
	}
}

func (a *Analyzer) checkDeclarator(typeName string, d *ast.Declarator) {
	if _, reserved := a.opts.Reserved[d.Name]; reserved {
		a.report(diag.SemaReservedName, d,
			fmt.Sprintf("'%s' is a reserved word and cannot be used as a variable name", d.Name))
	}

	if _, dup := a.seen[d.Name]; dup {
		a.report(diag.SemaDuplicateName, d,
			fmt.Sprintf("variable '%s' is already declared", d.Name))
	} else {
		a.seen[d.Name] = struct{}{}
	}

	if d.Init != nil && !compatible(typeName, d.Init.Kind, d.Init.Text) {
		a.report(diag.SemaTypeMismatch, d,
			fmt.Sprintf("type mismatch: cannot assign %s %q to %s variable '%s'",
				literalName(d.Init.Kind), d.Init.Text, typeName, d.Name))
	}
}

func (a *Analyzer) report(code diag.Code, d *ast.Declarator, msg string) {
	if a.opts.Reporter != nil {
		a.opts.Reporter.Report(code, diag.SevError, d.Line, d.Span, msg)
	}
}
