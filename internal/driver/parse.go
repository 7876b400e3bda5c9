package driver

import (
	"declet/internal/ast"
	"declet/internal/diag"
	"declet/internal/pipeline"
	"declet/internal/source"
	"declet/internal/token"
)

// ParseResult carries the artifacts of a lex-then-parse run.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	State   pipeline.State
	Tokens  []token.Token
	Decls   []ast.Declaration
	Bag     *diag.Bag
}

// Parse loads path and runs the first two phases through the pipeline
// controller. The syntax phase only runs when the lexical phase finished
// clean; otherwise the result stops at the lexical state with the lexical
// diagnostics.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	ctrl := pipeline.NewController(pipeline.Options{
		MaxDiagnostics: maxDiagnostics,
	})
	if err := ctrl.LoadFile(path); err != nil {
		return nil, err
	}

	if _, err := ctrl.RunLexical(); err != nil {
		return nil, err
	}
	if ctrl.State().CanRunSyntax() {
		if _, err := ctrl.RunSyntax(); err != nil {
			return nil, err
		}
	}

	return &ParseResult{
		FileSet: ctrl.FileSet(),
		File:    ctrl.File(),
		State:   ctrl.State(),
		Tokens:  ctrl.Tokens(),
		Decls:   ctrl.Decls(),
		Bag:     ctrl.Diagnostics(),
	}, nil
}
