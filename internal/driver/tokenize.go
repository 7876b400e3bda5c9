package driver

import (
	"declet/internal/diag"
	"declet/internal/lexer"
	"declet/internal/source"
	"declet/internal/token"
)

// TokenizeResult carries the artifacts of a standalone lexer run.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path and runs the lexer over it. Unlike the gated
// pipeline, the token stream is returned even when the run produced
// errors: erroneous lexemes become diagnostics, valid ones still become
// tokens.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporterAdapter := &lexer.ReporterAdapter{Bag: bag}
	lx := lexer.New(file, lexer.Options{
		Reporter: reporterAdapter.Reporter(),
	})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	bag.Sort()

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
