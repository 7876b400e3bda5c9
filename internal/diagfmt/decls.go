package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"declet/internal/ast"
)

// InitializerJSON is the JSON form of a declarator initializer.
type InitializerJSON struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// DeclaratorJSON is the JSON form of one declared variable.
type DeclaratorJSON struct {
	Name string           `json:"name"`
	Line uint32           `json:"line"`
	Init *InitializerJSON `json:"init,omitempty"`
}

// DeclarationJSON is the JSON form of one declaration statement.
type DeclarationJSON struct {
	Type        string           `json:"type"`
	Declarators []DeclaratorJSON `json:"declarators"`
}

// FormatDeclsPretty prints declarations one per line, declarator list
// rendered the way it was written.
func FormatDeclsPretty(w io.Writer, decls []ast.Declaration) error {
	for _, decl := range decls {
		parts := make([]string, 0, len(decl.Declarators))
		for _, d := range decl.Declarators {
			if d.Init != nil {
				parts = append(parts, fmt.Sprintf("%s = %s", d.Name, d.Init.Text))
			} else {
				parts = append(parts, d.Name)
			}
		}
		fmt.Fprintf(w, "%s %s;\n", decl.TypeName, strings.Join(parts, ", "))
	}
	return nil
}

// FormatDeclsJSON prints declarations as a JSON array.
func FormatDeclsJSON(w io.Writer, decls []ast.Declaration) error {
	output := make([]DeclarationJSON, 0, len(decls))
	for _, decl := range decls {
		dj := DeclarationJSON{
			Type:        decl.TypeName,
			Declarators: make([]DeclaratorJSON, 0, len(decl.Declarators)),
		}
		for _, d := range decl.Declarators {
			out := DeclaratorJSON{Name: d.Name, Line: d.Line}
			if d.Init != nil {
				out.Init = &InitializerJSON{
					Kind: d.Init.Kind.String(),
					Text: d.Init.Text,
				}
			}
			dj.Declarators = append(dj.Declarators, out)
		}
		output = append(output, dj)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
