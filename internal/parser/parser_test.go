package parser_test

import (
	"testing"

	"declet/internal/ast"
	"declet/internal/diag"
	"declet/internal/lexer"
	"declet/internal/parser"
	"declet/internal/source"
	"declet/internal/token"
)

// parseSource lexes input and parses the resulting stream. The input must
// be lexically clean; the test fails otherwise.
func parseSource(t *testing.T, input string) ([]ast.Declaration, *diag.Bag) {
	t.Helper()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.decl", []byte(input))

	lexBag := diag.NewBag(64)
	lx := lexer.New(fs.Get(fileID), lexer.Options{
		Reporter: diag.BagReporter{Bag: lexBag},
	})
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	if lexBag.HasErrors() {
		t.Fatalf("input is not lexically clean: %v", lexBag.Items())
	}

	bag := diag.NewBag(64)
	res := parser.Parse(tokens, parser.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	return res.Decls, bag
}

func codesOf(bag *diag.Bag) []diag.Code {
	codes := make([]diag.Code, 0, bag.Len())
	for _, d := range bag.Items() {
		codes = append(codes, d.Code)
	}
	return codes
}

func TestParse_SingleDeclaration(t *testing.T) {
	decls, bag := parseSource(t, "int x = 5;")

	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if len(decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(decls))
	}
	d := decls[0]
	if d.TypeName != "int" || len(d.Declarators) != 1 {
		t.Fatalf("unexpected declaration: %+v", d)
	}
	dr := d.Declarators[0]
	if dr.Name != "x" || dr.Init == nil || dr.Init.Kind != token.IntLit || dr.Init.Text != "5" {
		t.Errorf("unexpected declarator: %+v", dr)
	}
}

func TestParse_MultipleDeclarators(t *testing.T) {
	decls, bag := parseSource(t, "double a, b = 2.5, c;")

	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if len(decls) != 1 || len(decls[0].Declarators) != 3 {
		t.Fatalf("expected one declaration with 3 declarators, got %+v", decls)
	}
	names := []string{"a", "b", "c"}
	for i, dr := range decls[0].Declarators {
		if dr.Name != names[i] {
			t.Errorf("declarator %d: expected %q, got %q", i, names[i], dr.Name)
		}
	}
	if decls[0].Declarators[0].Init != nil || decls[0].Declarators[2].Init != nil {
		t.Errorf("a and c must have no initializer")
	}
	if init := decls[0].Declarators[1].Init; init == nil || init.Kind != token.DoubleLit {
		t.Errorf("b must have a double initializer, got %+v", init)
	}
}

func TestParse_MultipleStatements(t *testing.T) {
	decls, bag := parseSource(t, "int x;\nString s = \"hi\";\nboolean ok = true;")

	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if len(decls) != 3 {
		t.Fatalf("expected 3 declarations, got %d", len(decls))
	}
	if decls[1].TypeName != "String" || decls[2].Declarators[0].Init.Kind != token.BoolLit {
		t.Errorf("unexpected declarations: %+v", decls)
	}
}

func TestParse_MissingLiteralAfterAssign(t *testing.T) {
	decls, bag := parseSource(t, "int x = ;")

	if got := codesOf(bag); len(got) != 1 || got[0] != diag.SynExpectLiteral {
		t.Fatalf("expected one expect-literal error, got %v", bag.Items())
	}
	// the declarator survives without an initializer
	if len(decls) != 1 || len(decls[0].Declarators) != 1 {
		t.Fatalf("expected the declaration to survive, got %+v", decls)
	}
	if decls[0].Declarators[0].Init != nil {
		t.Errorf("initializer must be unset after a missing literal")
	}
}

func TestParse_MissingSemicolonAtEOF(t *testing.T) {
	decls, bag := parseSource(t, "int x = 5")

	if got := codesOf(bag); len(got) != 1 || got[0] != diag.SynUnexpectedEOF {
		t.Fatalf("expected one unexpected-EOF error, got %v", bag.Items())
	}
	if len(decls) != 1 || decls[0].Declarators[0].Name != "x" {
		t.Fatalf("expected the declaration to survive, got %+v", decls)
	}
}

func TestParse_MissingIdentifier(t *testing.T) {
	decls, bag := parseSource(t, "int = 5;")

	found := false
	for _, c := range codesOf(bag) {
		if c == diag.SynExpectIdentifier {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an expect-identifier error, got %v", bag.Items())
	}
	// zero declarators means no declaration is produced
	if len(decls) != 0 {
		t.Fatalf("expected no declarations, got %+v", decls)
	}
}

func TestParse_NotATypeAtStart(t *testing.T) {
	decls, bag := parseSource(t, "x = 5;\nint y;")

	found := false
	for _, c := range codesOf(bag) {
		if c == diag.SynExpectType {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an expect-type error, got %v", bag.Items())
	}
	// recovery skips to the next ';' and resumes with the next statement
	if len(decls) != 1 || decls[0].Declarators[0].Name != "y" {
		t.Fatalf("expected recovery to keep the second declaration, got %+v", decls)
	}
}

func TestParse_RecoveryAcrossComma(t *testing.T) {
	decls, bag := parseSource(t, "int x = 5 5, y = 2;")

	if !bag.HasErrors() {
		t.Fatal("expected errors")
	}
	// the second declarator still parses after resync at the comma
	if len(decls) != 1 || len(decls[0].Declarators) != 2 {
		t.Fatalf("expected both declarators, got %+v", decls)
	}
	if decls[0].Declarators[1].Name != "y" {
		t.Errorf("expected declarator y, got %+v", decls[0].Declarators[1])
	}
}

func TestParse_EmptyInput(t *testing.T) {
	decls, bag := parseSource(t, "")
	if bag.HasErrors() || len(decls) != 0 {
		t.Fatalf("empty input must parse clean and empty, got %+v / %v", decls, bag.Items())
	}
}

func TestParse_DeclaratorLines(t *testing.T) {
	decls, bag := parseSource(t, "int a,\n    b;")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if decls[0].Declarators[0].Line != 1 || decls[0].Declarators[1].Line != 2 {
		t.Errorf("declarator lines wrong: %+v", decls[0].Declarators)
	}
}

func TestParse_NeverMutatesTokens(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.decl", []byte("int x = 1;"))
	lx := lexer.New(fs.Get(fileID), lexer.Options{})
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	before := make([]token.Token, len(tokens))
	copy(before, tokens)

	parser.Parse(tokens, parser.Options{})

	for i := range tokens {
		if tokens[i] != before[i] {
			t.Fatalf("token %d mutated: %+v != %+v", i, tokens[i], before[i])
		}
	}
}
