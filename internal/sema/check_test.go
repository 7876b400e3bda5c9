package sema_test

import (
	"strings"
	"testing"

	"declet/internal/ast"
	"declet/internal/diag"
	"declet/internal/sema"
	"declet/internal/token"
)

func decl(typeName string, declarators ...ast.Declarator) ast.Declaration {
	return ast.Declaration{TypeName: typeName, Declarators: declarators}
}

func name(n string) ast.Declarator {
	return ast.Declarator{Name: n, Line: 1}
}

func initd(n string, kind token.Kind, text string) ast.Declarator {
	return ast.Declarator{Name: n, Line: 1, Init: &ast.Initializer{Kind: kind, Text: text}}
}

func check(decls ...ast.Declaration) *diag.Bag {
	bag := diag.NewBag(64)
	sema.Check(decls, sema.Options{Reporter: diag.BagReporter{Bag: bag}})
	return bag
}

func codesOf(bag *diag.Bag) []diag.Code {
	codes := make([]diag.Code, 0, bag.Len())
	for _, d := range bag.Items() {
		codes = append(codes, d.Code)
	}
	return codes
}

func TestCheck_CleanProgram(t *testing.T) {
	bag := check(
		decl("int", initd("x", token.IntLit, "5"), name("y")),
		decl("String", initd("s", token.StringLit, "hi")),
		decl("boolean", initd("ok", token.BoolLit, "true")),
	)
	if bag.HasErrors() {
		t.Fatalf("expected clean, got %v", bag.Items())
	}
}

func TestCheck_DuplicateAcrossDeclarations(t *testing.T) {
	bag := check(
		decl("int", name("x")),
		decl("double", name("x")),
	)
	if got := codesOf(bag); len(got) != 1 || got[0] != diag.SemaDuplicateName {
		t.Fatalf("expected one duplicate-name error, got %v", bag.Items())
	}
}

func TestCheck_DuplicateWithinDeclaration(t *testing.T) {
	// the second occurrence is the one reported
	bag := check(decl("int", name("a"), name("a"), name("a")))
	if got := codesOf(bag); len(got) != 2 {
		t.Fatalf("expected two duplicate-name errors, got %v", bag.Items())
	}
}

func TestCheck_DuplicateAttributedToLaterLine(t *testing.T) {
	bag := check(
		decl("int", ast.Declarator{Name: "x", Line: 3}),
		decl("long", ast.Declarator{Name: "x", Line: 7}),
	)
	items := bag.Items()
	if len(items) != 1 || items[0].Code != diag.SemaDuplicateName {
		t.Fatalf("expected one duplicate-name error, got %v", items)
	}
	if items[0].Line != 7 {
		t.Fatalf("duplicate must be reported at the redeclaration line, got line %d", items[0].Line)
	}
}

func TestCheck_ReservedName(t *testing.T) {
	for _, reserved := range []string{"class", "while", "int", "true", "null"} {
		t.Run(reserved, func(t *testing.T) {
			bag := check(decl("int", name(reserved)))
			found := false
			for _, c := range codesOf(bag) {
				if c == diag.SemaReservedName {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected reserved-name error for %q, got %v", reserved, bag.Items())
			}
		})
	}
}

func TestCheck_ChecksDoNotShortCircuit(t *testing.T) {
	// 'int' as a name is reserved; declared twice it is also a duplicate
	bag := check(
		decl("int", name("int")),
		decl("int", initd("int", token.StringLit, "oops")),
	)
	var reserved, dup, mismatch int
	for _, c := range codesOf(bag) {
		switch c {
		case diag.SemaReservedName:
			reserved++
		case diag.SemaDuplicateName:
			dup++
		case diag.SemaTypeMismatch:
			mismatch++
		}
	}
	if reserved != 2 || dup != 1 || mismatch != 1 {
		t.Fatalf("expected 2 reserved + 1 duplicate + 1 mismatch, got %v", bag.Items())
	}
}

func TestCheck_TypeCompatibility(t *testing.T) {
	tests := []struct {
		typeName string
		lit      token.Kind
		text     string
		ok       bool
	}{
		{"int", token.IntLit, "5", true},
		{"int", token.DoubleLit, "5.0", true},
		{"int", token.DoubleLit, "5.5", false},
		{"int", token.FloatLit, "4f", true},
		{"int", token.FloatLit, "4.5f", false},
		{"int", token.StringLit, "x", false},
		{"byte", token.IntLit, "1", true},
		{"short", token.DoubleLit, "2.25", false},
		{"long", token.IntLit, "5", true},
		{"long", token.LongLit, "5L", true},
		{"long", token.DoubleLit, "5.0", true},
		{"long", token.DoubleLit, "5.5", false},
		{"float", token.FloatLit, "1.5f", true},
		{"float", token.DoubleLit, "1.5", true},
		{"float", token.IntLit, "1", true},
		{"float", token.CharLit, "a", false},
		{"double", token.DoubleLit, "1.5", true},
		{"double", token.FloatLit, "1.5f", true},
		{"double", token.IntLit, "1", true},
		{"double", token.BoolLit, "true", false},
		{"boolean", token.BoolLit, "false", true},
		{"boolean", token.IntLit, "0", false},
		{"char", token.CharLit, "a", true},
		{"char", token.StringLit, "a", false},
		{"String", token.StringLit, "hi", true},
		{"String", token.CharLit, "h", false},
	}

	for _, tt := range tests {
		t.Run(tt.typeName+"_"+tt.lit.String()+"_"+tt.text, func(t *testing.T) {
			bag := check(decl(tt.typeName, initd("v", tt.lit, tt.text)))
			hasMismatch := false
			for _, c := range codesOf(bag) {
				if c == diag.SemaTypeMismatch {
					hasMismatch = true
				}
			}
			if tt.ok && hasMismatch {
				t.Errorf("expected %s = %s(%s) to be compatible, got %v", tt.typeName, tt.lit, tt.text, bag.Items())
			}
			if !tt.ok && !hasMismatch {
				t.Errorf("expected %s = %s(%s) to mismatch", tt.typeName, tt.lit, tt.text)
			}
		})
	}
}

func TestCheck_MismatchMessageNamesVariable(t *testing.T) {
	bag := check(decl("boolean", initd("flag", token.IntLit, "1")))
	items := bag.Items()
	if len(items) != 1 {
		t.Fatalf("expected one error, got %v", items)
	}
	if !strings.Contains(items[0].Message, "'flag'") || !strings.Contains(items[0].Message, "boolean") {
		t.Errorf("message should name the variable and type: %q", items[0].Message)
	}
}

func TestCheck_CustomReservedSet(t *testing.T) {
	bag := diag.NewBag(8)
	sema.Check(
		[]ast.Declaration{decl("int", name("while"), name("custom"))},
		sema.Options{
			Reporter: diag.BagReporter{Bag: bag},
			Reserved: map[string]struct{}{"custom": {}},
		},
	)
	// the injected set fully replaces the default one
	if got := codesOf(bag); len(got) != 1 || got[0] != diag.SemaReservedName {
		t.Fatalf("expected exactly one reserved-name error for 'custom', got %v", bag.Items())
	}
}

func TestCheck_NoInitializerNeverMismatches(t *testing.T) {
	bag := check(decl("boolean", name("x")))
	if bag.HasErrors() {
		t.Fatalf("expected clean, got %v", bag.Items())
	}
}
