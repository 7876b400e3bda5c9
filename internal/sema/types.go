package sema

import (
	"math"
	"strconv"
	"strings"

	"declet/internal/token"
)

// compatible reports whether a literal of kind lit may initialize a variable
// of the named type. Integral floating literals (5.0, 5f) are downgradable
// into the integer types.
func compatible(typeName string, lit token.Kind, litText string) bool {
	switch typeName {
	case "byte", "short", "int":
		if lit == token.IntLit {
			return true
		}
		return (lit == token.DoubleLit || lit == token.FloatLit) && isIntegral(litText)
	case "long":
		if lit == token.IntLit || lit == token.LongLit {
			return true
		}
		return (lit == token.DoubleLit || lit == token.FloatLit) && isIntegral(litText)
	case "float", "double":
		return lit == token.FloatLit || lit == token.DoubleLit || lit == token.IntLit
	case "boolean":
		return lit == token.BoolLit
	case "char":
		return lit == token.CharLit
	case "String":
		return lit == token.StringLit
	default:
		return false
	}
}

// isIntegral reports whether a numeric literal denotes a whole value once
// its suffix is stripped.
func isIntegral(text string) bool {
	t := strings.TrimRight(text, "fFdDlL")
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return false
	}
	return v == math.Trunc(v)
}

// literalName renders a literal kind for diagnostics.
func literalName(k token.Kind) string {
	switch k {
	case token.IntLit:
		return "int literal"
	case token.LongLit:
		return "long literal"
	case token.FloatLit:
		return "float literal"
	case token.DoubleLit:
		return "double literal"
	case token.CharLit:
		return "char literal"
	case token.StringLit:
		return "String literal"
	case token.BoolLit:
		return "boolean literal"
	default:
		return k.String()
	}
}
