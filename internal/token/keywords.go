package token

// typeNames is the closed set of declaration type names. It is never
// mutated after init.
var typeNames = map[string]struct{}{
	"byte":    {},
	"short":   {},
	"int":     {},
	"long":    {},
	"float":   {},
	"double":  {},
	"boolean": {},
	"char":    {},
	"String":  {},
}

// LookupTypeName reports whether ident is one of the built-in type names.
// The lookup is case-sensitive.
func LookupTypeName(ident string) bool {
	_, ok := typeNames[ident]
	return ok
}

// TypeNames returns a copy of the type-name set, for callers that need to
// seed their own immutable set.
func TypeNames() map[string]struct{} {
	out := make(map[string]struct{}, len(typeNames))
	for name := range typeNames {
		out[name] = struct{}{}
	}
	return out
}
