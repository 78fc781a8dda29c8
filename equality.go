package sx

// IsEqual reports whether a and b are structurally equal under the rules
// used by the `==`/`!=` built-ins (spec.md §4.4.2): scalars compare by
// payload with numeric cross-promotion, expressions compare pairwise on
// kind, length and children, and functions compare on formals and body.
func IsEqual(a, b Value) bool {
	return valueEqual(a, b)
}

// HasSymbolName reports whether v is a Symbol with the given name.
func HasSymbolName(v Value, name string) bool {
	sym, ok := GetSymbol(v)
	return ok && string(sym) == name
}
