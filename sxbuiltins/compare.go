package sxbuiltins

import (
	"fmt"

	"git.sr.ht/~sxlisp/sx"
)

// numericCompare builds a binary numeric comparison built-in (`<`, `<=`,
// `>`, `>=`), returning Integer 1 or 0 (spec.md §4.4.2). No revision of
// `original_source` examined implements comparisons; this shape is
// synthesized directly from the spec text (see DESIGN.md).
func numericCompare(name string, intCmp func(a, b int64) bool, dblCmp func(a, b float64) bool) *sx.Builtin {
	return sx.NewBuiltin(name, func(_ *sx.Environment, args *sx.Expression) (sx.Value, error) {
		if args.Len() != 2 {
			return nil, fmt.Errorf("%s: expected 2 arguments, got %d", name, args.Len())
		}
		a, b := args.At(0), args.At(1)
		if !sx.IsNumeric(a) || !sx.IsNumeric(b) {
			return nil, fmt.Errorf("%s: both arguments must be numeric", name)
		}
		ai, aIsInt := a.(sx.Integer)
		bi, bIsInt := b.(sx.Integer)
		var result bool
		if aIsInt && bIsInt {
			result = intCmp(int64(ai), int64(bi))
		} else {
			result = dblCmp(sx.AsFloat(a), sx.AsFloat(b))
		}
		if result {
			return sx.Integer(1), nil
		}
		return sx.Integer(0), nil
	})
}

// Lt implements `<`.
func Lt() *sx.Builtin {
	return numericCompare("<", func(a, b int64) bool { return a < b }, func(a, b float64) bool { return a < b })
}

// Le implements `<=`.
func Le() *sx.Builtin {
	return numericCompare("<=", func(a, b int64) bool { return a <= b }, func(a, b float64) bool { return a <= b })
}

// Gt implements `>`.
func Gt() *sx.Builtin {
	return numericCompare(">", func(a, b int64) bool { return a > b }, func(a, b float64) bool { return a > b })
}

// Ge implements `>=`.
func Ge() *sx.Builtin {
	return numericCompare(">=", func(a, b int64) bool { return a >= b }, func(a, b float64) bool { return a >= b })
}
