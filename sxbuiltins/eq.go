package sxbuiltins

import (
	"fmt"

	"git.sr.ht/~sxlisp/sx"
)

// Eq implements `==`: structural equality over any two values, via the
// recursive sx.IsEqual helper (Open Question resolution #4, DESIGN.md).
func Eq() *sx.Builtin {
	return sx.NewBuiltin("==", func(_ *sx.Environment, args *sx.Expression) (sx.Value, error) {
		if args.Len() != 2 {
			return nil, fmt.Errorf("==: expected 2 arguments, got %d", args.Len())
		}
		if sx.IsEqual(args.At(0), args.At(1)) {
			return sx.Integer(1), nil
		}
		return sx.Integer(0), nil
	})
}

// Ne implements `!=`, the negation of `==`.
func Ne() *sx.Builtin {
	return sx.NewBuiltin("!=", func(_ *sx.Environment, args *sx.Expression) (sx.Value, error) {
		if args.Len() != 2 {
			return nil, fmt.Errorf("!=: expected 2 arguments, got %d", args.Len())
		}
		if sx.IsEqual(args.At(0), args.At(1)) {
			return sx.Integer(0), nil
		}
		return sx.Integer(1), nil
	})
}
