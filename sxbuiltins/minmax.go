package sxbuiltins

import (
	"fmt"

	"git.sr.ht/~sxlisp/sx"
)

// variadicExtremum implements `min`/`max`: at least one numeric argument,
// type-promoting to Double as soon as any argument is a Double (the same
// promotion rule as the arithmetic reducers). No revision of
// `original_source` examined implements `min`/`max`; synthesized from
// spec.md §4.4.2 (see DESIGN.md).
func variadicExtremum(name string, pickInt func(a, b int64) int64, pickDbl func(a, b float64) float64) *sx.Builtin {
	return sx.NewBuiltin(name, func(_ *sx.Environment, args *sx.Expression) (sx.Value, error) {
		if args.Len() == 0 {
			return nil, fmt.Errorf("%s: no arguments", name)
		}
		isDouble := false
		for k := 0; k < args.Len(); k++ {
			if !sx.IsNumeric(args.At(k)) {
				return nil, fmt.Errorf("%s: argument %d is not numeric: %v", name, k, args.At(k))
			}
			if _, ok := args.At(k).(sx.Double); ok {
				isDouble = true
			}
		}
		if !isDouble {
			acc := int64(args.At(0).(sx.Integer))
			for k := 1; k < args.Len(); k++ {
				acc = pickInt(acc, int64(args.At(k).(sx.Integer)))
			}
			return sx.Integer(acc), nil
		}
		acc := sx.AsFloat(args.At(0))
		for k := 1; k < args.Len(); k++ {
			acc = pickDbl(acc, sx.AsFloat(args.At(k)))
		}
		return sx.Double(acc), nil
	})
}

// Min implements `min`.
func Min() *sx.Builtin {
	return variadicExtremum("min",
		func(a, b int64) int64 {
			if b < a {
				return b
			}
			return a
		},
		func(a, b float64) float64 {
			if b < a {
				return b
			}
			return a
		})
}

// Max implements `max`.
func Max() *sx.Builtin {
	return variadicExtremum("max",
		func(a, b int64) int64 {
			if b > a {
				return b
			}
			return a
		},
		func(a, b float64) float64 {
			if b > a {
				return b
			}
			return a
		})
}
