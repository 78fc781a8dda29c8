// Package sxbuiltins provides the host-implemented functions bound into the
// root Environment at startup: arithmetic, comparison, equality, list
// primitives, and the `error` value constructor.
package sxbuiltins

import (
	"fmt"

	"git.sr.ht/~sxlisp/sx"
)

// reduceNumeric implements the common shape of `+`, `-`, `*`, `/`: at least
// one numeric cell is required; the accumulator promotes to Double as soon
// as any cell is a Double, and the left-to-right reduction starts from the
// first cell (spec.md §4.4.2), grounded on `original_source`'s
// `builtin_op` template, including that template's single-cell behavior:
// tracing its accumulator loop shows a one-argument call returns that
// argument unchanged for every operator (no degrade-to-negation for `-`,
// no degrade-to-reciprocal for `/`).
func reduceNumeric(name string, intOp func(a, b int64) (int64, error), dblOp func(a, b float64) float64) sx.BuiltinFunc {
	return func(_ *sx.Environment, args *sx.Expression) (sx.Value, error) {
		if args.Len() == 0 {
			return nil, fmt.Errorf("%s: no arguments to reduce", name)
		}
		for k := 0; k < args.Len(); k++ {
			if !sx.IsNumeric(args.At(k)) {
				return nil, fmt.Errorf("%s: argument %d is not numeric: %v", name, k, args.At(k))
			}
		}
		if args.Len() == 1 {
			return args.At(0), nil
		}

		isDouble := false
		for k := 0; k < args.Len(); k++ {
			if _, ok := args.At(k).(sx.Double); ok {
				isDouble = true
				break
			}
		}

		if !isDouble {
			acc := int64(args.At(0).(sx.Integer))
			for k := 1; k < args.Len(); k++ {
				var err error
				acc, err = intOp(acc, int64(args.At(k).(sx.Integer)))
				if err != nil {
					return nil, fmt.Errorf("%s: %w", name, err)
				}
			}
			return sx.Integer(acc), nil
		}

		acc := sx.AsFloat(args.At(0))
		for k := 1; k < args.Len(); k++ {
			acc = dblOp(acc, sx.AsFloat(args.At(k)))
		}
		return sx.Double(acc), nil
	}
}

func intAdd(a, b int64) (int64, error) { return a + b, nil }
func intSub(a, b int64) (int64, error) { return a - b, nil }
func intMul(a, b int64) (int64, error) { return a * b, nil }

func dblAdd(a, b float64) float64 { return a + b }
func dblSub(a, b float64) float64 { return a - b }
func dblMul(a, b float64) float64 { return a * b }

// Add implements `+`.
func Add() *sx.Builtin { return sx.NewBuiltin("+", reduceNumeric("+", intAdd, dblAdd)) }

// Sub implements `-`. A single argument is returned unchanged, matching
// `original_source`'s accumulator (there is no unary negation).
func Sub() *sx.Builtin { return sx.NewBuiltin("-", reduceNumeric("-", intSub, dblSub)) }

// Mul implements `*`.
func Mul() *sx.Builtin { return sx.NewBuiltin("*", reduceNumeric("*", intMul, dblMul)) }

// Div implements `/`, returning ErrDivideByZero wrapped with the operator
// name when any divisor cell is zero. A single argument is returned
// unchanged, matching `original_source`'s accumulator (there is no
// degrade-to-reciprocal).
func Div() *sx.Builtin {
	return sx.NewBuiltin("/", func(env *sx.Environment, args *sx.Expression) (sx.Value, error) {
		if args.Len() == 0 {
			return nil, fmt.Errorf("/: no arguments to reduce")
		}
		for k := 0; k < args.Len(); k++ {
			if !sx.IsNumeric(args.At(k)) {
				return nil, fmt.Errorf("/: argument %d is not numeric: %v", k, args.At(k))
			}
		}
		if args.Len() == 1 {
			return args.At(0), nil
		}
		isDouble := false
		for k := 0; k < args.Len(); k++ {
			if _, ok := args.At(k).(sx.Double); ok {
				isDouble = true
				break
			}
		}
		if !isDouble {
			acc := int64(args.At(0).(sx.Integer))
			for k := 1; k < args.Len(); k++ {
				divisor := int64(args.At(k).(sx.Integer))
				if divisor == 0 {
					return nil, fmt.Errorf("/: %w", sx.ErrDivideByZero)
				}
				acc /= divisor
			}
			return sx.Integer(acc), nil
		}
		acc := sx.AsFloat(args.At(0))
		for k := 1; k < args.Len(); k++ {
			divisor := sx.AsFloat(args.At(k))
			if divisor == 0 {
				return nil, fmt.Errorf("/: %w", sx.ErrDivideByZero)
			}
			acc /= divisor
		}
		return sx.Double(acc), nil
	})
}
