// Package sxeval implements the tree-walking evaluator: applicative-order
// reduction of SExpression values, special-form recognition for binding and
// control forms, and closure/built-in application.
package sxeval

import (
	"fmt"

	"git.sr.ht/~sxlisp/sx"
)

// Eval reduces v to a value, dispatching on its variant (spec.md §4.4).
// Integer, Double, String, QExpression, Builtin, Function, and ErrorValue
// evaluate to themselves; a Symbol is resolved against env; an SExpression
// is reduced by evalSExpression.
func Eval(env *sx.Environment, v sx.Value) (sx.Value, error) {
	switch val := v.(type) {
	case sx.Symbol:
		bound, ok := env.Lookup(val)
		if !ok {
			return nil, fmt.Errorf("unbound symbol: %s", val.Name())
		}
		return bound, nil
	case *sx.Expression:
		if val.IsQExpression() {
			return val, nil
		}
		return evalSExpression(env, val)
	default:
		return v, nil
	}
}

// evalSExpression implements spec.md §4.4's four-step reduction. It walks
// the cells left to right: binding and control forms are recognized
// syntactically (their argument cells are left unevaluated, or partially
// evaluated, as each form requires) and collapsed in place to the single
// value they produce; every other cell is reduced by a plain recursive
// Eval. Once every cell has been visited, an expression that a recognized
// form collapsed to a single cell yields that cell's value; otherwise the
// first cell must hold a Builtin or Function, which is then applied to the
// rest.
func evalSExpression(env *sx.Environment, expr *sx.Expression) (sx.Value, error) {
	switch expr.Len() {
	case 0:
		return expr, nil
	case 1:
		return Eval(env, expr.At(0))
	}

	i := 0
	for i < expr.Len() {
		sym, isSym := sx.GetSymbol(expr.At(i))
		if !isSym {
			reduced, err := Eval(env, expr.At(i))
			if err != nil {
				return nil, err
			}
			expr.SetAt(i, reduced)
			i++
			continue
		}

		switch sym {
		case sx.SymbolDef, sx.SymbolDefine, sx.SymbolPut, sx.SymbolPut2:
			result, consumed, err := evalBindForm(env, sym, expr, i)
			if err != nil {
				return nil, err
			}
			spliceReplace(expr, i, consumed, result)
			i++
		case sx.SymbolLambda, sx.SymbolLambda2:
			result, consumed, err := evalLambdaForm(env, expr, i)
			if err != nil {
				return nil, err
			}
			spliceReplace(expr, i, consumed, result)
			i++
		case sx.SymbolIf:
			result, consumed, err := evalIfForm(env, expr, i)
			if err != nil {
				return nil, err
			}
			spliceReplace(expr, i, consumed, result)
			i++
		case sx.SymbolDefun:
			result, consumed, err := evalDefunForm(env, expr, i)
			if err != nil {
				return nil, err
			}
			spliceReplace(expr, i, consumed, result)
			i++
		default:
			reduced, err := Eval(env, expr.At(i))
			if err != nil {
				return nil, err
			}
			expr.SetAt(i, reduced)
			i++
		}
	}

	if expr.Len() == 1 {
		return expr.At(0), nil
	}

	head := expr.At(0)
	rest := sx.NewSExpression(expr.Cells()[1:]...)
	switch fn := head.(type) {
	case *sx.Builtin:
		return fn.Call(env, rest)
	case *sx.Function:
		return Apply(env, fn, rest)
	default:
		return nil, fmt.Errorf("cannot apply non-function value: %v", head)
	}
}

// spliceReplace overwrites the n cells of expr starting at i with the
// single value v, shrinking expr by n-1 cells. It is how `defun` and the
// other recognized forms collapse their argument cells to the one value
// they reduce to.
func spliceReplace(expr *sx.Expression, i, n int, v sx.Value) {
	cells := expr.Cells()
	tail := append([]sx.Value{v}, cells[i+n:]...)
	expr.Truncate(i)
	for _, c := range tail {
		expr.PushBack(c)
	}
}

// forceQExpression wraps v as a one-element QExpression unless it is
// already a QExpression (spec.md §4.4, the `def`/`define`/`=` target rule).
func forceQExpression(v sx.Value) *sx.Expression {
	if e, ok := sx.GetExpression(v); ok && e.IsQExpression() {
		return e
	}
	return sx.NewQExpression(v)
}

// isTruthy reports whether v is the `if` special form's true branch: zero
// is false, every other value (including non-numeric ones) is true. There
// is no dedicated Boolean variant in this data model (spec.md §3).
func isTruthy(v sx.Value) bool {
	switch n := v.(type) {
	case sx.Integer:
		return n != 0
	case sx.Double:
		return n != 0
	default:
		return true
	}
}
