package sxeval

import (
	"fmt"

	"git.sr.ht/~sxlisp/sx"
)

// Apply implements closure application (spec.md §4.4.1). args holds the
// already-reduced argument cells. Arguments are bound left-to-right
// directly into f's own environment, consuming a fresh clone of f's
// formals so repeated calls each start from the full signature. Once every
// formal is satisfied, the body runs in a CloneFrame of that environment —
// a frozen snapshot of the bindings gathered so far — so that a recursive
// call made from within the body, which goes on to mutate f's environment
// again for its own invocation, cannot corrupt the arguments this call is
// still evaluating with.
func Apply(_ *sx.Environment, f *sx.Function, args *sx.Expression) (sx.Value, error) {
	formals := f.Formals().Clone().(*sx.Expression)
	fenv := f.Env()

	for args.Len() > 0 {
		if formals.Len() == 0 {
			return nil, fmt.Errorf("function %s: too many arguments", fnLabel(f))
		}
		formalSym, ok := sx.GetSymbol(formals.PopFront())
		if !ok {
			return nil, fmt.Errorf("function %s: formal is not a symbol", fnLabel(f))
		}
		if formalSym == sx.SymbolAmpersand {
			if formals.Len() != 1 {
				return nil, fmt.Errorf("function %s: '&' must be followed by exactly one symbol", fnLabel(f))
			}
			restSym, ok := sx.GetSymbol(formals.PopFront())
			if !ok {
				return nil, fmt.Errorf("function %s: '&' must be followed by a symbol", fnLabel(f))
			}
			remaining := make([]sx.Value, 0, args.Len())
			for args.Len() > 0 {
				remaining = append(remaining, args.PopFront())
			}
			fenv.Insert(restSym, sx.NewQExpression(remaining...))
			break
		}
		fenv.Insert(formalSym, args.PopFront())
	}

	if formals.Len() > 0 {
		if sym, ok := sx.GetSymbol(formals.At(0)); ok && sym == sx.SymbolAmpersand {
			if formals.Len() != 2 {
				return nil, fmt.Errorf("function %s: '&' must be followed by exactly one symbol", fnLabel(f))
			}
			varSym, ok := sx.GetSymbol(formals.At(1))
			if !ok {
				return nil, fmt.Errorf("function %s: '&' must be followed by a symbol", fnLabel(f))
			}
			fenv.Insert(varSym, sx.NewQExpression())
			formals = sx.NewQExpression()
		}
	}

	if formals.Len() == 0 {
		return evalBody(fenv.CloneFrame(), f.Body().Clone())
	}
	return sx.NewFunctionWithEnv(formals, f.Body().Clone(), fenv.CloneFrame()), nil
}

// evalBody runs a closure body: a QExpression body is retagged as an
// SExpression and evaluated, matching the conversion step in spec.md
// §4.4.1; any other value (e.g. a bare formal used as an identity body) is
// evaluated directly.
func evalBody(env *sx.Environment, body sx.Value) (sx.Value, error) {
	if e, ok := sx.GetExpression(body); ok {
		e.AsSExpression()
		return Eval(env, e)
	}
	return Eval(env, body)
}

func fnLabel(f *sx.Function) string {
	if name := f.Name(); name != "" {
		return name
	}
	return "<lambda>"
}
