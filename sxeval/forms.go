package sxeval

import (
	"fmt"

	"git.sr.ht/~sxlisp/sx"
	"t73f.de/r/zero/set"
)

// evalBindForm implements `def`/`define` and `=`/`put` (spec.md §4.4): the
// binding target is forced to a QExpression of symbols without being
// evaluated, the value cell(s) are evaluated normally, and the binding is
// installed either globally (`def`/`define`) or in the current frame
// (`=`/`put`, matching the Open Question resolution recorded in the
// project's design notes). It returns the collapsed result (an empty
// QExpression, the conventional "no value" marker) and how many cells it
// consumed.
func evalBindForm(env *sx.Environment, head sx.Symbol, expr *sx.Expression, i int) (sx.Value, int, error) {
	if expr.Len() < i+3 {
		return nil, 0, fmt.Errorf("%s: too few arguments", head.Name())
	}
	target := forceQExpression(expr.At(i + 1))
	names := make([]sx.Symbol, target.Len())
	for k := 0; k < target.Len(); k++ {
		name, ok := sx.GetSymbol(target.At(k))
		if !ok {
			return nil, 0, fmt.Errorf("%s: binding target must be a symbol, got %v", head.Name(), target.At(k))
		}
		names[k] = name
	}
	if len(names) == 0 {
		return nil, 0, fmt.Errorf("%s: binding target is empty", head.Name())
	}
	if expr.Len() < i+2+len(names) {
		return nil, 0, fmt.Errorf("%s: too few values for %d binding(s)", head.Name(), len(names))
	}
	values := make([]sx.Value, len(names))
	for k := range names {
		v, err := Eval(env, expr.At(i+2+k))
		if err != nil {
			return nil, 0, err
		}
		values[k] = v
	}
	for k, name := range names {
		if head == sx.SymbolPut || head == sx.SymbolPut2 {
			env.Insert(name, values[k])
		} else {
			env.InsertGlobal(name, values[k])
		}
	}
	return sx.NewQExpression(), 2 + len(names), nil
}

// evalLambdaForm implements `lambda`/`\` (spec.md §4.4): formals and body
// are captured unevaluated and closed over the current environment.
func evalLambdaForm(env *sx.Environment, expr *sx.Expression, i int) (sx.Value, int, error) {
	if expr.Len() < i+3 {
		return nil, 0, fmt.Errorf("lambda: too few arguments")
	}
	formals, ok := sx.GetExpression(expr.At(i + 1))
	if !ok || !formals.IsQExpression() {
		return nil, 0, fmt.Errorf("lambda: formals must be a QExpression of symbols")
	}
	if err := checkFormals(formals); err != nil {
		return nil, 0, err
	}
	body := expr.At(i + 2)
	fn := sx.NewFunction(formals.Clone().(*sx.Expression), body.Clone(), env)
	return fn, 3, nil
}

// evalIfForm implements `if` (spec.md §4.4): the condition is evaluated
// eagerly, then only the selected branch is evaluated.
func evalIfForm(env *sx.Environment, expr *sx.Expression, i int) (sx.Value, int, error) {
	if expr.Len() < i+4 {
		return nil, 0, fmt.Errorf("if: too few arguments")
	}
	cond, err := Eval(env, expr.At(i+1))
	if err != nil {
		return nil, 0, err
	}
	branch := expr.At(i + 3)
	if isTruthy(cond) {
		branch = expr.At(i + 2)
	}
	result, err := Eval(env, branch)
	return result, 4, err
}

// evalDefunForm implements `defun` (spec.md §4.4): it synthesizes a named
// Function from a `[name formal…]` specification and binds it in env.
func evalDefunForm(env *sx.Environment, expr *sx.Expression, i int) (sx.Value, int, error) {
	if expr.Len() < i+3 {
		return nil, 0, fmt.Errorf("defun: too few arguments")
	}
	spec, ok := sx.GetExpression(expr.At(i + 1))
	if !ok || !spec.IsQExpression() || spec.Len() < 1 {
		return nil, 0, fmt.Errorf("defun: expected [name formal…], got %v", expr.At(i+1))
	}
	name, ok := sx.GetSymbol(spec.At(0))
	if !ok {
		return nil, 0, fmt.Errorf("defun: function name must be a symbol, got %v", spec.At(0))
	}
	formals := sx.NewQExpression(spec.Cells()[1:]...)
	if err := checkFormals(formals); err != nil {
		return nil, 0, err
	}
	body := expr.At(i + 2)
	fn := sx.NewFunction(formals.Clone().(*sx.Expression), body.Clone(), env).Named(name.Name())
	env.Insert(name, fn)
	return fn, 3, nil
}

// checkFormals rejects a formal-parameter list containing a non-symbol or a
// duplicate symbol; duplicates are found by comparing the size of a set of
// the names with the number of names.
func checkFormals(formals *sx.Expression) error {
	names := make([]string, formals.Len())
	for k := 0; k < formals.Len(); k++ {
		sym, ok := sx.GetSymbol(formals.At(k))
		if !ok {
			return fmt.Errorf("formal parameter %d is not a symbol: %v", k, formals.At(k))
		}
		names[k] = sym.Name()
	}
	if set.New(names...).Length() != len(names) {
		return fmt.Errorf("duplicate formal parameter in %v", formals)
	}
	return nil
}
