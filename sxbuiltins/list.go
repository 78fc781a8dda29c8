package sxbuiltins

import (
	"fmt"

	"git.sr.ht/~sxlisp/sx"
	"git.sr.ht/~sxlisp/sx/sxeval"
)

// List tags its (already-evaluated) argument expression as a QExpression,
// grounded on `original_source`'s `builtin_list` ("pack the argument cells
// into a new Qexpr").
func List() *sx.Builtin {
	return sx.NewBuiltin("list", func(_ *sx.Environment, args *sx.Expression) (sx.Value, error) {
		cells := make([]sx.Value, args.Len())
		copy(cells, args.Cells())
		return sx.NewQExpression(cells...), nil
	})
}

// requireSingleQExpression extracts the lone QExpression argument `head`,
// `tail`, `eval`, and `init`/`last` all take.
func requireSingleQExpression(name string, args *sx.Expression) (*sx.Expression, error) {
	if args.Len() != 1 {
		return nil, fmt.Errorf("%s: expected 1 argument, got %d", name, args.Len())
	}
	e, ok := sx.GetExpression(args.At(0))
	if !ok || !e.IsQExpression() {
		return nil, fmt.Errorf("%s: expected a QExpression argument", name)
	}
	return e, nil
}

// Head returns a one-element QExpression holding the first cell of its
// argument, grounded on `original_source`'s `builtin_head`. An empty
// argument is a RuntimeError (Open Question resolution #3, DESIGN.md).
func Head() *sx.Builtin {
	return sx.NewBuiltin("head", func(_ *sx.Environment, args *sx.Expression) (sx.Value, error) {
		e, err := requireSingleQExpression("head", args)
		if err != nil {
			return nil, err
		}
		if e.Len() == 0 {
			return nil, fmt.Errorf("head: argument is empty")
		}
		return sx.NewQExpression(e.At(0)), nil
	})
}

// Tail returns its argument QExpression with the first cell removed,
// grounded on `original_source`'s `builtin_tail`. An empty argument is a
// RuntimeError (Open Question resolution #3, DESIGN.md).
func Tail() *sx.Builtin {
	return sx.NewBuiltin("tail", func(_ *sx.Environment, args *sx.Expression) (sx.Value, error) {
		e, err := requireSingleQExpression("tail", args)
		if err != nil {
			return nil, err
		}
		if e.Len() == 0 {
			return nil, fmt.Errorf("tail: argument is empty")
		}
		rest := e.Clone().(*sx.Expression)
		rest.PopFront()
		return rest, nil
	})
}

// Init returns its argument QExpression with the last cell removed.
// Supplemental to the base spec (SPEC_FULL.md's list-primitives
// completion); no `original_source` or teacher counterpart exists, so this
// shape is synthesized directly as the mirror image of Tail.
func Init() *sx.Builtin {
	return sx.NewBuiltin("init", func(_ *sx.Environment, args *sx.Expression) (sx.Value, error) {
		e, err := requireSingleQExpression("init", args)
		if err != nil {
			return nil, err
		}
		if e.Len() == 0 {
			return nil, fmt.Errorf("init: argument is empty")
		}
		rest := e.Clone().(*sx.Expression)
		rest.PopBack()
		return rest, nil
	})
}

// Last returns a one-element QExpression holding the final cell of its
// argument. Supplemental to the base spec.
func Last() *sx.Builtin {
	return sx.NewBuiltin("last", func(_ *sx.Environment, args *sx.Expression) (sx.Value, error) {
		e, err := requireSingleQExpression("last", args)
		if err != nil {
			return nil, err
		}
		if e.Len() == 0 {
			return nil, fmt.Errorf("last: argument is empty")
		}
		return sx.NewQExpression(e.At(e.Len() - 1)), nil
	})
}

// Len reports the number of cells in its QExpression argument.
// Supplemental to the base spec.
func Len() *sx.Builtin {
	return sx.NewBuiltin("len", func(_ *sx.Environment, args *sx.Expression) (sx.Value, error) {
		e, err := requireSingleQExpression("len", args)
		if err != nil {
			return nil, err
		}
		return sx.Integer(e.Len()), nil
	})
}

// Nth returns a one-element QExpression holding the cell at the given
// zero-based index. Supplemental to the base spec.
func Nth() *sx.Builtin {
	return sx.NewBuiltin("nth", func(_ *sx.Environment, args *sx.Expression) (sx.Value, error) {
		if args.Len() != 2 {
			return nil, fmt.Errorf("nth: expected 2 arguments, got %d", args.Len())
		}
		e, ok := sx.GetExpression(args.At(0))
		if !ok || !e.IsQExpression() {
			return nil, fmt.Errorf("nth: first argument must be a QExpression")
		}
		idx, ok := args.At(1).(sx.Integer)
		if !ok {
			return nil, fmt.Errorf("nth: second argument must be an Integer index")
		}
		i := int(idx)
		if i < 0 || i >= e.Len() {
			return nil, fmt.Errorf("nth: index %d out of range (length %d)", i, e.Len())
		}
		return sx.NewQExpression(e.At(i)), nil
	})
}

// Cons prepends a value to a QExpression. Supplemental to the base spec,
// grounded on the teacher's own `sxbuiltins/list.go`'s `Cons` builtin
// (adapted from a cons-pair to a QExpression cell); no `original_source`
// revision examined defines a `builtin_cons`.
func Cons() *sx.Builtin {
	return sx.NewBuiltin("cons", func(_ *sx.Environment, args *sx.Expression) (sx.Value, error) {
		if args.Len() != 2 {
			return nil, fmt.Errorf("cons: expected 2 arguments, got %d", args.Len())
		}
		e, ok := sx.GetExpression(args.At(1))
		if !ok || !e.IsQExpression() {
			return nil, fmt.Errorf("cons: second argument must be a QExpression")
		}
		cells := make([]sx.Value, 0, e.Len()+1)
		cells = append(cells, args.At(0))
		cells = append(cells, e.Cells()...)
		return sx.NewQExpression(cells...), nil
	})
}

// Join concatenates its QExpression arguments, in order (spec.md §4.4.2).
// Grounded on the teacher's own `sxbuiltins/list.go`'s `Append` builtin
// (the teacher's list-concatenation function); no `original_source`
// revision examined defines a `builtin_join` for this one to follow
// instead.
func Join() *sx.Builtin {
	return sx.NewBuiltin("join", func(_ *sx.Environment, args *sx.Expression) (sx.Value, error) {
		var cells []sx.Value
		for k := 0; k < args.Len(); k++ {
			e, ok := sx.GetExpression(args.At(k))
			if !ok || !e.IsQExpression() {
				return nil, fmt.Errorf("join: argument %d is not a QExpression", k)
			}
			cells = append(cells, e.Cells()...)
		}
		return sx.NewQExpression(cells...), nil
	})
}

// EvalBuiltin retags its sole QExpression argument as an SExpression and
// evaluates it, grounded on `original_source`'s `builtin_eval`. Named
// EvalBuiltin (not Eval) to avoid colliding with sxeval.Eval at call sites.
func EvalBuiltin() *sx.Builtin {
	return sx.NewBuiltin("eval", func(env *sx.Environment, args *sx.Expression) (sx.Value, error) {
		e, err := requireSingleQExpression("eval", args)
		if err != nil {
			return nil, err
		}
		return sxeval.Eval(env, e.Clone().(*sx.Expression).AsSExpression())
	})
}
