package sxbuiltins

import (
	"fmt"

	"git.sr.ht/~sxlisp/sx"
)

// ErrorBuiltin implements `error`: constructs a first-class ErrorValue
// carrying its String argument (spec.md §4.4.2). Synthesized from the spec
// text; no revision of `original_source` examined has an `error` built-in
// (see DESIGN.md).
func ErrorBuiltin() *sx.Builtin {
	return sx.NewBuiltin("error", func(_ *sx.Environment, args *sx.Expression) (sx.Value, error) {
		if args.Len() != 1 {
			return nil, fmt.Errorf("error: expected 1 argument, got %d", args.Len())
		}
		msg, ok := sx.GetString(args.At(0))
		if !ok {
			return nil, fmt.Errorf("error: argument must be a String")
		}
		return sx.NewErrorValue(string(msg)), nil
	})
}
