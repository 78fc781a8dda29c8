// Package sx provides the tagged value model and lexical environment shared
// by the reader, evaluator, and built-ins of a small Lisp-family interpreter.
package sx

import (
	"fmt"
	"io"
)

// Value is the generic tagged value every runtime object must fulfill. It is
// the single sum type of the interpreter's data model: Integer, Double,
// String, Symbol, Builtin, Function, SExpression, QExpression, and Error are
// its variants. *Environment also implements Value, so that an environment
// can be held as cell data.
type Value interface {
	fmt.Stringer

	// IsNil checks if the concrete value is the nil value.
	IsNil() bool

	// IsAtom returns true iff the value is not further decomposable.
	IsAtom() bool

	// IsEqual compares two values for the structural equality defined by
	// the `==`/`!=` built-ins.
	IsEqual(Value) bool

	// Clone returns a deep copy for Function and expression variants, and
	// the receiver itself (scalars are immutable in spirit) otherwise.
	Clone() Value
}

// IsNil returns true if the given value is nil or the nil value.
func IsNil(v Value) bool { return v == nil || v.IsNil() }

// Printable is a value with a representation that differs from String().
type Printable interface {
	// Print emits the string representation on the given Writer.
	Print(io.Writer) (int, error)
}

// Print writes the display representation of v to w, per the rules in
// spec.md §4.1: Integer/Double/String plainly, Symbol by name, SExpression
// as "(x1 x2 …)", QExpression as "[x1 x2 …]", String quoted, Function and
// Builtin as opaque placeholders.
func Print(w io.Writer, v Value) (int, error) {
	if pr, ok := v.(Printable); ok {
		return pr.Print(w)
	}
	if IsNil(v) {
		return io.WriteString(w, "()")
	}
	return io.WriteString(w, v.String())
}
