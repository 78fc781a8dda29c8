package sx

import (
	"fmt"
	"io"
)

// BuiltinFunc is the signature every host-provided function must implement:
// it receives the calling environment and the already-reduced argument
// expression, and produces a value or an error (spec.md §4.4.2).
type BuiltinFunc func(env *Environment, args *Expression) (Value, error)

// Builtin wraps a host Go function as a callable Value.
type Builtin struct {
	name string
	fn   BuiltinFunc
}

// NewBuiltin wraps fn under the given name.
func NewBuiltin(name string, fn BuiltinFunc) *Builtin {
	return &Builtin{name: name, fn: fn}
}

// Name returns the built-in's registered name.
func (b *Builtin) Name() string { return b.name }

// Call invokes the wrapped function.
func (b *Builtin) Call(env *Environment, args *Expression) (Value, error) {
	return b.fn(env, args)
}

// IsNil always returns false.
func (*Builtin) IsNil() bool { return false }

// IsAtom always returns true: a built-in is opaque to decomposition.
func (*Builtin) IsAtom() bool { return true }

// IsEqual compares built-ins by registered name: two wrappers around the
// same host function are interchangeable.
func (b *Builtin) IsEqual(other Value) bool {
	o, ok := other.(*Builtin)
	return ok && b.name == o.name
}

// Clone returns the receiver: a built-in carries no mutable state.
func (b *Builtin) Clone() Value { return b }

// String returns an opaque, human-readable placeholder.
func (b *Builtin) String() string { return fmt.Sprintf("<builtin:%s>", b.name) }

// Print writes the same placeholder String returns.
func (b *Builtin) Print(w io.Writer) (int, error) {
	return io.WriteString(w, b.String())
}

// GetBuiltin returns v as a *Builtin, if possible.
func GetBuiltin(v Value) (*Builtin, bool) {
	b, ok := v.(*Builtin)
	return b, ok
}

// IsCallable reports whether v can appear in head position of an applied
// SExpression: a Builtin or a Function.
func IsCallable(v Value) bool {
	switch v.(type) {
	case *Builtin, *Function:
		return true
	default:
		return false
	}
}
