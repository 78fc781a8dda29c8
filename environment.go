package sx

import (
	"fmt"
	"io"
)

// Environment is a lexical scope mapping symbols to values, with an optional
// parent to delegate unresolved lookups to (spec.md §3). Unlike the
// teacher's sxpf.Environment, which splits a root/child interface with a
// mutex-guarded root map, the spec calls for a single plain scope chain with
// no concurrent-access guarantees, so this is one concrete struct rather
// than an interface with two implementations.
type Environment struct {
	name   string
	parent *Environment
	vars   map[Symbol]Value
}

// NewEnvironment creates a new environment with the given parent. A nil
// parent marks a root (global) environment.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent, vars: make(map[Symbol]Value, 16)}
}

// Parent returns the enclosing environment, or nil for a root environment.
func (e *Environment) Parent() *Environment { return e.parent }

// Insert creates or overwrites a local binding.
func (e *Environment) Insert(sym Symbol, v Value) {
	e.vars[sym] = v
}

// InsertGlobal walks to the outermost environment and binds sym there. This
// is how `def`/`define` install bindings visible from every scope (spec.md
// §4.4), mirroring the distinction the teacher draws between `Bind` (local)
// and a root-directed bind.
func (e *Environment) InsertGlobal(sym Symbol, v Value) {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	root.vars[sym] = v
}

// Lookup searches the local scope, then each parent in turn.
func (e *Environment) Lookup(sym Symbol) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[sym]; ok {
			return v, true
		}
	}
	return nil, false
}

// LookupLocal searches only the local scope, without delegating to parents.
func (e *Environment) LookupLocal(sym Symbol) (Value, bool) {
	v, ok := e.vars[sym]
	return v, ok
}

// Unbind removes a local binding, if present.
func (e *Environment) Unbind(sym Symbol) {
	delete(e.vars, sym)
}

// Child creates a new environment nested under e.
func (e *Environment) Child() *Environment {
	return NewEnvironment(e)
}

// ErrSelfParent is returned by SetOuterScope when asked to make an
// environment its own parent.
var ErrSelfParent = fmt.Errorf("an environment cannot be its own parent")

// SetOuterScope installs parent as e's parent, refusing self-assignment
// (spec.md §4.2).
func (e *Environment) SetOuterScope(parent *Environment) error {
	if e == parent {
		return ErrSelfParent
	}
	e.parent = parent
	return nil
}

// CloneFrame creates a new frame with each local binding copied via
// Value.Clone, retaining the same parent reference (spec.md §4.2). This is
// the Environment-specific clone operation; it is distinct from the generic
// Value.Clone below, which environments satisfy by identity instead (an
// Environment appearing as ordinary cell data is never meant to fork its
// bindings).
func (e *Environment) CloneFrame() *Environment {
	vars := make(map[Symbol]Value, len(e.vars))
	for sym, v := range e.vars {
		vars[sym] = v.Clone()
	}
	return &Environment{name: e.name, parent: e.parent, vars: vars}
}

// IsNil reports whether e is nil.
func (e *Environment) IsNil() bool { return e == nil }

// IsAtom always returns true: an environment has no internal sequence
// structure visible to the evaluator.
func (e *Environment) IsAtom() bool { return true }

// IsEqual compares environments by identity: two distinct scopes are never
// interchangeable even if they happen to hold the same bindings.
func (e *Environment) IsEqual(other Value) bool {
	o, ok := other.(*Environment)
	return ok && e == o
}

// Clone returns the receiver. Environments are never deep-copied: closures
// share the scope chain they were defined in.
func (e *Environment) Clone() Value { return e }

// String returns an opaque, human-readable placeholder.
func (e *Environment) String() string {
	if e.name != "" {
		return fmt.Sprintf("<environment:%s>", e.name)
	}
	return fmt.Sprintf("<environment/%d>", len(e.vars))
}

// Print writes the same placeholder String returns.
func (e *Environment) Print(w io.Writer) (int, error) {
	return io.WriteString(w, e.String())
}

// GetEnvironment returns v as an *Environment, if possible.
func GetEnvironment(v Value) (*Environment, bool) {
	env, ok := v.(*Environment)
	return env, ok
}
