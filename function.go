package sx

import (
	"fmt"
	"io"
)

// Function is a user-defined closure: a formal-parameter QExpression, a body
// form, and the environment captured at definition time (spec.md §4.4.1).
// Partial application is represented by producing a new Function whose
// Formals have been trimmed and whose Env already carries the bound
// prefix — there is no separate "partial" tag.
type Function struct {
	name    string
	formals *Expression
	body    Value
	env     *Environment
}

// NewFunction constructs a closure: it is given a fresh, empty environment
// of its own (spec.md §4.4.2) parented on definingEnv, the environment
// active at the `lambda`/`defun` call site, so that free variables resolve
// lexically through the defining scope rather than through whatever
// environment happens to be active at the call site (spec.md §9, "Cyclic
// references": a closure's captured environment is only ever the
// parent-chain pointer, never the frame holding the closure binding
// itself). formals must be a QExpression of Symbols, optionally containing
// a single SymbolAmpersand marker immediately before a variadic binding
// symbol.
func NewFunction(formals *Expression, body Value, definingEnv *Environment) *Function {
	env := NewEnvironment(nil)
	_ = env.SetOuterScope(definingEnv) // a fresh environment is never its own parent
	return &Function{formals: formals, body: body, env: env}
}

// NewFunctionWithEnv wraps formals, body and an already-prepared
// environment directly, bypassing the fresh-environment step NewFunction
// performs. It exists for the evaluator's partial-application case, where
// the returned Function must keep the arguments already bound during this
// call (sxeval.Apply).
func NewFunctionWithEnv(formals *Expression, body Value, env *Environment) *Function {
	return &Function{formals: formals, body: body, env: env}
}

// Name returns the function's diagnostic name, set by `defun`, or "" for an
// anonymous lambda.
func (f *Function) Name() string { return f.name }

// Named returns a copy of f carrying the given diagnostic name, used by
// `defun` to attach the bound symbol for error messages and printing.
func (f *Function) Named(name string) *Function {
	return &Function{name: name, formals: f.formals, body: f.body, env: f.env}
}

// Formals returns the formal-parameter expression.
func (f *Function) Formals() *Expression { return f.formals }

// Body returns the unevaluated body form.
func (f *Function) Body() Value { return f.body }

// Env returns the closure's own environment, whose parent is the
// environment that was active where the closure was defined.
func (f *Function) Env() *Environment { return f.env }

// IsNil always returns false.
func (*Function) IsNil() bool { return false }

// IsAtom always returns true: a function is opaque to decomposition.
func (*Function) IsAtom() bool { return true }

// IsEqual compares functions structurally on formals and body only,
// ignoring the captured environment: two closures built from identical
// source at different call sites are indistinguishable to `==` (Open
// Question resolution, see DESIGN.md).
func (f *Function) IsEqual(other Value) bool {
	o, ok := other.(*Function)
	return ok && f.formals.IsEqual(o.formals) && valueEqual(f.body, o.body)
}

// Clone returns a new Function with deep-cloned formals, body, and
// environment (spec.md §3).
func (f *Function) Clone() Value {
	return &Function{
		name:    f.name,
		formals: f.formals.Clone().(*Expression),
		body:    f.body.Clone(),
		env:     f.env.CloneFrame(),
	}
}

// String returns an opaque, human-readable placeholder.
func (f *Function) String() string {
	if f.name != "" {
		return fmt.Sprintf("<function:%s>", f.name)
	}
	return "<function>"
}

// Print writes the same placeholder String returns.
func (f *Function) Print(w io.Writer) (int, error) {
	return io.WriteString(w, f.String())
}

// valueEqual treats a nil Value as equal only to another nil Value; it
// exists because Expression/Function bodies may legitimately be nil-typed
// interface values before IsEqual's method-set dispatch would panic.
func valueEqual(a, b Value) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	return a.IsEqual(b)
}

// GetFunction returns v as a *Function, if possible.
func GetFunction(v Value) (*Function, bool) {
	f, ok := v.(*Function)
	return f, ok
}
