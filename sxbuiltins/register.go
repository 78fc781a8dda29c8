package sxbuiltins

import "git.sr.ht/~sxlisp/sx"

// Register binds every host-implemented function into env by name. The
// special forms (`def`, `define`, `=`, `put`, `lambda`, `\`, `if`, `defun`)
// are not registered here — they are recognized directly by the evaluator
// (sxeval/forms.go) rather than looked up as ordinary bindings, per
// DESIGN.md's "Evaluator" entry.
func Register(env *sx.Environment) {
	for _, b := range []*sx.Builtin{
		Add(), Sub(), Mul(), Div(),
		Lt(), Le(), Gt(), Ge(),
		Eq(), Ne(),
		Min(), Max(),
		List(), Head(), Tail(), Init(), Last(), Len(), Nth(), Cons(), Join(), EvalBuiltin(),
		ErrorBuiltin(),
	} {
		env.InsertGlobal(sx.Symbol(b.Name()), b)
	}
}
