// Command sxlisp is a line-oriented REPL for the sx interpreter: read a
// line, parse it, evaluate it, print the result or error (spec.md §6).
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"git.sr.ht/~sxlisp/sx"
	"git.sr.ht/~sxlisp/sx/sxbuiltins"
	"git.sr.ht/~sxlisp/sx/sxeval"
	"git.sr.ht/~sxlisp/sx/sxreader"
)

func newRootEnvironment() *sx.Environment {
	root := sx.NewEnvironment(nil)
	sxbuiltins.Register(root)
	return root
}

// runSource parses src as one program and evaluates its top-level forms in
// order, printing each result; a ParseError or RuntimeError aborts the
// remaining forms and is reported on stderr.
func runSource(env *sx.Environment, src string, trace bool) {
	prog, err := sxreader.New(src).ReadAll()
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse error:", err)
		return
	}
	for i := 0; i < prog.Len(); i++ {
		form := prog.At(i)
		if trace {
			fmt.Fprint(os.Stdout, "; read: ")
			_, _ = sx.Print(os.Stdout, form)
			fmt.Fprintln(os.Stdout)
		}
		result, err := sxeval.Eval(env, form)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return
		}
		_, _ = sx.Print(os.Stdout, result)
		fmt.Fprintln(os.Stdout)
	}
}

// runFile loads path as a prelude, evaluated top-level before the
// interactive loop starts (spec.md §1's external-collaborator prelude).
func runFile(env *sx.Environment, path string) {
	contents, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot read", path+":", err)
		return
	}
	runSource(env, string(contents), false)
}

// runPrompt is the interactive loop: `:q` quits, `:t` toggles the
// parsed-form trace, a leading `;` marks a comment line, anything else is
// parsed and evaluated.
func runPrompt(env *sx.Environment) {
	trace := false
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("sx> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case line == ":q":
			return
		case line == ":t":
			trace = !trace
			fmt.Println("; trace:", trace)
		case strings.HasPrefix(line, ";"):
		default:
			runSource(env, line, trace)
		}
		fmt.Print("sx> ")
	}
	fmt.Println()
}

func main() {
	env := newRootEnvironment()
	args := os.Args[1:]
	if len(args) > 0 {
		runFile(env, args[0])
	}
	runPrompt(env)
}
