package sxreader_test

import (
	"testing"

	"git.sr.ht/~sxlisp/sx"
	"git.sr.ht/~sxlisp/sx/sxreader"
)

func readOne(t *testing.T, src string) sx.Value {
	t.Helper()
	v, err := sxreader.New(src).Read()
	if err != nil {
		t.Fatalf("Read(%q): unexpected error: %v", src, err)
	}
	return v
}

func TestReadScalars(t *testing.T) {
	tests := []struct {
		src  string
		want sx.Value
	}{
		{"42", sx.Integer(42)},
		{"-7", sx.Integer(-7)},
		{"+3", sx.Integer(3)},
		{"3.5", sx.Double(3.5)},
		{"3.0", sx.Integer(3)},
		{`"hi"`, sx.String("hi")},
		{"foo", sx.Symbol("foo")},
		{"+", sx.Symbol("+")},
		{"-", sx.Symbol("-")},
		{"&", sx.Symbol("&")},
	}
	for _, tc := range tests {
		got := readOne(t, tc.src)
		if !got.IsEqual(tc.want) {
			t.Errorf("Read(%q) = %v, want %v", tc.src, got, tc.want)
		}
	}
}

func TestReadExpressions(t *testing.T) {
	sexpr := readOne(t, "(+ 1 2)")
	e, ok := sx.GetExpression(sexpr)
	if !ok || !e.IsSExpression() || e.Len() != 3 {
		t.Fatalf("Read(\"(+ 1 2)\") = %v, want a 3-cell SExpression", sexpr)
	}

	qexpr := readOne(t, "[1 2 3]")
	q, ok := sx.GetExpression(qexpr)
	if !ok || !q.IsQExpression() || q.Len() != 3 {
		t.Fatalf("Read(\"[1 2 3]\") = %v, want a 3-cell QExpression", qexpr)
	}
}

func TestReadAllPackagesTopLevelForms(t *testing.T) {
	top, err := sxreader.New("1 2 (+ 1 2)").ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: unexpected error: %v", err)
	}
	if top.Len() != 3 {
		t.Fatalf("ReadAll(\"1 2 (+ 1 2)\").Len() = %d, want 3", top.Len())
	}
}

func TestReadAllEmptyInput(t *testing.T) {
	top, err := sxreader.New("   ; just a comment\n").ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: unexpected error: %v", err)
	}
	if top.Len() != 0 {
		t.Fatalf("ReadAll of only trivia: Len() = %d, want 0", top.Len())
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unterminated string", `"abc`},
		{"unterminated list", "(1 2"},
		{"mismatched bracket", "(1 2]"},
		{"stray closing bracket", ")"},
	}
	for _, tc := range tests {
		_, err := sxreader.New(tc.src).Read()
		if err == nil {
			t.Errorf("%s: Read(%q): expected a ParseError, got nil", tc.name, tc.src)
			continue
		}
		var pe *sxreader.ParseError
		if perr, ok := err.(*sxreader.ParseError); ok {
			pe = perr
		} else {
			t.Errorf("%s: Read(%q): error is not *ParseError: %v", tc.name, tc.src, err)
			continue
		}
		if pe.Begin < 0 {
			t.Errorf("%s: ParseError.Begin = %d, want >= 0", tc.name, pe.Begin)
		}
	}
}

func TestUnterminatedStringLocatesOpeningQuote(t *testing.T) {
	_, err := sxreader.New(`  "abc`).Read()
	pe, ok := err.(*sxreader.ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if pe.Begin != 2 {
		t.Errorf("ParseError.Begin = %d, want 2 (the opening quote)", pe.Begin)
	}
}

// FuzzReaderReadAll exercises the reader with arbitrary input: it must
// never panic, regardless of how malformed the source text is.
func FuzzReaderReadAll(f *testing.F) {
	f.Add("(+ 1 2)")
	f.Add("[1 2 3]")
	f.Add(`"unterminated`)
	f.Add("(1 2]")
	f.Add(")")
	f.Fuzz(func(t *testing.T, src string) {
		_, _ = sxreader.New(src).ReadAll()
	})
}
