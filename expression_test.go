package sx_test

import (
	"testing"

	"git.sr.ht/~sxlisp/sx"
)

func TestExpressionKindTagging(t *testing.T) {
	t.Parallel()
	se := sx.NewSExpression(sx.Integer(1))
	if !se.IsSExpression() || se.IsQExpression() {
		t.Errorf("NewSExpression should produce an SExpression, got kind %v", se.Kind())
	}
	qe := sx.NewQExpression(sx.Integer(1))
	if !qe.IsQExpression() || qe.IsSExpression() {
		t.Errorf("NewQExpression should produce a QExpression, got kind %v", qe.Kind())
	}
	qe.AsSExpression()
	if !qe.IsSExpression() {
		t.Error("AsSExpression should retag in place")
	}
	qe.AsQExpression()
	if !qe.IsQExpression() {
		t.Error("AsQExpression should retag in place")
	}
}

func TestExpressionLenAtSetAt(t *testing.T) {
	t.Parallel()
	e := sx.NewSExpression(sx.Integer(1), sx.Integer(2), sx.Integer(3))
	if got := e.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	if got := e.At(1); !got.IsEqual(sx.Integer(2)) {
		t.Errorf("At(1) = %v, want 2", got)
	}
	e.SetAt(1, sx.Integer(99))
	if got := e.At(1); !got.IsEqual(sx.Integer(99)) {
		t.Errorf("after SetAt, At(1) = %v, want 99", got)
	}
}

func TestExpressionPushPopFrontBack(t *testing.T) {
	t.Parallel()
	e := sx.NewSExpression(sx.Integer(1), sx.Integer(2))
	e.PushBack(sx.Integer(3))
	if got := e.Len(); got != 3 {
		t.Fatalf("after PushBack, Len() = %d, want 3", got)
	}
	if got := e.PopFront(); !got.IsEqual(sx.Integer(1)) {
		t.Errorf("PopFront() = %v, want 1", got)
	}
	if got := e.PopBack(); !got.IsEqual(sx.Integer(3)) {
		t.Errorf("PopBack() = %v, want 3", got)
	}
	if got := e.Len(); got != 1 {
		t.Errorf("after popping both ends, Len() = %d, want 1", got)
	}
}

func TestExpressionTruncate(t *testing.T) {
	t.Parallel()
	e := sx.NewSExpression(sx.Integer(1), sx.Integer(2), sx.Integer(3))
	e.Truncate(1)
	if got := e.Len(); got != 1 {
		t.Fatalf("Truncate(1), Len() = %d, want 1", got)
	}
	if got := e.At(0); !got.IsEqual(sx.Integer(1)) {
		t.Errorf("At(0) = %v, want 1", got)
	}
}

func TestExpressionIsAtomOnlyWhenEmpty(t *testing.T) {
	t.Parallel()
	if !sx.NewSExpression().IsAtom() {
		t.Error("an empty SExpression is an atom (spec.md §3 invariant 3)")
	}
	if sx.NewSExpression(sx.Integer(1)).IsAtom() {
		t.Error("a non-empty SExpression is not an atom")
	}
}

func TestExpressionIsEqual(t *testing.T) {
	t.Parallel()
	a := sx.NewSExpression(sx.Integer(1), sx.Integer(2))
	b := sx.NewSExpression(sx.Integer(1), sx.Integer(2))
	if !a.IsEqual(b) {
		t.Error("two SExpressions with the same cells should be equal")
	}
	c := sx.NewQExpression(sx.Integer(1), sx.Integer(2))
	if a.IsEqual(c) {
		t.Error("an SExpression and a QExpression with the same cells should not be equal")
	}
	d := sx.NewSExpression(sx.Integer(1), sx.Integer(2), sx.Integer(3))
	if a.IsEqual(d) {
		t.Error("expressions of different lengths should not be equal")
	}
}

func TestExpressionClone(t *testing.T) {
	t.Parallel()
	inner := sx.NewQExpression(sx.Integer(1))
	e := sx.NewSExpression(inner, sx.Integer(2))
	cloned := e.Clone().(*sx.Expression)
	if !e.IsEqual(cloned) {
		t.Fatalf("Clone() = %v, want an equal copy of %v", cloned, e)
	}
	clonedInner := cloned.At(0).(*sx.Expression)
	clonedInner.PushBack(sx.Integer(2))
	if e.At(0).(*sx.Expression).Len() != 1 {
		t.Error("Clone should deep-copy nested expressions, mutation leaked into the original")
	}
}

func TestExpressionString(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		e    *sx.Expression
		want string
	}{
		{"empty-sexpression", sx.NewSExpression(), "()"},
		{"sexpression", sx.NewSExpression(sx.Integer(1), sx.Integer(2)), "(1 2)"},
		{"empty-qexpression", sx.NewQExpression(), "[]"},
		{"qexpression", sx.NewQExpression(sx.Integer(1), sx.Integer(2)), "[1 2]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.e.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestGetExpressionAndIsExpression(t *testing.T) {
	t.Parallel()
	e := sx.NewQExpression()
	if got, ok := sx.GetExpression(e); !ok || got != e {
		t.Errorf("GetExpression(e) = %v, %v, want e, true", got, ok)
	}
	if _, ok := sx.GetExpression(sx.Integer(1)); ok {
		t.Error("GetExpression(Integer) should fail")
	}
	if !sx.IsExpression(e) {
		t.Error("IsExpression should be true for an Expression")
	}
	if sx.IsExpression(sx.Integer(1)) {
		t.Error("IsExpression should be false for a non-Expression")
	}
}

func TestIsEmptyExpression(t *testing.T) {
	t.Parallel()
	if !sx.IsEmptyExpression(sx.NewSExpression()) {
		t.Error("an empty SExpression should report IsEmptyExpression")
	}
	if sx.IsEmptyExpression(sx.NewSExpression(sx.Integer(1))) {
		t.Error("a non-empty SExpression should not report IsEmptyExpression")
	}
	if sx.IsEmptyExpression(sx.Integer(1)) {
		t.Error("a non-Expression should not report IsEmptyExpression")
	}
}
