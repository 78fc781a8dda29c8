package sx

import (
	"io"
	"strings"
)

// ExprKind distinguishes the two expression variants.
type ExprKind int

const (
	// KindSExpression marks an ordered sequence evaluated applicatively.
	KindSExpression ExprKind = iota
	// KindQExpression marks an ordered sequence treated as literal data.
	KindQExpression
)

// Expression is the ordered, mutable sequence shared by SExpression and
// QExpression (spec.md §3). It is backed by a slice rather than the
// teacher's cons-cell Pair (see DESIGN.md): the evaluator needs front-pop
// (consuming a head symbol or formal), back-push (the reader appending
// forms), random access (built-ins like `nth`), and length — all of which a
// slice gives directly, grounded on the teacher's `vector.go` Vector type.
type Expression struct {
	kind  ExprKind
	cells []Value
}

// NewSExpression creates an SExpression from the given cells.
func NewSExpression(cells ...Value) *Expression {
	return &Expression{kind: KindSExpression, cells: cells}
}

// NewQExpression creates a QExpression from the given cells.
func NewQExpression(cells ...Value) *Expression {
	return &Expression{kind: KindQExpression, cells: cells}
}

// Kind returns the expression's variant.
func (e *Expression) Kind() ExprKind { return e.kind }

// IsSExpression reports whether e is tagged as an SExpression.
func (e *Expression) IsSExpression() bool { return e.kind == KindSExpression }

// IsQExpression reports whether e is tagged as a QExpression.
func (e *Expression) IsQExpression() bool { return e.kind == KindQExpression }

// AsSExpression retags e in place as an SExpression and returns it. Used by
// `eval` and by closure application to convert a QExpression body into an
// evaluable form (spec.md §4.4.1).
func (e *Expression) AsSExpression() *Expression {
	e.kind = KindSExpression
	return e
}

// AsQExpression retags e in place as a QExpression and returns it.
func (e *Expression) AsQExpression() *Expression {
	e.kind = KindQExpression
	return e
}

// Len returns the number of cells.
func (e *Expression) Len() int { return len(e.cells) }

// At returns the cell at position i. The caller must ensure 0 <= i < Len().
func (e *Expression) At(i int) Value { return e.cells[i] }

// SetAt overwrites the cell at position i. Used by the evaluator to replace
// a child with its reduced form in place (spec.md §3 Lifecycle).
func (e *Expression) SetAt(i int, v Value) { e.cells[i] = v }

// Cells returns the backing slice directly. Callers that only read should
// prefer this over repeated At calls; callers must not retain it across a
// PopFront/PopBack/PushBack that would invalidate indices.
func (e *Expression) Cells() []Value { return e.cells }

// PushBack appends a cell.
func (e *Expression) PushBack(v Value) { e.cells = append(e.cells, v) }

// PopFront removes and returns the first cell. It panics if e is empty; call
// sites must check Len() first (every built-in does, per spec.md §4.4.2's
// arity checks).
func (e *Expression) PopFront() Value {
	v := e.cells[0]
	e.cells = e.cells[1:]
	return v
}

// Truncate discards every cell from position i onward.
func (e *Expression) Truncate(i int) { e.cells = e.cells[:i] }

// PopBack removes and returns the last cell. It panics if e is empty.
func (e *Expression) PopBack() Value {
	n := len(e.cells) - 1
	v := e.cells[n]
	e.cells = e.cells[:n]
	return v
}

// IsNil reports whether e is a nil *Expression pointer. The constructors
// never return one, so IsNil does not test emptiness — that is done with
// Len() == 0 / IsEmptyExpression.
func (e *Expression) IsNil() bool { return e == nil }

// IsAtom reports whether e is not further decomposable — true only for the
// empty expression (spec.md §3 invariant 3: a zero-child SExpression
// evaluates to itself, the base case of decomposition).
func (e *Expression) IsAtom() bool { return len(e.cells) == 0 }

// IsEqual compares two expressions pairwise on kind, length, and children
// (spec.md §4.1).
func (e *Expression) IsEqual(other Value) bool {
	o, ok := other.(*Expression)
	if !ok || o.kind != e.kind || len(o.cells) != len(e.cells) {
		return false
	}
	for i, c := range e.cells {
		if !c.IsEqual(o.cells[i]) {
			return false
		}
	}
	return true
}

// Clone performs a deep copy: every cell is cloned recursively.
func (e *Expression) Clone() Value {
	cells := make([]Value, len(e.cells))
	for i, c := range e.cells {
		cells[i] = c.Clone()
	}
	return &Expression{kind: e.kind, cells: cells}
}

// String returns the display representation.
func (e *Expression) String() string {
	var sb strings.Builder
	_, _ = e.Print(&sb)
	return sb.String()
}

// Print writes "(x1 x2 …)" for an SExpression or "[x1 x2 …]" for a
// QExpression (spec.md §4.1).
func (e *Expression) Print(w io.Writer) (int, error) {
	open, close := "(", ")"
	if e.kind == KindQExpression {
		open, close = "[", "]"
	}
	total, err := io.WriteString(w, open)
	if err != nil {
		return total, err
	}
	for i, c := range e.cells {
		if i > 0 {
			n, err := io.WriteString(w, " ")
			total += n
			if err != nil {
				return total, err
			}
		}
		n, err := Print(w, c)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err := io.WriteString(w, close)
	return total + n, err
}

// GetExpression returns v as an *Expression, if possible.
func GetExpression(v Value) (*Expression, bool) {
	e, ok := v.(*Expression)
	return e, ok
}

// IsExpression reports whether v is an SExpression or QExpression.
func IsExpression(v Value) bool {
	_, ok := v.(*Expression)
	return ok
}

// IsEmptyExpression reports whether v is an expression with no cells.
func IsEmptyExpression(v Value) bool {
	e, ok := v.(*Expression)
	return ok && e.Len() == 0
}
