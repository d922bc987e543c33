package lval

import "io"

// SExpr is an ordered sequence of values denoting an expression to be
// evaluated.
type SExpr struct{ Cells []Value }

// MakeSExpr creates an empty S-Expression.
func MakeSExpr() *SExpr { return &SExpr{} }

// MakeSExprOf creates an S-Expression holding the given children.
func MakeSExprOf(cells ...Value) *SExpr { return &SExpr{Cells: cells} }

func (*SExpr) Tag() string  { return "S-Expression" }
func (*SExpr) IsAtom() bool { return false }
func (e *SExpr) Copy() Value {
	return &SExpr{Cells: copyCells(e.Cells)}
}
func (e *SExpr) String() string { return stringViaPrint(e) }
func (e *SExpr) Print(w io.Writer) (int, error) {
	return printBracketed(w, '(', e.Cells, ')')
}

// Len returns the number of children.
func (e *SExpr) Len() int { return len(e.Cells) }

// Append adds a value as the last child and returns e for chaining.
func (e *SExpr) Append(v Value) *SExpr {
	e.Cells = append(e.Cells, v)
	return e
}

// Pop removes and returns the i'th child, shifting later children down.
func (e *SExpr) Pop(i int) Value {
	v := e.Cells[i]
	e.Cells = append(e.Cells[:i], e.Cells[i+1:]...)
	return v
}

// QExpr is an ordered, quoted sequence of values; it never evaluates
// implicitly.
type QExpr struct{ Cells []Value }

// MakeQExpr creates an empty Q-Expression.
func MakeQExpr() *QExpr { return &QExpr{} }

// MakeQExprOf creates a Q-Expression holding the given children.
func MakeQExprOf(cells ...Value) *QExpr { return &QExpr{Cells: cells} }

func (*QExpr) Tag() string  { return "Q-Expression" }
func (*QExpr) IsAtom() bool { return false }
func (q *QExpr) Copy() Value {
	return &QExpr{Cells: copyCells(q.Cells)}
}
func (q *QExpr) String() string { return stringViaPrint(q) }
func (q *QExpr) Print(w io.Writer) (int, error) {
	return printBracketed(w, '{', q.Cells, '}')
}

// Len returns the number of children.
func (q *QExpr) Len() int { return len(q.Cells) }

// Pop removes and returns the i'th child, shifting later children down.
func (q *QExpr) Pop(i int) Value {
	v := q.Cells[i]
	q.Cells = append(q.Cells[:i], q.Cells[i+1:]...)
	return v
}

func copyCells(cells []Value) []Value {
	if cells == nil {
		return nil
	}
	out := make([]Value, len(cells))
	for i, c := range cells {
		out[i] = c.Copy()
	}
	return out
}

func printBracketed(w io.Writer, open byte, cells []Value, close byte) (int, error) {
	length, err := w.Write([]byte{open})
	if err != nil {
		return length, err
	}
	for i, c := range cells {
		if i > 0 {
			l, err2 := io.WriteString(w, " ")
			length += l
			if err2 != nil {
				return length, err2
			}
		}
		l, err2 := Print(w, c)
		length += l
		if err2 != nil {
			return length, err2
		}
	}
	l, err := w.Write([]byte{close})
	length += l
	return length, err
}

// GetSExpr returns v as an SExpr, if possible.
func GetSExpr(v Value) (*SExpr, bool) {
	e, ok := v.(*SExpr)
	return e, ok
}

// GetQExpr returns v as a QExpr, if possible.
func GetQExpr(v Value) (*QExpr, bool) {
	q, ok := v.(*QExpr)
	return q, ok
}
