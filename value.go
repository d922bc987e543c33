// Package lval provides the value model for a small Lisp-family interpreter:
// a tagged value that is either atomic (integer, float, boolean, string,
// symbol, error, the OK unit value) or composite (an S-Expression to be
// evaluated, a Q-Expression that is quoted, or a function), together with
// the environment that binds symbols to values.
package lval

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Value is the generic interface every value of the language must satisfy.
type Value interface {
	fmt.Stringer

	// Tag names the concrete variant, e.g. "Integer" or "Q-Expression". It is
	// used both for structural-equality dispatch and for error messages.
	Tag() string

	// IsAtom reports whether the value is not further decomposable.
	IsAtom() bool

	// Copy returns a deep copy of the value. Composite values copy every
	// descendant; a lambda's copy holds an independently copied environment.
	Copy() Value
}

// Printable is a value with a representation distinct from fmt.Stringer.
type Printable interface {
	Print(io.Writer) (int, error)
}

// Print writes the textual representation of v to w.
func Print(w io.Writer, v Value) (int, error) {
	if p, ok := v.(Printable); ok {
		return p.Print(w)
	}
	return io.WriteString(w, v.String())
}

// stringViaPrint is called by most concrete values' String() so that String()
// and Print() stay consistent without repeating the builder boilerplate.
func stringViaPrint(v Printable) string {
	var sb strings.Builder
	_, _ = v.Print(&sb)
	return sb.String()
}

// IsNumber reports whether v is an Integer or a Float.
func IsNumber(v Value) bool {
	switch v.(type) {
	case Integer, Float:
		return true
	default:
		return false
	}
}

// Equal reports structural equality between two values, per the rules in
// §4.6.5: values of different tags are never equal (so Integer 1 and
// Float 1.0 compare unequal), composites compare elementwise, and
// function equality ignores a lambda's captured environment.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Tag() != b.Tag() {
		return false
	}
	switch x := a.(type) {
	case Integer:
		return x == b.(Integer)
	case Float:
		return x == b.(Float)
	case Boolean:
		return x == b.(Boolean)
	case String:
		return bytes.Equal(x.val, b.(String).val)
	case Symbol:
		return x == b.(Symbol)
	case *Error:
		return x.msg == b.(*Error).msg
	case OK:
		return true
	case *SExpr:
		return equalCells(x.Cells, b.(*SExpr).Cells)
	case *QExpr:
		return equalCells(x.Cells, b.(*QExpr).Cells)
	case *Function:
		return x.IsEqual(b.(*Function))
	default:
		return false
	}
}

func equalCells(xs, ys []Value) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if !Equal(xs[i], ys[i]) {
			return false
		}
	}
	return true
}
