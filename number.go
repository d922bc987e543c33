package lval

import (
	"io"
	"strconv"
	"strings"
)

// Integer is a 64-bit signed integer value.
type Integer int64

// MakeInteger creates an Integer value.
func MakeInteger(n int64) Integer { return Integer(n) }

func (Integer) Tag() string      { return "Integer" }
func (Integer) IsAtom() bool     { return true }
func (n Integer) Copy() Value    { return n }
func (n Integer) String() string { return stringViaPrint(n) }
func (n Integer) Print(w io.Writer) (int, error) {
	return io.WriteString(w, strconv.FormatInt(int64(n), 10))
}

// GetInteger returns v as an Integer, if possible.
func GetInteger(v Value) (Integer, bool) {
	n, ok := v.(Integer)
	return n, ok
}

// Float is an IEEE-754 double value.
type Float float64

// MakeFloat creates a Float value.
func MakeFloat(f float64) Float { return Float(f) }

func (Float) Tag() string      { return "Float" }
func (Float) IsAtom() bool     { return true }
func (f Float) Copy() Value    { return f }
func (f Float) String() string { return stringViaPrint(f) }

// Print renders the float with at least 3 decimal digits, per §4.2.
func (f Float) Print(w io.Writer) (int, error) {
	s := strconv.FormatFloat(float64(f), 'f', -1, 64)
	if dot := strings.IndexByte(s, '.'); dot < 0 {
		s += ".000"
	} else if frac := len(s) - dot - 1; frac < 3 {
		s += strings.Repeat("0", 3-frac)
	}
	return io.WriteString(w, s)
}

// GetFloat returns v as a Float, if possible.
func GetFloat(v Value) (Float, bool) {
	f, ok := v.(Float)
	return f, ok
}

// AsFloat returns a number's value widened to float64. v must satisfy IsNumber.
func AsFloat(v Value) float64 {
	switch n := v.(type) {
	case Integer:
		return float64(n)
	case Float:
		return float64(n)
	default:
		return 0
	}
}
