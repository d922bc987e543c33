package lval

import "io"

// OK is the unit value produced by side-effecting builtins such as def and
// load.
type OK struct{}

// MakeOK creates the OK value.
func MakeOK() OK { return OK{} }

func (OK) Tag() string      { return "OK" }
func (OK) IsAtom() bool     { return true }
func (o OK) Copy() Value    { return o }
func (o OK) String() string { return "OK" }
func (o OK) Print(w io.Writer) (int, error) {
	return io.WriteString(w, "OK")
}
