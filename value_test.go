package lval_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	lval "github.com/lispy-run/lispy"
)

func TestEqualDifferentTagsAreNeverEqual(t *testing.T) {
	assert.False(t, lval.Equal(lval.MakeInteger(1), lval.MakeFloat(1.0)))
	assert.False(t, lval.Equal(lval.MakeBoolean(true), lval.MakeInteger(1)))
}

func TestEqualAtoms(t *testing.T) {
	tests := []struct {
		name  string
		a, b  lval.Value
		equal bool
	}{
		{"equal integers", lval.MakeInteger(3), lval.MakeInteger(3), true},
		{"different integers", lval.MakeInteger(3), lval.MakeInteger(4), false},
		{"equal floats", lval.MakeFloat(1.5), lval.MakeFloat(1.5), true},
		{"equal strings", lval.MakeString("hi"), lval.MakeString("hi"), true},
		{"different strings", lval.MakeString("hi"), lval.MakeString("bye"), false},
		{"equal symbols", lval.MakeSymbol("x"), lval.MakeSymbol("x"), true},
		{"equal OK", lval.MakeOK(), lval.MakeOK(), true},
		{"equal errors", lval.MakeError("boom"), lval.MakeError("boom"), true},
		{"different errors", lval.MakeError("boom"), lval.MakeError("bang"), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.equal, lval.Equal(tc.a, tc.b))
		})
	}
}

func TestEqualComposites(t *testing.T) {
	a := lval.MakeQExprOf(lval.MakeInteger(1), lval.MakeInteger(2))
	b := lval.MakeQExprOf(lval.MakeInteger(1), lval.MakeInteger(2))
	c := lval.MakeQExprOf(lval.MakeInteger(1), lval.MakeInteger(3))
	assert.True(t, lval.Equal(a, b))
	assert.False(t, lval.Equal(a, c))

	sx := lval.MakeSExprOf(lval.MakeSymbol("+"), lval.MakeInteger(1))
	qx := lval.MakeQExprOf(lval.MakeSymbol("+"), lval.MakeInteger(1))
	assert.False(t, lval.Equal(sx, qx), "an SExpr and a QExpr with the same cells are not equal")
}

func TestCopyIsIndependent(t *testing.T) {
	orig := lval.MakeQExprOf(lval.MakeString("a"))
	cp := orig.Copy().(*lval.QExpr)
	cp.Cells[0] = lval.MakeString("b")
	assert.Equal(t, "a", orig.Cells[0].(lval.String).GetValue())
	assert.Equal(t, "b", cp.Cells[0].(lval.String).GetValue())
}

func TestIsNumber(t *testing.T) {
	assert.True(t, lval.IsNumber(lval.MakeInteger(1)))
	assert.True(t, lval.IsNumber(lval.MakeFloat(1)))
	assert.False(t, lval.IsNumber(lval.MakeString("1")))
}

func TestCopyProducesAStructurallyIdenticalTree(t *testing.T) {
	orig := lval.MakeSExprOf(
		lval.MakeSymbol("+"),
		lval.MakeQExprOf(lval.MakeInteger(1), lval.MakeInteger(2)),
		lval.MakeString("tail"),
	)
	cp := orig.Copy().(*lval.SExpr)
	// String and Error hold unexported fields, so comparing via reflection
	// would panic; Comparer delegates to the language's own structural
	// equality rule instead.
	if diff := cmp.Diff(orig, cp, cmp.Comparer(lval.Equal)); diff != "" {
		t.Errorf("copy diverged from original (-want +got):\n%s", diff)
	}
}

func TestPrintSExprAndQExpr(t *testing.T) {
	sx := lval.MakeSExprOf(lval.MakeSymbol("+"), lval.MakeInteger(1), lval.MakeInteger(2))
	assert.Equal(t, "(+ 1 2)", sx.String())

	qx := lval.MakeQExprOf(lval.MakeInteger(1), lval.MakeInteger(2))
	assert.Equal(t, "{1 2}", qx.String())
}
