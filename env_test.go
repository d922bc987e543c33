package lval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	lval "github.com/lispy-run/lispy"
)

func TestLookupUnboundSymbolIsAnError(t *testing.T) {
	env := lval.NewRootEnv()
	result := env.Lookup("nope")
	e, ok := lval.GetError(result)
	assert.True(t, ok)
	assert.Contains(t, e.Msg(), "nope")
}

func TestPutIsLocalAndDefIsGlobal(t *testing.T) {
	root := lval.NewRootEnv()
	child := lval.NewChildEnv(root)

	child.Put("x", lval.MakeInteger(1))
	assert.False(t, root.Has("x"), "Put should not leak into the parent")

	child.Def("y", lval.MakeInteger(2))
	assert.True(t, root.Has("y"), "Def should always target the root")
}

func TestLookupFallsThroughToParent(t *testing.T) {
	root := lval.NewRootEnv()
	root.Put("x", lval.MakeInteger(7))
	child := lval.NewChildEnv(root)

	result := child.Lookup("x")
	assert.Equal(t, lval.MakeInteger(7), result)
}

func TestLookupReturnsACopyNotAnAlias(t *testing.T) {
	root := lval.NewRootEnv()
	q := lval.MakeQExprOf(lval.MakeInteger(1))
	root.Put("q", q)

	got := root.Lookup("q").(*lval.QExpr)
	got.Cells[0] = lval.MakeInteger(99)

	assert.Equal(t, lval.MakeInteger(1), root.Lookup("q").(*lval.QExpr).Cells[0])
}

func TestEnvCopyIsIndependent(t *testing.T) {
	root := lval.NewRootEnv()
	root.Put("x", lval.MakeInteger(1))
	cp := root.Copy()
	cp.Put("x", lval.MakeInteger(2))

	assert.Equal(t, lval.MakeInteger(1), root.Lookup("x"))
	assert.Equal(t, lval.MakeInteger(2), cp.Lookup("x"))
}
