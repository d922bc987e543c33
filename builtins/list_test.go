package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lval "github.com/lispy-run/lispy"
	"github.com/lispy-run/lispy/builtins"
)

func TestHeadOfQExpr(t *testing.T) {
	env := lval.NewRootEnv()
	arg := lval.MakeQExprOf(lval.MakeInteger(1), lval.MakeInteger(2))
	result := builtins.Head(env, sexpr(arg))
	q, ok := lval.GetQExpr(result)
	require.True(t, ok)
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, lval.MakeInteger(1), q.Cells[0])
}

func TestHeadOfEmptyQExprIsAnError(t *testing.T) {
	env := lval.NewRootEnv()
	result := builtins.Head(env, sexpr(lval.MakeQExpr()))
	_, ok := lval.GetError(result)
	assert.True(t, ok)
}

func TestHeadOfString(t *testing.T) {
	env := lval.NewRootEnv()
	result := builtins.Head(env, sexpr(lval.MakeString("hello")))
	s, ok := lval.GetString(result)
	require.True(t, ok)
	assert.Equal(t, "h", s.GetValue())
}

func TestTailOfQExpr(t *testing.T) {
	env := lval.NewRootEnv()
	arg := lval.MakeQExprOf(lval.MakeInteger(1), lval.MakeInteger(2), lval.MakeInteger(3))
	result := builtins.Tail(env, sexpr(arg))
	q, ok := lval.GetQExpr(result)
	require.True(t, ok)
	assert.Equal(t, 2, q.Len())
}

func TestJoinConcatenatesStrings(t *testing.T) {
	env := lval.NewRootEnv()
	result := builtins.Join(env, sexpr(lval.MakeString("foo"), lval.MakeString("bar")))
	s, ok := lval.GetString(result)
	require.True(t, ok)
	assert.Equal(t, "foobar", s.GetValue())
}

func TestJoinConcatenatesQExprs(t *testing.T) {
	env := lval.NewRootEnv()
	a := lval.MakeQExprOf(lval.MakeInteger(1))
	b := lval.MakeQExprOf(lval.MakeInteger(2))
	result := builtins.Join(env, sexpr(a, b))
	q, ok := lval.GetQExpr(result)
	require.True(t, ok)
	assert.Equal(t, 2, q.Len())
}

func TestJoinWrapsBareStringIntoQExpr(t *testing.T) {
	env := lval.NewRootEnv()
	result := builtins.Join(env, sexpr(lval.MakeQExpr(), lval.MakeString("x")))
	q, ok := lval.GetQExpr(result)
	require.True(t, ok)
	require.Equal(t, 1, q.Len())
	s, ok := lval.GetString(q.Cells[0])
	require.True(t, ok)
	assert.Equal(t, "x", s.GetValue())
}

func TestListConvertsSExprToQExpr(t *testing.T) {
	env := lval.NewRootEnv()
	result := builtins.List(env, sexpr(lval.MakeInteger(1), lval.MakeInteger(2)))
	q, ok := lval.GetQExpr(result)
	require.True(t, ok)
	assert.Equal(t, 2, q.Len())
}
