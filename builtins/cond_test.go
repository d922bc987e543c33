package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	lval "github.com/lispy-run/lispy"
	"github.com/lispy-run/lispy/builtins"
)

func TestIfEvaluatesMatchingBranch(t *testing.T) {
	env := lval.NewRootEnv()
	then := lval.MakeQExprOf(lval.MakeInteger(1))
	els := lval.MakeQExprOf(lval.MakeInteger(2))
	assert.Equal(t, lval.MakeInteger(1), builtins.If(env, sexpr(lval.MakeBoolean(true), then, els)))
	assert.Equal(t, lval.MakeInteger(2), builtins.If(env, sexpr(lval.MakeBoolean(false), then, els)))
}

func TestIfRequiresABoolean(t *testing.T) {
	env := lval.NewRootEnv()
	then := lval.MakeQExprOf(lval.MakeInteger(1))
	els := lval.MakeQExprOf(lval.MakeInteger(2))
	result := builtins.If(env, sexpr(lval.MakeInteger(1), then, els))
	_, ok := lval.GetError(result)
	assert.True(t, ok)
}

func TestIfRequiresExpressionBranches(t *testing.T) {
	env := lval.NewRootEnv()
	result := builtins.If(env, sexpr(lval.MakeBoolean(true), lval.MakeInteger(1), lval.MakeInteger(2)))
	_, ok := lval.GetError(result)
	assert.True(t, ok)
}

func TestIfRejectsWrongArgumentCount(t *testing.T) {
	env := lval.NewRootEnv()
	result := builtins.If(env, sexpr(lval.MakeBoolean(true), lval.MakeQExprOf(lval.MakeInteger(1))))
	_, ok := lval.GetError(result)
	assert.True(t, ok)
}
