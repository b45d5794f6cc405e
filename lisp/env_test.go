package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvDefGetSet(t *testing.T) {
	env := MakeEnv(nil)
	x := Intern("x")
	EnvDef(env, x, NewIntegerInt64(1))

	v, err := EnvGet(env, x)
	require.NoError(t, err)
	assert.Equal(t, "1", ReprExpr(v))

	require.NoError(t, EnvSet(env, x, NewIntegerInt64(2)))
	v, err = EnvGet(env, x)
	require.NoError(t, err)
	assert.Equal(t, "2", ReprExpr(v))
}

func TestEnvGetUnboundFails(t *testing.T) {
	env := MakeEnv(nil)
	_, err := EnvGet(env, Intern("nope"))
	require.Error(t, err)
}

func TestEnvSetUnboundFails(t *testing.T) {
	env := MakeEnv(nil)
	err := EnvSet(env, Intern("nope"), NewIntegerInt64(1))
	require.Error(t, err)
}

func TestEnvShadowingAcrossFrames(t *testing.T) {
	outer := MakeEnv(nil)
	x := Intern("x")
	EnvDef(outer, x, NewIntegerInt64(1))

	inner := MakeEnv(outer)
	EnvDef(inner, x, NewIntegerInt64(2))

	v, err := EnvGet(inner, x)
	require.NoError(t, err)
	assert.Equal(t, "2", ReprExpr(v))

	v, err = EnvGet(outer, x)
	require.NoError(t, err)
	assert.Equal(t, "1", ReprExpr(v))
}

func TestEnvDuplicatePushReadsFirstMatch(t *testing.T) {
	env := MakeEnv(nil)
	x := Intern("x")
	EnvPush(env, x, NewIntegerInt64(1))
	EnvPush(env, x, NewIntegerInt64(2))

	v, err := EnvGet(env, x)
	require.NoError(t, err)
	assert.Equal(t, "2", ReprExpr(v), "most recently pushed binding wins")
}

func TestEnvDel(t *testing.T) {
	env := MakeEnv(nil)
	x := Intern("x")
	EnvDef(env, x, NewIntegerInt64(1))
	require.NoError(t, EnvDel(env, x))

	_, err := EnvGet(env, x)
	require.Error(t, err)
}

func TestEnvDelAbsentFails(t *testing.T) {
	env := MakeEnv(nil)
	err := EnvDel(env, Intern("nope"))
	require.Error(t, err)
}

func TestEnvDbindRestParameter(t *testing.T) {
	env := MakeEnv(nil)
	vars := Cons(Intern("a"), Intern("rest")) // (a . rest): improper list
	vals := MakeList(NewIntegerInt64(1), NewIntegerInt64(2), NewIntegerInt64(3))

	EnvDbind(env, vars, vals)

	a, err := EnvGet(env, Intern("a"))
	require.NoError(t, err)
	assert.Equal(t, "1", ReprExpr(a))

	rest, err := EnvGet(env, Intern("rest"))
	require.NoError(t, err)
	assert.Equal(t, "(2 3)", ReprExpr(rest))
}

func TestEnvDbindProperList(t *testing.T) {
	env := MakeEnv(nil)
	vars := MakeList(Intern("a"), Intern("b"))
	vals := MakeList(NewIntegerInt64(1), NewIntegerInt64(2))

	EnvDbind(env, vars, vals)

	a, err := EnvGet(env, Intern("a"))
	require.NoError(t, err)
	assert.Equal(t, "1", ReprExpr(a))
	b, err := EnvGet(env, Intern("b"))
	require.NoError(t, err)
	assert.Equal(t, "2", ReprExpr(b))
}
