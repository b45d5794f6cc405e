package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternNil(t *testing.T) {
	assert.True(t, IsNil(Intern("nil")))
}

func TestInternBySymbolNameNotIdentity(t *testing.T) {
	a := Intern("foo")
	b := Intern("foo")
	assert.NotSame(t, a, b)
	assert.True(t, Eq(a, b), "symbols with the same name are eq by name")
}

func TestGensymDistinct(t *testing.T) {
	a := Gensym()
	b := Gensym()
	assert.False(t, Eq(a, b))
	assert.NotEqual(t, GensymID(a), GensymID(b))
}

func TestGensymPrintForm(t *testing.T) {
	a := Gensym()
	assert.Regexp(t, `^#:G\d+$`, ReprExpr(a))
}

func TestConsCarCdr(t *testing.T) {
	a := Intern("a")
	b := Intern("b")
	p := Cons(a, b)
	got, err := Car(p)
	require.NoError(t, err)
	assert.True(t, Eq(got, a))

	got, err = Cdr(p)
	require.NoError(t, err)
	assert.True(t, Eq(got, b))
}

func TestCarOfNonPairFails(t *testing.T) {
	_, err := Car(nil)
	require.Error(t, err)
	_, err = Car(Intern("foo"))
	require.Error(t, err)
}

func TestSetCarSetCdrMutateInPlace(t *testing.T) {
	p := Cons(Intern("a"), Intern("b"))
	require.NoError(t, SetCar(p, Intern("x")))
	require.NoError(t, SetCdr(p, Intern("y")))
	assert.Equal(t, "(x . y)", ReprExpr(p))
}

func TestCadrFamily(t *testing.T) {
	// ((a . b) . (c . d))
	p := Cons(Cons(Intern("a"), Intern("b")), Cons(Intern("c"), Intern("d")))
	caar, err := Caar(p)
	require.NoError(t, err)
	assert.Equal(t, "a", ReprExpr(caar))

	cddr, err := Cddr(p)
	require.NoError(t, err)
	assert.Equal(t, "d", ReprExpr(cddr))
}

func TestEqCrossKindIsFalse(t *testing.T) {
	assert.False(t, Eq(Intern("1"), NewIntegerInt64(1)))
}

func TestEqIntegerByValue(t *testing.T) {
	assert.True(t, Eq(NewIntegerInt64(5), NewIntegerInt64(5)))
	assert.False(t, Eq(NewIntegerInt64(5), NewIntegerInt64(6)))
}

func TestEqPairIsIdentityNotStructural(t *testing.T) {
	p1 := Cons(Intern("a"), Intern("b"))
	p2 := Cons(Intern("a"), Intern("b"))
	assert.False(t, Eq(p1, p2))
	assert.True(t, Eq(p1, p1))
}

func TestEqualIsEq(t *testing.T) {
	assert.Equal(t, Eq(nil, nil), Equal(nil, nil))
	p1 := Cons(Intern("a"), Intern("b"))
	p2 := Cons(Intern("a"), Intern("b"))
	assert.Equal(t, Eq(p1, p2), Equal(p1, p2))
}

func TestMakeBool(t *testing.T) {
	assert.Equal(t, "t", ReprExpr(MakeBool(true)))
	assert.True(t, IsNil(MakeBool(false)))
}
