package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReprExprVariants(t *testing.T) {
	assert.Equal(t, "nil", ReprExpr(nil))
	assert.Equal(t, "foo", ReprExpr(Intern("foo")))
	assert.Equal(t, "(foo)", ReprExpr(Cons(Intern("foo"), nil)))
	assert.Equal(t, "(foo . bar)", ReprExpr(Cons(Intern("foo"), Intern("bar"))))
	assert.Equal(t, "5", ReprExpr(NewIntegerInt64(5)))
	assert.Equal(t, "-3", ReprExpr(NewIntegerInt64(-3)))
}

func TestReprExprNestedList(t *testing.T) {
	exp := MakeList(Intern("a"), Intern("b"), Intern("c"))
	assert.Equal(t, "(a b c)", ReprExpr(exp))
}

func TestReprExprPrettyIsInert(t *testing.T) {
	exp := MakeList(Intern("a"), Intern("b"))
	assert.Equal(t, ReprExpr(exp), ReprExpr(exp, Pretty()))
}

func TestReprExprRoundTripsThroughReader(t *testing.T) {
	exp := Cons(Intern("foo"), Cons(NewIntegerInt64(1), Intern("bar")))
	text := ReprExpr(exp)
	again, err := ReadOneFromString(text)
	if err != nil {
		t.Fatalf("ReadOneFromString(%q): %v", text, err)
	}
	assert.Equal(t, text, ReprExpr(again))
}
