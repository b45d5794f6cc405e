package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEvalSrc(t *testing.T, src string, env Expr) string {
	t.Helper()
	out, err := EvalSrc(src, env)
	require.NoError(t, err, "EvalSrc(%q)", src)
	return out
}

func TestEvalSrcScenarios(t *testing.T) {
	core := MakeCoreEnv()
	tests := []struct {
		src string
		env Expr
		out string
	}{
		{"nil", nil, "nil"},
		{"'foo", nil, "foo"},
		{"(if 't 'a 'b)", nil, "a"},
		{"(if nil 'a 'b)", nil, "b"},
		{"(if nil 'a)", nil, "nil"},
		{"(cons 'a 'b)", core, "(a . b)"},
		{"(cons 'a nil)", core, "(a)"},
		{"(eq 'a 'a)", core, "t"},
		{"(eq 'a 'b)", core, "nil"},
		{"(car (cons 'a 'b))", core, "a"},
		{"(cdr (cons 'a 'b))", core, "b"},
		{"(lit foo bar baz)", nil, "(lit foo bar baz)"},
		{"(lit)", nil, "(lit)"},
		{"t", core, "t"},
	}
	for _, test := range tests {
		assert.Equal(t, test.out, mustEvalSrc(t, test.src, test.env), test.src)
	}
}

func TestEvalNilIsNil(t *testing.T) {
	v, err := Eval(nil, nil)
	require.NoError(t, err)
	assert.True(t, IsNil(v))
}

func TestEvalQuoteDoesNotEvaluate(t *testing.T) {
	exp := mustRead(t, "(quote (a b c))")
	v, err := Eval(exp, nil)
	require.NoError(t, err)
	assert.Equal(t, "(a b c)", ReprExpr(v))
}

func TestEvalBareIntegerSelfEvaluates(t *testing.T) {
	v, err := Eval(NewIntegerInt64(5), MakeCoreEnv())
	require.NoError(t, err)
	assert.Equal(t, "5", ReprExpr(v))
}

func TestEvalUnboundSymbolFails(t *testing.T) {
	_, err := Eval(Intern("undefined-thing"), MakeCoreEnv())
	require.Error(t, err)
}

func TestEvalDefunAndCall(t *testing.T) {
	env := MakeCoreEnv()
	_, err := EvalSrc("(defun add (a b) (+ a b))", env)
	require.NoError(t, err)

	out := mustEvalSrc(t, "(add 3 4)", env)
	assert.Equal(t, "7", out)
}

func TestEvalLambdaClosesOverDefiningEnv(t *testing.T) {
	env := MakeCoreEnv()
	_, err := EvalSrc("(defun make-adder (n) (lambda (x) (+ x n)))", env)
	require.NoError(t, err)
	_, err = EvalSrc("(defun add5 (y) ((make-adder 5) y))", env)
	require.NoError(t, err)

	out := mustEvalSrc(t, "(add5 10)", env)
	assert.Equal(t, "15", out)
}

func TestEvalRecursiveFunction(t *testing.T) {
	env := MakeCoreEnv()
	_, err := EvalSrc(
		"(defun fact (n) (if (eq n 0) 1 (* n (fact (- n 1)))))", env)
	require.NoError(t, err)

	out := mustEvalSrc(t, "(fact 5)", env)
	assert.Equal(t, "120", out)
}

func TestEvalAndOrVariadic(t *testing.T) {
	env := MakeCoreEnv()
	assert.Equal(t, "t", mustEvalSrc(t, "(and 't 't 't)", env))
	assert.Equal(t, "nil", mustEvalSrc(t, "(and 't nil 't)", env))
	assert.Equal(t, "nil", mustEvalSrc(t, "(or nil nil)", env))
	assert.Equal(t, "t", mustEvalSrc(t, "(or nil 't)", env))
}

func TestEvalListBuiltin(t *testing.T) {
	env := MakeCoreEnv()
	assert.Equal(t, "(a b c)", mustEvalSrc(t, "(list 'a 'b 'c)", env))
}

func TestEvalCadrFamily(t *testing.T) {
	env := MakeCoreEnv()
	assert.Equal(t, "a", mustEvalSrc(t, "(caar (cons (cons 'a 'b) 'c))", env))
	assert.Equal(t, "c", mustEvalSrc(t, "(cddr (cons 'a (cons 'b 'c)))", env))
}

func TestEvalDivisionByZero(t *testing.T) {
	env := MakeCoreEnv()
	_, err := EvalSrc("(/ 1 0)", env)
	require.Error(t, err)
}
