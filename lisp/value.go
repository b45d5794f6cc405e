// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

import (
	"math/big"
	"reflect"
	"sync/atomic"
)

// Kind tags the variant an Expr holds. A nil *Expr is always the Nil
// singleton and carries no Kind.
type Kind uint8

const (
	KindSymbol Kind = iota
	KindGensym
	KindInteger
	KindPair
	KindComment
	KindBuiltin
	KindFunction
)

// BuiltinFunc is the signature of a native callable. args is the evaluated
// argument list, in call order; builtins read their positional arguments
// from it with Car/Cadr/Caddr etc., the same way the evaluator's own
// special forms do.
type BuiltinFunc func(args Expr) (Expr, error)

// Closure holds the captured environment, parameter structure, and body of
// a user-defined function, per spec.md section 3.
type Closure struct {
	Env    Expr
	Params Expr
	Body   Expr
}

// Expr is an expression: an atom or a pair. The Go nil pointer represents
// the Nil singleton, so no allocation is needed to test for it and every
// accessor treats e == nil as "the empty list".
type Expr = *exprData

type exprData struct {
	kind Kind

	name string // Symbol
	id   uint64 // Gensym

	num *big.Int // Integer

	head, tail Expr // Pair

	text string // Comment

	builtinName string      // Builtin, for diagnostics
	builtinFn   BuiltinFunc // Builtin

	closure *Closure // Function
}

// IsNil reports whether exp is the Nil singleton.
func IsNil(exp Expr) bool { return exp == nil }

// Kind returns the variant of a non-nil expression. Calling it on Nil is a
// programmer error; callers should check IsNil first.
func (e Expr) Kind() Kind { return e.kind }

// Intern returns the Nil singleton when name is "nil"; otherwise it
// allocates a fresh Symbol. Names are not uniqued beyond that one alias:
// two calls with the same non-"nil" name return distinct, eq-by-name
// Symbol values.
func Intern(name string) Expr {
	if name == "nil" {
		return nil
	}
	return &exprData{kind: KindSymbol, name: name}
}

// SymbolName returns a Symbol's name. It panics if exp is not a Symbol;
// callers are expected to check Kind first, mirroring the value model's
// "fail fast on programmer error, return structured errors on data error"
// split.
func SymbolName(exp Expr) string {
	if exp == nil || exp.kind != KindSymbol {
		panic("lisp: SymbolName of non-symbol")
	}
	return exp.name
}

// IsSymbol, IsGensym, IsInteger, IsPair, IsComment, IsBuiltin, IsFunction
// classify a non-nil expression.
func IsSymbol(exp Expr) bool   { return exp != nil && exp.kind == KindSymbol }
func IsGensym(exp Expr) bool   { return exp != nil && exp.kind == KindGensym }
func IsInteger(exp Expr) bool  { return exp != nil && exp.kind == KindInteger }
func IsPair(exp Expr) bool     { return exp != nil && exp.kind == KindPair }
func IsComment(exp Expr) bool  { return exp != nil && exp.kind == KindComment }
func IsBuiltin(exp Expr) bool  { return exp != nil && exp.kind == KindBuiltin }
func IsFunction(exp Expr) bool { return exp != nil && exp.kind == KindFunction }

// gensymCounter is the process-wide monotonically increasing gensym id.
// Incremented atomically so that, per spec.md section 5, concurrent
// reader/evaluator instances in one process cannot hand out duplicate ids.
var gensymCounter uint64

// Gensym returns a new Gensym whose id is the current counter value; the
// counter is then incremented. Two distinct calls never return eq values.
func Gensym() Expr {
	id := atomic.AddUint64(&gensymCounter, 1) - 1
	return &exprData{kind: KindGensym, id: id}
}

// GensymID returns a Gensym's id.
func GensymID(exp Expr) uint64 {
	if exp == nil || exp.kind != KindGensym {
		panic("lisp: GensymID of non-gensym")
	}
	return exp.id
}

// NewInteger wraps a *big.Int as an Integer expression.
func NewInteger(n *big.Int) Expr { return &exprData{kind: KindInteger, num: n} }

// NewIntegerInt64 wraps an int64 as an Integer expression.
func NewIntegerInt64(n int64) Expr { return NewInteger(big.NewInt(n)) }

// IntegerValue returns an Integer expression's underlying value.
func IntegerValue(exp Expr) *big.Int {
	if exp == nil || exp.kind != KindInteger {
		panic("lisp: IntegerValue of non-integer")
	}
	return exp.num
}

// NewComment wraps a verbatim line of source text as a Comment expression.
func NewComment(text string) Expr { return &exprData{kind: KindComment, text: text} }

// CommentText returns a Comment's retained text.
func CommentText(exp Expr) string {
	if exp == nil || exp.kind != KindComment {
		panic("lisp: CommentText of non-comment")
	}
	return exp.text
}

// NewBuiltin wraps a native callable as a Builtin expression. name is used
// only for diagnostics (stack traces, error messages).
func NewBuiltin(name string, fn BuiltinFunc) Expr {
	return &exprData{kind: KindBuiltin, builtinName: name, builtinFn: fn}
}

// BuiltinName returns a Builtin's diagnostic name.
func BuiltinName(exp Expr) string {
	if exp == nil || exp.kind != KindBuiltin {
		panic("lisp: BuiltinName of non-builtin")
	}
	return exp.builtinName
}

// CallBuiltin invokes a Builtin's native callable with already-evaluated
// arguments.
func CallBuiltin(exp Expr, args Expr) (Expr, error) {
	if exp == nil || exp.kind != KindBuiltin {
		panic("lisp: CallBuiltin of non-builtin")
	}
	return exp.builtinFn(args)
}

// NewFunction wraps a captured environment, parameter structure, and body
// as a Function (closure) expression.
func NewFunction(env, params, body Expr) Expr {
	return &exprData{kind: KindFunction, closure: &Closure{Env: env, Params: params, Body: body}}
}

// FunctionClosure returns a Function's closure record.
func FunctionClosure(exp Expr) *Closure {
	if exp == nil || exp.kind != KindFunction {
		panic("lisp: FunctionClosure of non-function")
	}
	return exp.closure
}

// Cons allocates a new Pair with head a and tail b.
func Cons(a, b Expr) Expr { return &exprData{kind: KindPair, head: a, tail: b} }

// Car returns a Pair's head. It fails with a NotAPair error when exp is not
// a Pair (Nil included: Nil is an atom, not a Pair).
func Car(exp Expr) (Expr, error) {
	if !IsPair(exp) {
		return nil, notAPairError(exp)
	}
	return exp.head, nil
}

// Cdr returns a Pair's tail. It fails with a NotAPair error when exp is not
// a Pair.
func Cdr(exp Expr) (Expr, error) {
	if !IsPair(exp) {
		return nil, notAPairError(exp)
	}
	return exp.tail, nil
}

// SetCar mutates a Pair's head in place.
func SetCar(exp Expr, val Expr) error {
	if !IsPair(exp) {
		return notAPairError(exp)
	}
	exp.head = val
	return nil
}

// SetCdr mutates a Pair's tail in place.
func SetCdr(exp Expr, val Expr) error {
	if !IsPair(exp) {
		return notAPairError(exp)
	}
	exp.tail = val
	return nil
}

// Caar, Cadr, Cdar, Cddr, Caadr, Caddr, Cdddr, Cadddr, Cddddr are
// compositions of Car/Cdr; they inherit the NotAPair failure semantics of
// whichever composed call hits a non-pair first.
func Caar(exp Expr) (Expr, error) { return compose(exp, Car, Car) }
func Cadr(exp Expr) (Expr, error) { return compose(exp, Cdr, Car) }
func Cdar(exp Expr) (Expr, error) { return compose(exp, Car, Cdr) }
func Cddr(exp Expr) (Expr, error) { return compose(exp, Cdr, Cdr) }

func Caadr(exp Expr) (Expr, error) {
	x, err := Cdr(exp)
	if err != nil {
		return nil, err
	}
	return Caar(x)
}

func Caddr(exp Expr) (Expr, error) {
	x, err := Cddr(exp)
	if err != nil {
		return nil, err
	}
	return Car(x)
}

func Cdddr(exp Expr) (Expr, error) {
	x, err := Cddr(exp)
	if err != nil {
		return nil, err
	}
	return Cdr(x)
}

func Cadddr(exp Expr) (Expr, error) {
	x, err := Cdddr(exp)
	if err != nil {
		return nil, err
	}
	return Car(x)
}

func Cddddr(exp Expr) (Expr, error) {
	x, err := Cdddr(exp)
	if err != nil {
		return nil, err
	}
	return Cdr(x)
}

// compose applies outer-then-inner reading right to left, i.e.
// compose(exp, Cdr, Car) computes Car(Cdr(exp)) = cadr(exp).
func compose(exp Expr, first, second func(Expr) (Expr, error)) (Expr, error) {
	x, err := first(exp)
	if err != nil {
		return nil, err
	}
	return second(x)
}

// Eq implements fine-grained identity comparison. Two expressions of
// different kinds are never eq. Nil is eq only to Nil.
func Eq(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindSymbol:
		return a.name == b.name
	case KindGensym:
		return a.id == b.id
	case KindInteger:
		return a.num.Cmp(b.num) == 0
	case KindPair:
		return a == b
	case KindComment:
		return a.text == b.text
	case KindBuiltin:
		return reflect.ValueOf(a.builtinFn).Pointer() == reflect.ValueOf(b.builtinFn).Pointer()
	case KindFunction:
		return a.closure == b.closure
	}
	return false
}

// Equal is currently defined identically to Eq; see DESIGN.md for the
// rationale (spec.md section 9 leaves this an open question and directs
// implementers to preserve the observed, non-structural behavior).
func Equal(a, b Expr) bool { return Eq(a, b) }

// MakeBool returns the symbol t when x is true, Nil otherwise.
func MakeBool(x bool) Expr {
	if x {
		return Intern("t")
	}
	return nil
}

// IsTruthy reports whether exp should be treated as true by "if" and by
// and/or: anything other than Nil.
func IsTruthy(exp Expr) bool { return !IsNil(exp) }
