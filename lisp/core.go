package lisp

import "math/big"

// MakeCoreEnv constructs the initial environment: the symbol t bound to
// itself, plus the builtins spec.md section 4.7 requires (eq, cons, car,
// cdr) and the supplemented standard environment from SPEC_FULL.md
// section 4.8 (cadr-family accessors, list, null/not, atom, equal, gensym,
// and the arithmetic/comparison/logic builtins grounded on the teacher's
// lisp1_5/math.go).
func MakeCoreEnv() Expr {
	env := MakeEnv(nil)
	EnvDef(env, Intern("t"), Intern("t"))

	def := func(name string, fn BuiltinFunc) {
		EnvDef(env, Intern(name), NewBuiltin(name, fn))
	}

	def("eq", builtinEq)
	def("equal", builtinEq) // Equal is currently defined identically to Eq.
	def("cons", builtinCons)
	def("car", builtinCar)
	def("cdr", builtinCdr)

	def("caar", cadrBuiltin(Caar))
	def("cadr", cadrBuiltin(Cadr))
	def("cdar", cadrBuiltin(Cdar))
	def("cddr", cadrBuiltin(Cddr))
	def("caadr", cadrBuiltin(Caadr))
	def("caddr", cadrBuiltin(Caddr))
	def("cdddr", cadrBuiltin(Cdddr))
	def("cadddr", cadrBuiltin(Cadddr))
	def("cddddr", cadrBuiltin(Cddddr))

	def("list", builtinList)
	def("null", builtinNull)
	def("not", builtinNull)
	def("atom", builtinAtom)
	def("gensym", builtinGensym)

	def("+", mathBuiltin(addInt))
	def("-", mathBuiltin(subInt))
	def("*", mathBuiltin(mulInt))
	def("/", mathBuiltin(divInt))
	def("mod", mathBuiltin(remInt))
	def("<", compareBuiltin(ltInt))
	def(">", compareBuiltin(gtInt))
	def("<=", compareBuiltin(leInt))
	def(">=", compareBuiltin(geInt))
	def("/=", compareBuiltin(neInt))

	def("and", builtinAnd)
	def("or", builtinOr)

	return env
}

func builtinEq(args Expr) (Expr, error) {
	a, err := Car(args)
	if err != nil {
		return nil, err
	}
	b, err := Cadr(args)
	if err != nil {
		return nil, err
	}
	return MakeBool(Eq(a, b)), nil
}

func builtinCons(args Expr) (Expr, error) {
	a, err := Car(args)
	if err != nil {
		return nil, err
	}
	b, err := Cadr(args)
	if err != nil {
		return nil, err
	}
	return Cons(a, b), nil
}

func builtinCar(args Expr) (Expr, error) {
	a, err := Car(args)
	if err != nil {
		return nil, err
	}
	return Car(a)
}

func builtinCdr(args Expr) (Expr, error) {
	a, err := Car(args)
	if err != nil {
		return nil, err
	}
	return Cdr(a)
}

// cadrBuiltin adapts one of the Caar/Cadr/... compositions, which operate
// on the argument itself, into a builtin that operates on the first
// (only) call argument, mirroring the teacher's cadrFunc.
func cadrBuiltin(fn func(Expr) (Expr, error)) BuiltinFunc {
	return func(args Expr) (Expr, error) {
		a, err := Car(args)
		if err != nil {
			return nil, err
		}
		return fn(a)
	}
}

func builtinList(args Expr) (Expr, error) {
	return args, nil
}

func builtinNull(args Expr) (Expr, error) {
	a, err := Car(args)
	if err != nil {
		return nil, err
	}
	return MakeBool(IsNil(a)), nil
}

func builtinAtom(args Expr) (Expr, error) {
	a, err := Car(args)
	if err != nil {
		return nil, err
	}
	return MakeBool(!IsPair(a)), nil
}

func builtinGensym(args Expr) (Expr, error) {
	return Gensym(), nil
}

func getInteger(exp Expr) (*big.Int, error) {
	if !IsInteger(exp) {
		return nil, notAnIntegerError(exp)
	}
	return IntegerValue(exp), nil
}

func mathBuiltin(fn func(a, b *big.Int) (*big.Int, error)) BuiltinFunc {
	return func(args Expr) (Expr, error) {
		a, err := Car(args)
		if err != nil {
			return nil, err
		}
		b, err := Cadr(args)
		if err != nil {
			return nil, err
		}
		na, err := getInteger(a)
		if err != nil {
			return nil, err
		}
		nb, err := getInteger(b)
		if err != nil {
			return nil, err
		}
		r, err := fn(na, nb)
		if err != nil {
			return nil, err
		}
		return NewInteger(r), nil
	}
}

func compareBuiltin(fn func(a, b *big.Int) bool) BuiltinFunc {
	return func(args Expr) (Expr, error) {
		a, err := Car(args)
		if err != nil {
			return nil, err
		}
		b, err := Cadr(args)
		if err != nil {
			return nil, err
		}
		na, err := getInteger(a)
		if err != nil {
			return nil, err
		}
		nb, err := getInteger(b)
		if err != nil {
			return nil, err
		}
		return MakeBool(fn(na, nb)), nil
	}
}

// addInt, subInt, mulInt, divInt, remInt and the ordering predicates below
// are grounded on the teacher's lisp1_5/math.go (add/sub/mul/div/rem,
// ge/gt/le/lt/ne), adapted from *big.Int -> *big.Int functions used by an
// elemFunc table into BuiltinFunc values wrapped by mathBuiltin and
// compareBuiltin.
func addInt(a, b *big.Int) (*big.Int, error) { return new(big.Int).Add(a, b), nil }
func subInt(a, b *big.Int) (*big.Int, error) { return new(big.Int).Sub(a, b), nil }
func mulInt(a, b *big.Int) (*big.Int, error) { return new(big.Int).Mul(a, b), nil }

func divInt(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, divisionByZeroError()
	}
	return new(big.Int).Div(a, b), nil
}

func remInt(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, divisionByZeroError()
	}
	return new(big.Int).Rem(a, b), nil
}

func ltInt(a, b *big.Int) bool { return a.Cmp(b) < 0 }
func gtInt(a, b *big.Int) bool { return a.Cmp(b) > 0 }
func leInt(a, b *big.Int) bool { return a.Cmp(b) <= 0 }
func geInt(a, b *big.Int) bool { return a.Cmp(b) >= 0 }
func neInt(a, b *big.Int) bool { return a.Cmp(b) != 0 }

// builtinAnd and builtinOr are variadic and, per spec.md section 4.7's
// Builtin application contract, receive already-evaluated arguments: every
// argument is evaluated up front by evalList before the builtin ever runs,
// so unlike the teacher's recursive andFunc/orFunc these cannot
// short-circuit evaluation, only the truth-table result.
func builtinAnd(args Expr) (Expr, error) {
	for !IsNil(args) {
		v, err := Car(args)
		if err != nil {
			return nil, err
		}
		if !IsTruthy(v) {
			return MakeBool(false), nil
		}
		args, err = Cdr(args)
		if err != nil {
			return nil, err
		}
	}
	return MakeBool(true), nil
}

func builtinOr(args Expr) (Expr, error) {
	for !IsNil(args) {
		v, err := Car(args)
		if err != nil {
			return nil, err
		}
		if IsTruthy(v) {
			return MakeBool(true), nil
		}
		args, err = Cdr(args)
		if err != nil {
			return nil, err
		}
	}
	return MakeBool(false), nil
}
