package lisp

// Eval dispatches on exp: Nil evaluates to itself; a Symbol or Gensym looks
// itself up in env; an Integer self-evaluates (SPEC_FULL.md section 4.8 —
// the reference dispatch table has no case for a bare integer, which would
// make the arithmetic builtins unusable, so this is a deliberate
// supplement); a Pair headed by the special forms quote, lit, or if is
// handled directly; a Pair headed by lambda or defun (section 4.8's
// supplemented special forms) constructs or installs a Function; any other
// Pair is an application. Evaluating any other atom (a Comment, Builtin, or
// Function appearing outside of quote) fails with CannotEval.
func Eval(exp Expr, env Expr) (Expr, error) {
	if IsNil(exp) {
		return nil, nil
	}
	if IsSymbol(exp) || IsGensym(exp) {
		return EnvGet(env, exp)
	}
	if IsInteger(exp) {
		return exp, nil
	}
	if IsPair(exp) {
		if head := exp.head; IsSymbol(head) {
			switch SymbolName(head) {
			case "quote":
				return Cadr(exp)
			case "lit":
				return exp, nil
			case "if":
				return evalIf(exp, env)
			case "lambda":
				return evalLambda(exp, env)
			case "defun":
				return evalDefun(exp, env)
			}
		}
		return evalCons(exp, env)
	}
	return nil, cannotEvalError(exp)
}

// evalDepth guards against exceeding the host call stack. The interpreter
// is single-threaded and synchronous (spec.md section 5), so a plain
// package-level counter is sufficient; it is not meant to survive
// concurrent interpreters in one process.
var evalDepth int

const maxEvalDepth = 60000

func withDepthGuard(f func() (Expr, error)) (Expr, error) {
	evalDepth++
	defer func() { evalDepth-- }()
	if evalDepth > maxEvalDepth {
		return nil, stackOverflowError()
	}
	return f()
}

// evalCons implements application: a Pair whose head names a Builtin,
// Function, or something else entirely (spec.md section 4.7).
func evalCons(exp Expr, env Expr) (Expr, error) {
	return withDepthGuard(func() (Expr, error) {
		name, err := Car(exp)
		if err != nil {
			return nil, err
		}
		args, err := Cdr(exp)
		if err != nil {
			return nil, err
		}
		switch {
		case IsBuiltin(name):
			vals, err := evalList(args, env)
			if err != nil {
				return nil, err
			}
			return CallBuiltin(name, vals)
		case IsFunction(name):
			vals, err := evalList(args, env)
			if err != nil {
				return nil, err
			}
			closure := FunctionClosure(name)
			cenv := MakeEnv(closure.Env)
			EnvDbind(cenv, closure.Params, vals)
			return evalBody(closure.Body, cenv)
		default:
			// name is not yet a callable: evaluate it (e.g. it may be a
			// symbol bound to a Builtin or Function) and re-enter eval
			// with the original, UNevaluated args. This is deliberate:
			// reproduced literally from the reference semantics, it means
			// (foo 'a 'b) works when foo names a builtin but a head that
			// evaluates to another non-callable value keeps recursing
			// until the depth guard fails with a stack-overflow error,
			// rather than erroring immediately.
			evaledName, err := Eval(name, env)
			if err != nil {
				return nil, err
			}
			return Eval(Cons(evaledName, args), env)
		}
	})
}

// evalIf implements the three-arm conditional.
func evalIf(exp Expr, env Expr) (Expr, error) {
	test, err := Cadr(exp)
	if err != nil {
		return nil, err
	}
	testVal, err := Eval(test, env)
	if err != nil {
		return nil, err
	}
	if IsTruthy(testVal) {
		then, err := Caddr(exp)
		if err != nil {
			return nil, err
		}
		return Eval(then, env)
	}
	rest, err := Cdddr(exp)
	if err != nil {
		return nil, err
	}
	if IsNil(rest) {
		return nil, nil
	}
	elseExpr, err := Cadddr(exp)
	if err != nil {
		return nil, err
	}
	return Eval(elseExpr, env)
}

// evalLambda builds a Function value closing over env.
func evalLambda(exp Expr, env Expr) (Expr, error) {
	params, err := Cadr(exp)
	if err != nil {
		return nil, err
	}
	body, err := Cddr(exp)
	if err != nil {
		return nil, err
	}
	return NewFunction(env, params, body), nil
}

// evalDefun sugars (defun name (params...) body...): it builds a Function
// value closing over the global frame of the defining environment and
// binds name there, then returns name. See SPEC_FULL.md section 4.8.
func evalDefun(exp Expr, env Expr) (Expr, error) {
	name, err := Cadr(exp)
	if err != nil {
		return nil, err
	}
	params, err := Caddr(exp)
	if err != nil {
		return nil, err
	}
	body, err := Cdddr(exp)
	if err != nil {
		return nil, err
	}
	global := globalFrame(env)
	fn := NewFunction(global, params, body)
	EnvDef(global, name, fn)
	return name, nil
}

func globalFrame(env Expr) Expr {
	for !IsNil(envOuter(env)) {
		env = envOuter(env)
	}
	return env
}

// evalList evaluates a list elementwise, left to right, and returns the
// results as a proper list in the same order. It is built by prepending
// each evaluated value and reversing at the end with Nreverse, the same
// shape as the reference implementation's eval_list — which is also why
// Nreverse lives in list.go rather than only being an evaluator-internal
// helper.
func evalList(exps Expr, env Expr) (Expr, error) {
	var acc Expr
	for !IsNil(exps) {
		if !IsPair(exps) {
			return nil, notAPairError(exps)
		}
		v, err := Eval(exps.head, env)
		if err != nil {
			return nil, err
		}
		acc = Cons(v, acc)
		exps = exps.tail
	}
	return Nreverse(acc), nil
}

// evalBody evaluates a body sequence in order, returning the last value
// (Nil for an empty body).
func evalBody(body Expr, env Expr) (Expr, error) {
	var ret Expr
	for !IsNil(body) {
		if !IsPair(body) {
			return nil, notAPairError(body)
		}
		v, err := Eval(body.head, env)
		if err != nil {
			return nil, err
		}
		ret = v
		body = body.tail
	}
	return ret, nil
}

// EvalSrc composes the reader, evaluator, and printer:
// EvalSrc(text, env) = ReprExpr(Eval(ReadOneFromString(text), env)).
func EvalSrc(text string, env Expr) (string, error) {
	exp, err := ReadOneFromString(text)
	if err != nil {
		return "", err
	}
	result, err := Eval(exp, env)
	if err != nil {
		return "", err
	}
	return ReprExpr(result), nil
}
