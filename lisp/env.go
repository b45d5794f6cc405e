package lisp

// An environment is a chain of frames. Each frame is a Pair whose head is a
// parallel pair (vars . vals) — two equal-length lists sharing structure by
// position — and whose tail is the enclosing environment, or Nil at the
// outermost (global) frame. This is the same shared, mutable Pair
// structure that backs source expressions (spec.md section 1); env_push,
// env_def and env_del all rewire it in place.

// MakeEnv returns a new, empty frame atop outer.
func MakeEnv(outer Expr) Expr {
	return Cons(Cons(nil, nil), outer)
}

func envFrame(env Expr) Expr { return env.head }
func envOuter(env Expr) Expr { return env.tail }
func envVars(env Expr) Expr  { return envFrame(env).head }
func envVals(env Expr) Expr  { return envFrame(env).tail }

// EnvPush prepends var to the top frame's vars and val to its vals.
// Duplicates are allowed; later lookups see the most recently pushed
// binding first.
func EnvPush(env Expr, v, val Expr) {
	frame := envFrame(env)
	frame.head = Cons(v, frame.head)
	frame.tail = Cons(val, frame.tail)
}

// EnvFindLocal walks the top frame's vars/vals looking for the first eq
// match and returns the vals cell holding it (so the caller can mutate its
// head in place), or Nil if var is not bound in this frame.
func EnvFindLocal(env Expr, v Expr) Expr {
	vars := envVars(env)
	vals := envVals(env)
	for IsPair(vars) {
		if Eq(vars.head, v) {
			return vals
		}
		vars = vars.tail
		vals = vals.tail
	}
	return nil
}

// EnvFindGlobal walks frames outward from env, returning the first
// non-Nil vals cell produced by EnvFindLocal, or Nil if var is unbound
// anywhere in the chain.
func EnvFindGlobal(env Expr, v Expr) Expr {
	for !IsNil(env) {
		if cell := EnvFindLocal(env, v); !IsNil(cell) {
			return cell
		}
		env = envOuter(env)
	}
	return nil
}

// EnvDef overwrites var's value if it is already bound in the top frame;
// otherwise it pushes a new binding there.
func EnvDef(env Expr, v, val Expr) {
	if cell := EnvFindLocal(env, v); !IsNil(cell) {
		cell.head = val
		return
	}
	EnvPush(env, v, val)
}

// EnvSet locates var globally and overwrites its value, failing with an
// Unbound error if it has no binding anywhere in the chain.
func EnvSet(env Expr, v, val Expr) error {
	cell := EnvFindGlobal(env, v)
	if IsNil(cell) {
		return unboundError(v)
	}
	cell.head = val
	return nil
}

// EnvGet locates var globally and returns its value, failing with an
// Unbound error if it has no binding anywhere in the chain.
func EnvGet(env Expr, v Expr) (Expr, error) {
	cell := EnvFindGlobal(env, v)
	if IsNil(cell) {
		return nil, unboundError(v)
	}
	return cell.head, nil
}

// EnvDel removes the first local match from the top frame by rewiring
// around it. It fails with a CannotRemove error if var is not bound in the
// top frame (env_del never looks at outer frames).
func EnvDel(env Expr, v Expr) error {
	frame := envFrame(env)
	vars := frame.head
	vals := frame.tail
	var prevVars, prevVals Expr
	for IsPair(vars) {
		if Eq(vars.head, v) {
			if IsNil(prevVars) {
				frame.head = vars.tail
				frame.tail = vals.tail
			} else {
				prevVars.tail = vars.tail
				prevVals.tail = vals.tail
			}
			return nil
		}
		prevVars, prevVals = vars, vals
		vars, vals = vars.tail, vals.tail
	}
	return cannotRemoveError(v)
}

// EnvDbind destructuring-binds vars against vals in env. When vars is a
// proper list it zips position-wise with vals and recursively binds each
// pair; when vars ends in a non-Nil, non-Pair tail, that tail name is bound
// to whatever remains of vals (rest-parameter semantics). This is the only
// path in the core where an atom-terminated vars list is meaningful.
func EnvDbind(env Expr, vars, vals Expr) {
	if IsNil(vars) {
		return
	}
	for IsPair(vars) {
		var val Expr
		if IsPair(vals) {
			val = vals.head
		}
		EnvDbind(env, vars.head, val)
		vars = vars.tail
		if IsPair(vals) {
			vals = vals.tail
		} else {
			vals = nil
		}
	}
	if !IsNil(vars) {
		EnvDef(env, vars, vals)
	}
}
