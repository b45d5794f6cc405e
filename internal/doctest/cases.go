package doctest

import (
	"github.com/cycle-uber-space/golisp/lisp"
)

// evalCase registers a Case that feeds src through lisp.EvalSrc against a
// fresh environment (nil, or a fresh core environment when core is true)
// and compares the rendered result to want. This is exactly the contract
// spec.md section 1 describes for the doctest harness: "feeding source
// strings to the reader, receiving rendered output".
func evalCase(name, src string, core bool, want string) {
	Register(Case{
		Name: name,
		Run: func() (got, wantOut string, err error) {
			var env lisp.Expr
			if core {
				env = lisp.MakeCoreEnv()
			}
			got, err = lisp.EvalSrc(src, env)
			return got, want, err
		},
	})
}

// readCase registers a Case that reads src and compares its printed parse
// tree to want, independent of evaluation.
func readCase(name, src, want string) {
	Register(Case{
		Name: name,
		Run: func() (got, wantOut string, err error) {
			exp, err := lisp.ReadOneFromString(src)
			if err != nil {
				return "", want, err
			}
			return lisp.ReprExpr(exp), want, nil
		},
	})
}

func init() {
	// spec.md section 8, "Concrete scenarios".
	evalCase("eval/nil", "nil", false, "nil")
	evalCase("eval/quote-foo", "'foo", false, "foo")
	evalCase("eval/if-then", "(if 't 'a 'b)", false, "a")
	evalCase("eval/if-else", "(if nil 'a 'b)", false, "b")
	evalCase("eval/if-no-else", "(if nil 'a)", false, "nil")
	evalCase("eval/cons", "(cons 'a 'b)", true, "(a . b)")
	evalCase("eval/cons-nil-tail", "(cons 'a nil)", true, "(a)")
	evalCase("eval/eq-true", "(eq 'a 'a)", true, "t")
	evalCase("eval/eq-false", "(eq 'a 'b)", true, "nil")
	evalCase("eval/car", "(car (cons 'a 'b))", true, "a")
	evalCase("eval/cdr", "(cdr (cons 'a 'b))", true, "b")
	evalCase("eval/lit", "(lit foo bar baz)", false, "(lit foo bar baz)")
	evalCase("eval/lit-empty", "(lit)", false, "(lit)")
	evalCase("eval/t-in-core-env", "t", true, "t")

	// spec.md section 8, "Reader parse scenarios".
	readCase("read/defun", "(defun add (a b) (+ a b))", "(defun add (a b) (+ a b))")
	readCase("read/dotted-pair", "(foo . bar)", "(foo . bar)")
	readCase("read/dotted-nil-tail", "(foo . nil)", "(foo)")
	readCase("read/plain-list", "(foo)", "(foo)")
	readCase("read/quote-sugar", "'foo", "(quote foo)")

	// spec.md section 8, invariants.
	Register(Case{
		Name: "invariant/intern-nil-is-singleton",
		Run: func() (got, want string, err error) {
			if lisp.IsNil(lisp.Intern("nil")) {
				return "nil", "nil", nil
			}
			return "not-nil", "nil", nil
		},
	})
	Register(Case{
		Name: "invariant/gensym-distinct",
		Run: func() (got, want string, err error) {
			a, b := lisp.Gensym(), lisp.Gensym()
			if lisp.Eq(a, b) {
				return "eq", "not-eq", nil
			}
			return "not-eq", "not-eq", nil
		},
	})

	// spec.md section 8, boundary behaviors.
	Register(Case{
		Name: "boundary/empty-input-is-error",
		Run: func() (got, want string, err error) {
			_, rerr := lisp.ReadOneFromString("")
			if rerr == nil {
				return "no-error", "error", nil
			}
			return "error", "error", nil
		},
	})
	Register(Case{
		Name: "boundary/unbalanced-paren-is-error",
		Run: func() (got, want string, err error) {
			_, rerr := lisp.ReadOneFromString("(a b")
			if rerr == nil {
				return "no-error", "error", nil
			}
			return "error", "error", nil
		},
	})
	Register(Case{
		Name: "boundary/car-of-nil-is-error",
		Run: func() (got, want string, err error) {
			_, cerr := lisp.Car(nil)
			if cerr == nil {
				return "no-error", "error", nil
			}
			return "error", "error", nil
		},
	})
}
