// Package doctest is a small, runtime-invocable stand-in for Python's
// doctest module (see original_source/lisp.py, whose every function
// carries a >>> docstring executed by doctest.testmod()). Go's own
// Example functions are the idiomatic analogue but are compiled into a
// go test binary and cannot be invoked from a running program's "unit"
// command, so this package hand-rolls the minimum needed to satisfy
// spec.md section 6's CLI contract: a registry of named checks, each
// comparing an actual value against an expected one, run on demand and
// reported to an io.Writer.
package doctest

import (
	"fmt"
	"io"
)

// Case is one registered check. Run executes the check and returns the
// value produced, the value expected, and any error encountered producing
// it (a non-nil error is always a failure, independent of got/want).
type Case struct {
	Name string
	Run  func() (got, want string, err error)
}

var registry []Case

// Register appends a Case to the process-wide suite. It is called from
// the init function in cases.go, mirroring how
// original_source/lisp.py's docstrings sit next to the function they
// document.
func Register(c Case) {
	registry = append(registry, c)
}

// RunAll runs every registered case in registration order, writing one
// line per failure to w, and returns the pass/fail counts.
func RunAll(w io.Writer) (passed, failed int) {
	for _, c := range registry {
		got, want, err := c.Run()
		if err != nil {
			failed++
			fmt.Fprintf(w, "FAIL %s: error: %v\n", c.Name, err)
			continue
		}
		if got != want {
			failed++
			fmt.Fprintf(w, "FAIL %s: got %q, want %q\n", c.Name, got, want)
			continue
		}
		passed++
	}
	return passed, failed
}
