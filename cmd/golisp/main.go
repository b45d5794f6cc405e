// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

// Command golisp evaluates the small Lisp described in the LISP 1.5
// Programmer's Manual: quote, if, lambda, defun, cons cells, and a handful
// of builtins, over a reader/printer pair that round-trips its own syntax.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/samber/oops"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		if oopsErr, ok := oops.AsOops(err); ok {
			slog.Error(oopsErr.Error(), "code", oopsErr.Code())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
