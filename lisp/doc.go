// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

// Package lisp implements the reader, printer, value model, environment,
// and evaluator of a small Lisp dialect.
//
// An expression (Expr) is one of: Nil (the Go nil pointer), Symbol, Gensym,
// Integer, Pair, Comment, Builtin, or Function. Pairs are shared, mutable
// cons cells: the same cell shape underlies source expressions, printed
// output, and environment frames, so set-car/set-cdr-style mutation and the
// resulting cycles are part of the contract, not an accident of
// implementation.
//
// The package has no notion of a "session": callers drive the reader,
// evaluator and printer directly, composing them as
// ReprExpr(Eval(ReadOneFromString(src), env)).
package lisp
