// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cycle-uber-space/golisp/lisp"
)

// NewReplCmd creates the "repl" subcommand: an interactive read-eval-print
// loop over stdin, plus optional source files loaded before the prompt
// starts. Adapted from the teacher's main/input/load functions, but built
// on the new package's explicit (Expr, error) API rather than panic/recover,
// and fed through a shared core environment so defun/lambda definitions
// persist across lines.
func NewReplCmd() *cobra.Command {
	var files []string
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "start an interactive read-eval-print loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			env := lisp.MakeCoreEnv()
			for _, file := range files {
				if err := loadFile(env, file); err != nil {
					return err
				}
			}
			runRepl(env, os.Stdin, os.Stdout, prompt)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&files, "load", nil, "source files to load before the prompt starts")
	return cmd
}

// loadFile reads and evaluates every top-level form in file, in a silent
// batch mode (no prompt, no per-form echo).
func loadFile(env lisp.Expr, file string) error {
	fd, err := os.Open(file)
	if err != nil {
		return err
	}
	defer fd.Close()
	return evalStream(env, fd, io.Discard, "")
}

// runRepl evaluates forms read from in, printing a prompt before each and
// the rendered result after, until in reaches EOF.
func runRepl(env lisp.Expr, in io.Reader, out io.Writer, p string) {
	if err := evalStream(env, in, out, p); err != nil {
		slog.Error("repl stopped", "error", err)
	}
}

// evalStream drives one source (interactive stdin or a loaded file) to
// completion: read one form, evaluate it against env, print its repr, and
// report reader/eval errors to stderr without stopping the loop. A blank
// p suppresses the prompt and per-form echo, the mode load uses.
func evalStream(env lisp.Expr, in io.Reader, out io.Writer, p string) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for {
		if p != "" {
			fmt.Fprint(out, p)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		exp, err := lisp.ReadOneFromString(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		result, err := lisp.Eval(exp, env)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if p != "" {
			fmt.Fprintln(out, lisp.ReprExpr(result))
		}
	}
}
