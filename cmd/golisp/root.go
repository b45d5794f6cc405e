// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/cycle-uber-space/golisp/lisp"
)

// Global flags available to all subcommands.
var prompt string

// NewRootCmd creates the root command for the golisp CLI. The root itself
// takes no action: per spec.md section 6, invoking it with no subcommand is
// an error, not an interactive default.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "golisp",
		Short: "golisp - a LISP 1.5 style interpreter",
		Long: `golisp evaluates the small Lisp described in the LISP 1.5
Programmer's Manual: quote, if, lambda, defun, cons cells, and a
handful of builtins, over a reader/printer pair that round-trips
its own syntax.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return lisp.MissingCommandError()
		},
	}

	cmd.PersistentFlags().StringVar(&prompt, "prompt", "> ", "interactive prompt")

	cmd.AddCommand(NewReplCmd())
	cmd.AddCommand(NewUnitCmd())

	return cmd
}
