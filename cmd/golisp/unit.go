// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cycle-uber-space/golisp/internal/doctest"
)

// NewUnitCmd creates the "unit" subcommand, the sole command spec.md
// section 6 names: it runs the embedded doctest suite and reports the
// outcome as a process exit code, the runtime analogue of
// original_source/lisp.py's doctest.testmod() call at the bottom of the
// file.
func NewUnitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unit",
		Short: "run the embedded test suite",
		RunE: func(cmd *cobra.Command, args []string) error {
			passed, failed := doctest.RunAll(os.Stderr)
			slog.Info("unit tests complete", "passed", passed, "failed", failed)
			if failed > 0 {
				os.Exit(1)
			}
			return nil
		},
	}
}
