// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"
	"errors"

	"github.com/dacolabs/objcgen/internal/commands"
	"github.com/dacolabs/objcgen/internal/generate"
	"github.com/dacolabs/objcgen/internal/resolver"
)

// Exit codes returned by the CLI.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitSchemaError = 2
)

// Run is the main application logic, extracted for testability.
func Run(ctx context.Context, args []string) error {
	rootCmd := commands.NewRootCmd(generate.Drivers())
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// ExitCode maps an error returned by Run to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var perr *resolver.ParseError
	if errors.As(err, &perr) {
		return ExitSchemaError
	}
	return ExitFailure
}
