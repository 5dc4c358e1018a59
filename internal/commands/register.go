// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"io"
	"log/slog"

	"github.com/dacolabs/objcgen/internal/generate"
	"github.com/dacolabs/objcgen/internal/session"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose   bool
	debugDump bool
	config    string
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(drivers generate.Register) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "objcgen",
		Short: "Generate Objective-C value classes from JSON Schema files",
		Long: `objcgen turns JSON Schema files into immutable, JSON serializable Objective-C classes.
Each schema produces a header (.h) and an implementation (.mm) file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.Load(cmd.Context(), opts.config, newLogger(cmd.ErrOrStderr(), opts.verbose || opts.debugDump))
			if err != nil {
				return err
			}
			cmd.SetContext(ctx)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.debugDump, "debug-dump", false, "Dump resolved schemas at debug level (implies --verbose)")
	rootCmd.PersistentFlags().StringVarP(&opts.config, "config", "c", "", "Path to objcgen.yaml (default: ./objcgen.yaml if present)")

	for _, name := range drivers.Available() {
		d, _ := drivers.Get(name)
		rootCmd.AddCommand(newGenerateCmd(d, opts))
	}
	rootCmd.AddCommand(newDepsCmd(opts))
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
