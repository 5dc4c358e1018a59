// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dacolabs/objcgen/internal/config"
	"github.com/dacolabs/objcgen/internal/prompts"
	"github.com/spf13/cobra"
)

type initOptions struct {
	framework      string
	baseSchema     string
	eventPrefix    string
	templates      string
	exclude        []string
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	defaults := config.Default()
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an objcgen.yaml configuration file",
		Long: `Create an objcgen.yaml configuration file in the current directory.
Generator commands read it from the directory they run in.`,
		Example: `  # Interactive mode
  objcgen init

  # Non-interactive
  objcgen init --framework Shared --non-interactive`,
		// init must not require an existing configuration.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.framework, "framework", defaults.SharedFramework, "Framework shared headers are imported from")
	cmd.Flags().StringVar(&opts.baseSchema, "base-schema", defaults.BaseSchema, "File name of the base event schema")
	cmd.Flags().StringVar(&opts.eventPrefix, "event-prefix", defaults.EventPrefix, "Prefix stripped from data provider names")
	cmd.Flags().StringVarP(&opts.templates, "templates", "t", "", "Directory overriding the built-in templates")
	cmd.Flags().StringSliceVarP(&opts.exclude, "exclude", "e", nil, "JSON keys to leave out, comma-separated")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(cmd *cobra.Command, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfgPath := filepath.Join(cwd, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return errors.New(config.FileName + " already exists; project already initialized")
	}

	answers := &prompts.InitAnswers{
		SharedFramework: opts.framework,
		BaseSchema:      opts.baseSchema,
		EventPrefix:     opts.eventPrefix,
		Templates:       opts.templates,
		Exclude:         strings.Join(opts.exclude, ", "),
	}
	if !opts.nonInteractive {
		if err := prompts.RunInitForm(answers); err != nil {
			return err
		}
		opts.exclude = answers.ExcludeKeys()
	}
	if err := answers.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cfg := config.Config{
		Version:         config.CurrentConfigVersion,
		Templates:       answers.Templates,
		SharedFramework: answers.SharedFramework,
		BaseSchema:      answers.BaseSchema,
		EventPrefix:     answers.EventPrefix,
		Exclude:         opts.exclude,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	fields := []prompts.ResultField{
		{Label: "Shared framework", Value: cfg.SharedFramework},
		{Label: "Base schema", Value: cfg.BaseSchema},
		{Label: "Event prefix", Value: cfg.EventPrefix},
	}
	if cfg.Templates != "" {
		fields = append(fields, prompts.ResultField{Label: "Templates", Value: cfg.Templates})
	}
	if len(cfg.Exclude) > 0 {
		fields = append(fields, prompts.ResultField{Label: "Excluded", Value: strings.Join(cfg.Exclude, ", ")})
	}
	prompts.PrintResult(cmd.OutOrStdout(), fields, "Initialization completed")
	return nil
}
