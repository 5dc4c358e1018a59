// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/dacolabs/objcgen/internal/generate"
	"github.com/dacolabs/objcgen/internal/jschema"
	"github.com/dacolabs/objcgen/internal/prompts"
	"github.com/dacolabs/objcgen/internal/resolver"
	"github.com/dacolabs/objcgen/internal/session"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	templates  string
	framework  string
	sameModule bool
	exclude    []string
	year       int
	quiet      bool
}

type driverUsage struct {
	use     string
	short   string
	example string
	shared  bool
	exclude bool
}

var driverUsages = map[string]driverUsage{
	"value-class": {
		use:   "value-class <schema> <output-dir>",
		short: "Generate an immutable value class",
		example: `  # Generate Point.h and Point.mm
  objcgen value-class schemas/point.json Sources/Generated

  # Leave properties out of the class
  objcgen value-class schemas/user.json Sources/Generated --exclude id,timestamp`,
		exclude: true,
	},
	"event": {
		use:   "event <schema> <shared-dir> <output-dir>",
		short: "Generate an analytics event class",
		example: `  # Shared schemas are imported from the shared framework
  objcgen event events/photo_saved.json shared Sources/Events

  # Import shared headers with quotes
  objcgen event events/photo_saved.json shared Sources/Events --same-module`,
		shared: true,
	},
	"data-provider": {
		use:   "data-provider <schema> <shared-dir> <output-dir>",
		short: "Generate an event data provider class",
		example: `  # The event name is derived from the type name after the prefix
  objcgen data-provider events/AnalytricksPhotoSaved.json shared Sources/Events`,
		shared: true,
	},
}

func newGenerateCmd(driver generate.Driver, root *rootOptions) *cobra.Command {
	opts := &generateOptions{}
	usage, ok := driverUsages[driver.Name()]
	if !ok {
		usage = driverUsage{use: driver.Name() + " <schema> <output-dir>", short: "Generate with the " + driver.Name() + " driver"}
	}

	nargs := 2
	if usage.shared {
		nargs = 3
	}

	cmd := &cobra.Command{
		Use:     usage.use,
		Short:   usage.short,
		Example: usage.example,
		Args:    cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			sharedDir := ""
			if usage.shared {
				sharedDir = args[1]
			}
			return runGenerate(cmd, driver, root, opts, args[0], sharedDir, args[nargs-1])
		},
	}

	cmd.Flags().StringVarP(&opts.templates, "templates", "t", "", "Directory overriding the built-in templates")
	cmd.Flags().IntVar(&opts.year, "year", 0, "Copyright year (default: current year)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Do not print the generated files")
	if usage.exclude {
		cmd.Flags().StringSliceVarP(&opts.exclude, "exclude", "e", nil, "JSON keys to leave out, comma-separated")
	}
	if usage.shared {
		cmd.Flags().StringVar(&opts.framework, "framework", "", "Framework shared headers are imported from")
		cmd.Flags().BoolVar(&opts.sameModule, "same-module", false, "Import shared headers with quotes")
	}

	return cmd
}

func runGenerate(cmd *cobra.Command, driver generate.Driver, root *rootOptions, opts *generateOptions,
	schemaPath, sharedDir, outDir string,
) error {
	sctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}
	logger := sctx.Logger.With("driver", driver.Name())

	genOpts, err := buildOptions(cmd, driver, sctx, opts, sharedDir)
	if err != nil {
		return err
	}

	fsys, name, err := jschema.SystemFS(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to resolve schema path: %w", err)
	}

	genOpts.Logger = logger
	genOpts.Canonical = jschema.SystemCanonical
	if root.debugDump {
		genOpts.Inspect = func(s *resolver.Schema) {
			logger.Debug("resolved schema dump", "schema", spew.Sdump(s))
		}
	}

	out, err := generate.Generate(driver, fsys, name, genOpts)
	if err != nil {
		return err
	}

	written, err := out.Write(outDir)
	if err != nil {
		return err
	}
	logger.Debug("generated", "type", out.TypeName, "files", written)

	if !opts.quiet {
		prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
			{Label: "Header", Value: written[0]},
			{Label: "Implementation", Value: written[1]},
		}, fmt.Sprintf("Generated %s", out.TypeName))
	}
	return nil
}

// buildOptions merges the loaded configuration with command flags, flags taking precedence.
func buildOptions(cmd *cobra.Command, driver generate.Driver, sctx *session.Context, opts *generateOptions,
	sharedDir string,
) (*generate.Options, error) {
	cfg := sctx.Config

	genOpts := &generate.Options{
		SharedFramework: cfg.SharedFramework,
		BaseSchema:      cfg.BaseSchema,
		EventPrefix:     cfg.EventPrefix,
		Year:            cfg.Year,
		Exclude:         append([]string{}, cfg.Exclude...),
		ScriptName:      "objcgen " + driver.Name(),
		Logger:          sctx.Logger,
		SameModule:      opts.sameModule,
	}

	if cmd.Flags().Changed("framework") {
		genOpts.SharedFramework = opts.framework
	}
	if cmd.Flags().Changed("year") {
		genOpts.Year = opts.year
	}
	genOpts.Exclude = append(genOpts.Exclude, opts.exclude...)

	templatesDir := cfg.TemplatesDir()
	if cmd.Flags().Changed("templates") {
		templatesDir = opts.templates
	}
	if templatesDir != "" {
		templates, err := templatesFS(templatesDir)
		if err != nil {
			return nil, err
		}
		genOpts.Templates = templates
	}

	if sharedDir != "" {
		info, err := os.Stat(sharedDir)
		if err != nil {
			return nil, fmt.Errorf("shared directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("shared directory: %s is not a directory", sharedDir)
		}
		_, sharedName, err := jschema.SystemFS(sharedDir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve shared directory: %w", err)
		}
		genOpts.SharedRoot = sharedName
	}

	return genOpts, nil
}

func templatesFS(dir string) (fs.FS, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("templates directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("templates directory: %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}
