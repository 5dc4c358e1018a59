// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/dacolabs/objcgen/internal/jschema"
	"github.com/dacolabs/objcgen/internal/resolver"
	"github.com/dacolabs/objcgen/internal/session"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

func newDepsCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps <schema>",
		Short: "List the schema files a schema depends on",
		Long: `List the schema file and every file it composes through allOf references,
one absolute path per line. Each file is listed once, before the files it references.`,
		Example: `  # Regenerate whenever a dependency changes
  objcgen deps events/photo_saved.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeps(cmd, root, args[0])
		},
	}
	return cmd
}

func runDeps(cmd *cobra.Command, root *rootOptions, schemaPath string) error {
	sctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	fsys, name, err := jschema.SystemFS(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to resolve schema path: %w", err)
	}

	loader := jschema.NewLoader(fsys, jschema.WithCanonicalizer(jschema.SystemCanonical))
	schema, err := resolver.New(loader, resolver.WithLogger(sctx.Logger)).Resolve(name)
	if err != nil {
		return err
	}
	if root.debugDump {
		sctx.Logger.Debug("resolved schema dump", "schema", spew.Sdump(schema))
	}

	for s := range resolver.Walk(schema) {
		fmt.Fprintln(cmd.OutOrStdout(), jschema.SystemPath(s.Path))
	}
	return nil
}
