// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package prompts provides interactive terminal prompts for CLI commands.
package prompts

import (
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dacolabs/objcgen/internal/jschema"
)

// Theme returns the huh theme used by the init form.
func Theme() *huh.Theme {
	theme := huh.ThemeBase16()
	theme.FieldSeparator = lipgloss.NewStyle().SetString("\n").MarginBottom(1)
	theme.Form.Base = theme.Form.Base.MarginTop(1)
	theme.Group.Base = theme.Group.Base.MarginTop(1)
	theme.Focused.Title = theme.Focused.Title.Foreground(lipgloss.Color("#f9ca24"))
	theme.Blurred.Title = theme.Blurred.Title.Foreground(lipgloss.Color("#bababa"))
	return theme
}

// ResultField is a label-value pair for PrintResult.
type ResultField struct {
	Label string
	Value string
}

// PrintResult writes a summary of what a command produced to w, one checked line per field.
func PrintResult(w io.Writer, fields []ResultField, successMsg string) {
	success := lipgloss.NewStyle().Foreground(lipgloss.Color("#27ca3f"))
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))
	check := success.Render("✓")

	fmt.Fprintln(w)
	for _, f := range fields {
		fmt.Fprintf(w, "%s %s %s\n", check, label.Render(f.Label+":"), f.Value)
	}

	if successMsg != "" {
		fmt.Fprintln(w, success.Render("\n"+successMsg))
	}
}

// Words that cannot name an Objective-C framework or prefix a class.
var objcReserved = map[string]struct{}{
	"id": {}, "self": {}, "super": {}, "nil": {}, "Nil": {}, "YES": {}, "NO": {},
	"SEL": {}, "IMP": {}, "Class": {}, "BOOL": {}, "NULL": {},
}

// objcIdentifier validates values used as Objective-C identifiers: framework names in
// #import <Framework/Header.h> lines and the prefix of generated class names.
// An empty value is accepted unless required is set.
func objcIdentifier(field string, required bool) func(string) error {
	return func(s string) error {
		if s == "" {
			if required {
				return fmt.Errorf("%s is required", field)
			}
			return nil
		}
		for i, r := range s {
			letter := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
			if i == 0 && !letter {
				return fmt.Errorf("%s must start with an ASCII letter or underscore", field)
			}
			if !letter && (r < '0' || r > '9') {
				return fmt.Errorf("%s must contain only ASCII letters, digits and underscores", field)
			}
		}
		if _, ok := objcReserved[s]; ok {
			return fmt.Errorf("%s %q is reserved in Objective-C", field, s)
		}
		return nil
	}
}

// schemaFile validates the base schema answer, a bare schema file name.
func schemaFile(s string) error {
	switch {
	case s == "":
		return errors.New("base schema is required")
	case strings.ContainsAny(s, `/\`):
		return fmt.Errorf("base schema %q must be a file name, not a path", s)
	case path.Ext(s) != ".json" && jschema.FormatFromPath(s) != jschema.YAML:
		return fmt.Errorf("base schema %q must be a .json, .yaml or .yml file", s)
	}
	return nil
}
