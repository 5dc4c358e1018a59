// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// InitAnswers holds the values collected by RunInitForm.
type InitAnswers struct {
	SharedFramework string
	BaseSchema      string
	EventPrefix     string
	Templates       string
	Exclude         string // comma-separated JSON keys
}

// ExcludeKeys splits the comma-separated exclude answer into trimmed, non-empty keys.
func (a *InitAnswers) ExcludeKeys() []string {
	var keys []string
	for _, k := range strings.Split(a.Exclude, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// Validate checks the answers the same way the interactive form does.
func (a *InitAnswers) Validate() error {
	return errors.Join(
		objcIdentifier("shared framework", true)(a.SharedFramework),
		schemaFile(a.BaseSchema),
		objcIdentifier("event prefix", false)(a.EventPrefix),
	)
}

// RunInitForm runs the interactive form for the init command.
// Fields already set in answers are used as defaults.
func RunInitForm(answers *InitAnswers) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Shared framework").
				Description("Framework that shared schema headers are imported from").
				Placeholder("Intelligence").
				Validate(objcIdentifier("shared framework", true)).
				Value(&answers.SharedFramework),
			huh.NewInput().
				Title("Base event schema").
				Description("File name of the schema every event composes").
				Placeholder("base.intelligence.json").
				Validate(schemaFile).
				Value(&answers.BaseSchema),
			huh.NewInput().
				Title("Data provider prefix").
				Description("Prefix stripped from data provider names to derive event names").
				Placeholder("Analytricks").
				Validate(objcIdentifier("event prefix", false)).
				Value(&answers.EventPrefix),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Templates directory").
				Description("Leave empty to use the built-in templates").
				Placeholder("./templates").
				Value(&answers.Templates),
			huh.NewInput().
				Title("Excluded properties").
				Description("Comma-separated JSON keys left out of generated classes").
				Placeholder("e.g., id, timestamp").
				Value(&answers.Exclude),
		),
	).WithTheme(Theme()).Run()
}
