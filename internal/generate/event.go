// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"strings"

	"github.com/dacolabs/objcgen/internal/naming"
	"github.com/dacolabs/objcgen/internal/objc"
	"github.com/dacolabs/objcgen/internal/resolver"
)

// Event generates an analytics event class. Every schema the event composes, except the
// base schema, becomes a property of the event whose JSON is merged into the event's own.
type Event struct{}

func (e *Event) Name() string {
	return "event"
}

func (e *Event) Templates() (header, source string) {
	return "AnalytricksEventTemplate.h.template", "AnalytricksEventTemplate.mm.template"
}

func (e *Event) Variables(s *resolver.Schema, opts *Options) (map[string]string, error) {
	doc, err := s.Doc()
	if err != nil {
		return nil, err
	}

	nested := customObjects(s, opts)
	custom, err := customProperties(nested)
	if err != nil {
		return nil, err
	}
	own := s.Properties
	all := append(append([]resolver.Property{}, custom...), own...)
	if err := resolver.CheckDuplicates(all); err != nil {
		return nil, &resolver.ParseError{Path: s.Path, Err: err}
	}

	providers := make([]string, 0, len(custom))
	for _, p := range custom {
		providers = append(providers, "self."+p.Name)
	}

	imports := make([]string, 0, len(nested))
	for _, n := range nested {
		imports = append(imports, "#import "+importTarget(n.Path, s.Path, n.Schema.TypeName(true), opts))
	}

	forward := objc.ForwardDeclaration(custom)
	if forward != "" {
		forward = "\n" + forward + "\n"
	}

	arguments := ""
	if args := objc.ArgumentStrings(all); len(args) > 0 {
		arguments = "With" + naming.UpperFirst(strings.Join(args, " "))
	}

	name := s.TypeName(true)
	vars := commonVariables(opts)
	vars["EVENT_OBJC_NAME"] = name
	vars["EVENT_DOC"] = objc.Doc(doc)
	vars["EVENT_FILE_NAME"] = name
	vars["PROPERTIES_DECLARATION"] = block(objc.PropertyDeclarations(all))
	vars["ANALYTRICKS_FILE_IMPORT"] = frameworkHeader(opts, "INTAnalytricksEvent")
	vars["CUSTOM_CLASS_DECLARATION"] = forward
	vars["INITIALIZER_ARGUMENTS"] = arguments
	vars["PROPERTIES_ASSIGNMENT"] = strings.Join(objc.PropertyAssignments(all), "\n")
	vars["JSON_PROVIDERS"] = strings.Join(providers, ", ")
	vars["JSON_ASSIGNMENTS"] = strings.Join(objc.JSONAssignments(own), ",\n    ")
	vars["JSON_SERIALIZABLE_IMPORTS"] = strings.Join(imports, "\n")
	vars["JSON_FILE_NAME"] = s.FileName()
	return vars, nil
}
