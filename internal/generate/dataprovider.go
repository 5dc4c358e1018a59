// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"errors"
	"strings"

	"github.com/dacolabs/objcgen/internal/naming"
	"github.com/dacolabs/objcgen/internal/objc"
	"github.com/dacolabs/objcgen/internal/resolver"
)

// ErrMissingBaseClass is returned for a data provider schema that composes no other schema.
var ErrMissingBaseClass = errors.New("data provider must compose its base event schema")

// DataProvider generates a class that supplies the fields of an event. Its superclass is
// the first schema the data provider composes.
type DataProvider struct{}

func (d *DataProvider) Name() string {
	return "data-provider"
}

func (d *DataProvider) Templates() (header, source string) {
	return "AnalytricksDataProviderTemplate.h.template", "AnalytricksDataProviderTemplate.mm.template"
}

func (d *DataProvider) Variables(s *resolver.Schema, opts *Options) (map[string]string, error) {
	doc, err := s.Doc()
	if err != nil {
		return nil, err
	}
	if len(s.Nested) == 0 {
		return nil, &resolver.ParseError{Path: s.Path, Err: ErrMissingBaseClass}
	}
	base := s.Nested[0]
	baseName := base.Schema.TypeName(true)
	props := s.Properties
	name := s.TypeName(true)

	vars := commonVariables(opts)
	vars["EVENT_OBJC_NAME"] = name
	vars["EVENT_DOC"] = objc.Doc(doc)
	vars["EVENT_FILE_NAME"] = name
	vars["EVENT_NAME"] = EventName(name, opts.eventPrefix())
	vars["ANALYTRICKS_BASE_OBJC_NAME"] = baseName
	vars["ANALYTRICKS_BASE_FILE"] = importTarget(base.Path, s.Path, baseName, opts)
	vars["INITIALIZER_DECLARATIONS"] = strings.Join(objc.InitializerDeclarations(props), "\n\n")
	vars["INITIALIZER_IMPLEMENTATIONS"] = strings.Join(objc.InitializerImplementations(props), "\n\n")
	vars["PROPERTIES_DECLARATION"] = strings.Join(objc.PropertyDeclarations(props), "\n\n")
	vars["JSON_ASSIGNMENTS"] = strings.Join(objc.JSONAssignments(props), ",\n    ")
	vars["JSON_FILE_NAME"] = s.FileName()
	return vars, nil
}

// EventName derives the snake_case event name from a data provider type name: the part
// after the first occurrence of prefix, or the whole name if prefix does not occur.
func EventName(typeName, prefix string) string {
	if i := strings.Index(typeName, prefix); i >= 0 && prefix != "" {
		typeName = typeName[i+len(prefix):]
	}
	return naming.SnakeCase(typeName)
}
