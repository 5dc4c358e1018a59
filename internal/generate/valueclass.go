// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"strings"

	"github.com/dacolabs/objcgen/internal/objc"
	"github.com/dacolabs/objcgen/internal/resolver"
)

// ValueClass generates an immutable value class with a JSON representation.
type ValueClass struct{}

func (v *ValueClass) Name() string {
	return "value-class"
}

func (v *ValueClass) Templates() (header, source string) {
	return "ValueClassTemplate.h.template", "ValueClassTemplate.mm.template"
}

func (v *ValueClass) Variables(s *resolver.Schema, opts *Options) (map[string]string, error) {
	doc, err := s.Doc()
	if err != nil {
		return nil, err
	}
	props := includedProperties(s, opts)
	name := s.TypeName(true)

	vars := commonVariables(opts)
	vars["CLASS_OBJC_NAME"] = name
	vars["CLASS_DOC"] = objc.Doc(doc)
	vars["CLASS_HEADER_FILE_NAME"] = name
	vars["INITIALIZER_DECLARATIONS"] = block(objc.InitializerDeclarations(props))
	vars["PROPERTIES_DECLARATION"] = block(objc.PropertyDeclarations(props))
	vars["INITIALIZER_IMPLEMENTATIONS"] = block(objc.InitializerImplementations(props))
	vars["JSON_SERIALIZABLE_PROTOCOL_HEADER"] = frameworkHeader(opts, "INTJSONSerializable")
	vars["JSON_FILE_NAME"] = s.FileName()
	vars["JSON_ASSIGNMENTS"] = strings.Join(objc.JSONAssignments(props), ",\n    ")
	return vars, nil
}
