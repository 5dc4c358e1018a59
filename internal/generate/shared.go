// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/dacolabs/objcgen/internal/resolver"
	"github.com/dacolabs/objcgen/internal/typemap"
)

// commonVariables returns the variables every template uses.
func commonVariables(opts *Options) map[string]string {
	return map[string]string{
		"YEAR":        strconv.Itoa(opts.year()),
		"SCRIPT_NAME": opts.ScriptName,
	}
}

// includedProperties returns the schema properties whose JSON key is not excluded.
func includedProperties(s *resolver.Schema, opts *Options) []resolver.Property {
	if len(opts.Exclude) == 0 {
		return s.Properties
	}
	excluded := make(map[string]bool, len(opts.Exclude))
	for _, key := range opts.Exclude {
		excluded[key] = true
	}
	props := make([]resolver.Property, 0, len(s.Properties))
	for _, p := range s.Properties {
		if excluded[p.JSONKey] {
			opts.logger().Debug("excluded property", "schema", s.Path, "key", p.JSONKey)
			continue
		}
		props = append(props, p)
	}
	return props
}

// customObjects returns the composed schemas other than the base schema, sorted by member name.
func customObjects(s *resolver.Schema, opts *Options) []resolver.Nested {
	var nested []resolver.Nested
	for _, n := range s.Nested {
		if path.Base(n.Path) == opts.baseSchema() {
			continue
		}
		nested = append(nested, n)
	}
	sort.SliceStable(nested, func(i, j int) bool {
		return nested[i].Member < nested[j].Member
	})
	return nested
}

// customProperties exposes each custom object as a non-nullable property of its own type.
func customProperties(nested []resolver.Nested) ([]resolver.Property, error) {
	props := make([]resolver.Property, 0, len(nested))
	for _, n := range nested {
		doc, err := n.Schema.Doc()
		if err != nil {
			return nil, err
		}
		props = append(props, resolver.Property{
			Name:        n.Member,
			Type:        typemap.Object(n.Schema.TypeName(true)),
			Description: doc,
		})
	}
	return props, nil
}

// withinDir reports whether p lies in dir. Both are cleaned slash-separated paths.
func withinDir(p, dir string) bool {
	if dir == "" {
		return false
	}
	if dir == "." {
		return true
	}
	return p == dir || strings.HasPrefix(p, dir+"/")
}

// importTarget returns the argument of the #import directive that makes the header for the
// schema at nestedPath visible from the schema at ownerPath: "<Framework/Name.h>" when the
// nested schema is shared and the owner is not, "\"Name.h\"" otherwise.
func importTarget(nestedPath, ownerPath, typeName string, opts *Options) string {
	if !opts.SameModule && withinDir(nestedPath, opts.SharedRoot) && !withinDir(ownerPath, opts.SharedRoot) {
		return fmt.Sprintf("<%s/%s.h>", opts.sharedFramework(), typeName)
	}
	return fmt.Sprintf("%q", typeName+".h")
}

// frameworkHeader returns "<Framework/name.h>" for a header of the shared framework.
func frameworkHeader(opts *Options, name string) string {
	return fmt.Sprintf("<%s/%s.h>", opts.sharedFramework(), name)
}

// block joins parts with a blank line between them, wrapped in newlines when non-empty.
func block(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	return "\n" + strings.Join(parts, "\n\n") + "\n"
}
