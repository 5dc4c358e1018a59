// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package resolver

import (
	"iter"
	"path"

	"github.com/dacolabs/objcgen/internal/naming"
	"github.com/dacolabs/objcgen/internal/typemap"
)

// Property is one resolved schema field.
type Property struct {
	Name        string             // member name, e.g. "userID"
	JSONKey     string             // wire name as written in the schema, e.g. "user_id"
	Type        typemap.Descriptor // resolved type
	Description string             // schema description with a trailing period
	Nullable    bool               // true if the schema type is a union with "null"
}

// Nested is a schema composed into another one through an allOf $ref.
type Nested struct {
	Path   string  // canonical path of the referenced file
	Member string  // member name derived from the referenced file name
	Schema *Schema // the referenced schema, resolved
}

// Schema is the result of resolving one schema file. It is not modified after Resolve
// returns it.
type Schema struct {
	Path       string
	Properties []Property
	Nested     []Nested // allOf $refs in schema order, one entry per file

	description string
}

// FileName returns the base name of the schema file.
func (s *Schema) FileName() string {
	return path.Base(s.Path)
}

// TypeName returns the type name derived from the schema file name.
func (s *Schema) TypeName(capitalized bool) string {
	return naming.TypeName(s.Path, capitalized)
}

// Doc returns the schema description with a trailing period.
func (s *Schema) Doc() (string, error) {
	if s.description == "" {
		return "", &ParseError{Path: s.Path, Err: ErrMissingDescription}
	}
	return s.description + ".", nil
}

// NestedByPath returns the nested schema entry for a canonical path, or nil.
func (s *Schema) NestedByPath(p string) *Nested {
	for i := range s.Nested {
		if s.Nested[i].Path == p {
			return &s.Nested[i]
		}
	}
	return nil
}

// Walk returns a depth-first iterator over s and every schema it composes.
// Each file is yielded once, before the schemas it references.
func Walk(s *Schema) iter.Seq[*Schema] {
	return func(yield func(*Schema) bool) {
		visited := make(map[string]struct{})
		walk(s, yield, visited)
	}
}

func walk(s *Schema, yield func(*Schema) bool, visited map[string]struct{}) bool {
	if s == nil {
		return true
	}
	if _, ok := visited[s.Path]; ok {
		return true
	}
	visited[s.Path] = struct{}{}

	if !yield(s) {
		return false
	}
	for _, n := range s.Nested {
		if !walk(n.Schema, yield, visited) {
			return false
		}
	}
	return true
}
