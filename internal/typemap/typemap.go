// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package typemap maps JSON Schema property types to language-neutral type descriptors.
package typemap

import (
	"errors"
	"fmt"

	"github.com/dacolabs/objcgen/internal/jschema"
	"github.com/dacolabs/objcgen/internal/naming"
	"github.com/google/jsonschema-go/jsonschema"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind identifies the shape of a Descriptor.
type Kind int

const (
	_ Kind = iota // zero value is an invalid Kind

	KindString
	KindInteger
	KindBoolean
	KindNumber
	KindDate
	KindUUID
	KindArray
	KindMap
	KindObject
)

// UUIDPattern is the schema pattern that marks a string property as a UUID.
const UUIDPattern = "^[A-Fa-f0-9]{8}-[A-Fa-f0-9]{4}-[A-Fa-f0-9]{4}-[A-Fa-f0-9]{4}-[A-Fa-f0-9]{12}$"

// DateTimeFormat is the schema format that marks a string property as a date.
const DateTimeFormat = "date-time"

var (
	// ErrMissingType indicates a property schema without a "type".
	ErrMissingType = errors.New("missing type")

	// ErrUnsupportedType indicates a "type" value the mapper does not know.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrAmbiguousType indicates a union "type" without exactly one non-null member.
	ErrAmbiguousType = errors.New("union type must have exactly one non-null member")
)

// Descriptor describes the type of a resolved property.
// Elem is the array element or map value type and is nil for untyped containers.
// Name is only set for KindObject.
type Descriptor struct {
	Kind Kind
	Elem *Descriptor
	Name string
}

// String returns a compact representation such as "Array(String)" or "Object(Point)".
func (d Descriptor) String() string {
	switch d.Kind {
	case KindArray, KindMap:
		if d.Elem == nil {
			return d.Kind.String()
		}
		return fmt.Sprintf("%s(%s)", d.Kind, d.Elem)
	case KindObject:
		return fmt.Sprintf("%s(%s)", d.Kind, d.Name)
	default:
		return d.Kind.String()
	}
}

// Constructors for the descriptor shapes.
var (
	String  = Descriptor{Kind: KindString}
	Integer = Descriptor{Kind: KindInteger}
	Boolean = Descriptor{Kind: KindBoolean}
	Number  = Descriptor{Kind: KindNumber}
	Date    = Descriptor{Kind: KindDate}
	UUID    = Descriptor{Kind: KindUUID}
)

// ArrayOf returns an array descriptor. A nil elem produces an untyped array.
func ArrayOf(elem *Descriptor) Descriptor {
	return Descriptor{Kind: KindArray, Elem: elem}
}

// MapOf returns a string-keyed map descriptor. A nil value produces an untyped map.
func MapOf(value *Descriptor) Descriptor {
	return Descriptor{Kind: KindMap, Elem: value}
}

// Object returns a descriptor for a generated custom object type.
func Object(name string) Descriptor {
	return Descriptor{Kind: KindObject, Name: name}
}

var nonNullableScalars = map[string]Descriptor{
	"number":  Number,
	"boolean": Boolean,
	"integer": Integer,
}

// Map returns the descriptor for a property schema and whether the property is nullable.
//
// Nullable numbers, integers and booleans all collapse to Number since only a boxed number can
// represent a missing value. Non-nullable scalars keep their own kind.
func Map(s *jsonschema.Schema) (Descriptor, bool, error) {
	if s.Ref != "" && !hasType(s) {
		if !jschema.IsFileRef(s.Ref) {
			return Descriptor{}, false, fmt.Errorf("%w: %s", jschema.ErrUnsupportedRef, s.Ref)
		}
		return Object(naming.TypeName(s.Ref, true)), false, nil
	}

	base, nullable, err := baseType(s)
	if err != nil {
		return Descriptor{}, false, err
	}

	switch base {
	case "string":
		switch {
		case s.Format == DateTimeFormat:
			return Date, nullable, nil
		case s.Pattern == UUIDPattern:
			return UUID, nullable, nil
		}
		return String, nullable, nil
	case "array":
		if s.Items == nil {
			return ArrayOf(nil), nullable, nil
		}
		elem, _, err := Map(s.Items)
		if err != nil {
			return Descriptor{}, false, fmt.Errorf("items: %w", err)
		}
		return ArrayOf(&elem), nullable, nil
	case "object":
		ap := s.AdditionalProperties
		if ap == nil || (!hasType(ap) && ap.Ref == "") {
			return MapOf(nil), nullable, nil
		}
		value, _, err := Map(ap)
		if err != nil {
			return Descriptor{}, false, fmt.Errorf("additionalProperties: %w", err)
		}
		return MapOf(&value), nullable, nil
	}

	if _, ok := nonNullableScalars[base]; !ok {
		return Descriptor{}, false, fmt.Errorf("%w: %q", ErrUnsupportedType, base)
	}
	if nullable {
		return Number, true, nil
	}
	return nonNullableScalars[base], false, nil
}

// baseType extracts the single non-null type name and whether "null" was part of a union.
func baseType(s *jsonschema.Schema) (string, bool, error) {
	if s.Type != "" {
		return s.Type, false, nil
	}
	if len(s.Types) == 0 {
		return "", false, ErrMissingType
	}

	var (
		base     string
		nullable bool
		count    int
	)
	for _, t := range s.Types {
		if t == "null" {
			nullable = true
			continue
		}
		base = t
		count++
	}
	if count != 1 {
		return "", false, fmt.Errorf("%w: %v", ErrAmbiguousType, s.Types)
	}
	return base, nullable, nil
}

func hasType(s *jsonschema.Schema) bool {
	return s.Type != "" || len(s.Types) > 0
}
