// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package objc

import (
	"strings"

	"github.com/dacolabs/objcgen/internal/typemap"
)

var scalarTypes = map[typemap.Kind]string{
	typemap.KindString:  "NSString *",
	typemap.KindInteger: "NSUInteger",
	typemap.KindBoolean: "BOOL",
	typemap.KindNumber:  "NSNumber *",
	typemap.KindDate:    "NSDate *",
	typemap.KindUUID:    "NSUUID *",
}

// Type returns the Objective-C type used to declare a property of descriptor d.
func Type(d typemap.Descriptor) string {
	if t, ok := scalarTypes[d.Kind]; ok {
		return t
	}

	switch d.Kind {
	case typemap.KindArray:
		if d.Elem == nil {
			return "NSArray *"
		}
		return "NSArray<" + elementType(*d.Elem) + "> *"
	case typemap.KindMap:
		if d.Elem == nil {
			return "NSDictionary<NSString *, id> *"
		}
		return "NSDictionary<NSString *, " + elementType(*d.Elem) + "> *"
	case typemap.KindObject:
		return d.Name + " *"
	default:
		return "id"
	}
}

// elementType returns the type of a collection element. Collections hold objects only, so
// scalar integers and booleans are boxed.
func elementType(d typemap.Descriptor) string {
	if isScalar(d) {
		return scalarTypes[typemap.KindNumber]
	}
	return Type(d)
}

func isScalar(d typemap.Descriptor) bool {
	return d.Kind == typemap.KindInteger || d.Kind == typemap.KindBoolean
}

// declare joins a type and a name the way Objective-C declarations are written:
// "NSString *name" and "NSUInteger count".
func declare(objcType, name string) string {
	if strings.HasSuffix(objcType, "*") {
		return objcType + name
	}
	return objcType + " " + name
}

// nullableType prefixes the type with the nullable qualifier when needed.
func nullableType(objcType string, nullable bool) string {
	if nullable {
		return "nullable " + objcType
	}
	return objcType
}
