// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package objc renders resolved schema properties as Objective-C declarations and
// implementation fragments for immutable, JSON serializable value classes.
package objc

import (
	"fmt"
	"strings"

	"github.com/dacolabs/objcgen/internal/naming"
	"github.com/dacolabs/objcgen/internal/resolver"
	"github.com/dacolabs/objcgen/internal/typemap"
)

// LineWidth is the column at which docs and method signatures are wrapped.
const LineWidth = 100

const (
	designatedInitializerDoc = "Initializes with the given arguments."
	nullMarker               = " ?: [NSNull null]"
	utcDateFormatter         = "[NSDateFormatter lt_UTCDateFormatter]"
)

// Doc renders text as a "///" doc comment wrapped at LineWidth.
func Doc(text string) string {
	return strings.Join(wrap(strings.Fields(text), LineWidth, "/// ", "/// "), "\n")
}

// PropertyDeclarations returns one documented, read-only @property declaration per property.
func PropertyDeclarations(props []resolver.Property) []string {
	decls := make([]string, 0, len(props))
	for _, p := range props {
		decl := fmt.Sprintf("@property %s %s;", attributes(p.Nullable), declare(Type(p.Type), p.Name))
		decls = append(decls, Doc(p.Description)+"\n"+decl)
	}
	return decls
}

func attributes(nullable bool) string {
	attrs := []string{"readonly", "nonatomic"}
	if nullable {
		attrs = append(attrs, "nullable")
	}
	return "(" + strings.Join(attrs, ", ") + ")"
}

// ArgumentStrings returns the selector parts of an initializer taking props, such as
// "name:(NSString *)name" and "age:(nullable NSNumber *)age".
func ArgumentStrings(props []resolver.Property) []string {
	args := make([]string, 0, len(props))
	for _, p := range props {
		args = append(args, fmt.Sprintf("%s:(%s)%s", p.Name, nullableType(Type(p.Type), p.Nullable), p.Name))
	}
	return args
}

// MethodDeclaration renders an instance method declaration ending with flag, e.g.
// "- (instancetype)initWithName:(NSString *)name NS_DESIGNATED_INITIALIZER;".
// A non-empty doc is rendered above it.
func MethodDeclaration(prefix string, props []resolver.Property, returnType, flag, doc string) string {
	decl := methodSignature(prefix, ArgumentStrings(props), returnType, flag+";")
	if doc == "" {
		return decl
	}
	return Doc(doc) + "\n" + decl
}

// MethodImplementation renders an instance method with the given body.
func MethodImplementation(prefix string, props []resolver.Property, returnType, body string) string {
	return strings.Join([]string{
		methodSignature(prefix, ArgumentStrings(props), returnType, "{"),
		body,
		"}",
	}, "\n")
}

func methodSignature(prefix string, args []string, returnType, suffix string) string {
	head := fmt.Sprintf("- (%s)%s", returnType, prefix)
	words := make([]string, 0, len(args)+1)
	if len(args) > 0 {
		head += naming.UpperFirst(args[0])
		args = args[1:]
	}
	words = append(words, head)
	words = append(words, args...)
	words = append(words, suffix)
	return strings.Join(wrap(words, LineWidth, "", "    "), "\n")
}

// InitializerDeclarations returns the declarations that make props the only way to construct
// the class: "init" marked unavailable and a documented designated initializer.
// It returns nil for an empty property list.
func InitializerDeclarations(props []resolver.Property) []string {
	if len(props) == 0 {
		return nil
	}
	return []string{
		MethodDeclaration("init", nil, "instancetype", "NS_UNAVAILABLE", ""),
		MethodDeclaration("initWith", props, "instancetype", "NS_DESIGNATED_INITIALIZER",
			designatedInitializerDoc),
	}
}

// InitializerImplementations returns the designated initializer implementation for props,
// or nil for an empty property list.
func InitializerImplementations(props []resolver.Property) []string {
	if len(props) == 0 {
		return nil
	}
	return []string{MethodImplementation("initWith", props, "instancetype", InitializerBody(props))}
}

// InitializerBody assigns every initializer argument to its backing ivar.
func InitializerBody(props []resolver.Property) string {
	lines := make([]string, 0, len(props)+4)
	lines = append(lines, "  if (self = [super init]) {")
	lines = append(lines, PropertyAssignments(props)...)
	lines = append(lines, "  }", "  return self;")
	return strings.Join(lines, "\n")
}

// PropertyAssignments returns "    _name = name;" for every property.
func PropertyAssignments(props []resolver.Property) []string {
	lines := make([]string, 0, len(props))
	for _, p := range props {
		lines = append(lines, fmt.Sprintf("    _%s = %s;", p.Name, p.Name))
	}
	return lines
}

// JSONAssignments returns one `@"json_key": expression` dictionary entry per property.
func JSONAssignments(props []resolver.Property) []string {
	entries := make([]string, 0, len(props))
	for _, p := range props {
		entries = append(entries, fmt.Sprintf("@\"%s\": %s", p.JSONKey, JSONExpression(p, "self")))
	}
	return entries
}

// JSONExpression returns the expression converting the property of owner to a JSON value.
// An empty owner refers to a local variable named after the property.
func JSONExpression(p resolver.Property, owner string) string {
	access := p.Name
	if owner != "" {
		access = owner + "." + p.Name
	}
	expr := jsonTransform(p.Type, access, false)
	if p.Nullable {
		expr += nullMarker
	}
	return expr
}

// jsonTransform converts access, a value of type d, to a JSON object. Boxed values are
// collection elements, which are already objects.
func jsonTransform(d typemap.Descriptor, access string, boxed bool) string {
	switch d.Kind {
	case typemap.KindString, typemap.KindNumber:
		return access
	case typemap.KindInteger, typemap.KindBoolean:
		if boxed {
			return access
		}
		return "@(" + access + ")"
	case typemap.KindDate:
		return fmt.Sprintf("[%s stringFromDate:%s]", utcDateFormatter, access)
	case typemap.KindUUID:
		return fmt.Sprintf("[%s UUIDString]", access)
	case typemap.KindArray:
		if d.Elem == nil {
			return access
		}
		elem := *d.Elem
		return fmt.Sprintf("[%s lt_map:^(%s){return %s;}]",
			access, declare(elementType(elem), "object"), jsonTransform(elem, "object", true))
	default:
		return fmt.Sprintf("[%s json]", access)
	}
}

// ForwardDeclaration returns an "@class" statement for the custom object types among props,
// deduplicated in order of first appearance, or "" if there are none.
func ForwardDeclaration(props []resolver.Property) string {
	var classes []string
	seen := make(map[string]bool)
	for _, p := range props {
		if p.Type.Kind != typemap.KindObject || seen[p.Type.Name] {
			continue
		}
		seen[p.Type.Name] = true
		classes = append(classes, p.Type.Name)
	}
	if len(classes) == 0 {
		return ""
	}
	return "@class " + strings.Join(classes, ", ") + ";"
}
