// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package objc

import (
	"strings"
	"testing"

	"github.com/dacolabs/objcgen/internal/resolver"
	"github.com/dacolabs/objcgen/internal/typemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatten collapses all whitespace so assertions do not depend on wrap points.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func ptr(d typemap.Descriptor) *typemap.Descriptor {
	return &d
}

var pointProps = []resolver.Property{
	{Name: "xCoord", JSONKey: "x_coord", Type: typemap.Number, Description: "X."},
	{Name: "yCoord", JSONKey: "y_coord", Type: typemap.Number, Description: "Y."},
}

func TestType(t *testing.T) {
	tests := []struct {
		desc typemap.Descriptor
		want string
	}{
		{typemap.String, "NSString *"},
		{typemap.Integer, "NSUInteger"},
		{typemap.Boolean, "BOOL"},
		{typemap.Number, "NSNumber *"},
		{typemap.Date, "NSDate *"},
		{typemap.UUID, "NSUUID *"},
		{typemap.ArrayOf(nil), "NSArray *"},
		{typemap.ArrayOf(ptr(typemap.String)), "NSArray<NSString *> *"},
		{typemap.ArrayOf(ptr(typemap.Boolean)), "NSArray<NSNumber *> *"},
		{typemap.ArrayOf(ptr(typemap.ArrayOf(ptr(typemap.UUID)))), "NSArray<NSArray<NSUUID *> *> *"},
		{typemap.MapOf(nil), "NSDictionary<NSString *, id> *"},
		{typemap.MapOf(ptr(typemap.String)), "NSDictionary<NSString *, NSString *> *"},
		{typemap.MapOf(ptr(typemap.Integer)), "NSDictionary<NSString *, NSNumber *> *"},
		{typemap.Object("Base"), "Base *"},
	}

	for _, tt := range tests {
		t.Run(tt.desc.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Type(tt.desc))
		})
	}
}

func TestPropertyDeclarations(t *testing.T) {
	props := []resolver.Property{
		{Name: "name", Type: typemap.String, Description: "The name."},
		{Name: "count", Type: typemap.Integer, Description: "The count."},
		{Name: "score", Type: typemap.Number, Description: "The score.", Nullable: true},
		{Name: "tags", Type: typemap.ArrayOf(ptr(typemap.String)), Description: "Tags."},
	}

	decls := PropertyDeclarations(props)
	require.Len(t, decls, 4)
	assert.Equal(t, "/// The name.\n@property (readonly, nonatomic) NSString *name;", decls[0])
	assert.Equal(t, "/// The count.\n@property (readonly, nonatomic) NSUInteger count;", decls[1])
	assert.Equal(t, "/// The score.\n@property (readonly, nonatomic, nullable) NSNumber *score;", decls[2])
	assert.Equal(t, "/// Tags.\n@property (readonly, nonatomic) NSArray<NSString *> *tags;", decls[3])
}

func TestInitializerDeclarations(t *testing.T) {
	decls := InitializerDeclarations(pointProps)
	require.Len(t, decls, 2)

	assert.Equal(t, "- (instancetype)init NS_UNAVAILABLE;", decls[0])
	assert.True(t, strings.HasPrefix(decls[1], "/// Initializes with the given arguments.\n"))
	assert.Equal(t,
		"/// Initializes with the given arguments. - (instancetype)initWithXCoord:(NSNumber *)xCoord "+
			"yCoord:(NSNumber *)yCoord NS_DESIGNATED_INITIALIZER;",
		flatten(decls[1]))
}

func TestInitializerDeclarations_Nullable(t *testing.T) {
	props := []resolver.Property{{Name: "note", Type: typemap.String, Nullable: true}}
	decls := InitializerDeclarations(props)
	require.Len(t, decls, 2)
	assert.Contains(t, decls[1], "initWithNote:(nullable NSString *)note")
}

func TestInitializers_Empty(t *testing.T) {
	assert.Nil(t, InitializerDeclarations(nil))
	assert.Nil(t, InitializerImplementations(nil))
}

func TestInitializerImplementations(t *testing.T) {
	impls := InitializerImplementations(pointProps)
	require.Len(t, impls, 1)

	assert.Equal(t,
		"- (instancetype)initWithXCoord:(NSNumber *)xCoord yCoord:(NSNumber *)yCoord { "+
			"if (self = [super init]) { _xCoord = xCoord; _yCoord = yCoord; } return self; }",
		flatten(impls[0]))
	assert.Contains(t, impls[0], "\n  if (self = [super init]) {\n    _xCoord = xCoord;\n    _yCoord = yCoord;\n  }\n  return self;\n}")
}

func TestMethodSignature_Wraps(t *testing.T) {
	props := []resolver.Property{
		{Name: "firstVeryLongPropertyName", Type: typemap.String},
		{Name: "secondVeryLongPropertyName", Type: typemap.Date},
		{Name: "thirdVeryLongPropertyName", Type: typemap.UUID, Nullable: true},
	}

	decl := MethodDeclaration("initWith", props, "instancetype", "NS_DESIGNATED_INITIALIZER", "")
	lines := strings.Split(decl, "\n")
	require.Greater(t, len(lines), 1)
	for i, line := range lines {
		assert.LessOrEqual(t, len(line), LineWidth)
		if i > 0 {
			assert.True(t, strings.HasPrefix(line, "    "), "continuation line %q", line)
		}
	}
	assert.Contains(t, decl, "thirdVeryLongPropertyName:(nullable NSUUID *)thirdVeryLongPropertyName")
}

func TestDoc(t *testing.T) {
	assert.Equal(t, "/// A point.", Doc("A point."))
	assert.Equal(t, "", Doc(""))

	long := strings.Repeat("word ", 60)
	lines := strings.Split(Doc(long), "\n")
	require.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "/// "))
		assert.LessOrEqual(t, len(line), LineWidth)
	}
	assert.Equal(t, flatten(long), flatten(strings.ReplaceAll(Doc(long), "///", "")))
}

func TestJSONExpression(t *testing.T) {
	tests := []struct {
		name string
		prop resolver.Property
		want string
	}{
		{"string", resolver.Property{Name: "name", Type: typemap.String}, "self.name"},
		{"nullable string", resolver.Property{Name: "name", Type: typemap.String, Nullable: true}, "self.name ?: [NSNull null]"},
		{"number", resolver.Property{Name: "score", Type: typemap.Number}, "self.score"},
		{"integer", resolver.Property{Name: "count", Type: typemap.Integer}, "@(self.count)"},
		{"boolean", resolver.Property{Name: "enabled", Type: typemap.Boolean}, "@(self.enabled)"},
		{
			"date", resolver.Property{Name: "createdAt", Type: typemap.Date},
			"[[NSDateFormatter lt_UTCDateFormatter] stringFromDate:self.createdAt]",
		},
		{"uuid", resolver.Property{Name: "sessionID", Type: typemap.UUID}, "[self.sessionID UUIDString]"},
		{
			"nullable uuid", resolver.Property{Name: "sessionID", Type: typemap.UUID, Nullable: true},
			"[self.sessionID UUIDString] ?: [NSNull null]",
		},
		{"untyped array", resolver.Property{Name: "items", Type: typemap.ArrayOf(nil)}, "self.items"},
		{
			"string array", resolver.Property{Name: "tags", Type: typemap.ArrayOf(ptr(typemap.String))},
			"[self.tags lt_map:^(NSString *object){return object;}]",
		},
		{
			"integer array", resolver.Property{Name: "ids", Type: typemap.ArrayOf(ptr(typemap.Integer))},
			"[self.ids lt_map:^(NSNumber *object){return object;}]",
		},
		{
			"date array", resolver.Property{Name: "dates", Type: typemap.ArrayOf(ptr(typemap.Date))},
			"[self.dates lt_map:^(NSDate *object){return [[NSDateFormatter lt_UTCDateFormatter] stringFromDate:object];}]",
		},
		{
			"custom object array", resolver.Property{Name: "layers", Type: typemap.ArrayOf(ptr(typemap.Object("Layer")))},
			"[self.layers lt_map:^(Layer *object){return [object json];}]",
		},
		{
			"nested array",
			resolver.Property{Name: "grid", Type: typemap.ArrayOf(ptr(typemap.ArrayOf(ptr(typemap.String))))},
			"[self.grid lt_map:^(NSArray<NSString *> *object){return [object lt_map:^(NSString *object){return object;}];}]",
		},
		{"map", resolver.Property{Name: "extra", Type: typemap.MapOf(ptr(typemap.String))}, "[self.extra json]"},
		{"custom object", resolver.Property{Name: "base", Type: typemap.Object("Base")}, "[self.base json]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JSONExpression(tt.prop, "self"))
		})
	}
}

func TestJSONExpression_NoOwner(t *testing.T) {
	p := resolver.Property{Name: "count", Type: typemap.Integer}
	assert.Equal(t, "@(count)", JSONExpression(p, ""))
}

func TestJSONAssignments(t *testing.T) {
	assert.Equal(t, []string{
		`@"x_coord": self.xCoord`,
		`@"y_coord": self.yCoord`,
	}, JSONAssignments(pointProps))
}

// Every member serialized to JSON must be one the initializer assigns.
func TestJSONAssignments_ReferenceInitializedMembers(t *testing.T) {
	props := []resolver.Property{{Name: "a", JSONKey: "a", Type: typemap.String, Description: "A."}}

	impl := InitializerImplementations(props)[0]
	entries := JSONAssignments(props)
	require.Len(t, entries, 1)

	assert.Equal(t, `@"a": self.a`, entries[0])
	assert.Contains(t, impl, "_a = a;")
}

func TestForwardDeclaration(t *testing.T) {
	props := []resolver.Property{
		{Name: "layer", Type: typemap.Object("Layer")},
		{Name: "name", Type: typemap.String},
		{Name: "base", Type: typemap.Object("Base")},
		{Name: "otherLayer", Type: typemap.Object("Layer")},
	}
	assert.Equal(t, "@class Layer, Base;", ForwardDeclaration(props))
	assert.Equal(t, "", ForwardDeclaration(pointProps))
}

func TestPropertyAssignments(t *testing.T) {
	assert.Equal(t, []string{"    _xCoord = xCoord;", "    _yCoord = yCoord;"}, PropertyAssignments(pointProps))
}

func TestArgumentStrings(t *testing.T) {
	props := []resolver.Property{
		{Name: "count", Type: typemap.Integer},
		{Name: "note", Type: typemap.String, Nullable: true},
	}
	assert.Equal(t, []string{"count:(NSUInteger)count", "note:(nullable NSString *)note"}, ArgumentStrings(props))
}
