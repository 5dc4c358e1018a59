// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFill(t *testing.T) {
	got, err := Fill("Hello @NAME@, year @YEAR@.", map[string]string{"NAME": "Ada", "YEAR": "2026"})
	require.NoError(t, err)
	assert.Equal(t, "Hello Ada, year 2026.", got)
}

func TestFill_AdjacentAndRepeated(t *testing.T) {
	got, err := Fill("@A@@B@ @A@", map[string]string{"A": "1", "B": "2"})
	require.NoError(t, err)
	assert.Equal(t, "12 1", got)
}

func TestFill_LeavesUnknownTokens(t *testing.T) {
	got, err := Fill("@A@ @OTHER@ @property @{", map[string]string{"A": "x"})
	require.NoError(t, err)
	assert.Equal(t, "x @OTHER@ @property @{", got)
	assert.Equal(t, []string{"@OTHER@"}, Unfilled(got))
}

func TestFill_ValueWithAtSigns(t *testing.T) {
	got, err := Fill("@A@", map[string]string{"A": `@"key": @(self.value)`, "B": "b"})
	require.NoError(t, err)
	assert.Equal(t, `@"key": @(self.value)`, got)
}

func TestFill_PlaceholderInValue(t *testing.T) {
	_, err := Fill("@A@ @B@", map[string]string{"A": "see @B@", "B": "b"})
	assert.ErrorIs(t, err, ErrPlaceholderInValue)
}

func TestUnfilled(t *testing.T) {
	assert.Empty(t, Unfilled("@interface X : NSObject\n@end"))
	assert.Equal(t, []string{"@A@", "@B_2@"}, Unfilled("@A@ @B_2@ @A@"))
}

func TestLoadTemplate(t *testing.T) {
	override := fstest.MapFS{
		"ValueClassTemplate.h.template": &fstest.MapFile{Data: []byte("custom @CLASS_OBJC_NAME@")},
	}

	got, err := LoadTemplate(override, "ValueClassTemplate.h.template")
	require.NoError(t, err)
	assert.Equal(t, "custom @CLASS_OBJC_NAME@", got)

	got, err = LoadTemplate(override, "ValueClassTemplate.mm.template")
	require.NoError(t, err)
	assert.Contains(t, got, "@implementation @CLASS_OBJC_NAME@")

	got, err = LoadTemplate(nil, "AnalytricksEventTemplate.h.template")
	require.NoError(t, err)
	assert.Contains(t, got, "@INITIALIZER_ARGUMENTS@")

	_, err = LoadTemplate(nil, "Missing.template")
	assert.Error(t, err)
}

func TestEmbeddedTemplatesFilledByDrivers(t *testing.T) {
	for _, d := range Drivers() {
		header, source := d.Templates()
		for _, name := range []string{header, source} {
			_, err := LoadTemplate(nil, name)
			assert.NoError(t, err, name)
		}
	}
}
