// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jschema provides JSON Schema file loading and $ref utilities.
package jschema

import (
	"errors"
	"strings"
)

// ErrUnsupportedRef indicates a $ref that does not name another schema file.
var ErrUnsupportedRef = errors.New("unsupported $ref: only file references are resolved")

// Format is the serialization format of a schema file.
type Format int

const (
	// JSON is the default schema format.
	JSON Format = iota
	// YAML schemas are converted to JSON before decoding.
	YAML
)

// FormatFromPath returns the schema format implied by the file extension.
// Anything other than ".yaml" or ".yml" is treated as JSON.
func FormatFromPath(p string) Format {
	if strings.HasSuffix(p, ".yaml") || strings.HasSuffix(p, ".yml") {
		return YAML
	}
	return JSON
}

// IsFileRef returns true if ref is an external file reference.
// File refs do not start with "#/".
func IsFileRef(ref string) bool {
	return ref != "" && !IsInternalRef(ref)
}

// IsInternalRef returns true if ref points inside the current document.
func IsInternalRef(ref string) bool {
	return strings.HasPrefix(ref, "#/")
}
