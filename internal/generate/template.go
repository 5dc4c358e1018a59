// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"
)

//go:embed templates/*.template
var embedded embed.FS

// ErrPlaceholderInValue is returned when a variable value contains a placeholder token,
// which would make the result depend on substitution order.
var ErrPlaceholderInValue = errors.New("variable value contains a placeholder")

var placeholderPattern = regexp.MustCompile(`@[A-Z][A-Z0-9_]*@`)

// Placeholder returns the template token for a variable name.
func Placeholder(name string) string {
	return "@" + name + "@"
}

// LoadTemplate reads the named template from override, falling back to the embedded
// defaults when override is nil or does not contain it.
func LoadTemplate(override fs.FS, name string) (string, error) {
	if override != nil {
		data, err := fs.ReadFile(override, name)
		if err == nil {
			return string(data), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to read template %s: %w", name, err)
		}
	}
	data, err := embedded.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("unknown template %s: %w", name, err)
	}
	return string(data), nil
}

// Fill replaces every @NAME@ token in tmpl with vars[NAME] in a single pass.
// Tokens without a variable are left as they are.
func Fill(tmpl string, vars map[string]string) (string, error) {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, 2*len(names))
	for _, name := range names {
		value := vars[name]
		for _, other := range names {
			if strings.Contains(value, Placeholder(other)) {
				return "", fmt.Errorf("%w: %s contains %s", ErrPlaceholderInValue, name, Placeholder(other))
			}
		}
		pairs = append(pairs, Placeholder(name), value)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl), nil
}

// Unfilled returns the distinct placeholder tokens left in s, in order of appearance.
func Unfilled(s string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range placeholderPattern.FindAllString(s, -1) {
		if !seen[m] {
			seen[m] = true
			names = append(names, m)
		}
	}
	return names
}
