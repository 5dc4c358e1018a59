// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package naming converts schema keys and schema file names into Objective-C identifiers.
package naming

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Member converts a schema property key into a camelCase member name.
//
// Underscores (other than a leading one) followed by a letter or digit are dropped and the
// following character is uppercased, a leading run of digits is stripped, dotted lowercase
// suffixes such as ".intelligence" are removed and every "Id" becomes "ID".
// For example "user_id" becomes "userID" and "2fa_code" becomes "faCode".
func Member(raw string) string {
	s := camelize(raw, false, isAlnum)
	s = strings.TrimLeftFunc(s, func(r rune) bool { return r >= '0' && r <= '9' })
	s = dropDottedSuffixes(s)
	return fixAcronyms(s)
}

// TypeName converts a schema file name into a type name, such as /usr/bin/foo_bar.json to
// fooBar, or FooBar when capitalized is set.
// Directory and extension are ignored. Numeric "_2" segments and dotted suffixes are removed.
func TypeName(fileName string, capitalized bool) string {
	s := Stem(fileName)
	s = camelize(s, true, isLetter)
	s = dropNumericAndDotted(s)
	s = fixAcronyms(s)
	if capitalized {
		return UpperFirst(s)
	}
	return s
}

// Stem returns the base name of path without its final extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// UpperFirst uppercases the first ASCII letter of s if it is lowercase.
func UpperFirst(s string) string {
	if s == "" || !isLower(s[0]) {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

var (
	firstCap = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	allCap   = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// SnakeCase converts a PascalCase or camelCase identifier to snake_case.
// "PhotoSavedToCloud" becomes "photo_saved_to_cloud".
func SnakeCase(s string) string {
	s = firstCap.ReplaceAllString(s, "${1}_${2}")
	s = allCap.ReplaceAllString(s, "${1}_${2}")
	return strings.ToLower(s)
}

func camelize(s string, fromStart bool, accept func(byte) bool) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '_' && (fromStart || i > 0) && i+1 < len(s) && accept(s[i+1]) {
			sb.WriteByte(upper(s[i+1]))
			i++
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// dropDottedSuffixes removes "." followed by a lowercase run, except at the start of s.
func dropDottedSuffixes(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '.' && i > 0 && i+1 < len(s) && isLower(s[i+1]) {
			i = skipWhile(s, i+1, isLower) - 1
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

func dropNumericAndDotted(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if i+1 < len(s) {
			switch {
			case s[i] == '_' && isDigit(s[i+1]):
				i = skipWhile(s, i+1, isDigit) - 1
				continue
			case s[i] == '.' && isLetter(s[i+1]):
				i = skipWhile(s, i+1, isLetter) - 1
				continue
			}
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

func fixAcronyms(s string) string {
	return strings.ReplaceAll(s, "Id", "ID")
}

func skipWhile(s string, i int, pred func(byte) bool) int {
	for i < len(s) && pred(s[i]) {
		i++
	}
	return i
}

func upper(c byte) byte {
	if isLower(c) {
		return c - 'a' + 'A'
	}
	return c
}

func isLower(c byte) bool  { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return isLower(c) || (c >= 'A' && c <= 'Z') }
func isAlnum(c byte) bool  { return isLetter(c) || isDigit(c) }
