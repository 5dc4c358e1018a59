// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package objc

import "strings"

// wrap greedily packs words into lines no longer than width, counting the indent.
// Words are never split, so a single word longer than width gets a line of its own.
func wrap(words []string, width int, initial, subsequent string) []string {
	var (
		lines []string
		line  strings.Builder
	)
	indent := initial
	for _, w := range words {
		if line.Len() > 0 && line.Len()+1+len(w) > width {
			lines = append(lines, line.String())
			line.Reset()
			indent = subsequent
		}
		if line.Len() == 0 {
			line.WriteString(indent)
			line.WriteString(w)
			continue
		}
		line.WriteByte(' ')
		line.WriteString(w)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
