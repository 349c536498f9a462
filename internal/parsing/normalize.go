// Package parsing implements the heuristic CV text parsing pipeline:
// normalization, section segmentation, and per-field extractors.
package parsing

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`  +`)

// Normalize collapses line-ending variants, tabs, and repeated spaces into a
// canonical line-oriented form. It is a total, deterministic function over
// any input including the empty string.
func Normalize(text string) string {
	// 1. Normalize line endings (CRLF and bare CR → LF)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	// 2. Tabs become single spaces
	text = strings.ReplaceAll(text, "\t", " ")

	// 3. Collapse runs of two or more spaces
	text = multiSpace.ReplaceAllString(text, " ")

	// 4. Trim leading/trailing whitespace of the whole blob
	return strings.TrimSpace(text)
}

// Lines splits normalized text into trimmed lines.
func Lines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}
