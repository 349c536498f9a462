package parsing

import (
	"regexp"
	"strings"
)

// FallbackSummary is returned when no summary section can be located; the
// professional summary is the one field guaranteed non-empty.
const FallbackSummary = "Professional seeking new opportunities"

// summaryMaxLines caps accumulation; lines of 20 characters or fewer are
// treated as noise rather than prose.
const (
	summaryMaxLines   = 10
	summaryMinLineLen = 20
)

var numericPunctLine = regexp.MustCompile(`^[\d\s[:punct:]]+$`)

// ExtractSummary accumulates the content lines of the summary section.
// Lines must be reasonably long prose; accumulation stops at the next
// section header or after summaryMaxLines lines.
func ExtractSummary(lines []string, sections []Section) string {
	var collected []string
	for _, section := range Ranges(sections, SectionSummary) {
		for i := section.Start + 1; i < section.End; i++ {
			if len(collected) >= summaryMaxLines {
				break
			}
			line := strings.TrimSpace(lines[i])
			if len(line) <= summaryMinLineLen || numericPunctLine.MatchString(line) {
				continue
			}
			collected = append(collected, line)
		}
	}

	if len(collected) == 0 {
		return FallbackSummary
	}
	return strings.Join(collected, " ")
}
