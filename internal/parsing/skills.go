package parsing

import (
	"strings"

	"github.com/agbarbie/rural-connect-cv-parser/internal/types"
)

// Name length bounds; the floor admits two-letter names like "Go" and "C#".
const (
	minSkillLen = 2
	maxSkillLen = 49

	// DefaultSkillCategory is assigned when a skills line names no category.
	DefaultSkillCategory = "Other"
)

// skillSeparators splits a skills list into individual names.
var skillSeparators = []string{",", ";", "•"}

// ExtractSkills scans the skills ranges for list lines. A "Category: a, b, c"
// line assigns the named category to each item; a separator-bearing line
// without a category falls under "Other". Proficiency level defaults to
// Intermediate since CVs rarely state it explicitly.
func ExtractSkills(lines []string, sections []Section) []types.SkillEntry {
	entries := []types.SkillEntry{}

	for _, section := range Ranges(sections, SectionSkills) {
		for i := section.Start + 1; i < section.End; i++ {
			line := strings.TrimSpace(lines[i])
			if line == "" {
				continue
			}

			category := DefaultSkillCategory
			list := line
			if idx := strings.Index(line, ":"); idx > 0 {
				category = strings.TrimSpace(line[:idx])
				list = line[idx+1:]
			} else if !containsSeparator(line) {
				continue
			}

			for _, name := range splitSkillList(list) {
				entries = append(entries, types.SkillEntry{
					Name:     name,
					Level:    types.SkillLevelIntermediate,
					Category: category,
				})
			}
		}
	}

	return entries
}

func containsSeparator(line string) bool {
	for _, sep := range skillSeparators {
		if strings.Contains(line, sep) {
			return true
		}
	}
	return false
}

// splitSkillList splits on every separator and filters each trimmed name to
// a plausible length.
func splitSkillList(list string) []string {
	parts := []string{list}
	for _, sep := range skillSeparators {
		var next []string
		for _, part := range parts {
			next = append(next, strings.Split(part, sep)...)
		}
		parts = next
	}

	var names []string
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if len(name) >= minSkillLen && len(name) <= maxSkillLen {
			names = append(names, name)
		}
	}
	return names
}
