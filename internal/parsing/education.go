package parsing

import (
	"regexp"
	"strings"

	"github.com/agbarbie/rural-connect-cv-parser/internal/types"
)

var (
	fieldOfStudyPattern = regexp.MustCompile(`\b(?:in|of)\s+([A-Z][A-Za-z&/]*(?:\s+[A-Z][A-Za-z&/]*)*)`)
	graduatedPattern    = regexp.MustCompile(`(?i)graduated[:\s]+(\d{4})`)
	yearPattern         = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	gpaPattern          = regexp.MustCompile(`(?i)gpa[:\s]+([0-5]\.\d{1,2})`)
)

// educationBuilder is the entry-in-progress state for the education scan.
type educationBuilder struct {
	building bool
	entry    types.EducationEntry
}

func (b *educationBuilder) flush(out *[]types.EducationEntry) {
	if b.building {
		*out = append(*out, b.entry)
	}
	b.building = false
	b.entry = types.EducationEntry{}
}

// ExtractEducation scans the education ranges for degree entries.
// A degree-keyword line starts a new entry (flushing any entry in progress);
// the section closing flushes the final one. Entries appear in document order.
func ExtractEducation(lines []string, sections []Section) []types.EducationEntry {
	entries := []types.EducationEntry{}
	var builder educationBuilder

	for _, section := range Ranges(sections, SectionEducation) {
		for i := section.Start + 1; i < section.End; i++ {
			line := strings.TrimSpace(lines[i])
			if line == "" {
				continue
			}

			if matchesAny(line, degreeKeywords) {
				builder.flush(&entries)
				builder.building = true
				builder.entry.Degree = line
				if m := fieldOfStudyPattern.FindAllStringSubmatch(line, -1); m != nil {
					builder.entry.FieldOfStudy = m[len(m)-1][1]
				}
			} else if matchesAny(line, institutionKeywords) && builder.building {
				if builder.entry.Institution == "" {
					builder.entry.Institution = line
				}
			}

			if builder.building {
				applyEducationDetails(&builder.entry, line)
			}
		}
		// Section closed; flush the in-progress entry.
		builder.flush(&entries)
	}

	return entries
}

// applyEducationDetails opportunistically fills year and GPA fields from a
// line inside the current entry. A "graduated: YYYY" phrase takes precedence
// for the end year over bare year tokens.
func applyEducationDetails(entry *types.EducationEntry, line string) {
	if m := graduatedPattern.FindStringSubmatch(line); m != nil {
		entry.EndYear = m[1]
	} else if entry.StartYear == "" && entry.EndYear == "" {
		years := yearPattern.FindAllString(line, -1)
		switch {
		case len(years) >= 2:
			entry.StartYear = years[0]
			entry.EndYear = years[1]
		case len(years) == 1:
			entry.EndYear = years[0]
		}
	}

	if entry.GPA == "" {
		if m := gpaPattern.FindStringSubmatch(line); m != nil {
			entry.GPA = m[1]
		}
	}
}

// matchesAny reports whether the line contains any of the keywords,
// case-insensitively.
func matchesAny(line string, keywords []string) bool {
	lower := strings.ToLower(line)
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
