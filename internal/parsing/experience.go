package parsing

import (
	"regexp"
	"strings"

	"github.com/agbarbie/rural-connect-cv-parser/internal/types"
)

const (
	maxCompanyLineLen = 60
	minBulletLen      = 11
)

// titleDatePattern matches an entry-start line: a capitalized title phrase
// followed by a month, year, or "Present" token.
var titleDatePattern = regexp.MustCompile(`^([A-Z][A-Za-z'&./-]*(?:\s+[A-Za-z'&./-]+){0,5}?)[\s,|-]+((?:` + monthAlternation + `\s+\d{4}|\d{4}|[Pp]resent).*)$`)

var bulletGlyphs = []string{"•", "-", "*"}

// experienceBuilder is the entry-in-progress state for the experience scan.
type experienceBuilder struct {
	building bool
	entry    types.WorkExperienceEntry
	bullets  []string
}

func (b *experienceBuilder) flush(out *[]types.WorkExperienceEntry) {
	if b.building {
		b.entry.Responsibilities = strings.Join(b.bullets, "\n")
		*out = append(*out, b.entry)
	}
	b.building = false
	b.entry = types.WorkExperienceEntry{}
	b.bullets = nil
}

// ExtractWorkExperience scans the experience ranges for employment entries.
// A title-plus-date line starts a new entry; the first short non-bullet line
// after it is taken as the company; bullet lines accumulate into the
// responsibilities buffer, joined on flush.
func ExtractWorkExperience(lines []string, sections []Section) []types.WorkExperienceEntry {
	entries := []types.WorkExperienceEntry{}
	var builder experienceBuilder

	for _, section := range Ranges(sections, SectionExperience) {
		for i := section.Start + 1; i < section.End; i++ {
			line := strings.TrimSpace(lines[i])
			if line == "" {
				continue
			}

			if m := titleDatePattern.FindStringSubmatch(line); m != nil {
				builder.flush(&entries)
				builder.building = true
				builder.entry.Position = strings.TrimSpace(m[1])

				dates := extractDates(line)
				builder.entry.StartDate = dates.start
				builder.entry.EndDate = dates.end
				builder.entry.IsCurrent = dates.current
				continue
			}

			if !builder.building {
				continue
			}

			if bullet, ok := stripBullet(line); ok {
				builder.bullets = append(builder.bullets, bullet)
			} else if builder.entry.Company == "" && len(builder.bullets) == 0 && len(line) <= maxCompanyLineLen {
				builder.entry.Company = line
			}
		}
		builder.flush(&entries)
	}

	return entries
}

// stripBullet removes a leading bullet glyph and reports whether the
// remainder is long enough to count as a responsibility line.
func stripBullet(line string) (string, bool) {
	for _, glyph := range bulletGlyphs {
		if strings.HasPrefix(line, glyph) {
			stripped := strings.TrimSpace(strings.TrimPrefix(line, glyph))
			if len(stripped) >= minBulletLen {
				return stripped, true
			}
			return "", false
		}
	}
	return "", false
}
