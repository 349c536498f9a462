package parsing

import "strings"

// maxHeaderLen and maxHeaderWords bound what can count as a section header so
// that body sentences mentioning a synonym (e.g. "experience") are not
// mistaken for one.
const (
	maxHeaderLen   = 60
	maxHeaderWords = 5
)

// Section is a labeled line range produced by one segmentation pass and
// consumed read-only by every extractor. End is exclusive.
type Section struct {
	Label SectionLabel
	Start int
	End   int
}

// IsSectionHeader reports whether a line marks the start of a named CV
// section, and which one. Matching is case-insensitive against the header
// synonym vocabulary, on exact equality or substring containment.
func IsSectionHeader(line string) (SectionLabel, bool) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(line), ":")
	lower := strings.ToLower(trimmed)
	if lower == "" || len(lower) > maxHeaderLen || len(strings.Fields(lower)) > maxHeaderWords {
		return SectionUnknown, false
	}

	for _, label := range sectionOrder {
		for _, synonym := range sectionVocabulary[label] {
			if lower == synonym || strings.Contains(lower, synonym) {
				return label, true
			}
		}
	}
	return SectionUnknown, false
}

// Segment partitions normalized lines into labeled ranges. Lines before the
// first recognized header are labeled personal; a later header closes the
// range opened by the previous one. Every line belongs to exactly one range.
func Segment(lines []string) []Section {
	sections := make([]Section, 0, 8)
	current := Section{Label: SectionPersonal, Start: 0}

	for i, line := range lines {
		label, ok := IsSectionHeader(line)
		if !ok {
			continue
		}

		if i > current.Start || current.Label != SectionPersonal {
			current.End = i
			sections = append(sections, current)
		}
		// The header line itself belongs to the range it opens.
		current = Section{Label: label, Start: i}
	}

	current.End = len(lines)
	sections = append(sections, current)
	return sections
}

// Ranges returns every segmented range carrying the given label.
func Ranges(sections []Section, label SectionLabel) []Section {
	var out []Section
	for _, s := range sections {
		if s.Label == label {
			out = append(out, s)
		}
	}
	return out
}
