package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSectionHeader_ExactSynonyms(t *testing.T) {
	cases := map[string]SectionLabel{
		"EDUCATION":       SectionEducation,
		"education":       SectionEducation,
		"Work Experience": SectionExperience,
		"EXPERIENCE":      SectionExperience,
		"Skills":          SectionSkills,
		"Certifications":  SectionCertifications,
		"Projects":        SectionProjects,
		"References":      SectionReferences,
		"Testimonials":    SectionTestimonials,
		"Summary":         SectionSummary,
		"Career Objective": SectionSummary,
	}

	for line, want := range cases {
		label, ok := IsSectionHeader(line)
		assert.True(t, ok, "expected %q to be a header", line)
		assert.Equal(t, want, label, "header %q", line)
	}
}

func TestIsSectionHeader_TrailingColon(t *testing.T) {
	label, ok := IsSectionHeader("Education:")

	assert.True(t, ok)
	assert.Equal(t, SectionEducation, label)
}

func TestIsSectionHeader_BodySentencesRejected(t *testing.T) {
	sentences := []string{
		"I have ten years of professional experience building rural connectivity platforms",
		"Led a team responsible for the skills assessment module rollout across three counties",
		"",
		"Bachelor of Science in Computer Science",
	}

	for _, line := range sentences {
		_, ok := IsSectionHeader(line)
		assert.False(t, ok, "did not expect %q to be a header", line)
	}
}

func TestIsSectionHeader_VocabularyTable(t *testing.T) {
	// The vocabulary is a named table so extensions never touch extractor
	// logic; make sure every synonym actually matches.
	for _, label := range sectionOrder {
		for _, synonym := range sectionVocabulary[label] {
			got, ok := IsSectionHeader(synonym)
			assert.True(t, ok, "synonym %q", synonym)
			assert.Equal(t, label, got, "synonym %q", synonym)
		}
	}
}

func TestSegment_LabelsRangesInOrder(t *testing.T) {
	lines := []string{
		"JANE DOE",
		"jane@example.com",
		"EDUCATION",
		"Bachelor of Commerce",
		"SKILLS",
		"Programming: Go",
	}

	sections := Segment(lines)
	require.Len(t, sections, 3)

	assert.Equal(t, Section{Label: SectionPersonal, Start: 0, End: 2}, sections[0])
	assert.Equal(t, Section{Label: SectionEducation, Start: 2, End: 4}, sections[1])
	assert.Equal(t, Section{Label: SectionSkills, Start: 4, End: 6}, sections[2])
}

func TestSegment_HeaderOnFirstLine(t *testing.T) {
	sections := Segment([]string{"EXPERIENCE", "Senior Clerk Jan 2020 - Present"})

	require.Len(t, sections, 1)
	assert.Equal(t, SectionExperience, sections[0].Label)
	assert.Equal(t, 0, sections[0].Start)
	assert.Equal(t, 2, sections[0].End)
}

func TestSegment_NoHeaders(t *testing.T) {
	sections := Segment([]string{"JANE DOE", "jane@example.com"})

	require.Len(t, sections, 1)
	assert.Equal(t, SectionPersonal, sections[0].Label)
}

func TestSegment_EveryLineBelongsToExactlyOneRange(t *testing.T) {
	lines := []string{"A B", "EDUCATION", "x", "EXPERIENCE", "SKILLS", "y"}

	sections := Segment(lines)

	covered := 0
	for _, s := range sections {
		covered += s.End - s.Start
	}
	assert.Equal(t, len(lines), covered)
}

func TestRanges_FiltersByLabel(t *testing.T) {
	sections := []Section{
		{Label: SectionPersonal, Start: 0, End: 2},
		{Label: SectionEducation, Start: 2, End: 5},
		{Label: SectionSkills, Start: 5, End: 7},
		{Label: SectionEducation, Start: 7, End: 9},
	}

	education := Ranges(sections, SectionEducation)
	require.Len(t, education, 2)
	assert.Equal(t, 2, education[0].Start)
	assert.Equal(t, 7, education[1].Start)
}
