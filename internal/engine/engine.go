// Package engine is the parse entry point of the CV extraction pipeline:
// decode → normalize → segment → extract → assemble.
package engine

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/agbarbie/rural-connect-cv-parser/internal/decode"
	"github.com/agbarbie/rural-connect-cv-parser/internal/parsing"
	"github.com/agbarbie/rural-connect-cv-parser/internal/types"
)

// Parse reads a document from disk and extracts a structured CV record.
// It fails with *decode.UnsupportedFormatError for MIME types outside the
// supported set, *decode.DecodeError when the document bytes cannot be read,
// and *parsing.ParseError for unexpected extraction failures.
func Parse(path string, mimeType string) (*types.CVRecord, error) {
	if !decode.Supported(mimeType) {
		return nil, &decode.UnsupportedFormatError{MimeType: mimeType}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &decode.DecodeError{Message: fmt.Sprintf("failed to read %s", path), Cause: err}
	}

	return ParseBytes(content, mimeType)
}

// ParseBytes extracts a structured CV record from in-memory document bytes.
// The result is a pure function of its input: collection fields are always
// non-nil and the professional summary is always populated.
func ParseBytes(content []byte, mimeType string) (record *types.CVRecord, err error) {
	text, err := decode.Decode(content, mimeType)
	if err != nil {
		return nil, err
	}

	// Extractors are total over any text, so a panic here is an internal
	// defect; surface it as a single ParseError instead of crashing the
	// caller.
	defer func() {
		if r := recover(); r != nil {
			record = nil
			err = &parsing.ParseError{Message: fmt.Sprintf("extraction panicked: %v", r)}
		}
	}()

	normalized := parsing.Normalize(text)
	lines := parsing.Lines(normalized)
	sections := parsing.Segment(lines)

	personal := parsing.ExtractPersonalInfo(normalized, lines)
	personal.ProfessionalSummary = parsing.ExtractSummary(lines, sections)

	return assemble(
		personal,
		parsing.ExtractEducation(lines, sections),
		parsing.ExtractWorkExperience(lines, sections),
		parsing.ExtractSkills(lines, sections),
		parsing.ExtractCertifications(lines, sections),
		parsing.ExtractProjects(lines, sections),
	), nil
}

// entryID derives a stable identifier from an entry's kind, position, and
// salient content. Name-based UUIDs keep the whole parse a pure function of
// its input, which callers rely on for dedupe and retries.
func entryID(kind string, index int, content string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s/%d/%s", kind, index, content))).String()
}

// assemble merges extractor outputs into the final record, attaching
// generated identifiers to multi-valued entries. It aggregates only; entry
// contents are never altered.
func assemble(
	personal types.PersonalInfo,
	education []types.EducationEntry,
	experience []types.WorkExperienceEntry,
	skills []types.SkillEntry,
	certifications []types.CertificationEntry,
	projects []types.ProjectEntry,
) *types.CVRecord {
	for i := range education {
		education[i].ID = entryID("education", i, education[i].Degree)
	}
	for i := range experience {
		experience[i].ID = entryID("experience", i, experience[i].Position)
	}
	for i := range certifications {
		certifications[i].ID = entryID("certification", i, certifications[i].Name)
	}
	for i := range projects {
		projects[i].ID = entryID("project", i, projects[i].Name)
	}

	return &types.CVRecord{
		PersonalInfo:   personal,
		Education:      education,
		WorkExperience: experience,
		Skills:         skills,
		Certifications: certifications,
		Projects:       projects,
	}
}
