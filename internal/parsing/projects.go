package parsing

import (
	"github.com/agbarbie/rural-connect-cv-parser/internal/types"
)

// ExtractProjects is a placeholder: project extraction is not implemented
// yet, so every parse yields an empty collection.
// TODO: extract name/description/technologies from the projects ranges once
// the heuristics are settled.
func ExtractProjects(lines []string, sections []Section) []types.ProjectEntry {
	_ = lines
	_ = sections
	return []types.ProjectEntry{}
}
