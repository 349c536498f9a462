package parsing

// SectionLabel identifies a recognized CV section.
type SectionLabel string

const (
	SectionPersonal       SectionLabel = "personal"
	SectionSummary        SectionLabel = "summary"
	SectionEducation      SectionLabel = "education"
	SectionExperience     SectionLabel = "experience"
	SectionSkills         SectionLabel = "skills"
	SectionCertifications SectionLabel = "certifications"
	SectionProjects       SectionLabel = "projects"
	SectionTestimonials   SectionLabel = "testimonials"
	SectionReferences     SectionLabel = "references"
	SectionUnknown        SectionLabel = "unknown"
)

// sectionVocabulary maps each section label to its header synonyms.
// Matching is case-insensitive, on exact equality or substring containment.
// Kept as a named table so tests can assert against the exact vocabulary.
var sectionVocabulary = map[SectionLabel][]string{
	SectionSummary: {
		"professional summary", "career summary", "summary",
		"profile", "career objective", "objective", "about me",
	},
	SectionEducation: {
		"education", "academic background", "academic qualifications",
		"educational background", "qualifications",
	},
	SectionExperience: {
		"work experience", "professional experience", "employment history",
		"work history", "career history", "experience", "employment",
	},
	SectionSkills: {
		"technical skills", "core competencies", "skills",
		"competencies", "expertise", "technologies",
	},
	SectionCertifications: {
		"certifications", "certificates", "licenses",
		"professional development", "courses",
	},
	SectionProjects: {
		"projects", "personal projects", "portfolio",
	},
	SectionTestimonials: {
		"testimonials", "recommendations",
	},
	SectionReferences: {
		"references", "referees",
	},
}

// sectionOrder fixes the match order of the vocabulary so that segmentation
// is deterministic (map iteration order is not).
var sectionOrder = []SectionLabel{
	SectionSummary,
	SectionEducation,
	SectionExperience,
	SectionSkills,
	SectionCertifications,
	SectionProjects,
	SectionTestimonials,
	SectionReferences,
}

// degreeKeywords indicate a line that starts a new education entry.
var degreeKeywords = []string{
	"bachelor", "master", "doctorate", "phd", "ph.d",
	"bsc", "b.sc", "msc", "m.sc", "mba", "b.a", "m.a",
	"diploma", "associate degree", "postgraduate", "undergraduate",
}

// institutionKeywords identify lines naming the awarding institution.
var institutionKeywords = []string{
	"university", "college", "institute", "polytechnic",
	"school", "academy", "campus",
}

// documentTitles are generic CV headings skipped during name detection.
var documentTitles = []string{
	"resume", "résumé", "curriculum vitae", "cv",
}

// gazetteer is the fixed list of known place names used for location
// matching. It is not a general geocoder.
var gazetteer = []string{
	"Nairobi", "Mombasa", "Kisumu", "Nakuru", "Eldoret", "Thika",
	"Nyeri", "Machakos", "Kitale", "Kericho", "Kakamega", "Garissa",
	"Kenya", "Kampala", "Uganda", "Dar es Salaam", "Tanzania",
	"Kigali", "Rwanda", "Lagos", "Abuja", "Nigeria", "Accra", "Ghana",
	"Johannesburg", "Cape Town", "South Africa",
	"London", "New York", "Toronto", "Dubai",
}
