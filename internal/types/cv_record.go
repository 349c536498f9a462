// Package types provides type definitions for the structured records produced by the CV extraction engine.
package types

// SkillLevel is the ordinal proficiency scale attached to extracted skills.
type SkillLevel string

const (
	SkillLevelBeginner     SkillLevel = "Beginner"
	SkillLevelIntermediate SkillLevel = "Intermediate"
	SkillLevelAdvanced     SkillLevel = "Advanced"
	SkillLevelExpert       SkillLevel = "Expert"
)

// PersonalInfo holds contact data pulled from the top of a CV.
// Every field is independently optional; absence of one never blocks
// extraction of the others.
type PersonalInfo struct {
	FullName            string `json:"full_name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Address             string `json:"address"`
	LinkedInURL         string `json:"linkedin_url"`
	GitHubURL           string `json:"github_url"`
	WebsiteURL          string `json:"website_url"`
	ProfessionalSummary string `json:"professional_summary"`
}

// EducationEntry is a single education record in document order.
// An entry exists only once a degree-indicating phrase was found; all other
// fields are best-effort and may be empty.
type EducationEntry struct {
	ID           string `json:"id"`
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	StartYear    string `json:"start_year"`
	EndYear      string `json:"end_year"`
	GPA          string `json:"gpa"`
	Achievements string `json:"achievements"`
}

// WorkExperienceEntry is a single employment record.
// IsCurrent=true implies EndDate holds the sentinel "Present".
type WorkExperienceEntry struct {
	ID               string `json:"id"`
	Company          string `json:"company"`
	Position         string `json:"position"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	IsCurrent        bool   `json:"is_current"`
	Responsibilities string `json:"responsibilities"`
	Achievements     string `json:"achievements"`
}

// SkillEntry is a single named skill with its category and proficiency level.
type SkillEntry struct {
	Name     string     `json:"name"`
	Level    SkillLevel `json:"level"`
	Category string     `json:"category"`
}

// CertificationEntry is a single certification; issuer, dates and credential
// ID are best-effort and may be empty.
type CertificationEntry struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	DateIssued   string `json:"date_issued"`
	ExpiryDate   string `json:"expiry_date"`
	CredentialID string `json:"credential_id"`
}

// ProjectEntry is reserved for future extraction; the engine currently always
// yields an empty collection of these.
type ProjectEntry struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	URL          string `json:"url"`
}

// CVRecord is the fully assembled output of one parse invocation.
// Collection fields are always non-nil so consumers never need null checks.
type CVRecord struct {
	PersonalInfo   PersonalInfo          `json:"personal_info"`
	Education      []EducationEntry      `json:"education"`
	WorkExperience []WorkExperienceEntry `json:"work_experience"`
	Skills         []SkillEntry          `json:"skills"`
	Certifications []CertificationEntry  `json:"certifications"`
	Projects       []ProjectEntry        `json:"projects"`
}
