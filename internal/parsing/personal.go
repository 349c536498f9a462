package parsing

import (
	"regexp"
	"strings"

	"github.com/agbarbie/rural-connect-cv-parser/internal/types"
)

// nameScanLines bounds how far into the document name detection looks.
const nameScanLines = 10

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// Phone formats tried in order: regional (+country-code or leading-zero),
	// then two generic NANP-like shapes.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:\+\d{1,3}[\s-]?|0)\d{3}[\s-]?\d{3}[\s-]?\d{3,4}`),
		regexp.MustCompile(`\(\d{3}\)\s?\d{3}[-.\s]\d{4}`),
		regexp.MustCompile(`\d{3}[-.\s]\d{3}[-.\s]\d{4}`),
	}

	githubPattern   = regexp.MustCompile(`github\.com/([A-Za-z0-9_.-]+)`)
	linkedinPattern = regexp.MustCompile(`linkedin\.com/in/([A-Za-z0-9_-]+)`)
	websitePattern  = regexp.MustCompile(`(?:https?://|www\.)[A-Za-z0-9-]+(?:\.[A-Za-z0-9-]+)+(?:/\S*)?`)

	upperNamePattern = regexp.MustCompile(`^[A-Z][A-Z\s.'-]+$`)
	titleWordPattern = regexp.MustCompile(`^[A-Z][a-z'.-]+$`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
)

// ExtractPersonalInfo pulls contact fields from the full normalized text.
// Sub-extractions are independent; a field that cannot be found stays empty.
func ExtractPersonalInfo(text string, lines []string) types.PersonalInfo {
	return types.PersonalInfo{
		FullName:    extractName(lines),
		Email:       emailPattern.FindString(text),
		Phone:       extractPhone(text),
		Address:     extractLocation(text),
		LinkedInURL: extractLinkedIn(text),
		GitHubURL:   extractGitHub(text),
		WebsiteURL:  extractWebsite(text),
	}
}

// extractName scans the first few lines for something name-shaped: either a
// fully upper-case alphabetic line of plausible length, or a title-case line
// of 2-5 capitalized words. Generic document headings are skipped.
func extractName(lines []string) string {
	for i, line := range lines {
		if i >= nameScanLines {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" || isDocumentTitle(line) {
			continue
		}

		if len(line) >= 5 && len(line) <= 60 && upperNamePattern.MatchString(line) {
			return line
		}

		if strings.ContainsAny(line, "@+") {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 5 {
			continue
		}
		titleCase := true
		for _, w := range words {
			if !titleWordPattern.MatchString(w) {
				titleCase = false
				break
			}
		}
		if titleCase {
			return line
		}
	}
	return ""
}

func isDocumentTitle(line string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	for _, title := range documentTitles {
		if lower == title {
			return true
		}
	}
	return false
}

// extractPhone returns the first match among the phone patterns with
// whitespace runs collapsed to single spaces.
func extractPhone(text string) string {
	for _, pattern := range phonePatterns {
		if match := pattern.FindString(text); match != "" {
			return strings.TrimSpace(whitespaceRun.ReplaceAllString(match, " "))
		}
	}
	return ""
}

func extractGitHub(text string) string {
	if m := githubPattern.FindStringSubmatch(text); m != nil {
		return "https://github.com/" + m[1]
	}
	return ""
}

func extractLinkedIn(text string) string {
	if m := linkedinPattern.FindStringSubmatch(text); m != nil {
		return "https://linkedin.com/in/" + m[1]
	}
	return ""
}

// extractWebsite returns the first explicit URL that is not a GitHub or
// LinkedIn profile link, rehydrated to an absolute https:// form.
func extractWebsite(text string) string {
	for _, match := range websitePattern.FindAllString(text, -1) {
		lower := strings.ToLower(match)
		if strings.Contains(lower, "github.com") || strings.Contains(lower, "linkedin.com") {
			continue
		}
		if strings.HasPrefix(lower, "http") {
			return match
		}
		return "https://" + match
	}
	return ""
}

// extractLocation matches the text against the fixed place-name gazetteer.
func extractLocation(text string) string {
	lower := strings.ToLower(text)
	for _, place := range gazetteer {
		if strings.Contains(lower, strings.ToLower(place)) {
			return place
		}
	}
	return ""
}
