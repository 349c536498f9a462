package parsing

import (
	"regexp"
	"strings"

	"github.com/agbarbie/rural-connect-cv-parser/internal/types"
)

// minCertificationLen discards noise entries after marker phrases are
// stripped.
const minCertificationLen = 6

var (
	issuerPattern       = regexp.MustCompile(`(?i)\b(?:issued by|from|by)\s+(.+)`)
	certDatePattern     = regexp.MustCompile(`(?i)\b(?:dated?|issued)\s*:\s*([A-Za-z0-9,/ -]+)`)
	credentialIDPattern = regexp.MustCompile(`(?i)\b(?:credential(?:\s+id)?|id)\s*[:#]\s*([A-Za-z0-9-]+)`)
)

// ExtractCertifications scans the certification ranges. Bulleted lines and
// sufficiently long colon-free lines each become one certification; issuer,
// date and credential ID are opportunistically pulled from the same line.
func ExtractCertifications(lines []string, sections []Section) []types.CertificationEntry {
	entries := []types.CertificationEntry{}

	for _, section := range Ranges(sections, SectionCertifications) {
		for i := section.Start + 1; i < section.End; i++ {
			line := strings.TrimSpace(lines[i])
			if line == "" {
				continue
			}

			line, bulleted := trimCertBullet(line)
			if !bulleted && (strings.Contains(line, ":") || len(line) < minCertificationLen) {
				continue
			}

			entry := parseCertificationLine(line)
			if len(entry.Name) >= minCertificationLen {
				entries = append(entries, entry)
			}
		}
	}

	return entries
}

// trimCertBullet strips a leading bullet glyph, reporting whether one was
// present.
func trimCertBullet(line string) (string, bool) {
	for _, glyph := range bulletGlyphs {
		if strings.HasPrefix(line, glyph) {
			return strings.TrimSpace(strings.TrimPrefix(line, glyph)), true
		}
	}
	return line, false
}

// parseCertificationLine splits a certification line into its name and the
// optional issuer/date/credential markers trailing it.
func parseCertificationLine(line string) types.CertificationEntry {
	entry := types.CertificationEntry{}
	name := line

	if m := issuerPattern.FindStringSubmatchIndex(line); m != nil {
		entry.Issuer = strings.TrimSpace(trimTrailingMarkers(line[m[2]:m[3]]))
		if m[0] < len(name) {
			name = line[:m[0]]
		}
	}
	if m := certDatePattern.FindStringSubmatchIndex(line); m != nil {
		entry.DateIssued = strings.TrimSpace(line[m[2]:m[3]])
		if m[0] < len(name) {
			name = line[:m[0]]
		}
	}
	if m := credentialIDPattern.FindStringSubmatchIndex(line); m != nil {
		entry.CredentialID = strings.TrimSpace(line[m[2]:m[3]])
		if m[0] < len(name) {
			name = line[:m[0]]
		}
	}

	entry.Name = strings.Trim(strings.TrimSpace(name), ",-–")
	return entry
}

// trimTrailingMarkers cuts an issuer capture short of any later date or
// credential marker on the same line.
func trimTrailingMarkers(s string) string {
	if m := certDatePattern.FindStringIndex(s); m != nil {
		s = s[:m[0]]
	}
	if m := credentialIDPattern.FindStringIndex(s); m != nil {
		s = s[:m[0]]
	}
	return strings.Trim(strings.TrimSpace(s), ",-–")
}
