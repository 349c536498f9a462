package parsing

import "regexp"

const monthAlternation = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?`

var (
	currentPattern  = regexp.MustCompile(`(?i)\b(?:present|current|ongoing|now)\b`)
	monthTokenRe    = regexp.MustCompile(`(?i)\b` + monthAlternation + `\s+\d{4}`)
	monthRangeRe    = regexp.MustCompile(`(?i)(` + monthAlternation + `\s+\d{4})\s*[-–—]\s*(` + monthAlternation + `\s+\d{4}|present|current|ongoing|now)`)
	bareYearRangeRe = regexp.MustCompile(`(?i)\b(\d{4})\s*[-–—]\s*(\d{4}|present|current|ongoing|now)\b`)
)

// dateRange is the result of the shared date extraction helper.
type dateRange struct {
	start   string
	end     string
	current bool
}

// extractDates pulls a date range from a line. A present/current marker
// anywhere in the line flags the range as ongoing. The "Mon YYYY - Mon YYYY"
// shape is tried first; the bare-year pair fallback applies only to lines
// without month tokens, so mixed-format ranges such as "Jan 2020 - 2022"
// match neither and stay empty.
func extractDates(line string) dateRange {
	r := dateRange{current: currentPattern.MatchString(line)}

	if m := monthRangeRe.FindStringSubmatch(line); m != nil {
		r.start = m[1]
		r.end = m[2]
	} else if !monthTokenRe.MatchString(line) {
		if m := bareYearRangeRe.FindStringSubmatch(line); m != nil {
			r.start = m[1]
			r.end = m[2]
		}
	}

	if r.current {
		r.end = "Present"
	}
	return r
}
