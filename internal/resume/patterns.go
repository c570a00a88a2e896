package resume

import "regexp"

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),
		regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.]?\d{4}\b`),
		regexp.MustCompile(`\b\d{10}\b`),
	}

	// Date ranges. Group 1 is the start, group 2 the end.
	dateRangePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d{4})\s*[-–—]\s*(\d{4}|present|current|now)`),
		regexp.MustCompile(`(?i)(\d{4})\s+to\s+(\d{4}|present|current|now)`),
		regexp.MustCompile(`(?i)(\w+\s+\d{4})\s*[-–—]\s*(\w+\s+\d{4}|present|current|now)`),
		regexp.MustCompile(`(?i)(\w+\s+\d{4})\s+to\s+(\w+\s+\d{4}|present|current|now)`),
	}

	// Title families. Whitespace is restricted to spaces and tabs so a match stays on one line.
	titlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`[A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+)*[ \t]+(?:Engineer|Developer|Manager|Analyst|Specialist|Lead|Architect|Consultant|Coordinator|Director|VP|CTO|CEO)`),
		regexp.MustCompile(`(Senior|Junior|Lead|Principal|Staff)[ \t]+([A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+)*)`),
		regexp.MustCompile(`(Software|Data|DevOps|Product|Project|Business|Systems|Network|Security|Cloud|Machine Learning|AI|Full Stack|Frontend|Backend)[ \t]+([A-Z][a-z]+)`),
	}

	companyShape = regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s+(?:Inc|Corp|Ltd|LLC|Company|Technologies|Solutions|Systems|Group|Partners)$`)

	educationDegree      = regexp.MustCompile(`(?i)(bachelor|master|phd|b\.s\.|m\.s\.|ph\.d\.)`)
	educationInstitution = regexp.MustCompile(`(?i)(university|college|institute)`)
	educationYears       = regexp.MustCompile(`(\d{4})\s*[-–]\s*(\d{4})`)
)

// entryPattern is one line shape of the experience parser. A zero group index means absent.
type entryPattern struct {
	re      *regexp.Regexp
	title   int
	company int
	dates   int
}

var entryPatterns = []entryPattern{
	{re: regexp.MustCompile(`^(.+?)\s*\|\s*(.+?)\s*\|\s*(.+)$`), title: 1, company: 2, dates: 3},
	{re: regexp.MustCompile(`^(.+?)\s+at\s+(.+?)\s*\|\s*(.+)$`), title: 1, company: 2, dates: 3},
	{re: regexp.MustCompile(`^(.+?)\s*,\s*(.+?)\s*\|\s*(.+)$`), title: 1, company: 2, dates: 3},
	{re: regexp.MustCompile(`^(.+?)\s*\|\s*(.+)$`), title: 1, company: 2},
}

// findDateRange returns the first date range on the line, trying the shapes in order.
func findDateRange(line string) (whole, start, end string, ok bool) {
	for _, re := range dateRangePatterns {
		if m := re.FindStringSubmatch(line); m != nil {
			return m[0], m[1], m[2], true
		}
	}
	return "", "", "", false
}
