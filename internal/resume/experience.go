package resume

import (
	"strings"
	"unicode/utf8"
)

// Confidence says how an experience entry was recovered.
type Confidence string

const (
	// ConfidenceHigh marks an entry parsed from one well-formed line.
	ConfidenceHigh Confidence = "high"
	// ConfidenceMedium marks an entry rebuilt from surrounding lines.
	ConfidenceMedium Confidence = "medium"
)

const (
	datesRadius   = 1
	contextRadius = 2
	companyMaxLen = 100
)

// ExperienceEntry is one recovered position.
type ExperienceEntry struct {
	Title      string     `json:"title"`
	Company    string     `json:"company"`
	Dates      string     `json:"dates,omitempty"`
	SourceLine string     `json:"source_line"`
	Confidence Confidence `json:"confidence"`
}

// extractExperience walks the lines once and appends entries in document order.
func (p *Parser) extractExperience(lines []string, tags []LineTag) []ExperienceEntry {
	var entries []ExperienceEntry
	for i := range lines {
		if !content(lines, tags, i) {
			continue
		}
		line := strings.TrimSpace(lines[i])

		if entry, ok := p.directEntry(lines, i, line); ok {
			entries = append(entries, entry)
			continue
		}

		dates, _, _, ok := findDateRange(line)
		if !ok {
			continue
		}
		if entry, ok := p.contextEntry(lines, i, dates); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// directEntry tries the line shapes in priority order. The first shape that matches decides:
// an invalid title drops the line without trying the remaining shapes.
func (p *Parser) directEntry(lines []string, i int, line string) (ExperienceEntry, bool) {
	for _, pattern := range entryPatterns {
		m := pattern.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		title := strings.TrimSpace(m[pattern.title])
		if !p.validTitle(title) {
			return ExperienceEntry{}, false
		}

		var dates string
		if pattern.dates > 0 {
			dates = strings.TrimSpace(m[pattern.dates])
		}
		if dates == "" {
			dates = nearbyDates(lines, i)
		}

		return ExperienceEntry{
			Title:      title,
			Company:    strings.TrimSpace(m[pattern.company]),
			Dates:      dates,
			SourceLine: line,
			Confidence: ConfidenceHigh,
		}, true
	}
	return ExperienceEntry{}, false
}

// nearbyDates returns the first date range found on the line or its immediate neighbours.
func nearbyDates(lines []string, i int) string {
	var dates string
	ContextWindow(lines, i, datesRadius).Each(func(_ int, line string) bool {
		if whole, _, _, ok := findDateRange(strings.TrimSpace(line)); ok {
			dates = whole
			return false
		}
		return true
	})
	return dates
}

// contextEntry rebuilds an entry for a line holding only dates.
func (p *Parser) contextEntry(lines []string, i int, dates string) (ExperienceEntry, bool) {
	var entry ExperienceEntry
	found := false

	ContextWindow(lines, i, contextRadius).Each(func(j int, line string) bool {
		line = strings.TrimSpace(line)
		if j == i || line == "" {
			return true
		}
		for _, re := range titlePatterns {
			title := re.FindString(line)
			if title == "" {
				continue
			}
			company := p.nearbyCompany(lines, j)
			if company == "" {
				continue
			}
			entry = ExperienceEntry{
				Title:      title,
				Company:    company,
				Dates:      dates,
				SourceLine: strings.TrimSpace(lines[i]),
				Confidence: ConfidenceMedium,
			}
			found = true
			return false
		}
		return true
	})

	return entry, found
}

// nearbyCompany looks around the title line, the title line included, for something shaped
// like an employer.
func (p *Parser) nearbyCompany(lines []string, titleLine int) string {
	var company string
	ContextWindow(lines, titleLine, contextRadius).Each(func(_ int, line string) bool {
		line = strings.TrimSpace(line)
		if line == "" || utf8.RuneCountInString(line) >= companyMaxLen {
			return true
		}
		if containsAny(strings.ToLower(line), p.catalog.CompanyKeywords) || companyShape.MatchString(line) {
			company = line
			return false
		}
		return true
	})
	return company
}
