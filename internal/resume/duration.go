package resume

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

const durationRadius = 3

// keywordPattern builds a whole-word alternation over keywords. Nil when keywords is empty.
func keywordPattern(keywords []string) *regexp.Regexp {
	quoted := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(strings.ToLower(k)); k != "" {
			quoted = append(quoted, regexp.QuoteMeta(k))
		}
	}
	if len(quoted) == 0 {
		return nil
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// dateRanges scans content lines for date ranges and classifies each one.
// Ranges in an education context are dropped. Ranges with an unparseable endpoint are skipped.
func (p *Parser) dateRanges(lines []string, tags []LineTag) []DateRange {
	today := p.now()
	var ranges []DateRange

	for i := range lines {
		if !content(lines, tags, i) {
			continue
		}
		lower := strings.ToLower(strings.TrimSpace(lines[i]))

		_, startText, endText, ok := findDateRange(lower)
		if !ok {
			continue
		}
		start, okStart := ParseDate(startText, today)
		end, okEnd := ParseDate(endText, today)
		if !okStart || !okEnd {
			p.logger.Debug("skipping unparseable date range",
				zap.String("line", strings.TrimSpace(lines[i])),
			)
			continue
		}

		window := strings.ToLower(ContextWindow(lines, i, durationRadius).Text())
		if containsAny(window, p.catalog.DurationEducationKeywords) {
			p.logger.Debug("skipping education date range", zap.String("line", strings.TrimSpace(lines[i])))
			continue
		}

		ranges = append(ranges, DateRange{
			Start:    start,
			End:      end,
			FullTime: p.fullTime(window),
			Line:     strings.TrimSpace(lines[i]),
		})
	}

	return ranges
}

// fullTime classifies a context window. An explicit full-time keyword wins,
// otherwise any exclusion keyword rejects, otherwise the position counts.
func (p *Parser) fullTime(window string) bool {
	if containsAny(window, p.catalog.FullTimeKeywords) {
		return true
	}
	if p.exclusions != nil && p.exclusions.MatchString(window) {
		return false
	}
	return true
}
