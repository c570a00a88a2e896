package resume

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/spigell/resume-scout/internal/ai"
)

const (
	nameScanLines = 5
	nameMinLen    = 2
	nameMaxLen    = 50

	// LocationLabel is the entity label treated as a place.
	LocationLabel = "GPE"

	summaryHeaderMaxLen = 40
	summaryMaxLines     = 4
)

type skillMatcher struct {
	category string
	terms    []string
	patterns []*regexp.Regexp
}

// termPattern matches a catalog term case-insensitively with word-like boundaries.
// Terms ending in symbols such as c++ or c# still get a boundary on both sides.
func termPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|[^a-z0-9_])` + regexp.QuoteMeta(strings.ToLower(term)) + `(?:[^a-z0-9_]|$)`)
}

func newSkillMatchers(categories []SkillCategory) []skillMatcher {
	matchers := make([]skillMatcher, 0, len(categories))
	for _, c := range categories {
		m := skillMatcher{category: c.Name}
		for _, term := range c.Terms {
			term = strings.TrimSpace(term)
			if term == "" {
				continue
			}
			m.terms = append(m.terms, term)
			m.patterns = append(m.patterns, termPattern(term))
		}
		matchers = append(matchers, m)
	}
	return matchers
}

func extractName(lines []string) string {
	for i, line := range lines {
		if i >= nameScanLines {
			break
		}
		line = strings.TrimSpace(line)
		n := utf8.RuneCountInString(line)
		if n < nameMinLen || n > nameMaxLen {
			continue
		}
		first, _ := utf8.DecodeRuneInString(line)
		if !unicode.IsUpper(first) || isAllUpper(line) {
			continue
		}
		return cases.Title(language.English).String(line)
	}
	return ""
}

func isAllUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

func extractEmail(text string) string {
	return emailPattern.FindString(text)
}

func extractPhone(text string) string {
	for _, re := range phonePatterns {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

func (p *Parser) extractLocation(ctx context.Context, text string) string {
	if p.recognizer == nil {
		return ""
	}
	entities, err := p.recognizer.Recognize(ctx, text)
	if err != nil {
		p.logger.Debug("location recognizer failed", zap.Error(err))
		return ""
	}
	location, _ := ai.FirstWithLabel(entities, LocationLabel)
	return strings.TrimSpace(location)
}

func (p *Parser) extractSkills(text string) SkillGroups {
	var groups SkillGroups
	for _, m := range p.skills {
		var found []string
		for i, re := range m.patterns {
			if re.MatchString(text) {
				found = append(found, m.terms[i])
			}
		}
		if len(found) > 0 {
			groups = append(groups, SkillGroup{Category: m.category, Skills: found})
		}
	}
	return groups
}

// validTitle reports whether s reads like a job title.
func (p *Parser) validTitle(s string) bool {
	lower := strings.ToLower(s)
	if !containsAny(lower, p.catalog.RoleKeywords) {
		return false
	}
	if containsAny(lower, p.catalog.TitleEducationKeywords) {
		return false
	}
	words := len(strings.Fields(s))
	if words < p.catalog.MinTitleWords {
		return false
	}
	if p.catalog.MaxTitleWords > 0 && words > p.catalog.MaxTitleWords {
		return false
	}
	return true
}

// titleCandidates returns every title-family match in text, groups joined by a space.
func titleCandidates(text string) []string {
	var out []string
	for _, re := range titlePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if len(m) == 1 {
				out = append(out, m[0])
				continue
			}
			out = append(out, strings.Join(m[1:], " "))
		}
	}
	return out
}

func (p *Parser) extractJobTitles(text string, experience []ExperienceEntry) []string {
	candidates := make([]string, 0, len(experience))
	for _, e := range experience {
		candidates = append(candidates, e.Title)
	}
	candidates = append(candidates, titleCandidates(text)...)

	seen := make(map[string]struct{}, len(candidates))
	titles := make([]string, 0, len(candidates))
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" || !p.validTitle(c) {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		titles = append(titles, c)
	}
	sort.Strings(titles)
	return titles
}

func extractEducation(lines []string, tags []LineTag) []EducationRecord {
	var records []EducationRecord
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		keep := educationDegree.MatchString(trimmed) || educationInstitution.MatchString(trimmed)
		if !keep && tags[i].Section == SectionEducation && !tags[i].Header {
			keep = educationYears.MatchString(trimmed)
		}
		if keep {
			records = append(records, EducationRecord{Line: trimmed})
		}
	}
	return records
}

func (p *Parser) extractSummary(lines []string) string {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || utf8.RuneCountInString(trimmed) > summaryHeaderMaxLen {
			continue
		}
		if !containsAny(strings.ToLower(trimmed), p.catalog.SummaryIndicators) {
			continue
		}

		var parts []string
		for j := i + 1; j < len(lines) && len(parts) < summaryMaxLines; j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" {
				break
			}
			parts = append(parts, next)
		}
		if len(parts) > 0 {
			return strings.Join(parts, " ")
		}
	}
	return ""
}
