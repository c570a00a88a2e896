package matching

import (
	"fmt"
	"strings"

	"github.com/spigell/resume-scout/internal/resume"
)

const (
	queryTitles      = 2
	queryPrimary     = 3
	querySkillsOnly  = 5
	entryLevelYears  = 2
	seniorLevelYears = 5
)

// SearchSkills returns the profile skills followed by their expansions, without duplicates.
func (s *Scorer) SearchSkills(profile *resume.Profile) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(v string) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	base := profile.Skills.All()
	for _, skill := range base {
		add(skill)
	}
	for _, skill := range base {
		for _, e := range s.cfg.Expansions[skill] {
			add(e)
		}
	}
	return out
}

// Queries builds job board search queries from the profile.
func (s *Scorer) Queries(profile *resume.Profile) []string {
	skills := s.SearchSkills(profile)
	titles := firstN(profile.JobTitles, queryTitles)

	var queries []string

	if len(skills) > 0 {
		primary := strings.Join(firstN(skills, queryPrimary), " ")
		for _, title := range titles {
			queries = append(queries, fmt.Sprintf("%q %s", title, primary))
		}
		queries = append(queries, strings.Join(firstN(skills, querySkillsOnly), " "))
	}

	if profile.YearsExperience > 0 {
		level := experienceLevel(profile.YearsExperience)
		for _, title := range titles {
			queries = append(queries, fmt.Sprintf("%q %q", title, level))
		}
	}

	if len(skills) > 0 {
		queries = append(queries, fmt.Sprintf("%q developer", strings.Join(firstN(skills, queryPrimary), " ")))
	}

	return firstN(queries, s.cfg.MaxQueries)
}

func experienceLevel(years float64) string {
	switch {
	case years < entryLevelYears:
		return "entry level"
	case years < seniorLevelYears:
		return "mid level"
	default:
		return "senior"
	}
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
