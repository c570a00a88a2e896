package resume

import (
	"fmt"
	"strings"
)

// SkillGroup is the list of matched terms of one catalog category, in catalog order.
type SkillGroup struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// SkillGroups preserves catalog category order.
type SkillGroups []SkillGroup

// Get returns the matched skills of a category.
func (g SkillGroups) Get(category string) []string {
	for _, group := range g {
		if group.Category == category {
			return group.Skills
		}
	}
	return nil
}

// Categories returns the names of categories with at least one match.
func (g SkillGroups) Categories() []string {
	out := make([]string, 0, len(g))
	for _, group := range g {
		out = append(out, group.Category)
	}
	return out
}

// All flattens the groups in catalog order without duplicates.
func (g SkillGroups) All() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, group := range g {
		for _, s := range group.Skills {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// Len is the number of matched skills across categories.
func (g SkillGroups) Len() int {
	return len(g.All())
}

// EducationRecord is a raw education line.
type EducationRecord struct {
	Line string `json:"line"`
}

// Profile is the structured view of a resume. Empty strings mean not found.
type Profile struct {
	Name            string            `json:"name,omitempty"`
	Email           string            `json:"email,omitempty"`
	Phone           string            `json:"phone,omitempty"`
	Location        string            `json:"location,omitempty"`
	Summary         string            `json:"summary,omitempty"`
	Skills          SkillGroups       `json:"skills"`
	JobTitles       []string          `json:"job_titles"`
	Experience      []ExperienceEntry `json:"experience"`
	Education       []EducationRecord `json:"education"`
	YearsExperience float64           `json:"years_experience"`
}

// SkillsSummary renders the flattened skill list on one line.
func (p *Profile) SkillsSummary() string {
	all := p.Skills.All()
	if len(all) == 0 {
		return "No specific technical skills detected"
	}
	return "Skills: " + strings.Join(all, ", ")
}

// ExperienceSummary renders roles, years and the first three employers on one line.
func (p *Profile) ExperienceSummary() string {
	var parts []string
	if len(p.JobTitles) > 0 {
		parts = append(parts, "Roles: "+strings.Join(p.JobTitles, ", "))
	}
	if p.YearsExperience > 0 {
		parts = append(parts, fmt.Sprintf("Experience: %.2f years", p.YearsExperience))
	}

	var companies []string
	for _, e := range p.Experience {
		if e.Company != "" && len(companies) < 3 {
			companies = append(companies, e.Company)
		}
	}
	if len(companies) > 0 {
		parts = append(parts, "Companies: "+strings.Join(companies, ", "))
	}

	if len(parts) == 0 {
		return "Experience information not clearly detected"
	}
	return strings.Join(parts, " | ")
}

// Recommendations lists resume improvements suggested by gaps in the profile.
func (p *Profile) Recommendations() []string {
	var out []string
	if len(p.Skills) == 0 {
		out = append(out, "Add a technical skills section with specific technologies")
	}
	if len(p.JobTitles) == 0 {
		out = append(out, "Include clear job titles and roles")
	}
	if p.YearsExperience == 0 {
		out = append(out, "Specify employment dates so experience can be measured")
	}
	if p.Summary == "" {
		out = append(out, "Add a professional summary or objective")
	}
	if len(p.Education) == 0 {
		out = append(out, "Include education information")
	}
	if n := p.Skills.Len(); n > 0 && n < 5 {
		out = append(out, "Add more technical skills to increase job matches")
	}
	if len(p.Experience) < 2 {
		out = append(out, "Include more work experience details")
	}
	return out
}
