package headhunter

import (
	"strings"

	"github.com/spigell/resume-scout/internal/jobs"
)

// Source marks postings found through the HH.ru search.
const Source = "hh"

var highlight = strings.NewReplacer("<highlighttext>", "", "</highlighttext>", "")

type Vacancies struct {
	Items []*Vacancy
}

// Vacancy holds the fields of a search result the matcher needs.
type Vacancy struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Area struct {
		ID   string `json:"id,omitempty"`
		Name string `json:"name,omitempty"`
	} `json:"area,omitempty"`
	Employer struct {
		ID   string `json:"id,omitempty"`
		Name string `json:"name,omitempty"`
	} `json:"employer,omitempty"`
	AlternateURL string `json:"alternate_url,omitempty"`
	Snipet       struct {
		Requirement    string `json:"requirement,omitempty"`
		Responsibility string `json:"responsibility,omitempty"`
	} `json:"snippet,omitempty"`
	KeySkills []struct {
		Name string `json:"name,omitempty"`
	} `json:"key_skills,omitempty"`
}

func (v *Vacancies) Len() int {
	return len(v.Items)
}

// ToPosting converts a vacancy. The description joins the snippet parts and key skills.
func (va *Vacancy) ToPosting() *jobs.Posting {
	parts := make([]string, 0, 2+len(va.KeySkills))
	for _, s := range []string{va.Snipet.Requirement, va.Snipet.Responsibility} {
		if s = strings.TrimSpace(highlight.Replace(s)); s != "" {
			parts = append(parts, s)
		}
	}
	for _, skill := range va.KeySkills {
		if skill.Name != "" {
			parts = append(parts, skill.Name)
		}
	}

	return &jobs.Posting{
		Title:       va.Name,
		Company:     va.Employer.Name,
		Location:    va.Area.Name,
		URL:         va.AlternateURL,
		Source:      Source,
		Description: strings.Join(parts, " "),
	}
}

func (v *Vacancies) ToPostings() *jobs.Postings {
	postings := &jobs.Postings{Items: make([]*jobs.Posting, 0, len(v.Items))}
	for _, vacancy := range v.Items {
		if vacancy == nil || vacancy.Name == "" {
			continue
		}
		postings.Items = append(postings.Items, vacancy.ToPosting())
	}
	return postings
}
