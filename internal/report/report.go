package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spigell/resume-scout/internal/matching"
	"github.com/spigell/resume-scout/internal/resume"
)

const (
	timestampLayout = "20060102_150405"
	topJobs         = 10
	notSpecified    = "Not specified"
)

// Results is one matching run as saved to disk.
type Results struct {
	Profile   *resume.Profile      `json:"resume_data"`
	Jobs      []matching.ScoredJob `json:"jobs"`
	Timestamp time.Time            `json:"timestamp"`
	TotalJobs int                  `json:"total_jobs"`
}

func NewResults(profile *resume.Profile, jobs []matching.ScoredJob, now time.Time) *Results {
	if jobs == nil {
		jobs = []matching.ScoredJob{}
	}
	return &Results{
		Profile:   profile,
		Jobs:      jobs,
		Timestamp: now,
		TotalJobs: len(jobs),
	}
}

// Saved names the files written by Save.
type Saved struct {
	Detailed string
	Summary  string
}

// Save writes the results as JSON and a text summary into dir. File names carry the resume
// name and the results timestamp.
func Save(dir, resumePath string, r *Results) (*Saved, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create results dir: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(resumePath), filepath.Ext(resumePath))
	stamp := r.Timestamp.Format(timestampLayout)

	saved := &Saved{
		Detailed: filepath.Join(dir, fmt.Sprintf("job_results_%s_%s.json", name, stamp)),
		Summary:  filepath.Join(dir, fmt.Sprintf("job_summary_%s_%s.txt", name, stamp)),
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal results: %w", err)
	}
	if err := os.WriteFile(saved.Detailed, data, 0o644); err != nil {
		return nil, fmt.Errorf("write results: %w", err)
	}

	if err := os.WriteFile(saved.Summary, []byte(SummaryText(r)), 0o644); err != nil {
		return nil, fmt.Errorf("write summary: %w", err)
	}

	return saved, nil
}

// SummaryText renders the top ten jobs. Jobs are expected to be ranked already.
func SummaryText(r *Results) string {
	var sb strings.Builder

	resumeName := "Unknown"
	if r.Profile != nil && r.Profile.Name != "" {
		resumeName = r.Profile.Name
	}

	fmt.Fprintf(&sb, "RESUME SCOUT RESULTS\n")
	fmt.Fprintf(&sb, "Generated: %s\n\n", r.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "SUMMARY:\n")
	fmt.Fprintf(&sb, "- Total Jobs Found: %d\n", r.TotalJobs)
	fmt.Fprintf(&sb, "- Resume: %s\n\n", resumeName)
	fmt.Fprintf(&sb, "TOP RECOMMENDATIONS:\n")

	for i, job := range r.Jobs {
		if i == topJobs {
			break
		}
		fmt.Fprintf(&sb, "\n%d. %s\n", i+1, job.Title)
		fmt.Fprintf(&sb, "   Company: %s\n", orDefault(job.Company, notSpecified))
		fmt.Fprintf(&sb, "   Location: %s\n", orDefault(job.Location, notSpecified))
		fmt.Fprintf(&sb, "   Source: %s\n", orDefault(job.Source, "Unknown"))
		fmt.Fprintf(&sb, "   Relevance Score: %.1f\n", job.RelevanceScore)
		fmt.Fprintf(&sb, "   Skills Match: %.1f%% (%d/%d skills)\n", job.SkillsMatchPercentage, len(job.MatchedSkills), job.TotalSkills)
		fmt.Fprintf(&sb, "   URL: %s\n", orDefault(job.URL, "Not available"))
	}

	return sb.String()
}

// ProfileText renders a parsed profile for the terminal.
func ProfileText(p *resume.Profile) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Name: %s\n", orDefault(p.Name, notSpecified))
	fmt.Fprintf(&sb, "Email: %s\n", orDefault(p.Email, notSpecified))
	fmt.Fprintf(&sb, "Phone: %s\n", orDefault(p.Phone, notSpecified))
	fmt.Fprintf(&sb, "Location: %s\n", orDefault(p.Location, notSpecified))
	if p.Summary != "" {
		fmt.Fprintf(&sb, "Summary: %s\n", p.Summary)
	}

	fmt.Fprintf(&sb, "\n%s\n", p.SkillsSummary())
	for _, group := range p.Skills {
		fmt.Fprintf(&sb, "  %s: %s\n", group.Category, strings.Join(group.Skills, ", "))
	}

	if len(p.JobTitles) > 0 {
		fmt.Fprintf(&sb, "\nJob titles: %s\n", strings.Join(p.JobTitles, ", "))
	}

	fmt.Fprintf(&sb, "\n%s\n", p.ExperienceSummary())
	for _, e := range p.Experience {
		fmt.Fprintf(&sb, "  - %s", e.Title)
		if e.Company != "" {
			fmt.Fprintf(&sb, " at %s", e.Company)
		}
		if e.Dates != "" {
			fmt.Fprintf(&sb, " (%s)", e.Dates)
		}
		fmt.Fprintf(&sb, " [%s]\n", e.Confidence)
	}

	if len(p.Education) > 0 {
		fmt.Fprintf(&sb, "\nEducation:\n")
		for _, e := range p.Education {
			fmt.Fprintf(&sb, "  - %s\n", e.Line)
		}
	}

	if recs := p.Recommendations(); len(recs) > 0 {
		fmt.Fprintf(&sb, "\nRecommendations:\n")
		for _, r := range recs {
			fmt.Fprintf(&sb, "  - %s\n", r)
		}
	}

	return sb.String()
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
