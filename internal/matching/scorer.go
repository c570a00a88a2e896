package matching

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/resume-scout/internal/jobs"
	"github.com/spigell/resume-scout/internal/resume"
)

// ScoredJob is a posting with its relevance against one profile.
type ScoredJob struct {
	jobs.Posting

	RelevanceScore        float64  `json:"relevance_score"`
	SkillsMatchPercentage float64  `json:"skills_match_percentage"`
	MatchedSkills         []string `json:"matched_skills"`
	TotalSkills           int      `json:"total_skills"`
	MeetsThreshold        bool     `json:"meets_threshold"`
}

// Scorer rates postings against a profile. It holds no mutable state after construction.
type Scorer struct {
	cfg    Config
	known  map[string]struct{}
	logger *zap.Logger
}

func NewScorer(cfg Config, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg = cfg.withDefaults()

	known := make(map[string]struct{}, len(cfg.KnownCompanies))
	for _, c := range cfg.KnownCompanies {
		known[strings.ToLower(strings.TrimSpace(c))] = struct{}{}
	}

	return &Scorer{cfg: cfg, known: known, logger: logger}
}

func (s *Scorer) Config() Config {
	return s.cfg
}

// Admits reports whether a skills match percentage passes the admission threshold.
func (s *Scorer) Admits(percentage float64) bool {
	return percentage >= s.cfg.Threshold
}

// Score rates one posting. A profile skill counts as matched when the skill or one of its
// expansions appears in the posting title or description.
func (s *Scorer) Score(job *jobs.Posting, profile *resume.Profile) ScoredJob {
	title := strings.ToLower(job.Title)
	description := strings.ToLower(job.Description)

	score := 0.0
	for _, t := range profile.JobTitles {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" && strings.Contains(title, t) {
			score += s.cfg.TitleWeight
		}
	}

	skills := profile.Skills.All()
	matched := make([]string, 0, len(skills))
	for _, skill := range skills {
		if s.mentions(title, description, skill) {
			score += s.cfg.SkillWeight
			matched = append(matched, skill)
		}
	}

	total := len(skills)
	if total == 0 {
		total = 1
	}
	percentage := float64(len(matched)) * 100 / float64(total)

	scored := ScoredJob{
		Posting:               *job,
		SkillsMatchPercentage: percentage,
		MatchedSkills:         matched,
		TotalSkills:           len(skills),
		MeetsThreshold:        s.Admits(percentage),
	}

	if scored.MeetsThreshold {
		score += percentage
		if _, ok := s.known[strings.ToLower(strings.TrimSpace(job.Company))]; ok {
			score += s.cfg.CompanyBonus
		}
	}
	scored.RelevanceScore = score

	return scored
}

func (s *Scorer) mentions(title, description, skill string) bool {
	terms := append([]string{skill}, s.cfg.Expansions[strings.ToLower(skill)]...)
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		compact := strings.ReplaceAll(term, " ", "")
		if strings.Contains(title, term) || strings.Contains(description, term) ||
			strings.Contains(title, compact) || strings.Contains(description, compact) {
			return true
		}
	}
	return false
}

// ScoreAndRank scores every posting and returns only admitted ones, highest score first.
// Equal scores keep their input order.
func (s *Scorer) ScoreAndRank(postings []*jobs.Posting, profile *resume.Profile) []ScoredJob {
	ranked := make([]ScoredJob, 0, len(postings))
	rejected := 0
	for _, p := range postings {
		if p == nil {
			continue
		}
		scored := s.Score(p, profile)
		if !scored.MeetsThreshold {
			rejected++
			s.logger.Debug("posting below threshold",
				zap.String("title", p.Title),
				zap.String("company", p.Company),
				zap.Float64("skills_match_percentage", scored.SkillsMatchPercentage),
			)
			continue
		}
		ranked = append(ranked, scored)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RelevanceScore > ranked[j].RelevanceScore
	})

	s.logger.Debug("postings ranked",
		zap.Int("admitted", len(ranked)),
		zap.Int("rejected", rejected),
		zap.Float64("threshold", s.cfg.Threshold),
	)

	return ranked
}
