package filtering

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/spigell/resume-scout/internal/jobs"
	"github.com/spigell/resume-scout/internal/logger"
	"github.com/spigell/resume-scout/internal/matching"
	"github.com/spigell/resume-scout/internal/resume"
)

type relevanceFilter struct {
	deps   *RelevanceDeps
	ranked []matching.ScoredJob
}

type RelevanceDeps struct {
	Scorer  *matching.Scorer
	Profile *resume.Profile
	Logger  *zap.Logger
}

// NewRelevance creates the step that scores postings against the profile, drops those below
// the threshold and orders the rest by relevance.
func NewRelevance(deps *RelevanceDeps) Filter {
	return &relevanceFilter{deps: deps}
}

func (f *relevanceFilter) Name() string { return "relevance" }

func (f *relevanceFilter) Disable(string) {}

func (f *relevanceFilter) IsEnabled() bool { return true }

func (f *relevanceFilter) Validate() error {
	if f.deps == nil {
		return fmt.Errorf("deps are not initialized: filter is not usable")
	}
	if f.deps.Scorer == nil {
		return fmt.Errorf("scorer is required")
	}
	if f.deps.Profile == nil {
		return fmt.Errorf("profile is required")
	}
	if f.deps.Logger == nil {
		f.deps.Logger = zap.NewNop()
	}
	return nil
}

func (f *relevanceFilter) Apply(_ context.Context, p *jobs.Postings) (*jobs.Postings, Step, error) {
	initial := p.Len()

	f.ranked = f.deps.Scorer.ScoreAndRank(p.Items, f.deps.Profile)

	items := make([]*jobs.Posting, 0, len(f.ranked))
	for i := range f.ranked {
		scored := &f.ranked[i]
		f.deps.Logger.Debug("posting admitted",
			append(logger.PostingFields(&scored.Posting),
				zap.Float64("relevance_score", scored.RelevanceScore),
				zap.Float64("skills_match_percentage", scored.SkillsMatchPercentage),
			)...,
		)
		items = append(items, &scored.Posting)
	}
	p.Items = items

	f.deps.Logger.Info("relevance scoring completed",
		zap.Int("initial_postings", initial),
		zap.Int("admitted_postings", len(items)),
	)

	return p, Step{Initial: initial, Dropped: initial - len(items), Left: len(items)}, nil
}

// Ranked returns the scored postings of the last Apply, best first.
func (f *relevanceFilter) Ranked() []matching.ScoredJob {
	return f.ranked
}

func (f *relevanceFilter) Status() Status {
	details := map[string]string{}
	if f.deps != nil && f.deps.Scorer != nil {
		details["threshold"] = strconv.FormatFloat(f.deps.Scorer.Config().Threshold, 'f', -1, 64)
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}

// Ranked extracts scored results from the relevance step, if present.
func Ranked(steps []Filter) []matching.ScoredJob {
	for _, step := range steps {
		if r, ok := step.(interface{ Ranked() []matching.ScoredJob }); ok {
			return r.Ranked()
		}
	}
	return nil
}
