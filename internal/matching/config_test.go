package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spigell/resume-scout/internal/jobs"
)

func TestPartialConfigKeepsDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config Config
		expect Config
	}{
		{
			name:   "threshold only",
			config: Config{Threshold: 80},
			expect: Config{TitleWeight: 10, SkillWeight: 5, CompanyBonus: 3, Threshold: 80, MaxQueries: 5},
		},
		{
			name:   "weights only",
			config: Config{TitleWeight: 20, CompanyBonus: 1},
			expect: Config{TitleWeight: 20, SkillWeight: 5, CompanyBonus: 1, Threshold: 90, MaxQueries: 5},
		},
		{
			name:   "empty",
			expect: Config{TitleWeight: 10, SkillWeight: 5, CompanyBonus: 3, Threshold: 90, MaxQueries: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NewScorer(tt.config, nil).Config()
			assert.Equal(t, tt.expect.TitleWeight, got.TitleWeight)
			assert.Equal(t, tt.expect.SkillWeight, got.SkillWeight)
			assert.Equal(t, tt.expect.CompanyBonus, got.CompanyBonus)
			assert.Equal(t, tt.expect.Threshold, got.Threshold)
			assert.Equal(t, tt.expect.MaxQueries, got.MaxQueries)
			assert.Equal(t, DefaultConfig().KnownCompanies, got.KnownCompanies)
		})
	}
}

func TestPartialConfigScoresWithDefaultWeights(t *testing.T) {
	t.Parallel()

	s := NewScorer(Config{Threshold: 80}, nil)
	scored := s.Score(&jobs.Posting{Title: "Go Developer", Company: "Initech"}, profileWith([]string{"Go Developer"}, "go"))

	// title 10 + skill 5 + percentage 100
	assert.InDelta(t, 115.0, scored.RelevanceScore, 1e-9)
}
