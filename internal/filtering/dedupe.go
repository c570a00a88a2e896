package filtering

import (
	"context"

	"go.uber.org/zap"

	"github.com/spigell/resume-scout/internal/jobs"
)

type dedupeFilter struct {
	logger *zap.Logger
}

// NewDedupe creates a filter that keeps the first posting of every title and company pair.
func NewDedupe(logger *zap.Logger) Filter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &dedupeFilter{logger: logger}
}

func (f *dedupeFilter) Name() string { return "dedupe" }

func (f *dedupeFilter) Disable(string) {}

func (f *dedupeFilter) IsEnabled() bool { return true }

func (f *dedupeFilter) Validate() error { return nil }

func (f *dedupeFilter) Apply(_ context.Context, p *jobs.Postings) (*jobs.Postings, Step, error) {
	initial := p.Len()
	dropped := p.Dedupe()
	if len(dropped) > 0 {
		f.logger.Debug("duplicate postings removed",
			zap.Strings("duplicates", dropped),
			zap.Int("postings_left", p.Len()),
		)
	}

	return p, Step{Initial: initial, Dropped: len(dropped), Left: p.Len()}, nil
}
