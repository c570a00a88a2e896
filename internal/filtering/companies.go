package filtering

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/resume-scout/internal/jobs"
)

type companiesFilter struct {
	companies []string
	logger    *zap.Logger
}

// NewExcludedCompanies creates a filter that removes postings of the configured companies.
// Names are compared case-insensitively.
func NewExcludedCompanies(companies []string, logger *zap.Logger) Filter {
	if logger == nil {
		logger = zap.NewNop()
	}
	normalized := make([]string, 0, len(companies))
	for _, c := range companies {
		if c = strings.ToLower(strings.TrimSpace(c)); c != "" {
			normalized = append(normalized, c)
		}
	}
	return &companiesFilter{
		companies: normalized,
		logger:    logger,
	}
}

func (f *companiesFilter) Name() string { return "excluded_companies" }

func (f *companiesFilter) Disable(string) {}

func (f *companiesFilter) IsEnabled() bool { return true }

func (f *companiesFilter) Validate() error { return nil }

func (f *companiesFilter) Apply(_ context.Context, p *jobs.Postings) (*jobs.Postings, Step, error) {
	initial := p.Len()
	if len(f.companies) == 0 {
		return p, Step{Initial: initial, Dropped: 0, Left: p.Len()}, nil
	}

	excluded := p.Exclude(jobs.PostingCompanyField, f.companies)
	if len(excluded) > 0 {
		f.logger.Info("excluding postings by companies",
			zap.Strings("excluded_companies", f.companies),
			zap.Strings("excluded_postings", excluded),
			zap.Int("postings_left", p.Len()),
		)
	}

	return p, Step{Initial: initial, Dropped: len(excluded), Left: p.Len()}, nil
}

func (f *companiesFilter) Status() Status {
	details := map[string]string{}
	if len(f.companies) > 0 {
		details["companies"] = strings.Join(f.companies, ",")
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}
