package filtering

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/spigell/resume-scout/internal/jobs"
)

const forceFlagSetMsg = "force flag is set"

// SeenStore lists the keys of postings shown in earlier runs.
type SeenStore interface {
	SeenKeys(ctx context.Context) ([]string, error)
}

type seenHistoryFilter struct {
	deps    *SeenHistoryDeps
	ignore  bool
	enabled bool
	reason  string
}

type SeenHistoryDeps struct {
	Store  SeenStore
	Logger *zap.Logger
}

type SeenHistoryConfig struct {
	Ignore bool
}

// NewSeenHistory creates a filter that removes postings found in the seen history.
func NewSeenHistory(cfg *SeenHistoryConfig, deps *SeenHistoryDeps) Filter {
	ignore := false
	if cfg != nil {
		ignore = cfg.Ignore
	}

	return &seenHistoryFilter{
		deps:    deps,
		ignore:  ignore,
		enabled: true,
	}
}

func (f *seenHistoryFilter) Name() string { return "seen_history" }

func (f *seenHistoryFilter) Disable(reason string) {
	f.enabled = false
	f.reason = reason
}

func (f *seenHistoryFilter) IsEnabled() bool { return f.enabled }

func (f *seenHistoryFilter) Validate() error {
	if f.deps == nil || f.deps.Store == nil {
		return fmt.Errorf("history store is required")
	}
	if f.deps.Logger == nil {
		f.deps.Logger = zap.NewNop()
	}
	return nil
}

func (f *seenHistoryFilter) Apply(ctx context.Context, p *jobs.Postings) (*jobs.Postings, Step, error) {
	initial := p.Len()
	if f.ignore {
		f.deps.Logger.Info("ignoring already seen postings", zap.String("reason", forceFlagSetMsg))
		return p, Step{Initial: initial, Dropped: 0, Left: p.Len()}, nil
	}

	keys, err := f.deps.Store.SeenKeys(ctx)
	if err != nil {
		return p, Step{}, fmt.Errorf("get seen postings: %w", err)
	}

	excluded := p.Exclude(jobs.PostingKeyField, keys)
	if len(excluded) > 0 {
		f.deps.Logger.Info("excluding postings seen before",
			zap.Strings("excluded_postings", excluded),
			zap.Int("postings_left", p.Len()),
		)
	}

	return p, Step{Initial: initial, Dropped: len(excluded), Left: p.Len()}, nil
}

func (f *seenHistoryFilter) Status() Status {
	details := map[string]string{
		"exclude_seen": strconv.FormatBool(!f.ignore),
	}
	reason := f.reason
	if f.enabled && f.ignore {
		reason = "skip requested via flag"
	}
	return Status{Name: f.Name(), Enabled: f.enabled, Reason: reason, Details: details}
}
