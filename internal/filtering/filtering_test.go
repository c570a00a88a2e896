package filtering

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/resume-scout/internal/jobs"
)

type stubFilter struct {
	name        string
	enabled     bool
	validateErr error
	applied     bool
}

func (f *stubFilter) Name() string { return f.name }
func (f *stubFilter) Disable(string) { f.enabled = false }
func (f *stubFilter) IsEnabled() bool { return f.enabled }
func (f *stubFilter) Validate() error { return f.validateErr }
func (f *stubFilter) Apply(_ context.Context, p *jobs.Postings) (*jobs.Postings, Step, error) {
	f.applied = true
	initial := p.Len()
	if initial > 0 {
		p.Items = p.Items[1:]
	}
	return p, Step{Initial: initial, Dropped: initial - p.Len(), Left: p.Len()}, nil
}

func postings(keys ...[2]string) *jobs.Postings {
	p := &jobs.Postings{}
	for _, k := range keys {
		p.Items = append(p.Items, &jobs.Posting{Title: k[0], Company: k[1]})
	}
	return p
}

func TestRunAppliesEnabledSteps(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	first := &stubFilter{name: "first", enabled: true}
	skipped := &stubFilter{name: "skipped", enabled: false}
	second := &stubFilter{name: "second", enabled: true}

	p := postings([2]string{"a", "x"}, [2]string{"b", "y"}, [2]string{"c", "z"})
	out, err := Run(context.Background(), zap.New(core), []Filter{first, skipped, second}, p)
	require.NoError(t, err)

	assert.Equal(t, 1, out.Len())
	assert.Equal(t, "c", out.Items[0].Title)
	assert.True(t, first.applied)
	assert.False(t, skipped.applied)
	assert.True(t, second.applied)

	steps := logs.FilterMessage("filter step").All()
	require.Len(t, steps, 2)
	assert.Equal(t, "first", steps[0].ContextMap()["name"])
	assert.EqualValues(t, 3, steps[0].ContextMap()["initial"])
	assert.EqualValues(t, 1, steps[0].ContextMap()["dropped"])
	assert.EqualValues(t, 2, steps[0].ContextMap()["left"])
	assert.Equal(t, 1, logs.FilterMessage("filter disabled").Len())
}

func TestRunValidatesBeforeApplying(t *testing.T) {
	t.Parallel()

	first := &stubFilter{name: "first", enabled: true}
	broken := &stubFilter{name: "broken", enabled: true, validateErr: errors.New("missing dependency")}

	_, err := Run(context.Background(), nil, []Filter{first, broken}, postings([2]string{"a", "x"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.False(t, first.applied)
}

func TestRunSkipsValidationOfDisabledSteps(t *testing.T) {
	t.Parallel()

	broken := &stubFilter{name: "broken", enabled: true, validateErr: errors.New("missing dependency")}
	DisableByName([]Filter{broken}, "broken", "not configured")

	_, err := Run(context.Background(), nil, []Filter{broken}, postings([2]string{"a", "x"}))
	assert.NoError(t, err)
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	seen := NewSeenHistory(nil, &SeenHistoryDeps{})
	steps := []Filter{
		&stubFilter{name: "plain", enabled: true},
		NewExcludedCompanies([]string{" Acme ", "Globex"}, nil),
		seen,
	}
	DisableByName(steps, "seen_history", "history store is unavailable")

	statuses := Describe(steps)
	require.Len(t, statuses, 3)

	assert.Equal(t, Status{Name: "plain", Enabled: true}, statuses[0])
	assert.Equal(t, "acme,globex", statuses[1].Details["companies"])
	assert.False(t, statuses[2].Enabled)
	assert.Equal(t, "history store is unavailable", statuses[2].Reason)
}
