package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/spigell/resume-scout/internal/jobs"
	"github.com/spigell/resume-scout/internal/matching"
)

func TestKeepRanked(t *testing.T) {
	ranked := []matching.ScoredJob{
		{Posting: jobs.Posting{Title: "Go Developer", Company: "Acme"}},
		{Posting: jobs.Posting{Title: "SRE", Company: "Globex"}},
		{Posting: jobs.Posting{Title: "Go Developer", Company: "Initech"}},
	}
	postings := &jobs.Postings{Items: []*jobs.Posting{
		{Title: "Go Developer", Company: "Initech"},
		{Title: "Go Developer", Company: "Acme"},
	}}

	kept := keepRanked(ranked, postings)
	if len(kept) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(kept))
	}
	if kept[0].Company != "Acme" || kept[1].Company != "Initech" {
		t.Fatalf("ranking order must be preserved, got %s, %s", kept[0].Company, kept[1].Company)
	}
}

func TestApplyDefaults(t *testing.T) {
	config := &Config{}
	applyDefaults(config)

	if config.ResultsDir != defaultResultsDir || config.MaxJobs != defaultMaxJobs {
		t.Fatalf("unexpected defaults: %+v", config)
	}
	if config.Scoring == nil || config.Scoring.Threshold != matching.DefaultConfig().Threshold {
		t.Fatalf("expected default scoring config, got %+v", config.Scoring)
	}
	if config.Exclude == nil || config.AI == nil || config.AI.Gemini == nil || config.Careers == nil || config.Search == nil {
		t.Fatalf("nested sections must be initialized: %+v", config)
	}

	config = &Config{MaxJobs: 5, ResultsDir: "out"}
	applyDefaults(config)
	if config.MaxJobs != 5 || config.ResultsDir != "out" {
		t.Fatalf("explicit values must be kept: %+v", config)
	}
}

func TestParserCatalog(t *testing.T) {
	var empty *ParserConfig
	if got := empty.catalog(); got.MaxTitleWords == 0 {
		t.Fatalf("nil parser config must yield the default catalog")
	}

	cfg := &ParserConfig{MinTitleWords: 2, MaxTitleWords: 6}
	catalog := cfg.catalog()
	if catalog.MinTitleWords != 2 || catalog.MaxTitleWords != 6 {
		t.Fatalf("unexpected title bounds: %d..%d", catalog.MinTitleWords, catalog.MaxTitleWords)
	}
}

func TestCollectPostingsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	data := "- title: Go Developer\n  company: Acme\n- title: SRE\n  company: Globex\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("writing jobs file: %v", err)
	}

	config := &Config{JobsFile: path}
	applyDefaults(config)

	postings, err := collectPostings(context.Background(), config, nil, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if postings.Len() != 2 || postings.Items[1].Company != "Globex" {
		t.Fatalf("unexpected postings: %+v", postings.Items)
	}
}

func TestCollectPostingsSkipsFailingSource(t *testing.T) {
	config := &Config{JobsFile: filepath.Join(t.TempDir(), "missing.json")}
	applyDefaults(config)

	postings, err := collectPostings(context.Background(), config, nil, zap.NewNop())
	if err != nil {
		t.Fatalf("a failing source must not fail collection: %v", err)
	}
	if postings.Len() != 0 {
		t.Fatalf("expected no postings, got %d", postings.Len())
	}
}

func TestCollectPostingsWithoutSources(t *testing.T) {
	config := &Config{}
	applyDefaults(config)

	if _, err := collectPostings(context.Background(), config, nil, zap.NewNop()); err == nil {
		t.Fatalf("expected error without sources")
	}
}

func TestHandleQuit(t *testing.T) {
	s := &session{logger: zap.NewNop(), config: &Config{}, postings: &jobs.Postings{}}
	if err := s.handleAction(context.Background(), PromptQuit); !errors.Is(err, errExit) {
		t.Fatalf("expected errExit, got %v", err)
	}
	if err := s.handleAction(context.Background(), "unknown"); err == nil || errors.Is(err, errExit) {
		t.Fatalf("expected an invalid action error, got %v", err)
	}
}
