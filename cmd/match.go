package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/resume-scout/internal/careers"
	"github.com/spigell/resume-scout/internal/filtering"
	"github.com/spigell/resume-scout/internal/headhunter"
	"github.com/spigell/resume-scout/internal/history"
	"github.com/spigell/resume-scout/internal/jobs"
	"github.com/spigell/resume-scout/internal/matching"
	"github.com/spigell/resume-scout/internal/report"
	"github.com/spigell/resume-scout/internal/resume"
	"github.com/spigell/resume-scout/internal/secrets"
)

const (
	PromptSave                = "Save results"
	PromptQuit                = "Quit"
	PromptReportByCompanies   = "Report by companies"
	PromptPostingsToFile      = "Dump postings to file"
	PromptAppendToExcludeFile = "Append all postings to exclude file"

	// fetchConcurrency bounds the sources queried at once.
	fetchConcurrency = 4
)

var errExit = errors.New("exit requested")

var matchCmd = &cobra.Command{
	Use:   "match <resume>",
	Short: "Parse a resume, collect job postings and rank them by relevance",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		match(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().BoolP("do-not-exclude-seen", "f", false, "do not exclude postings shown in earlier runs")
	matchCmd.Flags().BoolP("auto-approve", "y", false, "save results without asking")
	matchCmd.Flags().StringP("exclude-file", "e", "", "special file with postings to exclude. Default is unset.")
	matchCmd.Flags().String("jobs-file", "", "json or yaml file with postings to rank")
	matchCmd.Flags().Int("max-jobs", 0, "maximum number of ranked postings to keep")

	viper.BindPFlag("exclude-file", matchCmd.Flags().Lookup("exclude-file"))
	viper.BindPFlag("jobs-file", matchCmd.Flags().Lookup("jobs-file"))
	viper.BindPFlag("max-jobs", matchCmd.Flags().Lookup("max-jobs"))
}

// session is the state the interactive menu works on.
type session struct {
	logger     *zap.Logger
	config     *Config
	resumePath string
	profile    *resume.Profile
	postings   *jobs.Postings
	ranked     []matching.ScoredJob
	history    *history.Store
}

func match(cmd *cobra.Command, path string) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger, config := setup()
	logger.Info("starting the resume-scout", zap.String("version", version))

	profile, err := parseResume(ctx, path, config, logger)
	if err != nil {
		logger.Fatal("parsing the resume", zap.String("path", path), zap.Error(err))
	}

	scorer := matching.NewScorer(*config.Scoring, logger)

	postings, err := collectPostings(ctx, config, scorer.Queries(profile), logger)
	if err != nil {
		logger.Fatal("collecting postings", zap.Error(err))
	}

	if postings.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no postings found"))
		return
	}

	store := openHistory(config.HistoryFile, logger)
	if store != nil {
		defer store.Close()
	}

	ignoreSeen, _ := cmd.Flags().GetBool("do-not-exclude-seen")
	steps := prepareFilters(config, scorer, profile, store, ignoreSeen, logger)

	for _, status := range filtering.Describe(steps) {
		logger.Debug("filter", zap.String("name", status.Name), zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason), zap.Any("details", status.Details))
	}

	filtered, err := filtering.Run(ctx, logger, steps, postings)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}
	filtered.Truncate(config.MaxJobs)

	s := &session{
		logger:     logger,
		config:     config,
		resumePath: path,
		profile:    profile,
		postings:   filtered,
		ranked:     keepRanked(filtering.Ranked(steps), filtered),
		history:    store,
	}

	if s.postings.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no postings left after filters"))
		return
	}

	for i, job := range s.ranked {
		logger.Info("ranked posting",
			zap.Int("rank", i+1),
			zap.String("title", job.Title),
			zap.String("company", job.Company),
			zap.Float64("relevance_score", job.RelevanceScore),
			zap.Float64("skills_match_percentage", job.SkillsMatchPercentage),
			zap.String("url", job.URL),
		)
	}

	autoApprove, _ := cmd.Flags().GetBool("auto-approve")
	for {
		action := PromptSave
		if !autoApprove {
			prompt := promptui.Select{
				Label: "Proceed?",
				Items: s.menu(),
			}
			_, action, err = prompt.Run()
			if err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
		}

		logger.Info("current list of postings", zap.Int("count", s.postings.Len()))

		if err := s.handleAction(ctx, action); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func (s *session) menu() []string {
	items := []string{PromptSave, PromptReportByCompanies, PromptPostingsToFile}
	if s.config.ExcludeFile != "" && s.postings.Len() != 0 {
		items = append(items, PromptAppendToExcludeFile)
	}
	return append(items, PromptQuit)
}

func (s *session) handleAction(ctx context.Context, action string) error {
	switch action {
	case PromptSave:
		return s.save(ctx)
	case PromptQuit:
		s.logger.Info("exiting", zap.String("reason", "got quit from prompt"))
		return errExit
	case PromptReportByCompanies:
		pretty, _ := json.MarshalIndent(s.postings.ReportByCompany(), "", "  ")
		s.logger.Info(string(pretty), zap.Int("postings count", s.postings.Len()))
		return nil
	case PromptPostingsToFile:
		filename, err := s.postings.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		s.logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptAppendToExcludeFile:
		return s.appendToExcludeFile()
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func (s *session) save(ctx context.Context) error {
	results := report.NewResults(s.profile, s.ranked, time.Now())
	saved, err := report.Save(s.config.ResultsDir, s.resumePath, results)
	if err != nil {
		return err
	}

	s.logger.Info("results saved",
		zap.String("detailed", saved.Detailed),
		zap.String("summary", saved.Summary),
		zap.Int("postings", results.TotalJobs),
	)

	if s.history != nil {
		if err := s.history.MarkSeen(ctx, s.postings.Items); err != nil {
			s.logger.Warn("remembering postings failed", zap.Error(err))
		}
	}

	return errExit
}

func (s *session) appendToExcludeFile() error {
	path := s.config.ExcludeFile

	excluded, err := jobs.GetExcludedPostingsFromFile(path)
	if err != nil {
		return err
	}

	excluded.Append(s.postings.ToExcluded())

	if err := excluded.ToFile(path); err != nil {
		return err
	}

	s.logger.Info("appended to exclude file", zap.String("filename", path))

	s.postings.Exclude(jobs.PostingKeyField, excluded.Keys())
	s.ranked = keepRanked(s.ranked, s.postings)
	return nil
}

// keepRanked drops scored jobs whose posting is no longer in postings.
func keepRanked(ranked []matching.ScoredJob, postings *jobs.Postings) []matching.ScoredJob {
	keys := make(map[string]struct{}, postings.Len())
	for _, p := range postings.Items {
		keys[p.Key()] = struct{}{}
	}

	kept := make([]matching.ScoredJob, 0, len(ranked))
	for _, job := range ranked {
		if _, ok := keys[job.Key()]; ok {
			kept = append(kept, job)
		}
	}
	return kept
}

// collectPostings queries every configured source concurrently. A failing source is logged
// and skipped. The result keeps source order: jobs file, searches, career pages.
func collectPostings(ctx context.Context, config *Config, queries []string, logger *zap.Logger) (*jobs.Postings, error) {
	var fetchers []func(context.Context) (*jobs.Postings, error)
	var names []string

	if config.JobsFile != "" {
		names = append(names, "jobs file "+config.JobsFile)
		fetchers = append(fetchers, func(context.Context) (*jobs.Postings, error) {
			return jobs.LoadFile(config.JobsFile)
		})
	}

	if config.Search.Enabled {
		hh, err := newHeadhunter(config, logger)
		if err != nil {
			return nil, err
		}
		for _, query := range queries {
			params := config.Search.Params.WithText(query)
			names = append(names, "search "+query)
			fetchers = append(fetchers, func(ctx context.Context) (*jobs.Postings, error) {
				return hh.Search(ctx, params)
			})
		}
	}

	if len(config.Careers.Pages) > 0 {
		client := careers.New(logger)
		if config.UserAgent != "" {
			client.UserAgent = config.UserAgent
		}
		for _, page := range config.Careers.Pages {
			names = append(names, "career page "+page.Company)
			fetchers = append(fetchers, func(ctx context.Context) (*jobs.Postings, error) {
				return client.Fetch(ctx, page)
			})
		}
	}

	if len(fetchers) == 0 {
		return nil, errors.New("no posting sources configured: set jobs-file, search.enabled or careers.pages")
	}

	results := make([]*jobs.Postings, len(fetchers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, fetch := range fetchers {
		g.Go(func() error {
			postings, err := fetch(gctx)
			if err != nil {
				logger.Warn("posting source failed, skipping", zap.String("source", names[i]), zap.Error(err))
				return nil
			}
			logger.Info("got postings", zap.String("source", names[i]), zap.Int("count", postings.Len()))
			results[i] = postings
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := &jobs.Postings{}
	for _, r := range results {
		all.Append(r)
	}
	return all, nil
}

func newHeadhunter(config *Config, logger *zap.Logger) (*headhunter.Client, error) {
	token, err := secrets.Load(secrets.Source{
		Name:     "headhunter token",
		File:     config.TokenFile,
		Optional: true,
	})
	if err != nil {
		return nil, err
	}

	hh := headhunter.New(logger, token)
	if config.UserAgent != "" {
		hh.UserAgent = config.UserAgent
	}
	if config.Search.Interval > 0 {
		hh.SetRate(config.Search.Interval, 1)
	}
	hh.MaxPages = config.Search.MaxPages

	return hh, nil
}

// openHistory returns nil when the history is not configured or cannot be opened.
func openHistory(path string, logger *zap.Logger) *history.Store {
	if path == "" {
		return nil
	}
	store, err := history.Open(path)
	if err != nil {
		logger.Warn("seen history disabled", zap.String("path", path), zap.Error(err))
		return nil
	}
	return store
}

func prepareFilters(config *Config, scorer *matching.Scorer, profile *resume.Profile, store *history.Store, ignoreSeen bool, logger *zap.Logger) []filtering.Filter {
	steps := []filtering.Filter{
		filtering.NewDedupe(logger),
		filtering.NewExcludedCompanies(config.Exclude.Companies, logger),
		filtering.NewExcludeFile(config.ExcludeFile, logger),
		prepareSeenHistoryFilter(store, ignoreSeen, logger),
		filtering.NewRelevance(&filtering.RelevanceDeps{
			Scorer:  scorer,
			Profile: profile,
			Logger:  logger,
		}),
	}

	if store == nil {
		filtering.DisableByName(steps, "seen_history", "history store is unavailable")
	}

	return steps
}

func prepareSeenHistoryFilter(store *history.Store, ignore bool, logger *zap.Logger) filtering.Filter {
	cfg := &filtering.SeenHistoryConfig{Ignore: ignore}
	deps := &filtering.SeenHistoryDeps{
		Logger: logger,
	}
	if store != nil {
		deps.Store = store
	}

	return filtering.NewSeenHistory(cfg, deps)
}
