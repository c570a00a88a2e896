package cmd

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/resume-scout/internal/careers"
	"github.com/spigell/resume-scout/internal/headhunter"
	"github.com/spigell/resume-scout/internal/matching"
	"github.com/spigell/resume-scout/internal/resume"
)

const (
	app = "resume-scout"

	defaultResultsDir = "job_results"
	defaultMaxJobs    = 20
)

type Config struct {
	Scoring     *matching.Config `mapstructure:"scoring"`
	Parser      *ParserConfig    `mapstructure:"parser"`
	Search      *SearchConfig    `mapstructure:"search"`
	Careers     *CareersConfig   `mapstructure:"careers"`
	JobsFile    string           `mapstructure:"jobs-file"`
	ExcludeFile string           `mapstructure:"exclude-file"`
	Exclude     *struct {
		Companies []string
	}
	HistoryFile string    `mapstructure:"history-file"`
	ResultsDir  string    `mapstructure:"results-dir"`
	MaxJobs     int       `mapstructure:"max-jobs"`
	UserAgent   string    `mapstructure:"user-agent"`
	TokenFile   string    `mapstructure:"token-file"`
	AI          *AIConfig `mapstructure:"ai"`
}

type ParserConfig struct {
	MinTitleWords int                    `mapstructure:"min-title-words"`
	MaxTitleWords int                    `mapstructure:"max-title-words"`
	Skills        []resume.SkillCategory `mapstructure:"skills"`
}

type SearchConfig struct {
	Enabled  bool                    `mapstructure:"enabled"`
	Params   headhunter.SearchParams `mapstructure:"params"`
	Interval time.Duration           `mapstructure:"interval"`
	MaxPages int                     `mapstructure:"max-pages"`
}

type CareersConfig struct {
	Pages []careers.Page `mapstructure:"pages"`
}

type AIConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Gemini  *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-scout turns a resume into a structured profile and ranks job postings against it",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("token-file", "HH_TOKEN_FILE"); err != nil {
		log.Fatalf("binding HH_TOKEN_FILE environment variable: %v", err)
	}
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-scout.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("log-file", "", "also write logs to this file")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// Every setting has a default, so only an explicitly given config must exist.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config == nil {
		config = &Config{}
	}

	applyDefaults(config)
	return config, nil
}

func applyDefaults(config *Config) {
	if config.Scoring == nil {
		def := matching.DefaultConfig()
		config.Scoring = &def
	}
	if config.Parser == nil {
		config.Parser = &ParserConfig{}
	}
	if config.Search == nil {
		config.Search = &SearchConfig{}
	}
	if config.Careers == nil {
		config.Careers = &CareersConfig{}
	}
	if config.Exclude == nil {
		config.Exclude = &struct{ Companies []string }{}
	}
	if config.AI == nil {
		config.AI = &AIConfig{}
	}
	if config.AI.Gemini == nil {
		config.AI.Gemini = &GeminiConfig{}
	}
	if strings.TrimSpace(config.ResultsDir) == "" {
		config.ResultsDir = defaultResultsDir
	}
	if config.MaxJobs <= 0 {
		config.MaxJobs = defaultMaxJobs
	}
	if config.HistoryFile == "" {
		if dir, err := os.UserCacheDir(); err == nil {
			config.HistoryFile = filepath.Join(dir, app, "history.db")
		}
	}
}

// catalog merges parser settings into the default catalog.
func (c *ParserConfig) catalog() resume.Catalog {
	catalog := resume.DefaultCatalog()
	if c == nil {
		return catalog
	}
	if c.MinTitleWords > 0 {
		catalog.MinTitleWords = c.MinTitleWords
	}
	if c.MaxTitleWords > 0 {
		catalog.MaxTitleWords = c.MaxTitleWords
	}
	if len(c.Skills) > 0 {
		catalog.Skills = c.Skills
	}
	return catalog
}
