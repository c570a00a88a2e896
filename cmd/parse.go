package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-scout/internal/ai/gemini"
	"github.com/spigell/resume-scout/internal/document"
	"github.com/spigell/resume-scout/internal/logger"
	"github.com/spigell/resume-scout/internal/report"
	"github.com/spigell/resume-scout/internal/resume"
	"github.com/spigell/resume-scout/internal/secrets"
)

const (
	outputText = "text"
	outputJSON = "json"
)

var parseCmd = &cobra.Command{
	Use:   "parse <resume>",
	Short: "Parse a resume (pdf, docx or txt) and print the structured profile",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parse(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringP("output", "o", outputText, "output format: text or json")
}

func parse(cmd *cobra.Command, path string) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger, config := setup()

	profile, err := parseResume(ctx, path, config, logger)
	if err != nil {
		logger.Fatal("parsing the resume", zap.String("path", path), zap.Error(err))
	}

	switch output, _ := cmd.Flags().GetString("output"); output {
	case outputJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(profile); err != nil {
			logger.Fatal("encoding the profile", zap.Error(err))
		}
	case outputText:
		fmt.Print(report.ProfileText(profile))
	default:
		logger.Fatal("unknown output format", zap.String("output", output))
	}
}

// setup builds the logger and reads the config. Failures are fatal.
func setup() (*zap.Logger, *Config) {
	logger, err := logger.New(logger.Options{
		JSON:  viper.GetBool("json"),
		Debug: viper.GetBool("debug"),
		File:  viper.GetString("log-file"),
	})
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	return logger, config
}

func parseResume(ctx context.Context, path string, config *Config, log *zap.Logger) (*resume.Profile, error) {
	text, err := document.Decode(path)
	if err != nil {
		return nil, err
	}

	opts := []resume.Option{
		resume.WithCatalog(config.Parser.catalog()),
		resume.WithLogger(log),
	}

	recognizer, err := newRecognizer(ctx, config.AI, log)
	if err != nil {
		log.Warn("location extraction disabled", zap.Error(err))
	}
	if recognizer != nil {
		opts = append(opts, resume.WithRecognizer(recognizer))
	}

	profile := resume.NewParser(opts...).ParseContext(ctx, text)

	log.Info("resume parsed", append(logger.ProfileFields(profile), zap.String("path", path))...)

	return profile, nil
}

// newRecognizer returns nil without error when AI is disabled.
func newRecognizer(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (*gemini.Recognizer, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, logger)
	if err != nil {
		return nil, err
	}

	return gemini.NewRecognizer(generator, logger.With(zap.String("model", generator.Model())), cfg.Gemini.MaxLogLength), nil
}
