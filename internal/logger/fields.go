package logger

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/resume-scout/internal/jobs"
	"github.com/spigell/resume-scout/internal/resume"
)

const (
	FieldProvider = "ai_provider"
	FieldModel    = "ai_model"

	FieldPostingTitle   = "posting_title"
	FieldPostingCompany = "posting_company"
	FieldPostingURL     = "posting_url"
	FieldPostingSource  = "posting_source"

	FieldProfileName     = "profile_name"
	FieldProfileSkills   = "profile_skills"
	FieldProfileTitles   = "profile_job_titles"
	FieldProfileEntries  = "profile_experience_entries"
	FieldProfileYears    = "profile_years_experience"
	FieldProfileLocation = "profile_location"
)

// StringField is a key/value pair that is dropped when either side is blank.
type StringField struct {
	Key   string
	Value string
}

// StringFields trims the pairs and turns the non-blank ones into zap fields.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		value := strings.TrimSpace(field.Value)
		if key == "" || value == "" {
			continue
		}
		result = append(result, zap.String(key, value))
	}
	return result
}

// WithFields attaches fields to logger. A nil logger becomes a no-op one.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(fields) == 0 {
		return logger
	}
	return logger.With(fields...)
}

func ModelFields(provider, model string) []zap.Field {
	return StringFields(
		StringField{Key: FieldProvider, Value: provider},
		StringField{Key: FieldModel, Value: model},
	)
}

// WithModel tags every entry of logger with the AI provider and model.
func WithModel(logger *zap.Logger, provider, model string) *zap.Logger {
	return WithFields(logger, ModelFields(provider, model)...)
}

// PostingFields describes a posting in log entries. Empty attributes are left out.
func PostingFields(p *jobs.Posting) []zap.Field {
	if p == nil {
		return nil
	}
	return StringFields(
		StringField{Key: FieldPostingTitle, Value: p.Title},
		StringField{Key: FieldPostingCompany, Value: p.Company},
		StringField{Key: FieldPostingURL, Value: p.URL},
		StringField{Key: FieldPostingSource, Value: p.Source},
	)
}

// ProfileFields summarizes a parsed profile. Contact details other than the name are never logged.
func ProfileFields(p *resume.Profile) []zap.Field {
	if p == nil {
		return nil
	}
	fields := StringFields(
		StringField{Key: FieldProfileName, Value: p.Name},
		StringField{Key: FieldProfileLocation, Value: p.Location},
	)
	return append(fields,
		zap.Int(FieldProfileSkills, p.Skills.Len()),
		zap.Int(FieldProfileTitles, len(p.JobTitles)),
		zap.Int(FieldProfileEntries, len(p.Experience)),
		zap.Float64(FieldProfileYears, p.YearsExperience),
	)
}
