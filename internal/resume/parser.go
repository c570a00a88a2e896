package resume

import (
	"context"
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/resume-scout/internal/ai"
)

// Parser turns resume text into a Profile. A Parser is safe for concurrent use:
// its catalog and compiled patterns are never modified after NewParser returns.
type Parser struct {
	catalog    Catalog
	classifier classifier
	skills     []skillMatcher
	exclusions *regexp.Regexp

	recognizer ai.Recognizer
	logger     *zap.Logger
	now        func() time.Time
}

// Option configures a Parser.
type Option func(*Parser)

// WithCatalog replaces the default keyword catalog.
func WithCatalog(c Catalog) Option {
	return func(p *Parser) { p.catalog = c.clone() }
}

// WithRecognizer enables location extraction through a named-entity recognizer.
func WithRecognizer(r ai.Recognizer) Option {
	return func(p *Parser) { p.recognizer = r }
}

func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithClock sets the source of today's date used for open-ended ranges.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{
		catalog: DefaultCatalog(),
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.classifier = newClassifier(p.catalog)
	p.skills = newSkillMatchers(p.catalog.Skills)
	p.exclusions = keywordPattern(p.catalog.ExclusionKeywords)

	return p
}

// Parse extracts a Profile from resume text.
func (p *Parser) Parse(text string) *Profile {
	return p.ParseContext(context.Background(), text)
}

// ParseContext is Parse with a context for the optional recognizer call.
func (p *Parser) ParseContext(ctx context.Context, text string) *Profile {
	lines := Lines(text)
	tags := p.classifier.classify(lines)

	experience := p.extractExperience(lines, tags)

	profile := &Profile{
		Name:            extractName(lines),
		Email:           extractEmail(text),
		Phone:           extractPhone(text),
		Location:        p.extractLocation(ctx, text),
		Summary:         p.extractSummary(lines),
		Skills:          p.extractSkills(text),
		JobTitles:       p.extractJobTitles(text, experience),
		Experience:      experience,
		Education:       extractEducation(lines, tags),
		YearsExperience: Years(p.dateRanges(lines, tags)),
	}

	p.logger.Debug("resume parsed",
		zap.Int("lines", len(lines)),
		zap.Int("skills", profile.Skills.Len()),
		zap.Int("experience_entries", len(profile.Experience)),
		zap.Int("education_entries", len(profile.Education)),
		zap.Float64("years_experience", profile.YearsExperience),
	)

	return profile
}

// Classify tags every line of text with its resume section.
func (p *Parser) Classify(text string) []LineTag {
	return p.classifier.classify(Lines(text))
}

// DateRanges returns the classified employment ranges found in text.
func (p *Parser) DateRanges(text string) []DateRange {
	lines := Lines(text)
	return p.dateRanges(lines, p.classifier.classify(lines))
}

// Skills runs only the skill extractor.
func (p *Parser) Skills(text string) SkillGroups {
	return p.extractSkills(text)
}

// ValidTitle reports whether s passes the job title check.
func (p *Parser) ValidTitle(s string) bool {
	return p.validTitle(s)
}
