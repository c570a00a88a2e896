package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/spigell/resume-scout/internal/ai"
	"github.com/spigell/resume-scout/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
}

//go:embed prompt.md
var systemPrompt string

const (
	defaultMaxLogLength = 200
	// maxInputRunes bounds the resume text sent to the model.
	maxInputRunes = 20000
)

// Recognizer extracts named entities from resume text with a Gemini model.
type Recognizer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewRecognizer(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Recognizer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Recognizer{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (r *Recognizer) Recognize(ctx context.Context, text string) ([]ai.Entity, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(text) > maxInputRunes {
		text = string([]rune(text)[:maxInputRunes])
	}

	r.logger.Debug("gemini generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(text)),
		zap.String("prompt_preview", utils.TruncateForLog(text, r.maxLogLen)),
	)

	raw, err := r.generator.GenerateContent(ctx, systemPrompt, text)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, r.maxLogLen)),
	)

	return parseEntities(raw)
}

// parseEntities accepts {"entities": [...]} or a bare list. Items without label or text are skipped.
func parseEntities(raw string) ([]ai.Entity, error) {
	cleaned := extractJSON(raw)

	var items []any
	if strings.HasPrefix(cleaned, "[") {
		if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
			return nil, fmt.Errorf("parse gemini response: %w", err)
		}
	} else {
		var data map[string]any
		if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
			return nil, fmt.Errorf("parse gemini response: %w", err)
		}
		items, _ = data["entities"].([]any)
	}

	entities := make([]ai.Entity, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		label := strings.ToUpper(coerceString(obj["label"]))
		text := coerceString(obj["text"])
		if label == "" || text == "" {
			continue
		}
		entities = append(entities, ai.Entity{Label: label, Text: text})
	}

	return entities, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		if v == nil {
			return ""
		}
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}
