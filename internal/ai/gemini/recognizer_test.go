package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/spigell/resume-scout/internal/ai"
)

type stubGenerator struct {
	response    string
	err         error
	lastSystem  string
	lastMessage string
}

func (s *stubGenerator) GenerateContent(_ context.Context, system, message string) (string, error) {
	s.lastSystem = system
	s.lastMessage = message
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestRecognize(t *testing.T) {
	stub := &stubGenerator{response: "```json\n{\"entities\": [{\"label\": \"person\", \"text\": \" Jane Doe \"}, {\"label\": \"GPE\", \"text\": \"Berlin\"}, {\"label\": \"ORG\"}]}\n```"}
	recognizer := NewRecognizer(stub, zap.NewNop(), 0)

	entities, err := recognizer.Recognize(context.Background(), "  Jane Doe\nBerlin  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entities) != 2 {
		t.Fatalf("expected 2 entities, got %d: %+v", len(entities), entities)
	}
	if entities[0] != (ai.Entity{Label: "PERSON", Text: "Jane Doe"}) {
		t.Fatalf("unexpected first entity: %+v", entities[0])
	}
	if location, ok := ai.FirstWithLabel(entities, "GPE"); !ok || location != "Berlin" {
		t.Fatalf("expected Berlin location, got %q", location)
	}

	if stub.lastMessage != "Jane Doe\nBerlin" {
		t.Fatalf("unexpected message: %q", stub.lastMessage)
	}
	if !strings.Contains(stub.lastSystem, "GPE") {
		t.Fatalf("expected embedded system prompt to list labels")
	}
}

func TestRecognizeBareList(t *testing.T) {
	stub := &stubGenerator{response: `[{"label": "ORG", "text": "Acme"}, "noise"]`}

	entities, err := NewRecognizer(stub, nil, 10).Recognize(context.Background(), "Acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entities) != 1 || entities[0].Text != "Acme" {
		t.Fatalf("unexpected entities: %+v", entities)
	}
}

func TestRecognizeErrors(t *testing.T) {
	failing := &stubGenerator{err: errors.New("quota exceeded")}
	if _, err := NewRecognizer(failing, nil, 0).Recognize(context.Background(), "text"); err == nil {
		t.Fatal("expected generator error")
	}

	broken := &stubGenerator{response: "not json"}
	if _, err := NewRecognizer(broken, nil, 0).Recognize(context.Background(), "text"); err == nil {
		t.Fatal("expected parse error")
	}

	empty := &stubGenerator{}
	entities, err := NewRecognizer(empty, nil, 0).Recognize(context.Background(), "   ")
	if err != nil || entities != nil {
		t.Fatalf("expected no call for blank text, got %v %v", entities, err)
	}
	if empty.lastMessage != "" {
		t.Fatalf("generator must not be called for blank text")
	}
}

func TestRecognizeTruncatesLongInput(t *testing.T) {
	stub := &stubGenerator{response: `{"entities": []}`}
	long := strings.Repeat("я", maxInputRunes+10)

	if _, err := NewRecognizer(stub, nil, 0).Recognize(context.Background(), long); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len([]rune(stub.lastMessage)); got != maxInputRunes {
		t.Fatalf("expected %d runes, got %d", maxInputRunes, got)
	}
}
