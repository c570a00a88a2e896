package ai

import (
	"context"
)

// Entity is a labelled span returned by a named-entity recognizer.
type Entity struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Recognizer finds named entities in free text.
type Recognizer interface {
	Recognize(ctx context.Context, text string) ([]Entity, error)
}

// FirstWithLabel returns the text of the first entity carrying label.
func FirstWithLabel(entities []Entity, label string) (string, bool) {
	for _, e := range entities {
		if e.Label == label && e.Text != "" {
			return e.Text, true
		}
	}
	return "", false
}
