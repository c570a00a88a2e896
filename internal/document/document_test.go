package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDecodeText(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "resume.TXT", []byte("Jane Doe\njane@example.com\n"))

	text, err := Decode(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Jane Doe\njane@example.com\n" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		file     string
		content  []byte
		expected error
	}{
		{name: "unsupported", file: "resume.odt", content: []byte("text"), expected: ErrUnsupportedFormat},
		{name: "no extension", file: "resume", content: []byte("text"), expected: ErrUnsupportedFormat},
		{name: "blank text", file: "resume.txt", content: []byte(" \n\t\n"), expected: ErrEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode(writeFile(t, tt.file, tt.content))
			if !errors.Is(err, tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestDecodeBrokenFiles(t *testing.T) {
	t.Parallel()

	if _, err := Decode(writeFile(t, "resume.pdf", []byte("not a pdf"))); err == nil {
		t.Fatalf("expected error for broken pdf")
	}
	if _, err := Decode(writeFile(t, "resume.docx", []byte("not a zip"))); err == nil {
		t.Fatalf("expected error for broken docx")
	}
	if _, err := Decode(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
