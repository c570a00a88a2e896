package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrEmpty             = errors.New("document has no text")
)

// Decode reads a resume file and returns its plain text. The format is chosen by extension.
func Decode(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var (
		text string
		err  error
	)
	switch ext {
	case ".pdf":
		text, err = decodePDF(path)
	case ".docx":
		text, err = decodeDOCX(path)
	case ".txt":
		var data []byte
		data, err = os.ReadFile(path)
		text = string(data)
	default:
		return "", fmt.Errorf("%s: %w", ext, ErrUnsupportedFormat)
	}
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", path, err)
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("decode %s: %w", path, ErrEmpty)
	}

	return text, nil
}

func decodePDF(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

func decodeDOCX(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	text, _, err := docconv.ConvertDocx(f)
	if err != nil {
		return "", fmt.Errorf("convert docx: %w", err)
	}
	return text, nil
}
