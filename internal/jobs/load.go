package jobs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileSource is the Source assigned to postings loaded from a file without one.
const FileSource = "file"

var ErrUnsupportedFile = errors.New("unsupported postings file")

type postingsFile struct {
	Items []*Posting `json:"items" yaml:"items"`
}

// LoadFile reads postings from a JSON or YAML file. Both a bare list and an object
// with an items key are accepted.
func LoadFile(path string) (*Postings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading postings file %q: %w", path, err)
	}

	var items []*Posting
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		items, err = decodeJSON(data)
	case ".yaml", ".yml":
		items, err = decodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding postings file %q: %w", path, err)
	}

	postings := &Postings{}
	for _, item := range items {
		if item == nil || strings.TrimSpace(item.Title) == "" {
			continue
		}
		if item.Source == "" {
			item.Source = FileSource
		}
		postings.Items = append(postings.Items, item)
	}
	return postings, nil
}

func decodeJSON(data []byte) ([]*Posting, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}
	if data[0] == '[' {
		var items []*Posting
		err := json.Unmarshal(data, &items)
		return items, err
	}
	var file postingsFile
	err := json.Unmarshal(data, &file)
	return file.Items, err
}

func decodeYAML(data []byte) ([]*Posting, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}
	if node.Content[0].Kind == yaml.SequenceNode {
		var items []*Posting
		err := node.Decode(&items)
		return items, err
	}
	var file postingsFile
	err := node.Decode(&file)
	return file.Items, err
}
