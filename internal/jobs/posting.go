package jobs

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	PostingKeyField     = "Key"
	PostingURLField     = "URL"
	PostingCompanyField = "Company"
)

type Postings struct {
	Items []*Posting `json:"items"`
}

// Posting is a job candidate as delivered by any source.
type Posting struct {
	Title       string `json:"title" yaml:"title" mapstructure:"title"`
	Company     string `json:"company" yaml:"company" mapstructure:"company"`
	Location    string `json:"location,omitempty" yaml:"location" mapstructure:"location"`
	URL         string `json:"url,omitempty" yaml:"url" mapstructure:"url"`
	Source      string `json:"source,omitempty" yaml:"source" mapstructure:"source"`
	Description string `json:"description,omitempty" yaml:"description" mapstructure:"description"`
}

// Key identifies a posting by title and company.
func (p *Posting) Key() string {
	return fmt.Sprintf("%s_%s", strings.TrimSpace(p.Title), strings.TrimSpace(p.Company))
}

func (p *Posting) GetStringField(name string) string {
	switch name {
	case PostingKeyField:
		return p.Key()
	case PostingURLField:
		return p.URL
	case PostingCompanyField:
		return strings.ToLower(strings.TrimSpace(p.Company))

	default:
		return ""
	}
}

func (p *Postings) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Items)
}

func (p *Postings) Append(other *Postings) {
	if other == nil {
		return
	}
	p.Items = append(p.Items, other.Items...)
}

// Dedupe keeps the first posting of every key and returns the keys of dropped ones.
func (p *Postings) Dedupe() []string {
	seen := make(map[string]struct{}, len(p.Items))
	kept := p.Items[:0]
	var dropped []string
	for _, posting := range p.Items {
		key := posting.Key()
		if _, ok := seen[key]; ok {
			dropped = append(dropped, key)
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, posting)
	}
	p.Items = kept
	return dropped
}

// Exclude removes every posting whose field equals one of targets. Order is preserved.
// It returns the keys of removed postings.
func (p *Postings) Exclude(field string, targets []string) []string {
	if len(targets) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		set[t] = struct{}{}
	}

	kept := p.Items[:0]
	var excluded []string
	for _, posting := range p.Items {
		if _, ok := set[posting.GetStringField(field)]; ok {
			excluded = append(excluded, posting.Key())
			continue
		}
		kept = append(kept, posting)
	}
	p.Items = kept
	return excluded
}

func (p *Postings) FindByURL(url string) *Posting {
	for _, posting := range p.Items {
		if posting.URL == url {
			return posting
		}
	}
	return nil
}

// Truncate keeps at most n postings. Non-positive n keeps everything.
func (p *Postings) Truncate(n int) {
	if n > 0 && len(p.Items) > n {
		p.Items = p.Items[:n]
	}
}

// ReportByCompany groups postings by company.
func (p *Postings) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, posting := range p.Items {
		key := posting.Company
		if key == "" {
			key = "unknown"
		}
		report[key] = append(report[key], map[string]string{
			"title":    posting.Title,
			"url":      posting.URL,
			"location": posting.Location,
			"source":   posting.Source,
		})
	}
	return report
}

func (p *Postings) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "postings_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func (p *Postings) ToExcluded() *ExcludedPostings {
	excluded := &ExcludedPostings{}
	for _, posting := range p.Items {
		excluded.Items = append(excluded.Items, &ExcludedPosting{
			Key:        posting.Key(),
			URL:        posting.URL,
			Company:    posting.Company,
			ExcludedAt: time.Now().UTC(),
		})
	}
	return excluded
}
