package careers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/spigell/resume-scout/internal/jobs"
)

const (
	userAgent = "Mozilla/5.0 (compatible; resume-scout)"
	// perSelector caps how many elements are taken from each selector.
	perSelector = 5
	minTitleLen = 10
	maxBodySize = 5 << 20
)

var ErrNoPage = errors.New("no career page found")

// selectors are tried in order. An element may be picked by several of them.
var selectors = []string{
	`a[href*="job"]`,
	`a[href*="career"]`,
	`.job-listing`,
	`.career-item`,
	`[class*="job"]`,
	`[class*="position"]`,
}

// Page is a company career page. An empty URL means the usual career page locations are probed.
type Page struct {
	Company string `mapstructure:"company"`
	URL     string `mapstructure:"url"`
}

type Client struct {
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
}

func New(logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		logger:     logger,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		UserAgent:  userAgent,
	}
}

// CandidateURLs lists the locations a company career page usually lives at.
func CandidateURLs(company string) []string {
	name := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(company), " ", ""))
	return []string{
		fmt.Sprintf("https://careers.%s.com", name),
		fmt.Sprintf("https://jobs.%s.com", name),
		fmt.Sprintf("https://%s.com/careers", name),
		fmt.Sprintf("https://%s.com/jobs", name),
		fmt.Sprintf("https://%s.jobs", name),
	}
}

// Fetch loads the page and returns the job links found on it. Without a URL the first
// candidate location answering 200 is used.
func (c *Client) Fetch(ctx context.Context, page Page) (*jobs.Postings, error) {
	urls := []string{page.URL}
	if page.URL == "" {
		urls = CandidateURLs(page.Company)
	}

	for _, u := range urls {
		html, err := c.get(ctx, u)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Debug("career page unavailable", zap.String("url", u), zap.Error(err))
			continue
		}

		postings, err := Parse(html, page.Company, u)
		if err != nil {
			return nil, err
		}
		c.logger.Debug("career page parsed",
			zap.String("company", page.Company),
			zap.String("url", u),
			zap.Int("postings", postings.Len()),
		)
		return postings, nil
	}

	return nil, fmt.Errorf("%s: %w", page.Company, ErrNoPage)
}

func (c *Client) get(ctx context.Context, u string) (io.Reader, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// Parse extracts postings from career page HTML. Element text longer than ten characters
// becomes the title. Links are resolved against baseURL, other elements point at the page itself.
func Parse(html io.Reader, company, baseURL string) (*jobs.Postings, error) {
	doc, err := goquery.NewDocumentFromReader(html)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	name := cases.Title(language.English).String(strings.ToLower(strings.TrimSpace(company)))
	postings := &jobs.Postings{}

	for _, selector := range selectors {
		found := doc.Find(selector)
		found.Slice(0, min(perSelector, found.Length())).Each(func(_ int, s *goquery.Selection) {
			title := strings.Join(strings.Fields(s.Text()), " ")
			if len(title) <= minTitleLen {
				return
			}

			link := baseURL
			if goquery.NodeName(s) == "a" {
				if href, ok := s.Attr("href"); ok && href != "" {
					if ref, err := url.Parse(href); err == nil {
						link = base.ResolveReference(ref).String()
					}
				}
			}

			postings.Items = append(postings.Items, &jobs.Posting{
				Title:   title,
				Company: name,
				URL:     link,
				Source:  name + " Careers",
			})
		})
	}

	return postings, nil
}
