package headhunter

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/resume-scout/internal/utils"
)

const (
	contentType     = "application/json"
	contentEncoding = "gzip"

	retryBase  = time.Second
	retryLimit = 30 * time.Second
)

var wait = utils.WaitFor

type ItemResponse struct {
	Items   []Item `json:"items"`
	Found   int    `json:"found"`
	Pages   int    `json:"pages"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
}

// Item is a raw search result, decoded later with mapstructure.
type Item any

// GetItems makes GET request to HeadHunter API and return items from all pages.
func (c *Client) GetItems(ctx context.Context, url string, q url.Values) ([]Item, error) {
	var items []Item

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req = c.setHeaders(req)
	// Additional headers. For GET requests only
	req.Header.Set("Content-Type", contentType)
	req.URL.RawQuery = q.Encode()

	response, err := c.fetchPage(ctx, req)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("got response from HH.ru",
		zap.Int("found", response.Found),
		zap.Int("pages", response.Pages),
		zap.Int("max items per page", response.PerPage),
	)

	items = append(items, response.Items...)

	for response.Page < (response.Pages - 1) {
		if c.MaxPages > 0 && response.Page+1 >= c.MaxPages {
			c.logger.Debug("page limit reached", zap.Int("max pages", c.MaxPages))
			break
		}

		c.logger.Debug("additional request needed", zap.String("reason", fmt.Sprintf(
			"current page (%d) < all page count (%d)", response.Page+1, response.Pages),
		))

		response, err = c.fetchPage(ctx, addPage(req, response.Page+1))
		if err != nil {
			return nil, err
		}

		items = append(items, response.Items...)
	}

	return items, nil
}

func (c *Client) fetchPage(ctx context.Context, req *http.Request) (*ItemResponse, error) {
	resp, err := c.request(ctx, req)
	if err != nil {
		return nil, err
	}

	return c.parseItemResponse(resp)
}

func (c *Client) parseItemResponse(resp *http.Response) (*ItemResponse, error) {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	var body io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		body = gz
	}

	var response *ItemResponse
	if err := json.NewDecoder(body).Decode(&response); err != nil {
		return nil, err
	}
	if response == nil {
		return &ItemResponse{}, nil
	}

	return response, nil
}

// request sends req through the limiter. Throttled and server error responses are retried
// until MaxRetries attempts are spent; the last response is returned as is.
func (c *Client) request(ctx context.Context, req *http.Request) (*http.Response, error) {
	for attempt := 1; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		c.logger.Debug("make request", zap.String("url", req.URL.String()), zap.Int("attempt", attempt))
		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			return nil, err
		}

		if !retryable(resp.StatusCode) || attempt >= c.MaxRetries {
			return resp, nil
		}
		resp.Body.Close()

		delay := retryAfter(resp.Header.Get("Retry-After"), utils.Backoff(retryBase, retryLimit, attempt))
		c.logger.Warn("retrying request to HH.ru",
			zap.Int("status", resp.StatusCode),
			zap.Duration("delay", delay),
			zap.Int("attempt", attempt),
		)
		if err := wait(ctx, delay); err != nil {
			return nil, err
		}
	}
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// retryAfter reads a Retry-After value in seconds, capped at retryLimit.
func retryAfter(header string, fallback time.Duration) time.Duration {
	seconds, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || seconds <= 0 {
		return fallback
	}
	if d := time.Duration(seconds) * time.Second; d < retryLimit {
		return d
	}
	return retryLimit
}

func (c *Client) setHeaders(req *http.Request) *http.Request {
	if c.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept-Encoding", contentEncoding)

	return req
}

// addPage adds page parameter to request URL.
func addPage(req *http.Request, page int) *http.Request {
	q := req.URL.Query()
	q.Set("page", strconv.Itoa(page))
	req.URL.RawQuery = q.Encode()

	return req
}
