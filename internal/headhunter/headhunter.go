package headhunter

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/spigell/resume-scout/internal/jobs"
)

const (
	apiURL    = "https://api.hh.ru"
	userAgent = "spigell/resume-scout (spigelly@gmail.com)"
	// Max value for search per page.
	perPage = "100"
	// Pause between requests to HH.ru API.
	defaultInterval   = 250 * time.Millisecond
	defaultMaxRetries = 3
)

type Client struct {
	// token is optional, vacancy search works anonymously.
	token      string
	logger     *zap.Logger
	limiter    *rate.Limiter
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
	// MaxPages limits pagination per search. Zero means all pages.
	MaxPages int
	// MaxRetries counts all attempts of a throttled request.
	MaxRetries int
}

func New(logger *zap.Logger, token string) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		token:  token,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger:     logger,
		limiter:    rate.NewLimiter(rate.Every(defaultInterval), 1),
		UserAgent:  userAgent,
		MaxRetries: defaultMaxRetries,
	}
}

// SetRate replaces the request limiter. A non-positive interval disables limiting.
func (c *Client) SetRate(interval time.Duration, burst int) {
	if interval <= 0 {
		c.limiter = rate.NewLimiter(rate.Inf, 0)
		return
	}
	if burst < 1 {
		burst = 1
	}
	c.limiter = rate.NewLimiter(rate.Every(interval), burst)
}

// Search queries the vacancy search and returns every result as a posting.
func (c *Client) Search(ctx context.Context, params SearchParams) (*jobs.Postings, error) {
	vacancies, err := c.search(ctx, params)
	if err != nil {
		return nil, err
	}

	return vacancies.ToPostings(), nil
}
