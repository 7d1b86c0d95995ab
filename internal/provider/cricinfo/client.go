package cricinfo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/cricbase/cricbase-data/internal/cricclean"
	"github.com/cricbase/cricbase-data/internal/frame"
)

// DefaultBaseURL is the Statsguru query endpoint.
const DefaultBaseURL = "https://stats.espncricinfo.com/ci/engine/stats/index.html"

// Page ceilings per view. Innings views run long (one row per player
// per innings); career views rarely exceed a handful of pages.
const (
	maxPagesInnings = 3000
	maxPagesCareer  = 100
)

// Statsguru serves a bot-detection page to unknown user agents.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Client scrapes Statsguru result tables page by page. Requests are
// rate limited so a long innings crawl stays polite.
type Client struct {
	http      *resty.Client
	baseURL   string
	userAgent string
	limiter   *rate.Limiter
	logger    *slog.Logger
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the Statsguru endpoint, mainly for tests.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) { c.baseURL = url }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) { c.userAgent = ua }
}

// WithRequestsPerMinute replaces the default request rate.
func WithRequestsPerMinute(rpm int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 1)
	}
}

// NewClient creates a Statsguru scraping client.
func NewClient(logger *slog.Logger, opts ...ClientOption) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		http:      resty.New().SetTimeout(60 * time.Second),
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
		limiter:   rate.NewLimiter(rate.Every(time.Minute/30), 1),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch scrapes every result page for the given query and returns the
// combined raw table, all columns as untyped strings. Pagination stops
// at the first empty page; a query whose very first page is empty is
// an error, since it almost always means a malformed filter.
func (c *Client) Fetch(ctx context.Context, params Params) (*frame.Frame, error) {
	if err := params.normalize(); err != nil {
		return nil, err
	}
	team, err := params.teamFilter()
	if err != nil {
		return nil, err
	}

	viewFilter := ""
	maxPages := maxPagesCareer
	if params.View == cricclean.Innings {
		viewFilter = ";view=innings"
		maxPages = maxPagesInnings
	}

	c.logger.Info("fetching statsguru tables",
		"matchtype", params.MatchType,
		"sex", params.Sex,
		"activity", params.Activity,
		"view", params.View,
		"country", params.Country,
	)

	var combined *frame.Frame
	for page := 1; page <= maxPages; page++ {
		url := fmt.Sprintf("%s?class=%d%s;page=%d;template=results;type=%s%s;wrappertype=print",
			c.baseURL, params.matchClass(), team, page, params.Activity, viewFilter)

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		resp, err := c.http.R().
			SetContext(ctx).
			SetHeader("User-Agent", c.userAgent).
			Get(url)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", page, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("fetch page %d: HTTP %d", page, resp.StatusCode())
		}

		table, err := extractTable(resp.Body())
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}
		if table == nil {
			if page == 1 {
				return nil, fmt.Errorf("no data for query: %w", cricclean.ErrInvalidArgument)
			}
			break
		}

		if combined == nil {
			combined = table
		} else if err := combined.AppendRows(table); err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}

		if page%50 == 0 {
			c.logger.Info("pagination progress", "page", page, "rows", combined.Len())
		}
	}

	c.logger.Info("fetch complete", "rows", combined.Len())
	return combined, nil
}
