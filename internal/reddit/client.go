// Package reddit reads posts and comment trees from reddit's public JSON
// endpoints.
package reddit

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gocolly/colly/v2"

	reddit2ebook "github.com/alnah/go-reddit2ebook"
)

// Client defaults.
const (
	DefaultBaseURL        = "https://www.reddit.com"
	DefaultUserAgent      = "go-reddit2ebook"
	DefaultRequestTimeout = 30 * time.Second
	DefaultDelay          = time.Second
	DefaultMaxBodySize    = 32 << 20 // 32 MiB, large threads exceed colly's 10 MiB default

	// maxPageSize is the largest limit the listing endpoints honor.
	maxPageSize = 100
)

type options struct {
	baseURL        string
	userAgent      string
	requestTimeout time.Duration
	delay          time.Duration
	maxBodySize    int
	parallelism    int
	logf           func(format string, args ...any)
}

// Option configures a Client.
type Option func(*options)

// WithBaseURL points the client at another host, e.g. old.reddit.com or a
// test server.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithUserAgent sets the User-Agent header. Reddit throttles generic agents.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// WithRequestTimeout bounds each HTTP request.
// Panics if d <= 0.
func WithRequestTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("reddit: WithRequestTimeout duration must be positive")
	}
	return func(o *options) { o.requestTimeout = d }
}

// WithDelay sets the minimum delay between two requests. 0 disables it.
// Panics if d < 0.
func WithDelay(d time.Duration) Option {
	if d < 0 {
		panic("reddit: WithDelay duration cannot be negative")
	}
	return func(o *options) { o.delay = d }
}

// WithMaxBodySize caps response bodies, in bytes. 0 means no limit.
func WithMaxBodySize(n int) Option {
	return func(o *options) { o.maxBodySize = n }
}

// WithParallelism sets how many requests may be in flight at once.
// Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("reddit: WithParallelism count must be positive")
	}
	return func(o *options) { o.parallelism = n }
}

// WithLogger logs every visited URL.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(o *options) { o.logf = logf }
}

// Client implements reddit2ebook.Source over reddit's JSON endpoints.
// It is safe for concurrent use: each request runs on a clone of the base
// collector, sharing its HTTP backend and rate limit.
type Client struct {
	baseURL   *url.URL
	collector *colly.Collector
	logf      func(format string, args ...any)
}

var _ reddit2ebook.Source = (*Client)(nil)

// NewClient creates a Client.
func NewClient(opts ...Option) (*Client, error) {
	o := options{
		baseURL:        DefaultBaseURL,
		userAgent:      DefaultUserAgent,
		requestTimeout: DefaultRequestTimeout,
		delay:          DefaultDelay,
		maxBodySize:    DefaultMaxBodySize,
		parallelism:    1,
	}
	for _, opt := range opts {
		opt(&o)
	}

	base, err := url.Parse(o.baseURL)
	if err != nil || base.Host == "" || (base.Scheme != "http" && base.Scheme != "https") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, o.baseURL)
	}

	c := colly.NewCollector(
		colly.AllowedDomains(base.Hostname()),
		colly.UserAgent(o.userAgent),
		colly.AllowURLRevisit(),
		colly.MaxBodySize(o.maxBodySize),
		colly.ParseHTTPErrorResponse(),
	)
	c.SetRequestTimeout(o.requestTimeout)

	if err := c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: o.parallelism,
		Delay:       o.delay,
	}); err != nil {
		return nil, fmt.Errorf("configuring rate limit: %w", err)
	}

	return &Client{baseURL: base, collector: c, logf: o.logf}, nil
}

// LatestPosts returns up to count of the newest posts of forum, following
// the listing cursor across pages.
func (c *Client) LatestPosts(ctx context.Context, forum string, count int) ([]reddit2ebook.Post, error) {
	posts := make([]reddit2ebook.Post, 0, count)
	after := ""

	for len(posts) < count {
		q := url.Values{}
		q.Set("limit", strconv.Itoa(min(count-len(posts), maxPageSize)))
		if after != "" {
			q.Set("after", after)
		}

		body, err := c.get(ctx, c.endpoint(q, "r", forum, "new.json"))
		if err != nil {
			return nil, err
		}
		page, err := decodeListing(body)
		if err != nil {
			return nil, err
		}
		batch, err := page.posts()
		if err != nil {
			return nil, err
		}
		posts = append(posts, batch...)

		if len(batch) == 0 || page.Data.After == nil || *page.Data.After == "" {
			break
		}
		after = *page.Data.After
	}

	if len(posts) > count {
		posts = posts[:count]
	}
	return posts, nil
}

// CommentTree returns the complete comment forest of a post.
func (c *Client) CommentTree(ctx context.Context, forum, postID string) ([]reddit2ebook.Comment, error) {
	body, err := c.get(ctx, c.endpoint(nil, "r", forum, "comments", postID+".json"))
	if err != nil {
		return nil, err
	}
	page, err := decodeCommentPage(body)
	if err != nil {
		return nil, err
	}
	return page.comments()
}

// endpoint joins escaped path segments to the base URL.
func (c *Client) endpoint(q url.Values, segments ...string) string {
	u := c.baseURL.JoinPath(segments...)
	u.RawQuery = q.Encode()
	return u.String()
}

// response is the part of a colly response the client needs.
type response struct {
	status     int
	body       []byte
	retryAfter string
	err        error
}

// get fetches rawURL and returns the body of a 2xx response.
//
// colly has no context support: the visit runs in its own goroutine and get
// returns as soon as ctx is done, leaving the request to finish within the
// request timeout.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", ErrRequest, rawURL, err)
	}

	col := c.collector.Clone()
	col.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil {
			r.Abort()
			return
		}
		r.Headers.Set("Accept", "application/json")
		if c.logf != nil {
			c.logf("Visiting: %s", r.URL.String())
		}
	})

	var resp response
	col.OnResponse(func(r *colly.Response) {
		resp.status = r.StatusCode
		resp.body = r.Body
		resp.retryAfter = r.Headers.Get("Retry-After")
	})

	done := make(chan response, 1)
	go func() {
		err := col.Visit(rawURL)
		resp.err = err
		done <- resp
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: GET %s: %w", ErrRequest, rawURL, ctx.Err())
	case resp := <-done:
		return checkResponse(rawURL, resp)
	}
}

// checkResponse maps transport failures and non-2xx statuses to errors.
func checkResponse(rawURL string, resp response) ([]byte, error) {
	switch {
	case resp.err != nil:
		return nil, fmt.Errorf("%w: GET %s: %w", ErrRequest, rawURL, resp.err)
	case resp.status == 0:
		return nil, fmt.Errorf("%w: GET %s: request aborted", ErrRequest, rawURL)
	case resp.status == http.StatusTooManyRequests:
		if resp.retryAfter != "" {
			return nil, fmt.Errorf("%w: GET %s: retry after %ss", ErrRateLimited, rawURL, resp.retryAfter)
		}
		return nil, fmt.Errorf("%w: GET %s", ErrRateLimited, rawURL)
	case resp.status < 200 || resp.status > 299:
		return nil, fmt.Errorf("%w: GET %s: status %d %s", ErrRequest, rawURL, resp.status, http.StatusText(resp.status))
	}
	return resp.body, nil
}
