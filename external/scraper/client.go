package scraper

import (
	"context"
	"strings"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"

	"github.com/riskibarqy/football-data-api/internal/platform/logging"
	"github.com/riskibarqy/football-data-api/internal/platform/resilience"
	"github.com/riskibarqy/football-data-api/internal/usecase"
)

const (
	defaultBaseURL   = "https://www.flashscore.com"
	defaultUserAgent = "football-data-populator/1.0"
	maxBodySize      = 8 << 20
)

var (
	errTransient = crerr.New("results site transient failure")
	// ErrPageNotFound is returned when the site has no page for a league
	// season. It does not count against the circuit breaker.
	ErrPageNotFound = crerr.New("results page not found")
)

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	UserAgent      string
	Timeout        time.Duration
	MaxRetries     int
	MinInterval    time.Duration
	CircuitEnabled bool
	CircuitBreaker resilience.BreakerConfig
	Logger         *logging.Logger
}

// Client scrapes fixtures, match details and tables from the results site.
// It is safe for concurrent use but spaces requests by MinInterval.
type Client struct {
	http        *fasthttp.Client
	baseURL     string
	userAgent   string
	timeout     time.Duration
	maxRetries  int
	minInterval time.Duration
	breaker     *resilience.Breaker
	logger      *logging.Logger

	mu          sync.Mutex
	lastRequest time.Time
	sleep       func(ctx context.Context, d time.Duration) error
}

var _ usecase.MatchSource = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("scraper")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                     defaultUserAgent,
			ReadTimeout:              timeout,
			WriteTimeout:             timeout,
			MaxResponseBodySize:      maxBodySize,
			NoDefaultUserAgentHeader: true,
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	c := &Client{
		http:        httpClient,
		baseURL:     baseURL,
		userAgent:   userAgent,
		timeout:     timeout,
		maxRetries:  max(cfg.MaxRetries, 0),
		minInterval: max(cfg.MinInterval, 0),
		logger:      logger,
		sleep:       sleepContext,
	}
	if cfg.CircuitEnabled {
		c.breaker = resilience.NewBreaker(cfg.CircuitBreaker)
		c.breaker.OnStateChange(func(from, to resilience.State) {
			logger.Warn("circuit breaker state changed", "from", string(from), "to", string(to))
		})
	}

	return c
}

// get fetches path and returns a copy of the decompressed body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if c.breaker == nil {
		return c.getWithRetry(ctx, path)
	}

	var body []byte
	err := c.breaker.Do(ctx, func(ctx context.Context) error {
		var err error
		body, err = c.getWithRetry(ctx, path)
		return err
	}, countsAgainstBreaker)
	if crerr.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "circuit breaker rejected request", "path", path, "state", string(c.breaker.State()))
		return nil, crerr.Wrapf(usecase.ErrDependencyUnavailable, "results site circuit open path=%s", path)
	}
	return body, err
}

func (c *Client) getWithRetry(ctx context.Context, path string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.throttle(ctx); err != nil {
			return nil, err
		}

		body, err := c.do(ctx, path)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !crerr.Is(err, errTransient) || attempt == c.maxRetries {
			break
		}

		backoff := time.Duration(attempt+1) * time.Second
		c.logger.DebugContext(ctx, "retrying results site request", "path", path, "attempt", attempt+1, "backoff", backoff, "error", err)
		if err := c.sleep(ctx, backoff); err != nil {
			return nil, err
		}
	}

	if !crerr.Is(lastErr, ErrPageNotFound) {
		c.logger.WarnContext(ctx, "results site request failed", "path", path, "error", lastErr)
	}
	return nil, lastErr
}

func (c *Client) do(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetUserAgent(c.userAgent)
	req.Header.Set(fasthttp.HeaderAccept, "text/html")
	req.Header.Set(fasthttp.HeaderAcceptEncoding, "gzip, br")

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, crerr.Mark(crerr.Wrapf(err, "get %s", path), errTransient)
	}

	status := resp.StatusCode()
	switch {
	case status == fasthttp.StatusNotFound:
		return nil, crerr.Wrapf(ErrPageNotFound, "get %s", path)
	case status == fasthttp.StatusTooManyRequests || status >= fasthttp.StatusInternalServerError:
		return nil, crerr.Mark(crerr.Newf("get %s: status=%d", path, status), errTransient)
	case status < 200 || status >= 300:
		return nil, crerr.Newf("get %s: status=%d", path, status)
	}

	body, err := resp.BodyUncompressed()
	if err != nil {
		return nil, crerr.Wrapf(err, "decode body %s", path)
	}
	return append([]byte(nil), body...), nil
}

// throttle keeps at least minInterval between request starts.
func (c *Client) throttle(ctx context.Context) error {
	if c.minInterval <= 0 {
		return nil
	}

	c.mu.Lock()
	wait := time.Until(c.lastRequest.Add(c.minInterval))
	if wait < 0 {
		wait = 0
	}
	c.lastRequest = time.Now().Add(wait)
	c.mu.Unlock()

	return c.sleep(ctx, wait)
}

func countsAgainstBreaker(err error) bool {
	return !crerr.Is(err, ErrPageNotFound) && !crerr.Is(err, context.DeadlineExceeded)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
