// Package httpclient provides the shared HTTP transport used by every source:
// one fixed timeout, one identifying User-Agent, optional retries, and a
// disposal protocol that lets in-flight requests drain for a bounded grace period.
package httpclient

import (
	"context"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"sync"
	"time"

	"subscanner/internal/platform/errors"
	"subscanner/internal/platform/logx"
)

// DefaultUserAgent identifies subscanner to upstream providers.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) subscanner/1.0"

// Client is a read-only shared HTTP client. Its configuration is fixed at
// construction; sources never mutate it mid-scan.
type Client struct {
	httpClient *http.Client
	logger     logx.Logger
	config     Config

	mu       sync.Mutex
	closed   bool
	inflight sync.WaitGroup
	base     context.Context
	abort    context.CancelFunc
	done     chan struct{}
}

// Config holds the configuration for the HTTP client.
type Config struct {
	// Timeout is the per-request timeout duration.
	// Default: 30 seconds
	Timeout time.Duration

	// MaxRetries is the maximum number of retry attempts.
	// Default: 0
	MaxRetries int

	// RetryBackoff is the initial backoff duration for retries.
	// Backoff increases exponentially with each retry.
	// Default: 1 second
	RetryBackoff time.Duration

	// MaxRetryBackoff is the maximum backoff duration between retries.
	// Default: 30 seconds
	MaxRetryBackoff time.Duration

	// UserAgent is the User-Agent header value.
	UserAgent string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         30 * time.Second,
		MaxRetries:      0,
		RetryBackoff:    1 * time.Second,
		MaxRetryBackoff: 30 * time.Second,
		UserAgent:       DefaultUserAgent,
	}
}

// New creates a new HTTP client with the given configuration.
func New(config Config, logger logx.Logger) *Client {
	// Apply defaults for zero values
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}
	if config.RetryBackoff <= 0 {
		config.RetryBackoff = 1 * time.Second
	}
	if config.MaxRetryBackoff <= 0 {
		config.MaxRetryBackoff = 30 * time.Second
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	if logger == nil {
		logger = logx.Discard()
	}

	base, abort := context.WithCancel(context.Background())

	return &Client{
		httpClient: &http.Client{Timeout: config.Timeout},
		logger:     logger.With("component", "httpclient"),
		config:     config,
		base:       base,
		abort:      abort,
		done:       make(chan struct{}),
	}
}

// Fetch performs a GET request and returns the body of a 2xx response.
// After Close it fails with errors.ErrTransportClosed; requests still running
// when the grace period expires are aborted with the same error.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := c.acquire(); err != nil {
		return nil, err
	}
	defer c.inflight.Done()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)
	stop := context.AfterFunc(c.base, func() { cancel(errors.ErrTransportClosed) })
	defer stop()

	resp, err := c.Get(ctx, url, nil)
	if err != nil {
		return nil, c.classify(ctx, err)
	}

	if err := CheckStatus(resp); err != nil {
		resp.Body.Close()
		return nil, errors.Wrapf(err, "request to %s failed", url)
	}

	body, err := ReadBody(resp)
	if err != nil {
		return nil, c.classify(ctx, err)
	}
	return body, nil
}

// acquire registers an in-flight request unless the client is closed.
func (c *Client) acquire() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.ErrTransportClosed
	}
	c.inflight.Add(1)
	return nil
}

// classify maps transport failures onto the sentinel errors.
func (c *Client) classify(ctx context.Context, err error) error {
	if cause := context.Cause(ctx); errors.Is(cause, errors.ErrTransportClosed) {
		return errors.Wrap(errors.ErrTransportClosed, err.Error())
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() && ctx.Err() == nil {
		return errors.Wrap(errors.ErrTimeout, err.Error())
	}
	return err
}

// Request performs an HTTP request with retry logic.
func (c *Client) Request(ctx context.Context, method, url string, body io.Reader, headers map[string]string) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		// Create request
		req, err := http.NewRequestWithContext(ctx, method, url, body)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create request for %s %s", method, url)
		}

		// Set headers
		req.Header.Set("User-Agent", c.config.UserAgent)
		for key, value := range headers {
			req.Header.Set(key, value)
		}

		c.logger.Debug("HTTP request",
			"method", method,
			"url", url,
			"attempt", attempt+1,
			"max_retries", c.config.MaxRetries+1,
		)

		start := time.Now()
		resp, err := c.httpClient.Do(req)
		duration := time.Since(start)

		if err != nil {
			c.logger.Debug("HTTP request failed",
				"method", method,
				"url", url,
				"attempt", attempt+1,
				"error", err.Error(),
				"duration_ms", duration.Milliseconds(),
			)
			lastErr = err

			if !c.shouldRetry(ctx, attempt, err, nil) {
				return nil, errors.Wrapf(err, "request failed after %d attempts", attempt+1)
			}

			if err := c.backoff(ctx, attempt); err != nil {
				return nil, errors.Wrap(err, "backoff interrupted")
			}
			continue
		}

		c.logger.Debug("HTTP response received",
			"method", method,
			"url", url,
			"status", resp.StatusCode,
			"duration_ms", duration.Milliseconds(),
		)

		if !isRetryableStatus(resp) {
			return resp, nil
		}

		if !c.shouldRetry(ctx, attempt, nil, resp) {
			// Retries exhausted: hand the response back so CheckStatus maps it
			return resp, nil
		}

		// Close response body before retry
		resp.Body.Close()

		lastErr = errors.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
		c.logger.Debug("HTTP request returned retryable status",
			"method", method,
			"url", url,
			"status", resp.StatusCode,
			"attempt", attempt+1,
		)

		if err := c.backoff(ctx, attempt); err != nil {
			return nil, errors.Wrap(err, "backoff interrupted")
		}
	}

	return nil, errors.Wrapf(lastErr, "request failed after %d attempts", c.config.MaxRetries+1)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, url string, headers map[string]string) (*http.Response, error) {
	return c.Request(ctx, http.MethodGet, url, nil, headers)
}

// isRetryableStatus checks if an HTTP status code should trigger a retry.
func isRetryableStatus(resp *http.Response) bool {
	if resp == nil {
		return false
	}

	switch resp.StatusCode {
	case http.StatusTooManyRequests, // 429
		http.StatusServiceUnavailable, // 503
		http.StatusGatewayTimeout,     // 504
		http.StatusBadGateway:         // 502
		return true
	default:
		return false
	}
}

// shouldRetry determines if a request should be retried based on the attempt number,
// error, and response status code.
func (c *Client) shouldRetry(ctx context.Context, attempt int, err error, resp *http.Response) bool {
	if attempt >= c.config.MaxRetries || ctx.Err() != nil {
		return false
	}

	// Retry on network errors
	if err != nil {
		return true
	}

	return isRetryableStatus(resp)
}

// backoff implements exponential backoff.
func (c *Client) backoff(ctx context.Context, attempt int) error {
	backoff := c.config.RetryBackoff * time.Duration(math.Pow(2, float64(attempt)))
	if backoff > c.config.MaxRetryBackoff {
		backoff = c.config.MaxRetryBackoff
	}

	c.logger.Debug("backing off before retry",
		"attempt", attempt+1,
		"backoff_ms", backoff.Milliseconds(),
	)

	timer := time.NewTimer(backoff)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Close stops accepting new requests and starts a detached cleanup task.
// The task waits for in-flight requests for up to grace, then aborts the
// stragglers and releases idle connections. The returned channel is closed
// once cleanup has finished. Close is idempotent.
func (c *Client) Close(grace time.Duration) <-chan struct{} {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return c.done
	}
	c.closed = true
	c.mu.Unlock()

	go func() {
		defer close(c.done)

		drained := make(chan struct{})
		go func() {
			c.inflight.Wait()
			close(drained)
		}()

		timer := time.NewTimer(grace)
		defer timer.Stop()

		select {
		case <-drained:
			c.logger.Debug("transport drained")
		case <-timer.C:
			c.logger.Debug("grace period expired, aborting in-flight requests", "grace", grace)
		}

		c.abort()
		c.httpClient.CloseIdleConnections()
	}()

	return c.done
}

// Closed reports whether Close has been called.
func (c *Client) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// ReadBody reads the response body and closes it.
func ReadBody(resp *http.Response) ([]byte, error) {
	if resp == nil {
		return nil, errors.New("response is nil")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	return body, nil
}

// CheckStatus validates the HTTP status code and returns an error if it's not successful.
func CheckStatus(resp *http.Response) error {
	if resp == nil {
		return errors.New("response is nil")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return errors.ErrRateLimit
	case http.StatusNotFound:
		return errors.ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.ErrUnauthorized
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout, http.StatusBadGateway:
		return errors.ErrServiceUnavailable
	default:
		return errors.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}
}

// String returns a human-readable representation of the client configuration.
func (c *Client) String() string {
	return fmt.Sprintf("HTTPClient{timeout=%s, max_retries=%d, user_agent=%q}",
		c.config.Timeout,
		c.config.MaxRetries,
		c.config.UserAgent,
	)
}
