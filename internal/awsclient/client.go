package awsclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/nandemo-ya/mskgo/internal/logging"
	"github.com/nandemo-ya/mskgo/internal/version"
)

// Config holds configuration for AWS client
type Config struct {
	// Credentials for AWS authentication. Nil sends unsigned requests.
	Credentials CredentialsProvider

	// Region is the AWS region
	Region string

	// Endpoint is the API endpoint (optional, for custom endpoints and test servers)
	Endpoint string

	// InsecureSkipVerify skips TLS certificate verification
	InsecureSkipVerify bool

	// HTTPClient is a custom HTTP client (optional)
	HTTPClient *http.Client

	// Timeout for requests
	Timeout time.Duration

	// MaxRetries is the maximum number of retries. Negative disables retries.
	MaxRetries int

	// RetryDelay is the initial retry delay
	RetryDelay time.Duration

	// MaxRetryDelay caps the backoff between attempts
	MaxRetryDelay time.Duration

	// RateLimit is the sustained requests per second; 0 disables client-side limiting
	RateLimit float64

	// RateBurst is the limiter burst size
	RateBurst int

	// UserAgent is prepended to the default user agent
	UserAgent string

	// Metrics records request metrics (optional)
	Metrics *Metrics
}

// Client is a generic AWS API client
type Client struct {
	config     Config
	httpClient *http.Client
	retryer    *Retryer
	limiter    *rate.Limiter
}

// NewClient creates a new AWS client
func NewClient(config Config) *Client {
	if config.Region == "" {
		config.Region = "us-east-1"
	}

	switch {
	case config.MaxRetries == 0:
		config.MaxRetries = 3
	case config.MaxRetries < 0:
		config.MaxRetries = 0
	}

	if config.RetryDelay == 0 {
		config.RetryDelay = 100 * time.Millisecond
	}

	if config.MaxRetryDelay == 0 {
		config.MaxRetryDelay = 20 * time.Second
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: config.InsecureSkipVerify,
		}

		timeout := config.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}

		httpClient = &http.Client{
			Transport: transport,
			Timeout:   timeout,
		}
	}

	var limiter *rate.Limiter
	if config.RateLimit > 0 {
		burst := config.RateBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(config.RateLimit), burst)
	}

	retryCfg := DefaultRetryConfig()
	retryCfg.MaxRetries = config.MaxRetries
	retryCfg.InitialDelay = config.RetryDelay
	retryCfg.MaxDelay = config.MaxRetryDelay

	return &Client{
		config:     config,
		httpClient: httpClient,
		retryer:    NewRetryer(retryCfg),
		limiter:    limiter,
	}
}

// Region returns the region requests are signed for
func (c *Client) Region() string {
	return c.config.Region
}

// DoRequest performs an AWS API request with signing and retries. Every attempt
// is rebuilt from the buffered body and signed again. The caller owns the
// returned response body.
func (c *Client) DoRequest(ctx context.Context, req *http.Request, service, operation string) (*http.Response, error) {
	var body []byte
	if req.Body != nil && req.Body != http.NoBody {
		var err error
		body, err = io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
	}

	logger := logging.FromContext(logging.WithOperation(ctx, operation)).With("service", service)
	invocationID := uuid.NewString()
	maxAttempts := c.retryer.MaxAttempts()
	start := time.Now()

	var lastErr error
	attempt := 1
	for ; attempt <= maxAttempts; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("rate limiter: %w", err)
			}
		}

		attemptReq := req.Clone(ctx)
		if len(body) > 0 {
			attemptReq.Body = io.NopCloser(bytes.NewReader(body))
			attemptReq.ContentLength = int64(len(body))
		} else {
			attemptReq.Body = http.NoBody
			attemptReq.ContentLength = 0
		}
		attemptReq.GetBody = nil
		attemptReq.Header.Set("User-Agent", c.userAgent())
		attemptReq.Header.Set("amz-sdk-invocation-id", invocationID)
		attemptReq.Header.Set("amz-sdk-request", fmt.Sprintf("attempt=%d; max=%d", attempt, maxAttempts))

		if err := c.sign(ctx, attemptReq, service); err != nil {
			return nil, err
		}

		logger.Debug("sending request", "method", attemptReq.Method, "url", attemptReq.URL.String(), "attempt", attempt)

		resp, err := c.httpClient.Do(attemptReq)
		if err != nil {
			lastErr = err
			if !IsRetryableError(err) || !c.retryer.ShouldRetry(attempt) {
				break
			}
			delay := c.retryer.RetryDelay(attempt)
			logger.Warn("request failed, retrying", "attempt", attempt, "delay", delay, "error", err)
			c.config.Metrics.observeRetry(service, operation, retryReasonTransport)
			if err := sleep(ctx, delay); err != nil {
				return nil, err
			}
			continue
		}

		if IsRetryableStatus(resp.StatusCode) && c.retryer.ShouldRetry(attempt) {
			delay := c.retryer.RetryDelay(attempt)
			if after := RetryAfter(resp); after > delay {
				delay = after
			}
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			reason := retryReason(resp.StatusCode)
			logger.Warn("retryable response, retrying", "attempt", attempt, "status", resp.StatusCode, "reason", reason, "delay", delay)
			c.config.Metrics.observeRetry(service, operation, reason)
			if err := sleep(ctx, delay); err != nil {
				return nil, err
			}
			continue
		}

		logger.Debug("received response", "status", resp.StatusCode, "request_id", RequestID(resp), "attempt", attempt)
		c.config.Metrics.observeRequest(service, operation, resp.StatusCode, time.Since(start))
		return resp, nil
	}

	if attempt > maxAttempts {
		attempt = maxAttempts
	}
	c.config.Metrics.observeRequest(service, operation, 0, time.Since(start))
	return nil, fmt.Errorf("request failed after %d attempts: %w", attempt, lastErr)
}

// sign signs req when the configured credentials carry keys
func (c *Client) sign(ctx context.Context, req *http.Request, service string) error {
	if c.config.Credentials == nil {
		return nil
	}
	creds, err := c.config.Credentials.Retrieve(ctx)
	if err != nil {
		return err
	}
	if !creds.HasKeys() {
		return nil
	}

	signer := NewSigner(creds, SignerOptions{
		Service: service,
		Region:  c.config.Region,
	})
	if err := signer.SignRequest(req); err != nil {
		return fmt.Errorf("failed to sign request: %w", err)
	}
	return nil
}

func (c *Client) userAgent() string {
	ua := "mskgo/" + version.Version
	if c.config.UserAgent != "" {
		ua = c.config.UserAgent + " " + ua
	}
	return ua
}

// BuildEndpoint builds the full endpoint URL for a service
func (c *Client) BuildEndpoint(service string) string {
	return ResolveEndpoint(service, c.config.Region, c.config.Endpoint)
}
