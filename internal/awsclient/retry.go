package awsclient

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	smithytime "github.com/aws/smithy-go/time"
)

// RetryConfig holds retry configuration
type RetryConfig struct {
	MaxRetries    int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
	JitterEnabled bool
}

// DefaultRetryConfig returns default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    3,
		InitialDelay:  100 * time.Millisecond,
		MaxDelay:      20 * time.Second,
		BackoffFactor: 2.0,
		JitterEnabled: true,
	}
}

// Retryer handles retry logic with exponential backoff
type Retryer struct {
	config RetryConfig
	jitter func() float64
}

// NewRetryer creates a new retryer
func NewRetryer(config RetryConfig) *Retryer {
	if config.BackoffFactor < 1 {
		config.BackoffFactor = 2.0
	}
	return &Retryer{
		config: config,
		jitter: rand.Float64,
	}
}

// MaxAttempts returns the total number of attempts including the first one
func (r *Retryer) MaxAttempts() int {
	return r.config.MaxRetries + 1
}

// RetryDelay calculates the delay before retrying after the given attempt number
func (r *Retryer) RetryDelay(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}

	delay := float64(r.config.InitialDelay) * math.Pow(r.config.BackoffFactor, float64(attempt-1))

	if r.config.MaxDelay > 0 && delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}

	// 0-25% jitter
	if r.config.JitterEnabled {
		delay += r.jitter() * 0.25 * delay
	}

	return time.Duration(delay)
}

// ShouldRetry determines if another attempt is allowed after attempt
func (r *Retryer) ShouldRetry(attempt int) bool {
	return attempt < r.MaxAttempts()
}

// IsRetryableError determines if a transport error is retryable
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}

// IsRetryableStatus determines if a request should be retried based on status code
func IsRetryableStatus(statusCode int) bool {
	if IsThrottleError(statusCode) {
		return true
	}
	switch statusCode {
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// IsThrottleError determines if a status code means the caller is being throttled
func IsThrottleError(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode == http.StatusServiceUnavailable
}

// Retry reasons recorded by the retries metric.
const (
	retryReasonThrottled   = "throttled"
	retryReasonServerError = "server_error"
	retryReasonTransport   = "transport"
)

func retryReason(statusCode int) string {
	if IsThrottleError(statusCode) {
		return retryReasonThrottled
	}
	return retryReasonServerError
}

// RetryAfter returns the delay requested by a Retry-After header in seconds, or 0.
func RetryAfter(resp *http.Response) time.Duration {
	if resp == nil {
		return 0
	}
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0
	}
	seconds, err := strconv.Atoi(v)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	return smithytime.SleepWithContext(ctx, d)
}
