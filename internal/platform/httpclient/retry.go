package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/jsamuelsen11/semester-progress/internal/platform/logging"
)

// jitterFraction bounds the random spread applied to each backoff delay.
const jitterFraction = 0.25

// doWithRetry retries transport errors, 429 and 5xx with exponential backoff.
// Only bodiless requests are sent through this client, so requests are
// replayed as-is.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	var lastErr error

	for attempt := range c.retry.maxAttempts {
		if attempt > 0 {
			if err := c.sleep(ctx, req, attempt, lastErr); err != nil {
				return nil, err
			}
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return nil, err
			}
			lastErr = err
			continue
		}

		if !isRetryableStatus(resp.StatusCode) {
			return resp, nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.serviceName)
		if attempt == c.retry.maxAttempts-1 {
			return resp, lastErr
		}
		drain(resp)
	}

	return nil, lastErr
}

func (c *Client) sleep(ctx context.Context, req *http.Request, attempt int, lastErr error) error {
	delay := backoff(attempt, c.retry)

	logging.FromContext(ctx).WarnContext(ctx, "retrying downstream request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// drain discards the body so the connection can be reused.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// backoff returns the delay before retry number attempt (1-based):
// initial * multiplier^(attempt-1), capped at max, then spread by jitter.
func backoff(attempt int, p retryPolicy) time.Duration {
	delay := float64(p.initialInterval) * math.Pow(p.multiplier, float64(attempt-1))
	if p.maxInterval > 0 && delay > float64(p.maxInterval) {
		delay = float64(p.maxInterval)
	}

	delay += delay * jitterFraction * (2*rand.Float64() - 1)
	if delay < 0 {
		return 0
	}
	return time.Duration(delay)
}

// isRetryable treats everything except cancellation as transient.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
