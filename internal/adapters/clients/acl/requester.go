package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/semester-progress/internal/domain"
	"github.com/jsamuelsen11/semester-progress/internal/platform/httpclient"
)

// Requester runs GET requests against the calendar through the
// instrumented client: status checking, error translation, body cleanup and
// JSON decoding.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester wraps client.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// GetJSON fetches path and decodes a 200 response into out. Transport
// failures and breaker rejections are reported as domain.ErrUnavailable.
func (r *Requester) GetJSON(ctx context.Context, path string, out any) error {
	resp, err := r.client.Get(ctx, path)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}

	if err != nil {
		// Retries exhausted on a retryable status still carry the response.
		if resp != nil {
			return TranslateHTTPError(resp)
		}
		if errors.Is(err, context.Canceled) {
			return err
		}
		r.logger.ErrorContext(ctx, "calendar request failed",
			slog.String("path", path),
			slog.Any("error", err),
		)
		return fmt.Errorf("GET %s: %w: %w", path, domain.ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.WarnContext(ctx, "unexpected calendar status",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return TranslateHTTPError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding GET %s: %w: %w", path, domain.ErrUnavailable, err)
	}
	return nil
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", err))
	}
}
