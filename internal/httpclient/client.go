package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

var (
	ErrRateLimited error = errors.New("rate limited")
	ErrServerError error = errors.New("server error")
)

// RequestFunc builds a fresh request for every attempt so bodies can be replayed.
type RequestFunc func(ctx context.Context) (*http.Request, error)

type RetryPolicy struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		InitialInterval: 2 * time.Second,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  time.Minute,
	}
}

// Client performs HTTP calls and retries network failures, 429 and 5xx responses
// with exponential backoff. Any other non-2xx status is returned immediately.
type Client struct {
	logs   *zap.SugaredLogger
	client *http.Client
	policy RetryPolicy
}

func New(logger *zap.SugaredLogger, timeout time.Duration, policy RetryPolicy) *Client {
	return &Client{
		logs:   logger,
		client: &http.Client{Timeout: timeout},
		policy: policy,
	}
}

func (c *Client) Do(ctx context.Context, newRequest RequestFunc) ([]byte, error) {
	var body []byte

	operation := func() error {
		req, err := newRequest(ctx)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("create request: %w", err))
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("perform request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				c.logs.Warnw("failed to close response body", "url", req.URL.String(), "error", err)
			}
		}()

		if resp.StatusCode == http.StatusTooManyRequests {
			c.logs.Warnw("rate limited, retrying with backoff", "url", req.URL.String())
			return ErrRateLimited
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			c.logs.Warnw("server error, retrying with backoff", "url", req.URL.String(), "status", resp.StatusCode)
			return fmt.Errorf("%w: status code %d: %s", ErrServerError, resp.StatusCode, string(msg))
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			return backoff.Permanent(fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(msg)))
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("read response body: %w", err))
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.policy.InitialInterval
	b.MaxInterval = c.policy.MaxInterval
	b.MaxElapsedTime = c.policy.MaxElapsedTime
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("request failed after retries: %w", err)
	}
	return body, nil
}

// GetJSON fetches url and decodes the JSON body into result.
func (c *Client) GetJSON(ctx context.Context, url string, result any) error {
	body, err := c.Do(ctx, func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
