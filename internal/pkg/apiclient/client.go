// Package apiclient is the HTTP client for the HRIS REST API.
//
// Every call is authenticated with the session's bearer token and, for roles
// allowed to switch companies, scoped with the tenant header. A 429 response
// is retried once after the server's Retry-After hint (or a fixed floor); a
// 401 invalidates the session and is never retried.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/session"
)

const (
	DefaultTenantHeader = "X-Company-ID"
	maxErrorBody        = 4 << 10
)

// Config configures a Client.
type Config struct {
	BaseURL        string
	TenantHeader   string
	RateLimitFloor time.Duration
	// Timeout bounds each attempt; zero means no client-side limit.
	Timeout time.Duration
	// Transport is the underlying round tripper; http.DefaultTransport when nil.
	Transport http.RoundTripper
}

// Client issues authenticated requests on behalf of one session.
type Client struct {
	baseURL string
	http    *http.Client
	sess    session.Context
	floor   time.Duration

	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time
}

// New returns a Client bound to sess.
func New(cfg Config, sess session.Context) *Client {
	tenantHeader := cfg.TenantHeader
	if tenantHeader == "" {
		tenantHeader = DefaultTenantHeader
	}
	floor := cfg.RateLimitFloor
	if floor <= 0 {
		floor = DefaultRateLimitFloor
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Transport: buildTransport(cfg.Transport, sess, tenantHeader),
			Timeout:   cfg.Timeout,
		},
		sess:    sess,
		floor:   floor,
		sleep:   sleepContext,
		now:     time.Now,
	}
}

// envelope is the backend's response wrapper.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Get fetches path and returns the raw "data" member of the response.
// A body that is a bare JSON array is returned as is.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	resp, err := c.do(ctx, http.MethodGet, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return json.RawMessage("null"), nil
	}
	if trimmed[0] == '[' {
		return json.RawMessage(trimmed), nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(env.Data) == 0 {
		return json.RawMessage("null"), nil
	}
	return env.Data, nil
}

// do sends the request and applies the rate-limit and auth policy.
func (c *Client) do(ctx context.Context, method, endpoint string) (*http.Response, error) {
	retried := false
	for {
		req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", method, endpoint, err)
		}

		switch {
		case resp.StatusCode == http.StatusUnauthorized:
			drain(resp)
			slog.Warn("apiclient: credential rejected, invalidating session",
				"method", method, "url", endpoint)
			c.sess.Invalidate()
			return nil, auth.ErrSessionExpired

		case resp.StatusCode == http.StatusTooManyRequests:
			apiErr := readAPIError(resp)
			if retried || isNoRetry(ctx) {
				return nil, apiErr
			}
			wait := retryDelay(resp.Header.Get("Retry-After"), c.floor, c.now())
			slog.Warn("apiclient: rate limited, will retry once",
				"method", method, "url", endpoint, "retry_in", wait)
			if err := c.sleep(ctx, wait); err != nil {
				return nil, err
			}
			retried = true
			continue

		case resp.StatusCode < 200 || resp.StatusCode >= 300:
			return nil, readAPIError(resp)
		}

		return resp, nil
	}
}

// readAPIError consumes resp and converts it to an *APIError.
func readAPIError(resp *http.Response) *APIError {
	defer resp.Body.Close()
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(body) == 0 {
		return apiErr
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		apiErr.Message = strings.TrimSpace(string(body))
		return apiErr
	}
	if env.Error != nil {
		apiErr.Code = env.Error.Code
		apiErr.Message = env.Error.Message
	} else {
		apiErr.Message = env.Message
	}
	return apiErr
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	resp.Body.Close()
}
