// Package upstream is the JSON client for the marketplace REST API. Every
// call carries the bearer token of an explicit session.Session.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/tutor-dashboard-api/pkg/config"
	appErrors "github.com/noah-isme/tutor-dashboard-api/pkg/errors"
	"github.com/noah-isme/tutor-dashboard-api/pkg/middleware/requestid"
	"github.com/noah-isme/tutor-dashboard-api/pkg/session"
	"github.com/noah-isme/tutor-dashboard-api/pkg/tracing"
)

const maxErrorBody = 64 << 10

// Observer records per-operation call outcomes. Status 0 means the request
// never produced a response.
type Observer interface {
	ObserveUpstreamRequest(operation string, status int, duration time.Duration)
}

// Client is shared by all requests; bind it to a caller with Session.
type Client struct {
	baseURL  *url.URL
	http     *http.Client
	observer Observer
	logger   *zap.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default traced HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithObserver attaches a metrics observer.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// WithLogger sets the logger used for failed calls.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New builds a client for cfg.BaseURL.
func New(cfg config.UpstreamConfig, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("parse upstream base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("upstream base url %q must be absolute", cfg.BaseURL)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		baseURL: base,
		http:    &http.Client{Timeout: timeout, Transport: tracing.Transport(nil)},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Session binds the client to the credentials in sess.
func (c *Client) Session(sess *session.Session) *SessionClient {
	return &SessionClient{client: c, sess: sess}
}

// Ping checks the marketplace health endpoint without credentials.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, nil, "health", http.MethodGet, "health", nil, nil, nil)
}

func (c *Client) do(ctx context.Context, sess *session.Session, op, method, path string, query url.Values, body, out interface{}) error {
	target := c.baseURL.ResolveReference(&url.URL{Path: path})
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal, "encode upstream request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal, "build upstream request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}
	if sess != nil {
		if token, ok := sess.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(op, 0, time.Since(start))
		if errors.Is(err, context.Canceled) {
			return appErrors.Wrap(err, appErrors.ErrUpstreamUnavailable, "request cancelled")
		}
		c.logger.Warn("upstream call failed", zap.String("operation", op), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrUpstreamUnavailable, "marketplace unreachable")
	}
	defer resp.Body.Close()
	c.observe(op, resp.StatusCode, time.Since(start))

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := classify(resp.StatusCode, raw)
		c.logger.Info("upstream call rejected",
			zap.String("operation", op),
			zap.Int("status", resp.StatusCode),
			zap.String("detail", apiErr.Detail),
		)
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return appErrors.Wrap(err, appErrors.ErrUpstreamUnavailable, "empty upstream response")
		}
		return appErrors.Wrap(err, appErrors.ErrUpstreamUnavailable, "decode upstream response")
	}
	return nil
}

func (c *Client) observe(op string, status int, d time.Duration) {
	if c.observer != nil {
		c.observer.ObserveUpstreamRequest(op, status, d)
	}
}
