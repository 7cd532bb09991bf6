package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chatdesk/pkg/utils/logging"
	"github.com/secmon-lab/chatdesk/pkg/utils/safe"
)

// maxErrorBody caps how much of a failed response is kept in HTTPError
const maxErrorBody = 4 << 10

// Client implements Service over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *Metrics
}

var _ Service = (*Client)(nil)

type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout. A client given by WithHTTPClient
// is copied, never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

// WithMetrics records request count and latency
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New creates a client rooted at baseURL, e.g. http://localhost:8000/api
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidBaseURL, err.Error(), goerr.V(URLKey, baseURL))
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, goerr.Wrap(ErrInvalidBaseURL, "base URL must be an absolute http(s) URL", goerr.V(URLKey, baseURL))
	}

	c := &Client{
		baseURL:    strings.TrimRight(u.String(), "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the normalized base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

type request struct {
	operation string
	method    string
	path      string
	query     url.Values
	body      any
}

// do sends one request and returns the raw body of a 2xx response
func (c *Client) do(ctx context.Context, req request) ([]byte, error) {
	endpoint := c.baseURL + req.path
	if len(req.query) > 0 {
		endpoint += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to marshal request body", goerr.V(OperationKey, req.operation))
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint, body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build request",
			goerr.V(OperationKey, req.operation), goerr.V(URLKey, endpoint))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	httpReq.Header.Set("X-Request-ID", requestID)

	logger := logging.From(ctx).With("operation", req.operation, "request_id", requestID)
	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.metrics.observe(req.operation, 0, time.Since(start))
		return nil, goerr.Wrap(err, "chatbot API request failed",
			goerr.V(OperationKey, req.operation),
			goerr.V(MethodKey, req.method),
			goerr.V(URLKey, endpoint))
	}
	defer safe.DrainAndClose(ctx, resp.Body)

	elapsed := time.Since(start)
	c.metrics.observe(req.operation, resp.StatusCode, elapsed)
	logger.Debug("chatbot API response", "status", resp.StatusCode, "duration", elapsed)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, goerr.Wrap(&HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(snippet)),
		}, "chatbot API returned error status",
			goerr.V(OperationKey, req.operation),
			goerr.V(MethodKey, req.method),
			goerr.V(URLKey, endpoint),
			goerr.V(StatusKey, resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read response body", goerr.V(OperationKey, req.operation))
	}
	return data, nil
}

// doJSON sends one request and decodes the response into out
func (c *Client) doJSON(ctx context.Context, req request, out any) error {
	data, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return goerr.Wrap(ErrUnexpectedPayload, err.Error(), goerr.V(OperationKey, req.operation))
	}
	return nil
}
