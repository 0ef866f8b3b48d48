package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/fivetwenty-io/wpclient/internal/constants"
	"github.com/fivetwenty-io/wpclient/pkg/wp"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
)

// Client executes WordPress REST requests. It holds no per-request state and
// is safe for concurrent use.
type Client struct {
	baseURL       string
	httpClient    *retryablehttp.Client
	authenticator wp.Authenticator
	logger        wp.Logger
	debug         bool
	userAgent     string

	timeout time.Duration
	base    *http.Client
}

// Request describes one API call. A request carries at most one Payload.
type Request struct {
	Method  string
	Path    string
	Query   wp.Params
	Headers map[string]string
	Payload Payload
}

// Response is the raw result of a completed HTTP exchange.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte

	parseOnce sync.Once
	parsed    any
	parseErr  error
}

// JSON parses the body once and caches the result. An empty body yields an
// empty object.
func (r *Response) JSON() (any, error) {
	r.parseOnce.Do(func() {
		if len(bytes.TrimSpace(r.Body)) == 0 {
			r.parsed = map[string]any{}

			return
		}

		r.parseErr = json.Unmarshal(r.Body, &r.parsed)
		if r.parseErr != nil {
			r.parseErr = fmt.Errorf("parsing response body: %w", r.parseErr)
		}
	})

	return r.parsed, r.parseErr
}

// Object returns the parsed body when it is a JSON object.
func (r *Response) Object() (map[string]any, bool) {
	value, err := r.JSON()
	if err != nil {
		return nil, false
	}

	obj, ok := value.(map[string]any)

	return obj, ok
}

// Decode unmarshals the body into v. An empty body is treated as {}.
func (r *Response) Decode(v any) error {
	body := r.Body
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}

	return nil
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger wp.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout sets the per-request timeout on the default pooled client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHTTPClient sends requests through the given client instead of a new
// pooled one. WithTimeout does not modify it.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.base = httpClient
	}
}

// NewClient creates a new HTTP client rooted at baseURL. A nil authenticator
// sends anonymous requests.
func NewClient(baseURL string, authenticator wp.Authenticator, opts ...Option) *Client {
	client := &Client{
		baseURL:       baseURL,
		authenticator: authenticator,
		userAgent:     constants.DefaultUserAgent,
		timeout:       constants.DefaultRequestTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.base == nil {
		client.base = NewPooledClient(client.timeout)
	}

	client.httpClient = &retryablehttp.Client{
		HTTPClient:   client.base,
		Logger:       nil,
		RetryWaitMin: 0,
		RetryWaitMax: 0,
		RetryMax:     0,
		CheckRetry:   neverRetry,
		Backoff:      retryablehttp.DefaultBackoff,
		ErrorHandler: retryablehttp.PassthroughErrorHandler,
	}

	return client
}

// NewPooledClient returns a pooled http.Client with the given timeout.
func NewPooledClient(timeout time.Duration) *http.Client {
	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = timeout

	return httpClient
}

// neverRetry keeps every call to a single attempt. Cancellation surfaces
// through the transport error of that attempt.
func neverRetry(_ context.Context, _ *http.Response, _ error) (bool, error) {
	return false, nil
}

// BaseURL returns the site URL requests are rooted at.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HTTPClient returns the underlying pooled http.Client.
func (c *Client) HTTPClient() *http.Client {
	return c.base
}

// Authenticator returns the configured authenticator, which may be nil.
func (c *Client) Authenticator() wp.Authenticator {
	return c.authenticator
}

// Do sends the request once. A status >= 400 returns the response together
// with a classified *wp.Error; a send failure returns an API-kind *wp.Error
// and a nil response.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := BuildURL(c.baseURL, req.Path, req.Query)

	var (
		body        []byte
		contentType string
	)

	if req.Payload != nil {
		var err error

		body, contentType, err = req.Payload.encode()
		if err != nil {
			return nil, wp.NewTransportError(err)
		}
	}

	var rawBody interface{}
	if body != nil {
		rawBody = body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, wp.NewTransportError(fmt.Errorf("creating request: %w", err))
	}

	httpReq.Header.Set("Accept", contentTypeJSON)
	httpReq.Header.Set("User-Agent", c.userAgent)

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if c.authenticator != nil {
		headers, err := c.authenticator.AuthHeaders(ctx)
		if err != nil {
			return nil, err
		}

		for key, value := range headers {
			httpReq.Header.Set(key, value)
		}
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method":       req.Method,
			"url":          fullURL,
			"content_type": contentType,
			"body_bytes":   len(body),
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if httpResp != nil && httpResp.Body != nil {
			_ = httpResp.Body.Close()
		}

		if c.logger != nil {
			c.logger.Error("HTTP request failed", map[string]interface{}{
				"method": req.Method,
				"url":    fullURL,
				"error":  err.Error(),
			})
		}

		return nil, wp.NewTransportError(err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, wp.NewTransportError(fmt.Errorf("reading response body: %w", err))
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":   httpResp.StatusCode,
			"url":      fullURL,
			"duration": time.Since(start).String(),
		})
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		errBody, _ := resp.Object()

		return resp, wp.Classify(httpResp.StatusCode, errBody)
	}

	return resp, nil
}

// Execute sends the request and returns the parsed JSON value: a
// map[string]any, a []any, or an empty map for an empty body.
func (c *Client) Execute(ctx context.Context, req *Request) (any, error) {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	value, err := resp.JSON()
	if err != nil {
		return nil, &wp.Error{Kind: wp.KindAPI, Message: wp.InvalidResponseMessage, StatusCode: resp.StatusCode, Err: err}
	}

	return value, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query wp.Params) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body. A nil body sends none.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	req := &Request{Method: http.MethodPost, Path: path}
	if body != nil {
		req.Payload = &JSONPayload{Value: body}
	}

	return c.Do(ctx, req)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, query wp.Params) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path, Query: query})
}

// Upload performs a multipart POST with the file and query metadata.
func (c *Client) Upload(ctx context.Context, path string, file *FilePayload, query wp.Params) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Query: query, Payload: file})
}
