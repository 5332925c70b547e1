// Package http implements the transport for The Companies API: header setup,
// query serialization, retries for transient statuses, and error
// normalization. Response bodies are returned raw; JSON decoding belongs to
// the dispatch layer.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/thecompaniesapi/tca-go/internal/constants"
	"github.com/thecompaniesapi/tca-go/pkg/tca"
)

// Request represents an HTTP request to the API.
type Request struct {
	Method  string
	Path    string
	Query   map[string]interface{}
	Body    interface{}
	Headers map[string]string
}

// Response represents an HTTP response from the API.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Client is an HTTP client for The Companies API.
type Client struct {
	baseURL    string
	apiToken   string
	visitorID  string
	userAgent  string
	httpClient *retryablehttp.Client
	logger     tca.Logger
	debug      bool
}

// Option configures the client.
type Option func(*Client)

// WithVisitorID attaches a Tca-Visitor-Id header to every request.
func WithVisitorID(visitorID string) Option {
	return func(c *Client) {
		c.visitorID = visitorID
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets a structured logger for the HTTP layer.
func WithLogger(logger tca.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging when a logger is set.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithTimeout bounds each round trip, retries included.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig tunes the retry budget. retryMax < 0 disables retries.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		if retryMax < 0 {
			retryMax = 0
		}

		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// NewClient creates a new HTTP client for the given endpoint. The token is
// sent as a Basic authorization header when non-empty.
func NewClient(baseURL, apiToken string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.CheckRetry = checkRetry
	// Hand the last response back when the retry budget is exhausted so the
	// final status code reaches the caller.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiToken:   apiToken,
		userAgent:  constants.DefaultUserAgent,
		httpClient: retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// checkRetry retries connection errors and the fixed transient status set.
// Other statuses, including 4xx, surface immediately.
func checkRetry(ctx context.Context, resp *nethttp.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		return true, nil
	}

	for _, code := range constants.RetryStatusCodes {
		if resp.StatusCode == code {
			return true, nil
		}
	}

	return false, nil
}

// Do executes a request against the API.
//
// On a non-2xx status the response is returned together with a
// *tca.RequestError carrying the status and body.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.buildURL(req)

	var bodyBytes []byte

	if req.Body != nil {
		var err error

		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyBytes)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	c.setHeaders(httpReq, req.Headers)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, tca.WrapRequestError(err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, tca.WrapRequestError(err)
	}

	response := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": httpResp.StatusCode,
		})
	}

	if httpResp.StatusCode >= 400 {
		return response, tca.NewRequestError(httpResp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	return response, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query map[string]interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, query map[string]interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodDelete, Path: path, Query: query})
}

// buildURL joins the base URL, path and serialized query string. JSON-valued
// query parameters are percent-encoded by tca.SerializeQuery before
// url.Values encodes the query, so they end up double-encoded on the wire.
// Deployed SDKs share this behavior; see tca.SerializeQuery.
func (c *Client) buildURL(req *Request) string {
	path := req.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	fullURL := c.baseURL + path

	if len(req.Query) > 0 {
		if encoded := tca.QueryValues(req.Query).Encode(); encoded != "" {
			fullURL += "?" + encoded
		}
	}

	return fullURL
}

func (c *Client) setHeaders(httpReq *retryablehttp.Request, extra map[string]string) {
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if c.apiToken != "" {
		httpReq.Header.Set("Authorization", "Basic "+c.apiToken)
	}

	if c.visitorID != "" {
		httpReq.Header.Set("Tca-Visitor-Id", c.visitorID)
	}

	for key, value := range extra {
		httpReq.Header.Set(key, value)
	}
}
