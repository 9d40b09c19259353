/*
Copyright 2025-2026 the Bookstore Conformance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package bookstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/bookstore-qa/conformance/pkg/config"
)

// Response is the full envelope of a completed exchange. It is produced for
// every status code; callers classify.
type Response struct {
	StatusCode  int
	Header      http.Header
	Body        []byte
	Elapsed     time.Duration
	TraceParent string
}

// Decode unmarshals the response body into v. A body that is not valid JSON
// surfaces here as a decode error, never earlier as a transport error.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}

	return nil
}

// ContentType returns the Content-Type header verbatim.
func (r *Response) ContentType() string {
	return r.Header.Get("Content-Type")
}

// TraceID returns the trace ID sent with the request, for log correlation.
func (r *Response) TraceID() string {
	return extractTraceID(r.TraceParent)
}

// Client issues the five verb primitives against a configured base URL. The
// request timeout bounds the whole exchange and the connection timeout bounds
// dialing, both taken from configuration at construction.
type Client struct {
	baseURL   string
	client    *http.Client
	endpoints *Endpoints
	tracer    Tracer
}

type Option func(*Client)

// WithTracer installs a tracer receiving one record per request attempt.
func WithTracer(tracer Tracer) Option {
	return func(c *Client) {
		c.tracer = tracer
	}
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func NewClient(cfg *config.Config, opts ...Option) *Client {
	client := &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: cfg.ConnectionTimeout,
				}).DialContext,
			},
		},
		endpoints: NewEndpoints(cfg),
		tracer:    nopTracer{},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

func (c *Client) Endpoints() *Endpoints {
	return c.endpoints
}

// Get retrieves a collection endpoint.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// GetByID retrieves a single resource by numeric id.
func (c *Client) GetByID(ctx context.Context, path string, id int) (*Response, error) {
	return c.do(ctx, http.MethodGet, idPath(path, id), nil)
}

// Create posts a payload to a collection endpoint. A []byte body is sent
// verbatim so probes can submit malformed JSON; anything else is marshaled.
func (c *Client) Create(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// Update puts a payload to a resource by numeric id.
func (c *Client) Update(ctx context.Context, path string, id int, body any) (*Response, error) {
	return c.do(ctx, http.MethodPut, idPath(path, id), body)
}

// DeleteByID deletes a resource by numeric id.
func (c *Client) DeleteByID(ctx context.Context, path string, id int) (*Response, error) {
	return c.do(ctx, http.MethodDelete, idPath(path, id), nil)
}

// GetOpenAPIDocument retrieves the API's published swagger document.
func (c *Client) GetOpenAPIDocument(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodGet, c.endpoints.OpenAPIDocument(), nil)
}

func idPath(path string, id int) string {
	return fmt.Sprintf("%s/%d", path, id)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*Response, error) {
	var bodyBytes []byte

	switch b := body.(type) {
	case nil:
	case []byte:
		bodyBytes = b
	case json.RawMessage:
		bodyBytes = b
	default:
		marshaled, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyBytes = marshaled
	}

	var bodyReader io.Reader
	if bodyBytes != nil {
		bodyReader = bytes.NewReader(bodyBytes)
	}

	fullURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=bookstore-conformance")

	req.Header.Set("Accept", "application/json")

	if bodyBytes != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	record := TraceRecord{
		Method:      method,
		Path:        path,
		TraceParent: traceParent,
		RequestBody: bodyBytes,
	}

	// The record is emitted on every exit path from here on.
	defer func() {
		c.tracer.Trace(record)
	}()

	start := time.Now()

	resp, err := c.client.Do(req)

	record.Elapsed = time.Since(start)

	if err != nil {
		record.Err = err

		return nil, fmt.Errorf("http request failed (trace ID: %s): %w", extractTraceID(traceParent), err)
	}

	defer resp.Body.Close()

	record.Status = resp.StatusCode

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		record.Err = err

		return nil, fmt.Errorf("reading response body (trace ID: %s): %w", extractTraceID(traceParent), err)
	}

	record.ResponseBody = respBody

	return &Response{
		StatusCode:  resp.StatusCode,
		Header:      resp.Header.Clone(),
		Body:        respBody,
		Elapsed:     record.Elapsed,
		TraceParent: traceParent,
	}, nil
}
