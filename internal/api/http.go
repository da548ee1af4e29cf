package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 4 << 20

// HTTPClient talks to the roadmap backend over HTTP.
type HTTPClient struct {
	base string
	http *http.Client
}

var _ Client = (*HTTPClient)(nil)

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d <= 0 {
			return
		}
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

// NewHTTPClient creates a client for the backend rooted at base,
// e.g. "http://127.0.0.1:5000".
func NewHTTPClient(base string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		base: strings.TrimRight(base, "/"),
		http: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend root this client talks to.
func (c *HTTPClient) BaseURL() string {
	return c.base
}

func (c *HTTPClient) Roadmap(ctx context.Context, skill string) (*Roadmap, error) {
	var out Roadmap
	if err := c.getJSON(ctx, EndpointRoadmap, url.Values{"skill": {skill}}, roadmapSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Quiz(ctx context.Context, topic string) (*Quiz, error) {
	var out Quiz
	if err := c.getJSON(ctx, EndpointQuiz, url.Values{"topic": {topic}}, quizSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// getJSON issues a GET and decodes the body into out, classifying every
// failure as a TransportError, ServerError or DecodeError.
func (c *HTTPClient) getJSON(ctx context.Context, endpoint string, query url.Values, sch *schema, out any) error {
	u := c.base + endpoint + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	id := RequestIDFrom(ctx)
	if id == "" {
		id = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", id)

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: err}
	}

	ok := resp.StatusCode/100 == 2

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		if !ok {
			return &ServerError{Endpoint: endpoint, Status: resp.StatusCode}
		}
		return &DecodeError{Endpoint: endpoint, Body: body, Err: err}
	}

	if msg, failed := errorField(parsed); failed || !ok {
		return &ServerError{Endpoint: endpoint, Status: resp.StatusCode, Message: msg}
	}

	if err := sch.validate(parsed); err != nil {
		return &DecodeError{Endpoint: endpoint, Body: body, Err: err}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Endpoint: endpoint, Body: body, Err: err}
	}
	return nil
}

// errorField reports whether a body signals failure through a truthy
// "error" member, returning its text when it is a string.
func errorField(parsed any) (string, bool) {
	obj, ok := parsed.(map[string]any)
	if !ok {
		return "", false
	}
	switch v := obj["error"].(type) {
	case nil:
		return "", false
	case string:
		return v, v != ""
	case bool:
		return "", v
	case float64:
		return "", v != 0
	default:
		return "", true
	}
}
