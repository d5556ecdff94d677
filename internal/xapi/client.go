// Package xapi wraps the X/Twitter HTTP API behind one method per operation.
// It speaks the v2 JSON endpoints plus the legacy v1.1 form endpoint for
// profile updates, signs every request with OAuth 1.0a user context, and
// classifies every remote failure before it leaves the package.
package xapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dghubble/oauth1"
)

const defaultBaseURL = "https://api.twitter.com"

// Credentials holds the four strings of an OAuth 1.0a user context.
type Credentials struct {
	APIKey       string
	APISecret    string
	AccessToken  string
	AccessSecret string
}

// Client is a stateless adapter over the X API. The only state it carries is
// the credential set baked into its signing transport; every method performs
// a small fixed sequence of outbound calls and returns.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API origin.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the signing HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New builds a Client signing with creds.
func New(creds Credentials, opts ...Option) *Client {
	cfg := oauth1.NewConfig(creds.APIKey, creds.APISecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessSecret)
	hc := cfg.Client(oauth1.NoContext, token)
	hc.Timeout = 30 * time.Second

	c := &Client{httpClient: hc, baseURL: defaultBaseURL}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getJSON performs a GET and decodes the 2xx body into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return internalError("build request", err)
	}
	return c.do(req, out)
}

// postJSON performs a POST with a JSON body.
func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return internalError("encode request", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return internalError("build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// deleteJSON performs a DELETE.
func (c *Client) deleteJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return internalError("build request", err)
	}
	return c.do(req, out)
}

// postForm performs a POST with a url-encoded body (v1.1 endpoints).
func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return internalError("build request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return internalError("call "+req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return internalError("read response", err)
	}
	if resp.StatusCode >= 400 {
		return classify(resp.StatusCode, body)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return internalError(fmt.Sprintf("decode %s response", req.URL.Path), err)
	}
	return nil
}
