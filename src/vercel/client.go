// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package vercel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-querystring/query"

	"github.com/H0llyW00dzZ/vercel-mcp/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/vercel-mcp/src/logger"
	"github.com/H0llyW00dzZ/vercel-mcp/src/version"
)

// DefaultBaseURL is the public Vercel API endpoint.
const DefaultBaseURL = "https://api.vercel.com"

// Credentials identify the caller on every request.
// A zero TeamID and Slug means the personal account of the token owner.
type Credentials struct {
	Token  string
	TeamID string
	Slug   string
}

// Scope selects the team a single call acts on.
// It is embedded in every option record and overrides the credential defaults.
type Scope struct {
	TeamID string `json:"teamId,omitempty" url:"teamId,omitempty"`
	Slug   string `json:"slug,omitempty" url:"slug,omitempty"`
}

// Client talks to the Vercel REST API. It holds no per-call state and is
// safe for concurrent use by multiple goroutines.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
	log        logger.Logger
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL points the client at another API host, e.g. an httptest server.
// Invalid URLs are ignored.
func WithBaseURL(raw string) Option {
	return func(c *Client) {
		if u, err := url.Parse(strings.TrimRight(raw, "/")); err == nil && u.Host != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds every request. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithLogger enables a one-line trace per request.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New returns a client for [DefaultBaseURL] with a 60 second request timeout.
func New(opts ...Option) *Client {
	base, _ := url.Parse(DefaultBaseURL)
	c := &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		userAgent:  fmt.Sprintf("%s/%s", version.Name, version.Version),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API host the client sends requests to.
func (c *Client) BaseURL() string { return c.baseURL.String() }

// sendRequest performs one call and decodes the payload as described in the package docs.
func (c *Client) sendRequest(ctx context.Context, creds Credentials, method, endpoint string, opts any, in any) (any, error) {
	req, err := c.NewRequest(ctx, creds, method, endpoint, opts, in)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	if c.log != nil {
		c.log.Printf("vercel: %s %s -> %d", method, endpoint, resp.StatusCode)
	}

	body, err := readBody(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	return decodePayload(resp.Header.Get("Content-Type"), body), nil
}

// NewRequest builds an authenticated request. opts is an option record
// (or nil) encoded into the query string; in is marshalled as the JSON body
// when non-nil.
func (c *Client) NewRequest(ctx context.Context, creds Credentials, method, endpoint string, opts any, in any) (*http.Request, error) {
	if creds.Token == "" {
		return nil, ErrMissingToken
	}

	values, err := encodeQuery(creds, opts)
	if err != nil {
		return nil, err
	}

	target := c.baseURL.String() + endpoint
	if len(values) > 0 {
		target += "?" + values.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("could not encode request body, %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("could not create new request, %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+creds.Token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// encodeQuery turns an option record into query values and applies the
// credential scope when the record names no team.
func encodeQuery(creds Credentials, opts any) (url.Values, error) {
	values, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("could not encode query, %w", err)
	}

	if values.Get("teamId") == "" && values.Get("slug") == "" {
		if creds.TeamID != "" {
			values.Set("teamId", creds.TeamID)
		}
		if creds.Slug != "" {
			values.Set("slug", creds.Slug)
		}
	}

	return values, nil
}

func readBody(r io.Reader) ([]byte, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	return bytes.Clone(buf.Bytes()), nil
}

// decodePayload keeps JSON as raw bytes and everything else as text.
func decodePayload(contentType string, body []byte) any {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	mediaType, _, _ := mime.ParseMediaType(contentType)
	isJSON := mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
	if isJSON && json.Valid(body) {
		return json.RawMessage(body)
	}

	return string(body)
}

// escape makes a caller supplied identifier safe as one path segment.
func escape(segment string) string { return url.PathEscape(segment) }
