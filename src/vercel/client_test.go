// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package vercel_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/vercel-mcp/src/vercel"
)

// recorded is one request seen by the fake API.
type recorded struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   string
}

// fakeAPI serves a fixed answer and records every request it receives.
type fakeAPI struct {
	t           *testing.T
	mu          sync.Mutex
	requests    []recorded
	status      int
	contentType string
	body        string
}

func newFakeAPI(t *testing.T, status int, contentType, body string) (*fakeAPI, *vercel.Client) {
	t.Helper()

	f := &fakeAPI{t: t, status: status, contentType: contentType, body: body}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	return f, vercel.New(vercel.WithBaseURL(srv.URL), vercel.WithTimeout(5*time.Second))
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, recorded{
		Method: r.Method,
		Path:   r.URL.EscapedPath(),
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   string(body),
	})
	f.mu.Unlock()

	if f.contentType != "" {
		w.Header().Set("Content-Type", f.contentType)
	}
	w.WriteHeader(f.status)
	io.WriteString(w, f.body)
}

func (f *fakeAPI) calls() []recorded {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recorded(nil), f.requests...)
}

func (f *fakeAPI) last() recorded {
	f.t.Helper()
	calls := f.calls()
	require.NotEmpty(f.t, calls, "expected at least one upstream request")
	return calls[len(calls)-1]
}

var creds = vercel.Credentials{Token: "tok_test"}

func TestNewRequestHeaders(t *testing.T) {
	api, client := newFakeAPI(t, http.StatusOK, "application/json", `{}`)

	_, err := client.CreateRecord(context.Background(), creds, "example.com", map[string]any{"type": "A"}, nil)
	require.NoError(t, err)

	got := api.last()
	assert.Equal(t, "Bearer tok_test", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.Contains(t, got.Header.Get("User-Agent"), "vercel-mcp/")
	assert.JSONEq(t, `{"type":"A"}`, got.Body)
}

func TestNoBodyOnReads(t *testing.T) {
	api, client := newFakeAPI(t, http.StatusOK, "application/json", `{}`)

	_, err := client.GetDomain(context.Background(), creds, "example.com", nil)
	require.NoError(t, err)

	got := api.last()
	assert.Empty(t, got.Body)
	assert.Empty(t, got.Header.Get("Content-Type"))
}

func TestMissingToken(t *testing.T) {
	api, client := newFakeAPI(t, http.StatusOK, "application/json", `{}`)

	_, err := client.GetDeployments(context.Background(), vercel.Credentials{}, nil)
	require.ErrorIs(t, err, vercel.ErrMissingToken)
	assert.Empty(t, api.calls(), "no request may be sent without a token")
}

func TestDecodePayload(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        any
	}{
		{
			name:        "JSON object kept raw",
			contentType: "application/json; charset=utf-8",
			body:        `{"uid":"dpl_1","state":"READY"}`,
			want:        json.RawMessage(`{"uid":"dpl_1","state":"READY"}`),
		},
		{
			name:        "JSON array kept raw",
			contentType: "application/json",
			body:        `[{"type":"stdout","text":"Building"}]`,
			want:        json.RawMessage(`[{"type":"stdout","text":"Building"}]`),
		},
		{
			name:        "plain text becomes string",
			contentType: "text/plain",
			body:        "module.exports = {}\n",
			want:        "module.exports = {}\n",
		},
		{
			name:        "JSON looking text without JSON content type stays text",
			contentType: "application/octet-stream",
			body:        `{"name":"pkg"}`,
			want:        `{"name":"pkg"}`,
		},
		{
			name:        "invalid JSON body becomes string",
			contentType: "application/json",
			body:        `{"truncated":`,
			want:        `{"truncated":`,
		},
		{
			name:        "empty body is nil",
			contentType: "application/json",
			body:        "",
			want:        nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, client := newFakeAPI(t, http.StatusOK, tt.contentType, tt.body)

			got, err := client.GetDeploymentFileContents(context.Background(), creds, "dpl_1", "file_1", nil)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("payload mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAPIError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nested error object",
			status:      http.StatusNotFound,
			contentType: "application/json",
			body:        `{"error":{"code":"not_found","message":"Deployment not found"}}`,
			wantCode:    "not_found",
			wantMessage: "Deployment not found",
		},
		{
			name:        "flat error string",
			status:      http.StatusForbidden,
			contentType: "application/json",
			body:        `{"error":"forbidden","message":"Not authorized"}`,
			wantCode:    "forbidden",
			wantMessage: "Not authorized",
		},
		{
			name:        "plain text body",
			status:      http.StatusBadGateway,
			contentType: "text/plain",
			body:        "upstream unavailable",
			wantMessage: "502 Bad Gateway: upstream unavailable",
		},
		{
			name:        "empty body",
			status:      http.StatusInternalServerError,
			wantMessage: "request returned non-2xx status, 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, client := newFakeAPI(t, tt.status, tt.contentType, tt.body)

			_, err := client.GetDeployment(context.Background(), creds, "dpl_1", nil)
			require.Error(t, err)

			var apiErr *vercel.APIError
			require.True(t, errors.As(err, &apiErr), "expected *vercel.APIError, got %T", err)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantMessage, err.Error())
			assert.Equal(t, tt.status == http.StatusNotFound, apiErr.NotFound())
		})
	}
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := vercel.New(vercel.WithBaseURL(srv.URL))
	_, err := client.GetDomains(context.Background(), creds, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GET /v5/domains")
}

func TestContextCanceled(t *testing.T) {
	_, client := newFakeAPI(t, http.StatusOK, "application/json", `{}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetProjects(ctx, creds, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestScopeResolution(t *testing.T) {
	tests := []struct {
		name      string
		creds     vercel.Credentials
		scope     *vercel.Scope
		wantTeam  string
		wantSlug  string
		wantEmpty bool
	}{
		{
			name:      "no scope anywhere",
			creds:     creds,
			wantEmpty: true,
		},
		{
			name:     "credential defaults",
			creds:    vercel.Credentials{Token: "tok", TeamID: "team_default", Slug: "acme"},
			wantTeam: "team_default",
			wantSlug: "acme",
		},
		{
			name:     "per-call team overrides defaults",
			creds:    vercel.Credentials{Token: "tok", TeamID: "team_default", Slug: "acme"},
			scope:    &vercel.Scope{TeamID: "team_call"},
			wantTeam: "team_call",
		},
		{
			name:     "per-call slug overrides defaults",
			creds:    vercel.Credentials{Token: "tok", TeamID: "team_default"},
			scope:    &vercel.Scope{Slug: "other"},
			wantSlug: "other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, client := newFakeAPI(t, http.StatusOK, "application/json", `{}`)

			_, err := client.GetDomainConfig(context.Background(), tt.creds, "example.com", tt.scope)
			require.NoError(t, err)

			q := api.last().Query
			if tt.wantEmpty {
				assert.Empty(t, q)
				return
			}
			assert.Equal(t, tt.wantTeam, q.Get("teamId"))
			assert.Equal(t, tt.wantSlug, q.Get("slug"))
		})
	}
}

func TestPathSegmentsEscaped(t *testing.T) {
	api, client := newFakeAPI(t, http.StatusOK, "application/json", `{}`)

	_, err := client.GetProjectDomain(context.Background(), creds, "my/project", "example.com", nil)
	require.NoError(t, err)
	assert.Equal(t, "/v9/projects/my%2Fproject/domains/example.com", api.last().Path)
}

func TestNoCaching(t *testing.T) {
	api, client := newFakeAPI(t, http.StatusOK, "application/json", `{"domains":[]}`)

	for range 2 {
		_, err := client.GetDomains(context.Background(), creds, nil)
		require.NoError(t, err)
	}
	assert.Len(t, api.calls(), 2)
}

func TestWithBaseURLIgnoresInvalid(t *testing.T) {
	client := vercel.New(vercel.WithBaseURL("::not a url"))
	assert.Equal(t, vercel.DefaultBaseURL, client.BaseURL())

	client = vercel.New(vercel.WithBaseURL("http://127.0.0.1:9999/"))
	assert.Equal(t, "http://127.0.0.1:9999", client.BaseURL())
}
