// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/H0llyW00dzZ/vercel-mcp/src/logger"
	"github.com/H0llyW00dzZ/vercel-mcp/src/vercel"
	"github.com/google/go-cmp/cmp"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/mcptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest is one request seen by the fake Vercel API.
type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Auth   string
	Body   string
}

// fakeVercel is an httptest server that records requests and answers with a fixed payload.
type fakeVercel struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest

	status      int
	contentType string
	body        string
}

func newFakeVercel(t *testing.T) *fakeVercel {
	t.Helper()

	f := &fakeVercel{status: http.StatusOK, contentType: "application/json", body: `{"ok":true}`}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Query:  r.URL.Query(),
			Auth:   r.Header.Get("Authorization"),
			Body:   string(body),
		})
		status, contentType, payload := f.status, f.contentType, f.body
		f.mu.Unlock()

		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		io.WriteString(w, payload)
	}))
	t.Cleanup(f.Close)

	return f
}

func (f *fakeVercel) respond(status int, contentType, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status, f.contentType, f.body = status, contentType, body
}

func (f *fakeVercel) last(t *testing.T) recordedRequest {
	t.Helper()

	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests, "no upstream request recorded")
	return f.requests[len(f.requests)-1]
}

func (f *fakeVercel) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// startToolServer serves the full catalog through mcptest against the fake API.
func startToolServer(t *testing.T, upstream *fakeVercel, creds vercel.Credentials) *mcptest.Server {
	t.Helper()

	tools := NewServerBuilder().
		WithCredentials(creds).
		WithAPI(vercel.New(vercel.WithBaseURL(upstream.URL))).
		WithLogger(logger.NewMCPLogger(io.Discard, true)).
		WithDefaultTools().
		ServerTools()

	srv := mcptest.NewUnstartedServer(t)
	srv.AddTools(tools...)
	require.NoError(t, srv.Start(context.Background()))
	t.Cleanup(srv.Close)

	return srv
}

func callTool(t *testing.T, srv *mcptest.Server, name string, args map[string]any) string {
	t.Helper()

	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args

	result, err := srv.Client().CallTool(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Content, 1)
	assert.False(t, result.IsError)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	assert.Equal(t, "text", text.Type)

	return text.Text
}

func TestCreateToolsCatalog(t *testing.T) {
	tools := createTools()
	require.Len(t, tools, 27)

	seen := make(map[string]bool, len(tools))
	for _, def := range tools {
		name := def.Tool.Name
		assert.False(t, seen[name], "duplicate tool %s", name)
		seen[name] = true

		assert.NotEmpty(t, def.Tool.Description, name)
		assert.NotEmpty(t, def.Action, name)
		assert.NotNil(t, def.Adapter, name)
		assert.Contains(t, def.Tool.InputSchema.Properties, "teamId", name)
		assert.Contains(t, def.Tool.InputSchema.Properties, "slug", name)
		assert.NotContains(t, def.Tool.InputSchema.Required, "teamId", name)
		assert.NotContains(t, def.Tool.InputSchema.Required, "slug", name)

		require.NotNil(t, def.Tool.Annotations.OpenWorldHint, name)
		assert.True(t, *def.Tool.Annotations.OpenWorldHint, name)
	}
}

func TestCreateToolsRequiredArguments(t *testing.T) {
	want := map[string][]string{
		"getDeploymentEvents":       {"deploymentId"},
		"getDeployment":             {"deploymentId"},
		"cancelDeployment":          {"deploymentId"},
		"listDeploymentFiles":       {"deploymentId"},
		"getDeploymentFileContents": {"deploymentId", "fileId"},
		"getDeployments":            nil,
		"deleteDeployment":          {"deploymentId"},
		"getRecords":                {"domain"},
		"createRecord":              {"domain", "recordData"},
		"updateRecord":              {"recordId", "recordData"},
		"removeRecord":              {"domain", "recordId"},
		"getDomainConfig":           {"domain"},
		"getDomain":                 {"domain"},
		"getDomains":                nil,
		"getProjects":               nil,
		"updateProject":             {"idOrName", "projectData"},
		"getProjectDomains":         {"idOrName"},
		"getProjectDomain":          {"idOrName", "domain"},
		"updateProjectDomain":       {"idOrName", "domain", "domainData"},
		"removeProjectDomain":       {"idOrName", "domain"},
		"addProjectDomain":          {"idOrName", "domainData"},
		"verifyProjectDomain":       {"idOrName", "domain"},
		"filterProjectEnvs":         {"idOrName"},
		"getProjectEnv":             {"idOrName", "envId"},
		"createProjectEnv":          {"idOrName", "envData"},
		"removeProjectEnv":          {"idOrName", "envId"},
		"editProjectEnv":            {"idOrName", "envId", "envData"},
	}

	got := make(map[string][]string)
	for _, def := range createTools() {
		got[def.Tool.Name] = def.Tool.InputSchema.Required
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("required arguments mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateToolsAnnotations(t *testing.T) {
	destructive := map[string]bool{"deleteDeployment": true, "removeRecord": true, "removeProjectDomain": true, "removeProjectEnv": true}

	for _, def := range createTools() {
		name := def.Tool.Name
		require.NotNil(t, def.Tool.Annotations.ReadOnlyHint, name)

		readOnly := *def.Tool.Annotations.ReadOnlyHint
		isRead := strings.HasPrefix(name, "get") || strings.HasPrefix(name, "list") || strings.HasPrefix(name, "filter")
		assert.Equal(t, isRead, readOnly, name)

		if !readOnly {
			require.NotNil(t, def.Tool.Annotations.DestructiveHint, name)
			assert.Equal(t, destructive[name], *def.Tool.Annotations.DestructiveHint, name)
		}
	}
}

func TestToolsListOverMCP(t *testing.T) {
	srv := startToolServer(t, newFakeVercel(t), vercel.Credentials{Token: "tok"})

	result, err := srv.Client().ListTools(context.Background(), mcp.ListToolsRequest{})
	require.NoError(t, err)
	assert.Len(t, result.Tools, 27)
}

func TestToolCallsReachUpstream(t *testing.T) {
	tests := []struct {
		name      string
		args      map[string]any
		wantVerb  string
		wantPath  string
		wantQuery url.Values
		wantBody  string
	}{
		{
			name:      "getDeploymentEvents",
			args:      map[string]any{"deploymentId": "dpl_1", "direction": "backward", "limit": 20},
			wantVerb:  http.MethodGet,
			wantPath:  "/v3/deployments/dpl_1/events",
			wantQuery: url.Values{"direction": {"backward"}, "limit": {"20"}, "follow": {"0"}},
		},
		{
			name:      "getDeployment",
			args:      map[string]any{"deploymentId": "my-app.vercel.app", "withGitRepoInfo": "true"},
			wantVerb:  http.MethodGet,
			wantPath:  "/v13/deployments/my-app.vercel.app",
			wantQuery: url.Values{"withGitRepoInfo": {"true"}},
		},
		{
			name:     "cancelDeployment",
			args:     map[string]any{"deploymentId": "dpl_1"},
			wantVerb: http.MethodPatch,
			wantPath: "/v12/deployments/dpl_1/cancel",
		},
		{
			name:     "getDeploymentFileContents",
			args:     map[string]any{"deploymentId": "dpl_1", "fileId": "f_9"},
			wantVerb: http.MethodGet,
			wantPath: "/v7/deployments/dpl_1/files/f_9",
		},
		{
			name:      "getDeployments",
			args:      map[string]any{"projectId": "prj_1", "limit": 5, "state": "READY"},
			wantVerb:  http.MethodGet,
			wantPath:  "/v6/deployments",
			wantQuery: url.Values{"projectId": {"prj_1"}, "limit": {"5"}, "state": {"READY"}},
		},
		{
			name:      "deleteDeployment",
			args:      map[string]any{"deploymentId": "dpl_1", "url": "x.vercel.app"},
			wantVerb:  http.MethodDelete,
			wantPath:  "/v13/deployments/dpl_1",
			wantQuery: url.Values{"url": {"x.vercel.app"}},
		},
		{
			name:      "getRecords",
			args:      map[string]any{"domain": "example.com", "limit": "10"},
			wantVerb:  http.MethodGet,
			wantPath:  "/v4/domains/example.com/records",
			wantQuery: url.Values{"limit": {"10"}},
		},
		{
			name:     "createRecord",
			args:     map[string]any{"domain": "example.com", "recordData": map[string]any{"name": "www", "type": "CNAME", "value": "cname.vercel-dns.com"}},
			wantVerb: http.MethodPost,
			wantPath: "/v2/domains/example.com/records",
			wantBody: `{"name":"www","type":"CNAME","value":"cname.vercel-dns.com"}`,
		},
		{
			name:     "removeRecord",
			args:     map[string]any{"domain": "example.com", "recordId": "rec_1"},
			wantVerb: http.MethodDelete,
			wantPath: "/v2/domains/example.com/records/rec_1",
		},
		{
			name:      "getDomains",
			args:      map[string]any{"limit": 3},
			wantVerb:  http.MethodGet,
			wantPath:  "/v5/domains",
			wantQuery: url.Values{"limit": {"3"}},
		},
		{
			name:      "getProjects",
			args:      map[string]any{"search": "web", "teamId": "team_override"},
			wantVerb:  http.MethodGet,
			wantPath:  "/v10/projects",
			wantQuery: url.Values{"search": {"web"}, "teamId": {"team_override"}},
		},
		{
			name:     "addProjectDomain",
			args:     map[string]any{"idOrName": "web", "domainData": map[string]any{"name": "www.example.com"}},
			wantVerb: http.MethodPost,
			wantPath: "/v10/projects/web/domains",
			wantBody: `{"name":"www.example.com"}`,
		},
		{
			name:     "verifyProjectDomain",
			args:     map[string]any{"idOrName": "web", "domain": "www.example.com"},
			wantVerb: http.MethodPost,
			wantPath: "/v9/projects/web/domains/www.example.com/verify",
		},
		{
			name:      "filterProjectEnvs",
			args:      map[string]any{"idOrName": "web", "target": "production, preview", "decrypt": "true"},
			wantVerb:  http.MethodGet,
			wantPath:  "/v9/projects/web/env",
			wantQuery: url.Values{"target": {"production", "preview"}, "decrypt": {"true"}},
		},
		{
			name:      "createProjectEnv",
			args:      map[string]any{"idOrName": "web", "upsert": "true", "envData": []any{map[string]any{"key": "A", "value": "1"}}},
			wantVerb:  http.MethodPost,
			wantPath:  "/v10/projects/web/env",
			wantQuery: url.Values{"upsert": {"true"}},
			wantBody:  `[{"key":"A","value":"1"}]`,
		},
		{
			name:     "editProjectEnv",
			args:     map[string]any{"idOrName": "web", "envId": "env_1", "envData": map[string]any{"value": "2"}},
			wantVerb: http.MethodPatch,
			wantPath: "/v9/projects/web/env/env_1",
			wantBody: `{"value":"2"}`,
		},
	}

	upstream := newFakeVercel(t)
	srv := startToolServer(t, upstream, vercel.Credentials{Token: "tok", TeamID: "team_default"})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := callTool(t, srv, tt.name, tt.args)
			assert.Equal(t, "{\n  \"ok\": true\n}", text)

			got := upstream.last(t)
			assert.Equal(t, tt.wantVerb, got.Method)
			assert.Equal(t, tt.wantPath, got.Path)
			assert.Equal(t, "Bearer tok", got.Auth)

			wantQuery := url.Values{}
			for k, v := range tt.wantQuery {
				wantQuery[k] = v
			}
			if wantQuery.Get("teamId") == "" {
				wantQuery.Set("teamId", "team_default")
			}
			if diff := cmp.Diff(wantQuery, got.Query); diff != "" {
				t.Errorf("query mismatch (-want +got):\n%s", diff)
			}

			if tt.wantBody == "" {
				assert.Empty(t, got.Body)
			} else {
				assert.JSONEq(t, tt.wantBody, got.Body)
			}
		})
	}
}

func TestToolCallUpstreamFailure(t *testing.T) {
	upstream := newFakeVercel(t)
	upstream.respond(http.StatusNotFound, "application/json", `{"error":{"code":"not_found","message":"Deployment not found"}}`)
	srv := startToolServer(t, upstream, vercel.Credentials{Token: "tok"})

	text := callTool(t, srv, "getDeployment", map[string]any{"deploymentId": "dpl_missing"})
	assert.Equal(t, "Error getting deployment: Deployment not found", text)
}

func TestToolCallNonJSONUpstream(t *testing.T) {
	upstream := newFakeVercel(t)
	upstream.respond(http.StatusOK, "text/plain", "console.log('hi')")
	srv := startToolServer(t, upstream, vercel.Credentials{Token: "tok"})

	text := callTool(t, srv, "getDeploymentFileContents", map[string]any{"deploymentId": "dpl_1", "fileId": "f_1"})
	assert.Equal(t, "console.log('hi')", text)
}

func TestToolCallEmptyUpstreamBody(t *testing.T) {
	upstream := newFakeVercel(t)
	upstream.respond(http.StatusNoContent, "", "")
	srv := startToolServer(t, upstream, vercel.Credentials{Token: "tok"})

	text := callTool(t, srv, "removeProjectEnv", map[string]any{"idOrName": "web", "envId": "env_1"})
	assert.Equal(t, "null", text)
}

func TestToolCallValidationFailure(t *testing.T) {
	upstream := newFakeVercel(t)
	srv := startToolServer(t, upstream, vercel.Credentials{Token: "tok"})

	tests := []struct {
		name string
		tool string
		args map[string]any
		want string
	}{
		{name: "missing required", tool: "getDeployment", args: map[string]any{}, want: "Error getting deployment: invalid arguments:"},
		{name: "wrong type", tool: "getDomains", args: map[string]any{"limit": "ten"}, want: "Error getting domains: invalid arguments:"},
		{name: "enum violation", tool: "getDeploymentEvents", args: map[string]any{"deploymentId": "dpl_1", "direction": "sideways"}, want: "Error getting deployment events: invalid arguments:"},
		{name: "body not an object", tool: "createRecord", args: map[string]any{"domain": "example.com", "recordData": "www"}, want: "Error creating DNS record: invalid arguments:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := callTool(t, srv, tt.tool, tt.args)
			assert.True(t, strings.HasPrefix(text, tt.want), text)
		})
	}

	assert.Zero(t, upstream.count(), "invalid calls must not reach the upstream")
}

func TestAddProjectDomainWithoutName(t *testing.T) {
	upstream := newFakeVercel(t)
	srv := startToolServer(t, upstream, vercel.Credentials{Token: "tok"})

	text := callTool(t, srv, "addProjectDomain", map[string]any{"idOrName": "web", "domainData": map[string]any{"redirect": "example.com"}})
	assert.Equal(t, "Error adding project domain: domainData must have a 'name' property", text)
	assert.Zero(t, upstream.count())
}

// fakeAPI records the options each adapter hands to the upstream capability.
type fakeAPI struct {
	VercelAPI

	eventsOpts *vercel.GetDeploymentEventsOptions
	envsOpts   *vercel.FilterProjectEnvsOptions
	envData    any
}

func (f *fakeAPI) GetDeploymentEvents(_ context.Context, _ vercel.Credentials, _ string, opts *vercel.GetDeploymentEventsOptions) (any, error) {
	f.eventsOpts = opts
	return json.RawMessage(`[]`), nil
}

func (f *fakeAPI) FilterProjectEnvs(_ context.Context, _ vercel.Credentials, _ string, opts *vercel.FilterProjectEnvsOptions) (any, error) {
	f.envsOpts = opts
	return json.RawMessage(`{"envs":[]}`), nil
}

func (f *fakeAPI) CreateProjectEnv(_ context.Context, _ vercel.Credentials, _ string, envData any, _ *vercel.CreateProjectEnvOptions) (any, error) {
	f.envData = envData
	return json.RawMessage(`{"created":[]}`), nil
}

func TestHandleGetDeploymentEventsFollow(t *testing.T) {
	api := &fakeAPI{}
	creds := vercel.Credentials{Token: "tok"}

	_, err := handleGetDeploymentEvents(context.Background(), api, creds, map[string]any{"deploymentId": "dpl_1"})
	require.NoError(t, err)
	assert.Nil(t, api.eventsOpts.Follow, "absent follow is left to the client default")

	_, err = handleGetDeploymentEvents(context.Background(), api, creds, map[string]any{"deploymentId": "dpl_1", "follow": float64(1)})
	require.NoError(t, err)
	require.NotNil(t, api.eventsOpts.Follow)
	assert.Equal(t, 1, *api.eventsOpts.Follow)
}

func TestHandleFilterProjectEnvsTargets(t *testing.T) {
	api := &fakeAPI{}

	_, err := handleFilterProjectEnvs(context.Background(), api, vercel.Credentials{Token: "tok"},
		map[string]any{"idOrName": "web", "target": "production,,preview ", "gitBranch": "main", "teamId": "team_1"})
	require.NoError(t, err)

	want := &vercel.FilterProjectEnvsOptions{
		Scope:     vercel.Scope{TeamID: "team_1"},
		Target:    []string{"production", "preview"},
		GitBranch: "main",
	}
	if diff := cmp.Diff(want, api.envsOpts); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestHandleCreateProjectEnvForwardsBody(t *testing.T) {
	api := &fakeAPI{}
	body := []any{map[string]any{"key": "A"}, map[string]any{"key": "B"}}

	_, err := handleCreateProjectEnv(context.Background(), api, vercel.Credentials{Token: "tok"},
		map[string]any{"idOrName": "web", "envData": body})
	require.NoError(t, err)
	assert.Equal(t, body, api.envData)
}

func TestAdaptersRejectMissingIdentifiers(t *testing.T) {
	for _, def := range createTools() {
		if len(def.Tool.InputSchema.Required) == 0 {
			continue
		}
		t.Run(def.Tool.Name, func(t *testing.T) {
			_, err := def.Adapter(context.Background(), &fakeAPI{}, vercel.Credentials{Token: "tok"}, map[string]any{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "required argument")
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , "))
	assert.Equal(t, []string{"production"}, splitList("production"))
	assert.Equal(t, []string{"production", "preview", "development"}, splitList("production, preview ,development"))
}
