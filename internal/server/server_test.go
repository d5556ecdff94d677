package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/finchline/finchline/internal/config"
	"github.com/finchline/finchline/internal/tools"
	"github.com/finchline/finchline/internal/xapi"
)

func testRegistry(t *testing.T, mux *http.ServeMux) *tools.Registry {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	creds := xapi.Credentials{APIKey: "k", APISecret: "s", AccessToken: "t", AccessSecret: "ts"}
	return tools.NewRegistry(xapi.New(creds, xapi.WithBaseURL(srv.URL)), tools.Options{})
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("result has no content")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return tc.Text
}

func TestNew_RegistersEveryTool(t *testing.T) {
	cfg := &config.Config{ServerName: "finchline", Version: "test"}
	reg := testRegistry(t, http.NewServeMux())

	s := New(cfg, reg)
	if s == nil {
		t.Fatal("expected a server instance")
	}
}

func TestHandler_ValidationErrorIsErrorResult(t *testing.T) {
	reg := testRegistry(t, http.NewServeMux())

	h := handler(reg.Get(tools.ToolPostTweet))
	res, err := h(context.Background(), callRequest("post_tweet", map[string]any{}))
	if err != nil {
		t.Fatalf("handler must not return raw errors, got: %v", err)
	}
	if !res.IsError {
		t.Error("validation failure must be flagged as error")
	}
	if !strings.Contains(resultText(t, res), "missing required") {
		t.Errorf("result must name the violation: %q", resultText(t, res))
	}
}

func TestHandler_SuccessIsTextResult(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /2/tweets", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":"42","text":"hi"}}`))
	})
	reg := testRegistry(t, mux)

	h := handler(reg.Get(tools.ToolPostTweet))
	res, err := h(context.Background(), callRequest("post_tweet", map[string]any{"text": "hi"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected error result: %q", resultText(t, res))
	}
	if !strings.Contains(resultText(t, res), "status/42") {
		t.Errorf("expected permalink in result: %q", resultText(t, res))
	}
}

func TestHandler_RateLimitIsPlainText(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /2/tweets/search/recent", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"title":"Too Many Requests"}`))
	})
	reg := testRegistry(t, mux)

	h := handler(reg.Get(tools.ToolSearchTweets))
	res, err := h(context.Background(), callRequest("search_tweets",
		map[string]any{"query": "go", "count": 10}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Error("a rate limit is a notice, not an error result")
	}
	if !strings.Contains(resultText(t, res), "Rate limit") {
		t.Errorf("expected rate-limit notice: %q", resultText(t, res))
	}
}
