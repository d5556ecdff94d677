package tools

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/finchline/finchline/internal/schema"
	"github.com/finchline/finchline/internal/xapi"
)

// newTestRegistry builds a registry over a fake API. The returned counter
// tracks every request that reached the fake platform.
func newTestRegistry(t *testing.T, mux *http.ServeMux, opts ...Options) (*Registry, *int) {
	t.Helper()
	hits := 0
	counted := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		mux.ServeHTTP(w, r)
	})
	srv := httptest.NewServer(counted)
	t.Cleanup(srv.Close)

	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	creds := xapi.Credentials{APIKey: "k", APISecret: "s", AccessToken: "t", AccessSecret: "ts"}
	client := xapi.New(creds, xapi.WithBaseURL(srv.URL))
	return NewRegistry(client, o), &hits
}

func TestRegistry_AllOperationsDeclared(t *testing.T) {
	reg, _ := newTestRegistry(t, http.NewServeMux())

	want := []ToolName{
		ToolPostTweet, ToolSearchTweets, ToolGetProfile, ToolUpdateProfile,
		ToolFollowUser, ToolUnfollowUser, ToolListFollowers, ToolListFollowing,
		ToolCreateList, ToolGetListInfo, ToolGetUserLists,
	}
	if len(reg.All()) != len(want) {
		t.Fatalf("expected %d tools, got %d", len(want), len(reg.All()))
	}
	for _, name := range want {
		tool := reg.Get(name)
		if tool == nil {
			t.Errorf("missing tool %s", name)
			continue
		}
		if tool.Description() == "" {
			t.Errorf("%s: empty description", name)
		}
		var doc map[string]any
		if err := json.Unmarshal(tool.Parameters(), &doc); err != nil {
			t.Errorf("%s: schema is not valid JSON: %v", name, err)
		}
	}
}

func TestCall_UnknownTool(t *testing.T) {
	reg, hits := newTestRegistry(t, http.NewServeMux())

	_, err := reg.Call(context.Background(), "delete_account", nil)
	if !errors.Is(err, ErrUnknownTool) {
		t.Fatalf("expected ErrUnknownTool, got %v", err)
	}
	if *hits != 0 {
		t.Errorf("unknown tool must not reach the platform, got %d calls", *hits)
	}
}

func TestCall_InvalidInputNeverReachesPlatform(t *testing.T) {
	tests := []struct {
		name string
		tool string
		args map[string]any
		want string
	}{
		{"over-length tweet", "post_tweet", map[string]any{"text": strings.Repeat("a", 281)}, "at most 280"},
		{"empty tweet", "post_tweet", map[string]any{"text": ""}, "at least 1"},
		{"search count below minimum", "search_tweets", map[string]any{"query": "rust", "count": 5}, "at least 10"},
		{"search count above maximum", "search_tweets", map[string]any{"query": "rust", "count": 150}, "at most 100"},
		{"search count missing", "search_tweets", map[string]any{"query": "rust"}, "missing required"},
		{"followers count above maximum", "list_followers", map[string]any{"count": 250}, "at most 200"},
		{"missing follow username", "follow_user", map[string]any{}, "missing required"},
		{"over-length list name", "create_list", map[string]any{"name": strings.Repeat("x", 30)}, "at most 25"},
		{"missing list id", "get_list_info", map[string]any{}, "missing required"},
		{"empty profile update", "update_profile", map[string]any{}, "at least one"},
		{"invalid profile url", "update_profile", map[string]any{"url": "not a url"}, "invalid input: url"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reg, hits := newTestRegistry(t, http.NewServeMux())

			_, err := reg.Call(context.Background(), tc.tool, tc.args)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var vErr *schema.ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("expected *schema.ValidationError, got %T: %v", err, err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not name the violated constraint %q", err, tc.want)
			}
			if *hits != 0 {
				t.Errorf("invalid input must be rejected before any remote call, got %d", *hits)
			}
		})
	}
}

func TestPostTweet_OneCallAndPermalink(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /2/tweets", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":"1234567890","text":"hello"}}`))
	})
	reg, hits := newTestRegistry(t, mux)

	out, err := reg.Call(context.Background(), "post_tweet", map[string]any{"text": "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *hits != 1 {
		t.Errorf("expected exactly one platform call, got %d", *hits)
	}
	if !strings.Contains(out, "status/1234567890") {
		t.Errorf("response must embed the created id in a permalink: %q", out)
	}
}

func TestFollow_RateLimitBecomesTextNotice(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /2/users/by/username/alice", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"title":"Too Many Requests"}`))
	})
	reg, _ := newTestRegistry(t, mux)

	out, err := reg.Call(context.Background(), "follow_user", map[string]any{"username": "alice"})
	if err != nil {
		t.Fatalf("rate limit must not surface as an error, got: %v", err)
	}
	if !strings.Contains(out, "Rate limit") || !strings.Contains(out, "wait") {
		t.Errorf("expected a rate-limit notice, got %q", out)
	}
}

func TestFollow_UnconfirmedReportsFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /2/users/by/username/alice", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":"7","name":"Alice","username":"alice"}}`))
	})
	mux.HandleFunc("GET /2/users/me", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":"5","name":"Self","username":"self"}}`))
	})
	mux.HandleFunc("POST /2/users/5/following", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"following":false,"pending_follow":false}}`))
	})
	reg, _ := newTestRegistry(t, mux)

	_, err := reg.Call(context.Background(), "follow_user", map[string]any{"username": "alice"})
	if err == nil {
		t.Fatal("expected failure when the platform does not confirm the follow")
	}
}

func TestAuthErrorCarriesCode(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /2/users/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errors":[{"code":89,"message":"Invalid or expired token"}]}`))
	})
	reg, _ := newTestRegistry(t, mux)

	_, err := reg.Call(context.Background(), "get_profile", map[string]any{})
	if err == nil {
		t.Fatal("expected an authentication error")
	}
	if !strings.Contains(err.Error(), "authentication error") || !strings.Contains(err.Error(), "89") {
		t.Errorf("unexpected error text: %v", err)
	}
}

func TestCreateListThenInfo_NoDescription(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /2/lists", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if _, ok := body["description"]; ok {
			t.Error("absent description must not be submitted")
		}
		if body["private"] != true {
			t.Errorf("expected private=true, got %v", body["private"])
		}
		w.Write([]byte(`{"data":{"id":"77","name":"friends"}}`))
	})
	mux.HandleFunc("GET /2/lists/77", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":"77","name":"friends","private":true,"member_count":0,"follower_count":0}}`))
	})
	reg, _ := newTestRegistry(t, mux)
	ctx := context.Background()

	created, err := reg.Call(ctx, "create_list", map[string]any{"name": "friends", "private": true})
	if err != nil {
		t.Fatalf("create_list: %v", err)
	}
	if !strings.Contains(created, "friends") || !strings.Contains(created, "77") {
		t.Errorf("unexpected confirmation: %q", created)
	}

	info, err := reg.Call(ctx, "get_list_info", map[string]any{"listId": "77"})
	if err != nil {
		t.Fatalf("get_list_info: %v", err)
	}
	if strings.Contains(info, "Description:") {
		t.Errorf("absent description must not render a line:\n%s", info)
	}
	if !strings.Contains(info, "🔒") {
		t.Errorf("private list must carry the lock marker:\n%s", info)
	}
}

func TestListFollowers_DefaultCount(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /2/users/me", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":"5","username":"self","name":"Self"}}`))
	})
	mux.HandleFunc("GET /2/users/5/followers", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("max_results"); got != "20" {
			t.Errorf("expected default count 20, got %q", got)
		}
		w.Write([]byte(`{"data":[{"id":"1","username":"a","name":"Alice"}]}`))
	})
	reg, _ := newTestRegistry(t, mux)

	out, err := reg.Call(context.Background(), "list_followers", map[string]any{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "@a") {
		t.Errorf("unexpected roster: %q", out)
	}
}

func TestListFollowers_ConfiguredPageSize(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /2/users/me", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":"5","username":"self","name":"Self"}}`))
	})
	mux.HandleFunc("GET /2/users/5/followers", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("max_results"); got != "50" {
			t.Errorf("expected configured count 50, got %q", got)
		}
		w.Write([]byte(`{"data":[{"id":"1","username":"a","name":"Alice"}]}`))
	})
	reg, _ := newTestRegistry(t, mux, Options{RosterPageSize: 50})

	if _, err := reg.Call(context.Background(), "list_followers", map[string]any{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The advertised schema default must match the configured value.
	var doc struct {
		Properties map[string]struct {
			Default any `json:"default"`
		} `json:"properties"`
	}
	if err := json.Unmarshal(reg.Get(ToolListFollowers).Parameters(), &doc); err != nil {
		t.Fatalf("invalid schema: %v", err)
	}
	if got, ok := doc.Properties["count"].Default.(float64); !ok || got != 50 {
		t.Errorf("expected schema default 50, got %v", doc.Properties["count"].Default)
	}
}

func TestListFollowers_OutOfRangePageSizeFallsBack(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /2/users/me", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":"5","username":"self","name":"Self"}}`))
	})
	mux.HandleFunc("GET /2/users/5/followers", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("max_results"); got != "20" {
			t.Errorf("expected fallback count 20, got %q", got)
		}
		w.Write([]byte(`{"data":[]}`))
	})
	reg, _ := newTestRegistry(t, mux, Options{RosterPageSize: 500})

	if _, err := reg.Call(context.Background(), "list_followers", map[string]any{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHandleNormalization(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /2/users/by/username/alice", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":"7","name":"Alice","username":"alice"}}`))
	})
	reg, _ := newTestRegistry(t, mux)

	out, err := reg.Call(context.Background(), "get_profile", map[string]any{"username": "@alice"})
	if err != nil {
		t.Fatalf("leading @ must be accepted: %v", err)
	}
	if !strings.Contains(out, "@alice") {
		t.Errorf("unexpected profile: %q", out)
	}
}
