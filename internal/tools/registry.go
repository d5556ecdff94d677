// Package tools declares the callable operations and dispatches calls by
// name after validating arguments against each operation's schema.
package tools

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/finchline/finchline/internal/schema"
	"github.com/finchline/finchline/internal/xapi"
)

// ToolName is the canonical name of an operation.
type ToolName string

const (
	ToolPostTweet     ToolName = "post_tweet"
	ToolSearchTweets  ToolName = "search_tweets"
	ToolGetProfile    ToolName = "get_profile"
	ToolUpdateProfile ToolName = "update_profile"
	ToolFollowUser    ToolName = "follow_user"
	ToolUnfollowUser  ToolName = "unfollow_user"
	ToolListFollowers ToolName = "list_followers"
	ToolListFollowing ToolName = "list_following"
	ToolCreateList    ToolName = "create_list"
	ToolGetListInfo   ToolName = "get_list_info"
	ToolGetUserLists  ToolName = "get_user_lists"
)

// ErrUnknownTool signals a call for a name not in the registry.
var ErrUnknownTool = errors.New("tool not found")

// Registry is an immutable name→tool mapping built once at startup.
type Registry struct {
	tools map[string]schema.Tool
}

// Options tunes registry construction.
type Options struct {
	// RosterPageSize is the count applied to follower/following listings
	// when the caller omits one. Values outside 1-200 fall back to 20.
	RosterPageSize int
}

const defaultRosterPageSize = 20

// NewRegistry builds the full operation set over client.
func NewRegistry(client *xapi.Client, opts Options) *Registry {
	pageSize := opts.RosterPageSize
	if pageSize < 1 || pageSize > 200 {
		pageSize = defaultRosterPageSize
	}

	all := []schema.Tool{
		&PostTweetTool{client: client},
		&SearchTweetsTool{client: client},
		&GetProfileTool{client: client},
		&UpdateProfileTool{client: client},
		&FollowUserTool{client: client},
		&UnfollowUserTool{client: client},
		&ListFollowersTool{client: client, params: rosterSchema(pageSize)},
		&ListFollowingTool{client: client, params: rosterSchema(pageSize)},
		&CreateListTool{client: client},
		&GetListInfoTool{client: client},
		&GetUserListsTool{client: client},
	}

	m := make(map[string]schema.Tool, len(all))
	for _, t := range all {
		m[t.Name()] = t
	}
	return &Registry{tools: m}
}

// Get returns the tool with the given name, or nil.
func (r *Registry) Get(name ToolName) schema.Tool {
	return r.tools[string(name)]
}

// All returns every tool, sorted by name.
func (r *Registry) All() []schema.Tool {
	list := make([]schema.Tool, 0, len(r.tools))
	for _, t := range r.tools {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// Call dispatches one invocation by name.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) (string, error) {
	t, ok := r.tools[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return t.Execute(ctx, args)
}
