package tools

import (
	"context"
	"encoding/json"

	"github.com/finchline/finchline/internal/format"
	"github.com/finchline/finchline/internal/schema"
	"github.com/finchline/finchline/internal/shared/stringutils"
	"github.com/finchline/finchline/internal/xapi"
)

var usernameOnlySchema = schema.Object{
	Fields: map[string]schema.Field{
		"username": {
			Type:        schema.TypeString,
			Description: "Username of the account",
			MinLength:   1,
		},
	},
	Required: []string{"username"},
}

// FollowUserTool follows an account. Success is only reported when the
// platform confirms the relationship exists afterwards.
type FollowUserTool struct {
	client *xapi.Client
}

func (t *FollowUserTool) Name() string        { return string(ToolFollowUser) }
func (t *FollowUserTool) Description() string { return "Follow a Twitter user" }
func (t *FollowUserTool) Parameters() json.RawMessage {
	return usernameOnlySchema.JSON()
}

func (t *FollowUserTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	in, err := usernameOnlySchema.Validate(args)
	if err != nil {
		return "", err
	}
	target, err := t.client.Follow(ctx, stringutils.NormalizeHandle(argString(in, "username")))
	if err != nil {
		return remoteFailure(t.Name(), err)
	}
	return format.Followed(target), nil
}

// UnfollowUserTool unfollows an account, with the same confirmation rule.
type UnfollowUserTool struct {
	client *xapi.Client
}

func (t *UnfollowUserTool) Name() string        { return string(ToolUnfollowUser) }
func (t *UnfollowUserTool) Description() string { return "Unfollow a Twitter user" }
func (t *UnfollowUserTool) Parameters() json.RawMessage {
	return usernameOnlySchema.JSON()
}

func (t *UnfollowUserTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	in, err := usernameOnlySchema.Validate(args)
	if err != nil {
		return "", err
	}
	target, err := t.client.Unfollow(ctx, stringutils.NormalizeHandle(argString(in, "username")))
	if err != nil {
		return remoteFailure(t.Name(), err)
	}
	return format.Unfollowed(target), nil
}

func rosterSchema(pageSize int) schema.Object {
	return schema.Object{
		Fields: map[string]schema.Field{
			"username": {
				Type:        schema.TypeString,
				Description: "Account to inspect (defaults to your own)",
			},
			"count": {
				Type:        schema.TypeInteger,
				Description: "Number of accounts to return (1-200)",
				Minimum:     schema.Int(1),
				Maximum:     schema.Int(200),
				Default:     pageSize,
			},
		},
	}
}

// ListFollowersTool lists the accounts following a user.
type ListFollowersTool struct {
	client *xapi.Client
	params schema.Object
}

func (t *ListFollowersTool) Name() string { return string(ToolListFollowers) }
func (t *ListFollowersTool) Description() string {
	return "List the followers of a Twitter user, your own by default"
}
func (t *ListFollowersTool) Parameters() json.RawMessage {
	return t.params.JSON()
}

func (t *ListFollowersTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	in, err := t.params.Validate(args)
	if err != nil {
		return "", err
	}
	username := stringutils.NormalizeHandle(argString(in, "username"))
	users, err := t.client.Followers(ctx, username, argInt(in, "count"))
	if err != nil {
		return remoteFailure(t.Name(), err)
	}
	return format.Users(rosterTitle("Followers", username), users), nil
}

// ListFollowingTool lists the accounts a user follows.
type ListFollowingTool struct {
	client *xapi.Client
	params schema.Object
}

func (t *ListFollowingTool) Name() string { return string(ToolListFollowing) }
func (t *ListFollowingTool) Description() string {
	return "List the accounts a Twitter user follows, your own by default"
}
func (t *ListFollowingTool) Parameters() json.RawMessage {
	return t.params.JSON()
}

func (t *ListFollowingTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	in, err := t.params.Validate(args)
	if err != nil {
		return "", err
	}
	username := stringutils.NormalizeHandle(argString(in, "username"))
	users, err := t.client.Following(ctx, username, argInt(in, "count"))
	if err != nil {
		return remoteFailure(t.Name(), err)
	}
	return format.Users(rosterTitle("Following", username), users), nil
}

func rosterTitle(kind, username string) string {
	if username == "" {
		return kind + " of your account"
	}
	return kind + " of @" + username
}
