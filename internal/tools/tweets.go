package tools

import (
	"context"
	"encoding/json"

	"github.com/finchline/finchline/internal/format"
	"github.com/finchline/finchline/internal/schema"
	"github.com/finchline/finchline/internal/xapi"
)

// PostTweetTool publishes a new tweet.
type PostTweetTool struct {
	client *xapi.Client
}

var postTweetSchema = schema.Object{
	Fields: map[string]schema.Field{
		"text": {
			Type:        schema.TypeString,
			Description: "The content of your tweet",
			MinLength:   1,
			MaxLength:   280,
		},
	},
	Required: []string{"text"},
}

func (t *PostTweetTool) Name() string        { return string(ToolPostTweet) }
func (t *PostTweetTool) Description() string { return "Post a new tweet to Twitter" }
func (t *PostTweetTool) Parameters() json.RawMessage {
	return postTweetSchema.JSON()
}

func (t *PostTweetTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	in, err := postTweetSchema.Validate(args)
	if err != nil {
		return "", err
	}
	tweet, err := t.client.PostTweet(ctx, argString(in, "text"))
	if err != nil {
		return remoteFailure(t.Name(), err)
	}
	return format.Posted(tweet), nil
}

// SearchTweetsTool searches recent tweets.
type SearchTweetsTool struct {
	client *xapi.Client
}

var searchTweetsSchema = schema.Object{
	Fields: map[string]schema.Field{
		"query": {
			Type:        schema.TypeString,
			Description: "Search query",
			MinLength:   1,
		},
		"count": {
			Type:        schema.TypeInteger,
			Description: "Number of tweets to return (10-100)",
			Minimum:     schema.Int(10),
			Maximum:     schema.Int(100),
		},
	},
	Required: []string{"query", "count"},
}

func (t *SearchTweetsTool) Name() string        { return string(ToolSearchTweets) }
func (t *SearchTweetsTool) Description() string { return "Search for tweets on Twitter" }
func (t *SearchTweetsTool) Parameters() json.RawMessage {
	return searchTweetsSchema.JSON()
}

func (t *SearchTweetsTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	in, err := searchTweetsSchema.Validate(args)
	if err != nil {
		return "", err
	}
	query := argString(in, "query")
	tweets, authors, err := t.client.SearchRecent(ctx, query, argInt(in, "count"))
	if err != nil {
		return remoteFailure(t.Name(), err)
	}
	return format.SearchResults(query, tweets, authors), nil
}
