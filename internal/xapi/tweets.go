package xapi

import (
	"context"
	"net/url"
	"strconv"
)

// PostTweet publishes text as a new post and returns its snapshot.
func (c *Client) PostTweet(ctx context.Context, text string) (Tweet, error) {
	var resp struct {
		Data struct {
			ID   string `json:"id"`
			Text string `json:"text"`
		} `json:"data"`
	}
	body := map[string]string{"text": text}
	if err := c.postJSON(ctx, "/2/tweets", body, &resp); err != nil {
		return Tweet{}, err
	}
	if resp.Data.ID == "" {
		return Tweet{}, operationError("the platform returned no id for the created post")
	}
	return Tweet{ID: resp.Data.ID, Text: resp.Data.Text}, nil
}

// SearchRecent searches recent posts and returns them together with the
// author snapshots the response expanded, keyed by author id.
func (c *Client) SearchRecent(ctx context.Context, query string, count int) ([]Tweet, map[string]User, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("max_results", strconv.Itoa(count))
	q.Set("tweet.fields", "public_metrics,created_at,author_id")
	q.Set("expansions", "author_id")
	q.Set("user.fields", userFields)

	var resp struct {
		Data     []apiTweet `json:"data"`
		Includes struct {
			Users []apiUser `json:"users"`
		} `json:"includes"`
	}
	if err := c.getJSON(ctx, "/2/tweets/search/recent", q, &resp); err != nil {
		return nil, nil, err
	}

	tweets := make([]Tweet, 0, len(resp.Data))
	for _, t := range resp.Data {
		tweets = append(tweets, t.toTweet())
	}
	authors := make(map[string]User, len(resp.Includes.Users))
	for _, u := range resp.Includes.Users {
		authors[u.ID] = u.toUser()
	}
	return tweets, authors, nil
}
