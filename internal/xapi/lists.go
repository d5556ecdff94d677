package xapi

import (
	"context"
	"net/url"
)

// CreateList creates a new list owned by the authenticated account.
// The creation response only echoes id and name; the returned snapshot
// keeps the submitted description and visibility so callers can render
// the list without a second fetch.
func (c *Client) CreateList(ctx context.Context, name, description string, private bool) (List, error) {
	body := map[string]any{"name": name, "private": private}
	if description != "" {
		body["description"] = description
	}

	var resp struct {
		Data struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := c.postJSON(ctx, "/2/lists", body, &resp); err != nil {
		return List{}, err
	}
	if resp.Data.ID == "" {
		return List{}, operationError("the platform returned no id for the created list")
	}
	return List{
		ID:          resp.Data.ID,
		Name:        resp.Data.Name,
		Description: description,
		Private:     private,
	}, nil
}

// ListByID fetches one list by id.
func (c *Client) ListByID(ctx context.Context, id string) (List, error) {
	q := url.Values{}
	q.Set("list.fields", listFields)
	var resp struct {
		Data apiList `json:"data"`
	}
	if err := c.getJSON(ctx, "/2/lists/"+url.PathEscape(id), q, &resp); err != nil {
		return List{}, err
	}
	if resp.Data.ID == "" {
		return List{}, operationError("no list found for id %s", id)
	}
	return resp.Data.toList(), nil
}

// OwnedLists returns the lists owned by the authenticated account.
func (c *Client) OwnedLists(ctx context.Context) ([]List, error) {
	me, err := c.Me(ctx)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("list.fields", listFields)
	var resp struct {
		Data []apiList `json:"data"`
	}
	if err := c.getJSON(ctx, "/2/users/"+me.ID+"/owned_lists", q, &resp); err != nil {
		return nil, err
	}

	lists := make([]List, 0, len(resp.Data))
	for _, l := range resp.Data {
		lists = append(lists, l.toList())
	}
	return lists, nil
}
