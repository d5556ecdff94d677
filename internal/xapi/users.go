package xapi

import (
	"context"
	"net/url"
	"strconv"
)

// Me returns the snapshot of the credential owner's account.
func (c *Client) Me(ctx context.Context) (User, error) {
	q := url.Values{}
	q.Set("user.fields", userFields)
	var resp struct {
		Data apiUser `json:"data"`
	}
	if err := c.getJSON(ctx, "/2/users/me", q, &resp); err != nil {
		return User{}, err
	}
	return resp.Data.toUser(), nil
}

// UserByUsername looks up an account by its handle.
func (c *Client) UserByUsername(ctx context.Context, username string) (User, error) {
	q := url.Values{}
	q.Set("user.fields", userFields)
	var resp struct {
		Data apiUser `json:"data"`
	}
	if err := c.getJSON(ctx, "/2/users/by/username/"+url.PathEscape(username), q, &resp); err != nil {
		return User{}, err
	}
	if resp.Data.ID == "" {
		return User{}, operationError("no account found for @%s", username)
	}
	return resp.Data.toUser(), nil
}

// Profile resolves the named account, or the authenticated account when
// username is empty.
func (c *Client) Profile(ctx context.Context, username string) (User, error) {
	if username == "" {
		return c.Me(ctx)
	}
	return c.UserByUsername(ctx, username)
}

// ProfileUpdate names the fields update_profile may change. Nil fields
// are left untouched remotely.
type ProfileUpdate struct {
	Name     *string
	Bio      *string
	Location *string
	URL      *string
}

// UpdateProfile applies upd through the legacy v1.1 form endpoint and
// returns the updated snapshot the platform echoes back.
func (c *Client) UpdateProfile(ctx context.Context, upd ProfileUpdate) (User, error) {
	form := url.Values{}
	if upd.Name != nil {
		form.Set("name", *upd.Name)
	}
	if upd.Bio != nil {
		form.Set("description", *upd.Bio)
	}
	if upd.Location != nil {
		form.Set("location", *upd.Location)
	}
	if upd.URL != nil {
		form.Set("url", *upd.URL)
	}

	// v1.1 user shape differs from v2; only the echoed fields we keep.
	var resp struct {
		Name        string `json:"name"`
		ScreenName  string `json:"screen_name"`
		Description string `json:"description"`
	}
	if err := c.postForm(ctx, "/1.1/account/update_profile.json", form, &resp); err != nil {
		return User{}, err
	}
	return User{Name: resp.Name, Username: resp.ScreenName, Bio: resp.Description}, nil
}

// Follow makes the authenticated account follow username. The following
// routes carry no "me" alias, so both the target handle and the
// authenticated account id are resolved before acting. Success is only
// reported when the platform confirms the relationship was created (or is
// pending approval).
func (c *Client) Follow(ctx context.Context, username string) (User, error) {
	target, err := c.UserByUsername(ctx, username)
	if err != nil {
		return User{}, err
	}
	me, err := c.Me(ctx)
	if err != nil {
		return User{}, err
	}

	var resp struct {
		Data struct {
			Following     bool `json:"following"`
			PendingFollow bool `json:"pending_follow"`
		} `json:"data"`
	}
	body := map[string]string{"target_user_id": target.ID}
	if err := c.postJSON(ctx, "/2/users/"+me.ID+"/following", body, &resp); err != nil {
		return User{}, err
	}
	if !resp.Data.Following && !resp.Data.PendingFollow {
		return User{}, operationError("the platform did not confirm the follow of @%s", username)
	}
	return target, nil
}

// Unfollow removes the relationship to username. Success requires the
// platform to confirm the relationship no longer exists; a response still
// reporting it as active is a failure, never a silent no-op.
func (c *Client) Unfollow(ctx context.Context, username string) (User, error) {
	target, err := c.UserByUsername(ctx, username)
	if err != nil {
		return User{}, err
	}
	me, err := c.Me(ctx)
	if err != nil {
		return User{}, err
	}

	var resp struct {
		Data struct {
			Following bool `json:"following"`
		} `json:"data"`
	}
	if err := c.deleteJSON(ctx, "/2/users/"+me.ID+"/following/"+url.PathEscape(target.ID), &resp); err != nil {
		return User{}, err
	}
	if resp.Data.Following {
		return User{}, operationError("the platform still reports @%s as followed", username)
	}
	return target, nil
}

// Followers lists accounts following username (the authenticated account
// when empty), up to count entries.
func (c *Client) Followers(ctx context.Context, username string, count int) ([]User, error) {
	return c.relatedUsers(ctx, username, count, "followers")
}

// Following lists accounts username follows (the authenticated account
// when empty), up to count entries.
func (c *Client) Following(ctx context.Context, username string, count int) ([]User, error) {
	return c.relatedUsers(ctx, username, count, "following")
}

func (c *Client) relatedUsers(ctx context.Context, username string, count int, relation string) ([]User, error) {
	owner, err := c.Profile(ctx, username)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("max_results", strconv.Itoa(count))
	q.Set("user.fields", userFields)
	var resp struct {
		Data []apiUser `json:"data"`
	}
	if err := c.getJSON(ctx, "/2/users/"+owner.ID+"/"+relation, q, &resp); err != nil {
		return nil, err
	}

	users := make([]User, 0, len(resp.Data))
	for _, u := range resp.Data {
		users = append(users, u.toUser())
	}
	return users, nil
}
