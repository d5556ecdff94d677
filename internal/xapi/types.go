package xapi

import "time"

// User is a flat snapshot of a remote account. Absent numeric fields are
// zero, absent strings empty; nothing here is owned or mutated locally.
type User struct {
	ID        string
	Name      string
	Username  string
	Bio       string
	AvatarURL string
	Verified  bool
	Followers int
	Following int
	CreatedAt time.Time
}

// Tweet is a flat snapshot of a remote post.
type Tweet struct {
	ID        string
	Text      string
	AuthorID  string
	CreatedAt time.Time
	Retweets  int
	Replies   int
	Likes     int
	Quotes    int
}

// List is a flat snapshot of a remote list.
type List struct {
	ID            string
	Name          string
	Description   string
	MemberCount   int
	FollowerCount int
	Private       bool
	OwnerID       string
}

// userFields is the field set requested on every user lookup.
const userFields = "id,name,username,description,profile_image_url,verified,public_metrics,created_at"

// listFields is the field set requested on every list lookup.
const listFields = "id,name,description,member_count,follower_count,private,owner_id"

// apiUser mirrors the v2 user object, optionals included.
type apiUser struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Username        string `json:"username"`
	Description     string `json:"description"`
	ProfileImageURL string `json:"profile_image_url"`
	Verified        bool   `json:"verified"`
	CreatedAt       string `json:"created_at"`
	PublicMetrics   struct {
		Followers int `json:"followers_count"`
		Following int `json:"following_count"`
	} `json:"public_metrics"`
}

func (u apiUser) toUser() User {
	created, _ := time.Parse(time.RFC3339, u.CreatedAt) // zero time on absence
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Bio:       u.Description,
		AvatarURL: u.ProfileImageURL,
		Verified:  u.Verified,
		Followers: u.PublicMetrics.Followers,
		Following: u.PublicMetrics.Following,
		CreatedAt: created,
	}
}

// apiTweet mirrors the v2 tweet object.
type apiTweet struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	AuthorID      string `json:"author_id"`
	CreatedAt     string `json:"created_at"`
	PublicMetrics struct {
		Retweets int `json:"retweet_count"`
		Replies  int `json:"reply_count"`
		Likes    int `json:"like_count"`
		Quotes   int `json:"quote_count"`
	} `json:"public_metrics"`
}

func (t apiTweet) toTweet() Tweet {
	created, _ := time.Parse(time.RFC3339, t.CreatedAt)
	return Tweet{
		ID:        t.ID,
		Text:      t.Text,
		AuthorID:  t.AuthorID,
		CreatedAt: created,
		Retweets:  t.PublicMetrics.Retweets,
		Replies:   t.PublicMetrics.Replies,
		Likes:     t.PublicMetrics.Likes,
		Quotes:    t.PublicMetrics.Quotes,
	}
}

// apiList mirrors the v2 list object.
type apiList struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	MemberCount   int    `json:"member_count"`
	FollowerCount int    `json:"follower_count"`
	Private       bool   `json:"private"`
	OwnerID       string `json:"owner_id"`
}

func (l apiList) toList() List {
	return List{
		ID:            l.ID,
		Name:          l.Name,
		Description:   l.Description,
		MemberCount:   l.MemberCount,
		FollowerCount: l.FollowerCount,
		Private:       l.Private,
		OwnerID:       l.OwnerID,
	}
}
