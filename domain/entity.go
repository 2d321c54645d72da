package domain

import "time"

type (
	PersonID     int64
	LocalUserID  int64
	CommunityID  int64
	PostID       int64
	ConnectionID string
)

// Identity is the resolved actor behind a credential.
type Identity struct {
	PersonID    PersonID
	LocalUserID LocalUserID
	Name        string
	Admin       bool
}

type Person struct {
	ID          PersonID
	LocalUserID LocalUserID
	Name        string
	Admin       bool
	// Banned is the site-wide ban, distinct from community bans.
	Banned bool
}

type Community struct {
	ID      CommunityID
	Name    string
	Deleted bool
	Removed bool
}

type Post struct {
	ID          PostID      `json:"id"`
	CommunityID CommunityID `json:"community_id"`
	CreatorID   PersonID    `json:"creator_id"`
	Name        string      `json:"name"`
	Locked      bool        `json:"locked"`
	Featured    bool        `json:"featured_community"`
	Removed     bool        `json:"removed"`
	Published   time.Time   `json:"published"`
	Updated     *time.Time  `json:"updated,omitempty"`
}

// PostUpdateForm carries the partial fields of a post update.
// Nil fields are left untouched.
type PostUpdateForm struct {
	Locked   *bool
	Featured *bool
	Removed  *bool
}

func (f PostUpdateForm) Apply(p Post, at time.Time) Post {
	if f.Locked != nil {
		p.Locked = *f.Locked
	}
	if f.Featured != nil {
		p.Featured = *f.Featured
	}
	if f.Removed != nil {
		p.Removed = *f.Removed
	}
	p.Updated = &at
	return p
}

func (f PostUpdateForm) IsEmpty() bool {
	return f.Locked == nil && f.Featured == nil && f.Removed == nil
}
