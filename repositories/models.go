package repositories

import (
	"forum-lab/domain"
	"time"

	"github.com/google/uuid"
)

// Disk models are kept apart from the domain so the stored layout can
// evolve without touching the pipeline.

type diskPerson struct {
	ID          int64  `msgpack:"id"`
	LocalUserID int64  `msgpack:"local_user_id"`
	Name        string `msgpack:"name"`
	Admin       bool   `msgpack:"admin"`
	Banned      bool   `msgpack:"banned"`
}

type diskCommunity struct {
	ID      int64  `msgpack:"id"`
	Name    string `msgpack:"name"`
	Deleted bool   `msgpack:"deleted"`
	Removed bool   `msgpack:"removed"`
}

type diskPost struct {
	ID          int64  `msgpack:"id"`
	CommunityID int64  `msgpack:"community_id"`
	CreatorID   int64  `msgpack:"creator_id"`
	Name        string `msgpack:"name"`
	Locked      bool   `msgpack:"locked"`
	Featured    bool   `msgpack:"featured"`
	Removed     bool   `msgpack:"removed"`
	Published   int64  `msgpack:"published"`
	Updated     *int64 `msgpack:"updated"`
}

type diskBan struct {
	Expires *time.Time `msgpack:"expires"`
}

type diskAudit struct {
	ID          string  `msgpack:"id"`
	Action      string  `msgpack:"action"`
	ActorID     int64   `msgpack:"mod_person_id"`
	PostID      int64   `msgpack:"post_id"`
	CommunityID int64   `msgpack:"community_id"`
	Locked      *bool   `msgpack:"locked"`
	Featured    *bool   `msgpack:"featured"`
	Removed     *bool   `msgpack:"removed"`
	Reason      *string `msgpack:"reason"`
	At          int64   `msgpack:"when"`
}

func (p diskPerson) toDomain() domain.Person {
	return domain.Person{
		ID:          domain.PersonID(p.ID),
		LocalUserID: domain.LocalUserID(p.LocalUserID),
		Name:        p.Name,
		Admin:       p.Admin,
		Banned:      p.Banned,
	}
}

func fromPerson(p domain.Person) diskPerson {
	return diskPerson{
		ID:          int64(p.ID),
		LocalUserID: int64(p.LocalUserID),
		Name:        p.Name,
		Admin:       p.Admin,
		Banned:      p.Banned,
	}
}

func (c diskCommunity) toDomain() domain.Community {
	return domain.Community{ID: domain.CommunityID(c.ID), Name: c.Name, Deleted: c.Deleted, Removed: c.Removed}
}

func fromCommunity(c domain.Community) diskCommunity {
	return diskCommunity{ID: int64(c.ID), Name: c.Name, Deleted: c.Deleted, Removed: c.Removed}
}

func (p diskPost) toDomain() domain.Post {
	post := domain.Post{
		ID:          domain.PostID(p.ID),
		CommunityID: domain.CommunityID(p.CommunityID),
		CreatorID:   domain.PersonID(p.CreatorID),
		Name:        p.Name,
		Locked:      p.Locked,
		Featured:    p.Featured,
		Removed:     p.Removed,
		Published:   time.Unix(0, p.Published).UTC(),
	}
	if p.Updated != nil {
		updated := time.Unix(0, *p.Updated).UTC()
		post.Updated = &updated
	}
	return post
}

func fromPost(p domain.Post) diskPost {
	post := diskPost{
		ID:          int64(p.ID),
		CommunityID: int64(p.CommunityID),
		CreatorID:   int64(p.CreatorID),
		Name:        p.Name,
		Locked:      p.Locked,
		Featured:    p.Featured,
		Removed:     p.Removed,
		Published:   p.Published.UnixNano(),
	}
	if p.Updated != nil {
		updated := p.Updated.UnixNano()
		post.Updated = &updated
	}
	return post
}

func (a diskAudit) toDomain() (domain.AuditRecord, error) {
	id, err := uuid.Parse(a.ID)
	if err != nil {
		return domain.AuditRecord{}, err
	}
	return domain.AuditRecord{
		ID:          id,
		Action:      domain.AuditAction(a.Action),
		ActorID:     domain.PersonID(a.ActorID),
		PostID:      domain.PostID(a.PostID),
		CommunityID: domain.CommunityID(a.CommunityID),
		Locked:      a.Locked,
		Featured:    a.Featured,
		Removed:     a.Removed,
		Reason:      a.Reason,
		At:          time.Unix(0, a.At).UTC(),
	}, nil
}

func fromAuditRecord(r domain.AuditRecord) diskAudit {
	return diskAudit{
		ID:          r.ID.String(),
		Action:      string(r.Action),
		ActorID:     int64(r.ActorID),
		PostID:      int64(r.PostID),
		CommunityID: int64(r.CommunityID),
		Locked:      r.Locked,
		Featured:    r.Featured,
		Removed:     r.Removed,
		Reason:      r.Reason,
		At:          r.At.UnixNano(),
	}
}
