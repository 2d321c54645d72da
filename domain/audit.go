package domain

import (
	"time"

	"github.com/google/uuid"
)

type AuditAction string

const (
	ActionLockPost    AuditAction = "mod_lock_post"
	ActionFeaturePost AuditAction = "mod_feature_post"
	ActionRemovePost  AuditAction = "mod_remove_post"
)

// AuditRecord is an immutable moderation log entry. Only the state field
// matching Action is set.
type AuditRecord struct {
	ID          uuid.UUID   `json:"id"`
	Action      AuditAction `json:"action"`
	ActorID     PersonID    `json:"mod_person_id"`
	PostID      PostID      `json:"post_id"`
	CommunityID CommunityID `json:"community_id"`
	Locked      *bool       `json:"locked,omitempty"`
	Featured    *bool       `json:"featured,omitempty"`
	Removed     *bool       `json:"removed,omitempty"`
	Reason      *string     `json:"reason,omitempty"`
	At          time.Time   `json:"when_"`
}
