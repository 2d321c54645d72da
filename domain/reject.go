package domain

// RejectReason is the reason an authorization guard refused an operation.
type RejectReason string

const (
	ActorSiteBanned  RejectReason = "ActorSiteBanned"
	ActorBanned      RejectReason = "ActorBanned"
	CommunityDeleted RejectReason = "CommunityDeleted"
	CommunityRemoved RejectReason = "CommunityRemoved"
	InsufficientRole RejectReason = "InsufficientRole"
)

// Code is the wire code clients already know from the forum API.
func (r RejectReason) Code() string {
	switch r {
	case ActorSiteBanned:
		return "site_ban"
	case ActorBanned:
		return "banned_from_community"
	case CommunityDeleted:
		return "deleted"
	case CommunityRemoved:
		return "removed"
	case InsufficientRole:
		return "not_a_mod_or_admin"
	default:
		return string(r)
	}
}
