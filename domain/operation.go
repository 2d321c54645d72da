package domain

// UserOperation names an operation kind on the wire and in notifications.
type UserOperation string

const (
	OpLockPost      UserOperation = "LockPost"
	OpFeaturePost   UserOperation = "FeaturePost"
	OpRemovePost    UserOperation = "RemovePost"
	OpUserJoin      UserOperation = "UserJoin"
	OpCommunityJoin UserOperation = "CommunityJoin"
	OpModJoin       UserOperation = "ModJoin"
	OpPostJoin      UserOperation = "PostJoin"
	OpGetModlog     UserOperation = "GetModlog"
)

// Operation is the closed set of requests the pipeline knows how to perform.
// Only types of this package implement it.
type Operation interface {
	Kind() UserOperation
	isOperation()
}

type LockPost struct {
	Auth   string `json:"auth" validate:"required"`
	PostID PostID `json:"post_id" validate:"gt=0"`
	Locked bool   `json:"locked"`
}

type FeaturePost struct {
	Auth     string `json:"auth" validate:"required"`
	PostID   PostID `json:"post_id" validate:"gt=0"`
	Featured bool   `json:"featured"`
}

type RemovePost struct {
	Auth    string  `json:"auth" validate:"required"`
	PostID  PostID  `json:"post_id" validate:"gt=0"`
	Removed bool    `json:"removed"`
	Reason  *string `json:"reason,omitempty" validate:"omitempty,notblank,max=1000"`
}

type UserJoin struct {
	Auth string `json:"auth" validate:"required"`
}

type CommunityJoin struct {
	CommunityID CommunityID `json:"community_id" validate:"gte=0"`
}

// ModJoin carries an optional credential, the mod room is joined without it.
type ModJoin struct {
	Auth        string      `json:"auth,omitempty"`
	CommunityID CommunityID `json:"community_id" validate:"gt=0"`
}

type PostJoin struct {
	PostID PostID `json:"post_id" validate:"gt=0"`
}

type GetModlog struct {
	PostID *PostID `json:"post_id,omitempty" validate:"omitempty,gt=0"`
	Cursor *string `json:"cursor,omitempty"`
	Limit  *int    `json:"limit,omitempty" validate:"omitempty,gt=0,lte=100"`
}

func (LockPost) Kind() UserOperation      { return OpLockPost }
func (FeaturePost) Kind() UserOperation   { return OpFeaturePost }
func (RemovePost) Kind() UserOperation    { return OpRemovePost }
func (UserJoin) Kind() UserOperation      { return OpUserJoin }
func (CommunityJoin) Kind() UserOperation { return OpCommunityJoin }
func (ModJoin) Kind() UserOperation       { return OpModJoin }
func (PostJoin) Kind() UserOperation      { return OpPostJoin }
func (GetModlog) Kind() UserOperation     { return OpGetModlog }

func (LockPost) isOperation()      {}
func (FeaturePost) isOperation()   {}
func (RemovePost) isOperation()    {}
func (UserJoin) isOperation()      {}
func (CommunityJoin) isOperation() {}
func (ModJoin) isOperation()       {}
func (PostJoin) isOperation()      {}
func (GetModlog) isOperation()     {}

// PostResponse is returned by every post moderation operation and is also
// the payload of the notification pushed to the post room.
type PostResponse struct {
	PostID  PostID `json:"post_id"`
	Post    Post   `json:"post"`
	Success bool   `json:"success"`
}

type JoinResponse struct {
	Joined bool `json:"joined"`
}

type ModlogResponse struct {
	Records []AuditRecord `json:"records"`
	Cursor  *string       `json:"cursor,omitempty"`
}
