package services

import (
	"context"
	"fmt"
	"forum-lab/auth"
	"forum-lab/contract"
	"forum-lab/domain"
	"forum-lab/errors"
	"forum-lab/moderation"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// postRoute is how one post moderation kind goes through the pipeline.
type postRoute struct {
	chain  moderation.Chain
	action domain.AuditAction
	// communityRoom also notifies the community listing, where featured and
	// removed posts change what is shown.
	communityRoom bool
	// excludeOrigin skips the connection the operation came from, it already
	// got the response as the reply to its request.
	excludeOrigin bool
}

// postMutation is the part of a post moderation operation the pipeline needs.
type postMutation struct {
	kind   domain.UserOperation
	auth   string
	postID domain.PostID
	form   domain.PostUpdateForm
	reason *string
}

// OperationService performs operations received from any transport.
// Post moderation goes through authorize, mutate, record then notify.
// Joins only subscribe the calling connection to a room.
type OperationService struct {
	log      *slog.Logger
	store    contract.IStore
	resolver contract.IIdentityResolver
	registry contract.ISessionRegistry
	hub      contract.IHub
	censor   contract.ICensor
	routes   map[domain.UserOperation]postRoute
	now      func() time.Time
}

func NewOperationService(
	log *slog.Logger,
	store contract.IStore,
	resolver contract.IIdentityResolver,
	registry contract.ISessionRegistry,
	hub contract.IHub,
	censor contract.ICensor,
) *OperationService {
	chain := moderation.ModeratorChain(store)
	return &OperationService{
		log:      log,
		store:    store,
		resolver: resolver,
		registry: registry,
		hub:      hub,
		censor:   censor,
		routes: map[domain.UserOperation]postRoute{
			domain.OpLockPost:    {chain: chain, action: domain.ActionLockPost, excludeOrigin: true},
			domain.OpFeaturePost: {chain: chain, action: domain.ActionFeaturePost, communityRoom: true, excludeOrigin: true},
			domain.OpRemovePost:  {chain: chain, action: domain.ActionRemovePost, communityRoom: true, excludeOrigin: true},
		},
		now: time.Now,
	}
}

// Perform runs op on behalf of the origin connection, nil when the
// operation did not come over a live connection.
func (s *OperationService) Perform(ctx context.Context, op domain.Operation, origin *domain.ConnectionID) (any, error) {
	if err := auth.ValidateOperation(op); err != nil {
		return nil, err
	}

	switch o := op.(type) {
	case domain.LockPost:
		return s.mutatePost(ctx, postMutation{
			kind:   o.Kind(),
			auth:   o.Auth,
			postID: o.PostID,
			form:   domain.PostUpdateForm{Locked: lo.ToPtr(o.Locked)},
		}, origin)
	case domain.FeaturePost:
		return s.mutatePost(ctx, postMutation{
			kind:   o.Kind(),
			auth:   o.Auth,
			postID: o.PostID,
			form:   domain.PostUpdateForm{Featured: lo.ToPtr(o.Featured)},
		}, origin)
	case domain.RemovePost:
		return s.mutatePost(ctx, postMutation{
			kind:   o.Kind(),
			auth:   o.Auth,
			postID: o.PostID,
			form:   domain.PostUpdateForm{Removed: lo.ToPtr(o.Removed)},
			reason: o.Reason,
		}, origin)
	case domain.UserJoin:
		return s.userJoin(ctx, o, origin)
	case domain.CommunityJoin:
		return s.join(o.Kind(), domain.CommunityRoom(o.CommunityID), origin), nil
	case domain.ModJoin:
		return s.join(o.Kind(), domain.ModRoom(o.CommunityID), origin), nil
	case domain.PostJoin:
		return s.join(o.Kind(), domain.PostRoom(o.PostID), origin), nil
	case domain.GetModlog:
		return s.modlog(ctx, o)
	default:
		return nil, fmt.Errorf("%w: %T", errors.ErrUnknownOperation, op)
	}
}

func (s *OperationService) mutatePost(ctx context.Context, m postMutation,
	origin *domain.ConnectionID) (domain.PostResponse, error) {
	route, ok := s.routes[m.kind]
	if !ok {
		return domain.PostResponse{}, fmt.Errorf("%w: %s", errors.ErrUnknownOperation, m.kind)
	}
	log := s.log.With("op", m.kind, "post_id", m.postID)
	log.Debug("Received")

	identity, err := s.resolver.Resolve(ctx, m.auth)
	if err != nil {
		return domain.PostResponse{}, err
	}
	post, err := s.store.ReadPost(ctx, m.postID)
	if err != nil {
		return domain.PostResponse{}, err
	}

	log.Debug("Authorizing", "person_id", identity.PersonID, "community_id", post.CommunityID)
	if err := route.chain.Evaluate(ctx, identity, moderation.PostTarget(post)); err != nil {
		var rejected *errors.GuardRejectedError
		if errors.As(err, &rejected) {
			log.Debug("Rejected", "reason", rejected.Reason)
		} else {
			log.Error("Failed", "error", err)
		}
		return domain.PostResponse{}, err
	}

	log.Debug("Mutating")
	at := s.now().UTC()
	record := domain.AuditRecord{
		ID:          uuid.New(),
		Action:      route.action,
		ActorID:     identity.PersonID,
		PostID:      post.ID,
		CommunityID: post.CommunityID,
		Locked:      m.form.Locked,
		Featured:    m.form.Featured,
		Removed:     m.form.Removed,
		Reason:      s.censorReason(m.reason),
		At:          at,
	}
	var updated domain.Post
	err = s.store.RunInTx(ctx, func(tx contract.IStoreTx) error {
		var err error
		if updated, err = tx.UpdatePost(post.ID, m.form, at); err != nil {
			return &errors.MutationFailedError{Cause: err}
		}
		if err := tx.AppendAudit(record); err != nil {
			return &errors.AuditWriteFailedError{Cause: err}
		}
		return nil
	})
	if err != nil {
		err = asMutationFailure(err)
		log.Error("Failed", "error", err)
		return domain.PostResponse{}, err
	}
	log.Debug("Recorded", "audit_id", record.ID)

	response := domain.PostResponse{PostID: updated.ID, Post: updated, Success: true}
	// Committed, the caller leaving must not hide it from the rooms.
	s.publish(context.WithoutCancel(ctx), log, m.kind, route, response, origin)
	log.Debug("Done")
	return response, nil
}

// asMutationFailure keeps typed pipeline failures and wraps anything else
// coming out of the transaction, such as a commit conflict.
func asMutationFailure(err error) error {
	var (
		mutation *errors.MutationFailedError
		audit    *errors.AuditWriteFailedError
	)
	if errors.As(err, &mutation) || errors.As(err, &audit) {
		return err
	}
	return &errors.MutationFailedError{Cause: err}
}

func (s *OperationService) censorReason(reason *string) *string {
	if reason == nil || s.censor == nil {
		return reason
	}
	return lo.ToPtr(s.censor.Censor(*reason))
}

func (s *OperationService) publish(ctx context.Context, log *slog.Logger, kind domain.UserOperation,
	route postRoute, response domain.PostResponse, origin *domain.ConnectionID) {
	n := domain.Notification{
		Op:       kind,
		TargetID: int64(response.PostID),
		Payload:  response,
		Origin:   origin,
	}
	rooms := []domain.Room{domain.PostRoom(response.PostID)}
	if route.communityRoom {
		rooms = append(rooms, domain.CommunityRoom(response.Post.CommunityID))
	}

	for _, room := range rooms {
		var delivery contract.Delivery
		if route.excludeOrigin && origin != nil {
			delivery = s.hub.PublishExcluding(ctx, room, n, *origin)
		} else {
			delivery = s.hub.Publish(ctx, room, n)
		}
		log.Debug("Published", "room", room.String(),
			"delivered", delivery.Delivered, "dropped", delivery.Dropped, "excluded", delivery.Excluded)
		if delivery.Dropped > 0 {
			log.Warn(fmt.Sprintf("%d connections of %s missed the notification", delivery.Dropped, room))
		}
	}
}

func (s *OperationService) userJoin(ctx context.Context, op domain.UserJoin,
	origin *domain.ConnectionID) (domain.JoinResponse, error) {
	identity, err := s.resolver.Resolve(ctx, op.Auth)
	if err != nil {
		return domain.JoinResponse{}, err
	}
	return s.join(op.Kind(), domain.UserRoom(identity.LocalUserID), origin), nil
}

// join subscribes the origin connection. Without one, as over HTTP, there is
// nothing to subscribe and the join is still acknowledged.
func (s *OperationService) join(kind domain.UserOperation, room domain.Room,
	origin *domain.ConnectionID) domain.JoinResponse {
	if origin == nil {
		return domain.JoinResponse{Joined: true}
	}
	if err := s.registry.Join(*origin, room); err != nil {
		// The connection closed while its join was in flight.
		s.log.Warn("Join ignored", "op", kind, "room", room.String(), "connection_id", *origin, "error", err)
		return domain.JoinResponse{Joined: true}
	}
	s.log.Debug("Joined", "op", kind, "room", room.String(), "connection_id", *origin)
	return domain.JoinResponse{Joined: true}
}

func (s *OperationService) modlog(ctx context.Context, op domain.GetModlog) (domain.ModlogResponse, error) {
	records, cursor, err := s.store.ListAudit(ctx, contract.AuditFilter{
		PostID: op.PostID,
		Cursor: op.Cursor,
		Limit:  lo.FromPtr(op.Limit),
	})
	if err != nil {
		return domain.ModlogResponse{}, err
	}
	if records == nil {
		records = []domain.AuditRecord{}
	}
	return domain.ModlogResponse{Records: records, Cursor: cursor}, nil
}
