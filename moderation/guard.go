package moderation

import (
	"context"
	"forum-lab/contract"
	"forum-lab/domain"
	"forum-lab/errors"
)

// Target is the entity an operation acts on, as loaded by the pipeline.
type Target struct {
	Post        *domain.Post
	CommunityID domain.CommunityID
}

func PostTarget(post domain.Post) Target {
	return Target{Post: &post, CommunityID: post.CommunityID}
}

func CommunityTarget(id domain.CommunityID) Target {
	return Target{CommunityID: id}
}

// GuardResult is either a pass, a rejection with a reason, or an error when
// the guard could not read what it needed.
type GuardResult struct {
	Reason domain.RejectReason
	Err    error
}

func Pass() GuardResult                           { return GuardResult{} }
func Fail(reason domain.RejectReason) GuardResult { return GuardResult{Reason: reason} }
func Broken(err error) GuardResult                { return GuardResult{Err: err} }

func (r GuardResult) Passed() bool {
	return r.Reason == "" && r.Err == nil
}

// Guard is a read-only authorization predicate.
type Guard func(ctx context.Context, actor domain.Identity, target Target) GuardResult

// Chain evaluates guards in order and stops at the first failure.
// Order matters: a banned moderator is rejected as banned, not as a moderator.
type Chain []Guard

func (c Chain) Evaluate(ctx context.Context, actor domain.Identity, target Target) error {
	for _, guard := range c {
		result := guard(ctx, actor, target)
		if result.Err != nil {
			return result.Err
		}
		if result.Reason != "" {
			return errors.NewGuardRejected(result.Reason)
		}
	}
	return nil
}

// ModeratorChain is the chain guarding every post moderation operation.
func ModeratorChain(store contract.IStore) Chain {
	return Chain{
		CheckSiteBan(store),
		CheckCommunityBan(store),
		CheckCommunityDeletedOrRemoved(store),
		IsModOrAdmin(store),
	}
}
