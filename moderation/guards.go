package moderation

import (
	"context"
	"fmt"
	"forum-lab/contract"
	"forum-lab/domain"
)

func CheckSiteBan(store contract.IStore) Guard {
	return func(ctx context.Context, actor domain.Identity, _ Target) GuardResult {
		person, err := store.ReadPerson(ctx, actor.PersonID)
		if err != nil {
			return Broken(fmt.Errorf("read person %d: %w", actor.PersonID, err))
		}
		if person.Banned {
			return Fail(domain.ActorSiteBanned)
		}
		return Pass()
	}
}

func CheckCommunityBan(store contract.IStore) Guard {
	return func(ctx context.Context, actor domain.Identity, target Target) GuardResult {
		banned, err := store.IsBannedFromCommunity(ctx, actor.PersonID, target.CommunityID)
		if err != nil {
			return Broken(fmt.Errorf("read community ban: %w", err))
		}
		if banned {
			return Fail(domain.ActorBanned)
		}
		return Pass()
	}
}

func CheckCommunityDeletedOrRemoved(store contract.IStore) Guard {
	return func(ctx context.Context, _ domain.Identity, target Target) GuardResult {
		community, err := store.ReadCommunity(ctx, target.CommunityID)
		if err != nil {
			return Broken(fmt.Errorf("read community %d: %w", target.CommunityID, err))
		}
		switch {
		case community.Deleted:
			return Fail(domain.CommunityDeleted)
		case community.Removed:
			return Fail(domain.CommunityRemoved)
		default:
			return Pass()
		}
	}
}

// IsModOrAdmin lets site admins through without a moderator lookup.
func IsModOrAdmin(store contract.IStore) Guard {
	return func(ctx context.Context, actor domain.Identity, target Target) GuardResult {
		if actor.Admin {
			return Pass()
		}
		isMod, err := store.IsModerator(ctx, actor.PersonID, target.CommunityID)
		if err != nil {
			return Broken(fmt.Errorf("read moderators: %w", err))
		}
		if !isMod {
			return Fail(domain.InsufficientRole)
		}
		return Pass()
	}
}
