package moderation

import (
	"context"
	"fmt"
	"forum-lab/domain"
	"forum-lab/errors"
	"forum-lab/mocks"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	moderator = domain.Identity{PersonID: 1, LocalUserID: 10, Name: "alice"}
	admin     = domain.Identity{PersonID: 2, LocalUserID: 20, Name: "root", Admin: true}
	post      = domain.Post{ID: 100, CommunityID: 5, CreatorID: 3, Name: "hello"}
)

func TestModeratorChain_Passes_For_Moderator(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockIStore(ctrl)

	// Given the actor moderates a live community and is not banned
	store.EXPECT().ReadPerson(gomock.Any(), moderator.PersonID).Return(domain.Person{ID: moderator.PersonID}, nil)
	store.EXPECT().IsBannedFromCommunity(gomock.Any(), moderator.PersonID, post.CommunityID).Return(false, nil)
	store.EXPECT().ReadCommunity(gomock.Any(), post.CommunityID).Return(domain.Community{ID: post.CommunityID}, nil)
	store.EXPECT().IsModerator(gomock.Any(), moderator.PersonID, post.CommunityID).Return(true, nil)

	// When the chain is evaluated
	err := ModeratorChain(store).Evaluate(context.Background(), moderator, PostTarget(post))

	// Then it passes
	req.NoError(err)
}

func TestModeratorChain_Banned_Moderator_Is_Rejected_As_Banned(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockIStore(ctrl)

	// Given the actor is banned from the community
	store.EXPECT().ReadPerson(gomock.Any(), moderator.PersonID).Return(domain.Person{ID: moderator.PersonID}, nil)
	store.EXPECT().IsBannedFromCommunity(gomock.Any(), moderator.PersonID, post.CommunityID).Return(true, nil)
	// Then the later guards never run
	store.EXPECT().ReadCommunity(gomock.Any(), gomock.Any()).Times(0)
	store.EXPECT().IsModerator(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := ModeratorChain(store).Evaluate(context.Background(), moderator, PostTarget(post))

	req.True(errors.IsRejected(err, domain.ActorBanned))
}

func TestModeratorChain_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		actor     domain.Identity
		person    domain.Person
		banned    bool
		community domain.Community
		isMod     bool
		expected  domain.RejectReason
	}{
		{
			name:     "Site banned",
			actor:    moderator,
			person:   domain.Person{ID: moderator.PersonID, Banned: true},
			expected: domain.ActorSiteBanned,
		},
		{
			name:      "Community deleted",
			actor:     moderator,
			person:    domain.Person{ID: moderator.PersonID},
			community: domain.Community{ID: post.CommunityID, Deleted: true, Removed: true},
			expected:  domain.CommunityDeleted,
		},
		{
			name:      "Community removed",
			actor:     moderator,
			person:    domain.Person{ID: moderator.PersonID},
			community: domain.Community{ID: post.CommunityID, Removed: true},
			expected:  domain.CommunityRemoved,
		},
		{
			name:      "Not a moderator",
			actor:     moderator,
			person:    domain.Person{ID: moderator.PersonID},
			community: domain.Community{ID: post.CommunityID},
			isMod:     false,
			expected:  domain.InsufficientRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			store := mocks.NewMockIStore(ctrl)

			store.EXPECT().ReadPerson(gomock.Any(), tt.actor.PersonID).Return(tt.person, nil)
			store.EXPECT().IsBannedFromCommunity(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.banned, nil).AnyTimes()
			store.EXPECT().ReadCommunity(gomock.Any(), gomock.Any()).Return(tt.community, nil).AnyTimes()
			store.EXPECT().IsModerator(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.isMod, nil).AnyTimes()

			err := ModeratorChain(store).Evaluate(context.Background(), tt.actor, PostTarget(post))

			var rejected *errors.GuardRejectedError
			req.ErrorAs(err, &rejected)
			req.Equal(tt.expected, rejected.Reason)
		})
	}
}

func TestIsModOrAdmin_Admin_Skips_Lookup(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockIStore(ctrl)
	store.EXPECT().IsModerator(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result := IsModOrAdmin(store)(context.Background(), admin, PostTarget(post))

	req.True(result.Passed())
}

func TestChain_Store_Error_Is_Not_A_Rejection(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockIStore(ctrl)
	boom := fmt.Errorf("disk on fire")
	store.EXPECT().ReadPerson(gomock.Any(), gomock.Any()).Return(domain.Person{}, boom)

	err := ModeratorChain(store).Evaluate(context.Background(), moderator, PostTarget(post))

	req.ErrorIs(err, boom)
	var rejected *errors.GuardRejectedError
	req.False(errors.As(err, &rejected))
}

func TestChain_Empty_Passes(t *testing.T) {
	req := require.New(t)
	req.NoError(Chain{}.Evaluate(context.Background(), moderator, CommunityTarget(5)))
}
