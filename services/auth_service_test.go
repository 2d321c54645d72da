package services

import (
	"context"
	"forum-lab/auth"
	"forum-lab/domain"
	"forum-lab/errors"
	"forum-lab/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthService_IssueToken(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIStore(ctrl)
	service := NewAuthService(store, signingKey, time.Hour)

	store.EXPECT().ReadPerson(gomock.Any(), domain.PersonID(2)).
		Return(domain.Person{ID: 2, LocalUserID: 20, Name: "moderator"}, nil)

	token, err := service.IssueToken(context.Background(), 2)

	req.NoError(err)
	claims, err := auth.ValidateToken(signingKey, token.String())
	req.NoError(err)
	req.Equal(domain.PersonID(2), claims.PersonID)
	req.Equal(domain.LocalUserID(20), claims.LocalUserID)
}

func TestAuthService_Refuses_Site_Banned_And_Unknown_Persons(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIStore(ctrl)
	service := NewAuthService(store, signingKey, time.Hour)

	store.EXPECT().ReadPerson(gomock.Any(), domain.PersonID(4)).
		Return(domain.Person{ID: 4, LocalUserID: 40, Banned: true}, nil)
	store.EXPECT().ReadPerson(gomock.Any(), domain.PersonID(9)).
		Return(domain.Person{}, errors.ErrNotFound)

	_, err := service.IssueToken(context.Background(), 4)
	req.True(errors.IsRejected(err, domain.ActorSiteBanned))

	_, err = service.IssueToken(context.Background(), 9)
	req.ErrorIs(err, errors.ErrNotFound)
}
