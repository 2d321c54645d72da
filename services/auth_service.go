package services

import (
	"context"
	"fmt"
	"forum-lab/auth"
	"forum-lab/contract"
	"forum-lab/domain"
	"forum-lab/errors"
	"time"
)

type IAuthService interface {
	IssueToken(ctx context.Context, personID domain.PersonID) (Token, error)
}

// AuthService hands out session tokens. Sign up and password login belong
// to another service, this one only serves local tooling and demo nodes.
type AuthService struct {
	store    contract.IStore
	key      []byte
	duration time.Duration
}

type Token string

func (t Token) String() string {
	return string(t)
}

func NewAuthService(store contract.IStore, key []byte, duration time.Duration) *AuthService {
	return &AuthService{store: store, key: key, duration: duration}
}

func (s *AuthService) IssueToken(ctx context.Context, personID domain.PersonID) (Token, error) {
	person, err := s.store.ReadPerson(ctx, personID)
	if err != nil {
		return "", err
	}
	if person.Banned {
		return "", errors.NewGuardRejected(domain.ActorSiteBanned)
	}

	token, err := auth.GenerateToken(s.key, person, s.duration)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrTokenGeneration, err)
	}
	return Token(token), nil
}
