package auth

import (
	"context"
	"fmt"
	"forum-lab/contract"
	"forum-lab/domain"
	"forum-lab/errors"
	"log/slog"
	"strings"
)

// TokenResolver turns a JWT credential into the identity of a live person.
type TokenResolver struct {
	log   *slog.Logger
	store contract.IStore
	key   []byte
}

func NewTokenResolver(log *slog.Logger, store contract.IStore, key []byte) *TokenResolver {
	return &TokenResolver{log: log, store: store, key: key}
}

func (r *TokenResolver) Resolve(ctx context.Context, credential string) (domain.Identity, error) {
	credential = strings.TrimSpace(strings.TrimPrefix(credential, "Bearer "))
	if credential == "" {
		return domain.Identity{}, errors.ErrUnauthenticated
	}

	claims, err := ValidateToken(r.key, credential)
	if err != nil {
		r.log.Debug("Invalid token", "error", err)
		return domain.Identity{}, fmt.Errorf("%w: %v", errors.ErrUnauthenticated, err)
	}

	person, err := r.store.ReadPerson(ctx, claims.PersonID)
	switch {
	case errors.Is(err, errors.ErrNotFound):
		return domain.Identity{}, fmt.Errorf("%w: person %d is gone", errors.ErrUnauthenticated, claims.PersonID)
	case err != nil:
		return domain.Identity{}, err
	case person.LocalUserID != claims.LocalUserID:
		return domain.Identity{}, fmt.Errorf("%w: local user mismatch", errors.ErrUnauthenticated)
	}

	return domain.Identity{
		PersonID:    person.ID,
		LocalUserID: person.LocalUserID,
		Name:        person.Name,
		Admin:       person.Admin,
	}, nil
}
