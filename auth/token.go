package auth

import (
	"fmt"
	"forum-lab/domain"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "forum-lab"

// Claims defines the data stored inside the JWT.
type Claims struct {
	PersonID    domain.PersonID    `json:"person_id"`
	LocalUserID domain.LocalUserID `json:"local_user_id"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a local user.
func GenerateToken(key []byte, person domain.Person, duration time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		PersonID:    person.ID,
		LocalUserID: person.LocalUserID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", person.LocalUserID),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	// HS256 (HMAC with SHA256)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// ValidateToken parses and validates the signature and expiration of a JWT string.
func ValidateToken(key []byte, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
