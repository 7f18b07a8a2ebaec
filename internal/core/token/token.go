// Package token mints and verifies the signed bearer tokens that carry a
// caller's identity between requests. Tokens are HS256-signed, time-bounded,
// and never stored server-side.
package token

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mistgo/inventory-api/internal/core/domain"
)

// Identity is the authenticated subject extracted from a verified token.
type Identity struct {
	UserID   int64
	Username string
}

type claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service signs and verifies identity tokens with a process-wide secret.
// It is immutable after construction and safe for concurrent use.
type Service struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

func NewService(secret, issuer, audience string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Issue builds a token for the given user: subject is the decimal user id,
// a username claim rides along, expiry is now + ttl.
func (s *Service) Issue(user *domain.User) (string, error) {
	now := s.now().UTC()
	c := claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

// Verify validates signature, expiry, issuer, and audience, and extracts the
// embedded identity. Every failure collapses to domain.ErrInvalidToken so
// callers cannot tell an expired token from a forged one.
func (s *Service) Verify(tokenString string) (Identity, error) {
	var c claims
	tkn, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil || !tkn.Valid {
		return Identity{}, domain.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return Identity{}, domain.ErrInvalidToken
	}

	return Identity{UserID: userID, Username: c.Username}, nil
}
