package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	identityDomain "github.com/skywalker/milestones/internal/identity/domain"
)

// tokenService implements TokenService using HMAC-SHA256 signed JWTs.
// Issue and Verify are pure computations over the immutable signing key;
// they never block and hold no mutable state.
type tokenService struct {
	key SigningKey
	ttl time.Duration
}

// NewTokenService creates a TokenService signing with the given key and
// issuing tokens that expire after ttl.
func NewTokenService(key SigningKey, ttl time.Duration) TokenService {
	return &tokenService{
		key: key,
		ttl: ttl,
	}
}

// Issue builds a compact JWS with subject, issued-at and expiry claims,
// signed with HMAC-SHA256 under the signing key.
func (t *tokenService) Issue(subject string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(t.key))
	if err != nil {
		return "", identityDomain.ErrTokenMalformed
	}

	return signed, nil
}

// Verify parses the token string, recomputes the signature over the header and
// claims, and evaluates expiry relative to now. The three failure modes stay
// distinguishable for diagnostics even though callers collapse them to a
// single unauthenticated response.
func (t *tokenService) Verify(tokenString string, now time.Time) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)

	var registered jwt.RegisteredClaims
	token, err := parser.ParseWithClaims(tokenString, &registered, func(*jwt.Token) (any, error) {
		return []byte(t.key), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, identityDomain.ErrTokenSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, identityDomain.ErrTokenExpired
		default:
			return nil, identityDomain.ErrTokenMalformed
		}
	}

	if !token.Valid || registered.Subject == "" || registered.IssuedAt == nil {
		return nil, identityDomain.ErrTokenMalformed
	}

	claims := &Claims{
		Subject:   registered.Subject,
		IssuedAt:  registered.IssuedAt.Time,
		ExpiresAt: registered.ExpiresAt.Time,
	}

	return claims, nil
}

// TTL returns the configured token lifetime.
func (t *tokenService) TTL() time.Duration {
	return t.ttl
}
