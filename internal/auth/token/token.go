package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainErrors "github.com/kakao-farmer/platform-api/internal/domain/errors"
)

type Claims struct {
	jwt.RegisteredClaims
}

// Codec issues and validates HS256 access tokens. The signing secret is
// process-wide configuration; it is never logged and never appears in
// the token itself.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token whose subject is the username and whose expiry is
// now plus the configured TTL.
func (c *Codec) Issue(subject string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(c.ttl)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, domainErrors.WrapInternal(err, "sign token")
	}
	return signed, exp, nil
}

// Decode validates raw and returns its claims. Callers see exactly two
// failure kinds: ErrExpiredToken for a structurally valid token past its
// expiry, ErrInvalidToken for everything else (bad structure, bad
// signature, wrong algorithm, malformed claims).
func (c *Codec) Decode(raw string) (Claims, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, domainErrors.ErrInvalidToken
		}
		return c.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, domainErrors.ErrExpiredToken
		}
		return Claims{}, domainErrors.ErrInvalidToken
	}

	if !tok.Valid {
		return Claims{}, domainErrors.ErrInvalidToken
	}

	if claims.ExpiresAt == nil {
		return Claims{}, domainErrors.ErrInvalidToken
	}

	return claims, nil
}
