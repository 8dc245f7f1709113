package utils // package utils provides helper functions for token creation and hashing

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
	"github.com/google/uuid"       // uuid supplies the unique token id (jti) claim
)

// ErrInvalidToken is returned by ParseAccessToken for any token that cannot
// be accepted: bad signature, wrong algorithm, malformed payload or past
// expiry.  Callers translate it into an HTTP 401.
var ErrInvalidToken = errors.New("invalid token")

// AccessToken represents a signed JWT access token along with its expiry.
// Access tokens are short-lived and carried in the Authorization header on
// every protected request; the server keeps no session table.
type AccessToken struct {
	Token string    // the serialized JWT string
	ID    string    // the jti claim, used as the denylist key on logout
	Exp   time.Time // the UTC expiration time
}

// TokenClaims is the decoded identity a verified access token asserts.
type TokenClaims struct {
	UserID    uint64    // subject (sub) claim
	Role      string    // role claim, gates endpoint access
	TokenID   string    // jti claim
	ExpiresAt time.Time // exp claim
}

// NewAccessToken builds and signs an HS256 JWT for a user.  The claims are
// the subject (user id), the role asserted at login, issued-at, expiry and a
// random token id.  ttlMin controls the token lifetime in minutes.
func NewAccessToken(secret string, userID uint64, role string, ttlMin int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	jti := uuid.NewString()

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"jti":  jti,
		"iat":  now.Unix(),
		"exp":  exp.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, ID: jti, Exp: exp}, nil
}

// ParseAccessToken verifies the signature and expiry of a raw token string
// and decodes its claims.  Only HMAC-signed tokens are accepted; a token
// signed with any other method fails regardless of its payload.
func ParseAccessToken(secret, raw string) (TokenClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return TokenClaims{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, ErrInvalidToken
	}

	out := TokenClaims{}
	switch sub := claims["sub"].(type) {
	case float64:
		out.UserID = uint64(sub)
	default:
		return TokenClaims{}, ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return TokenClaims{}, ErrInvalidToken
	}
	out.Role = role
	if jti, ok := claims["jti"].(string); ok {
		out.TokenID = jti
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0).UTC()
	}
	return out, nil
}
