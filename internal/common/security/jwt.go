package security

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenManager issues and verifies the bearer tokens that authenticate API
// requests. The signing secret is passed in explicitly so tests can run with
// their own keys; there is no package-level key state.
type TokenManager struct {
	auth *jwtauth.JWTAuth
	exp  time.Duration
}

func NewTokenManager(secret []byte, exp time.Duration) *TokenManager {
	return &TokenManager{
		auth: jwtauth.New("HS256", secret, nil),
		exp:  exp,
	}
}

// JWTAuth exposes the underlying verifier for the jwtauth middleware chain.
func (tm *TokenManager) JWTAuth() *jwtauth.JWTAuth {
	return tm.auth
}

// Issue signs a token for the given user. The payload shape is canonical:
// a structured claim set with an explicit "id" field.
func (tm *TokenManager) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":  userID,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(tm.exp).Unix(),
	}
	_, tokenString, err := tm.auth.Encode(claims)
	return tokenString, err
}

// UserIDFromClaims extracts the numeric user identity from a decoded claim
// set. JSON decoding does not guarantee a single numeric representation, so
// float64, json.Number and numeric-string forms of the "id" claim are all
// accepted. Returns false for a missing, malformed or non-positive id.
func UserIDFromClaims(claims map[string]any) (int64, bool) {
	raw, ok := claims["id"]
	if !ok {
		return 0, false
	}

	var id int64
	switch v := raw.(type) {
	case float64:
		id = int64(v)
	case int64:
		id = v
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		id = n
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		id = n
	default:
		return 0, false
	}

	if id <= 0 {
		return 0, false
	}
	return id, true
}
