package middleware

import (
	"blogapi/internal/common"
	"blogapi/internal/common/security"
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

// ClaimsCtxKey holds the raw decoded token claims. Resolution to a numeric
// user id happens at the handler, not here.
const ClaimsCtxKey contextKey = "authClaims"

// Authenticator gates a route on a verified bearer token. A missing token is
// 401, a token that fails verification (bad signature, expired) is 403.
// On success the decoded claims are attached to the request context.
func Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())

		if err != nil {
			if errors.Is(err, jwtauth.ErrNoTokenFound) {
				common.RespondWithError(w, http.StatusUnauthorized, "Authorization token required")
			} else {
				common.RespondWithError(w, http.StatusForbidden, "Invalid or expired token")
			}
			return
		}

		if token == nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Authorization token required")
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsCtxKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext returns the raw claims attached by Authenticator.
func ClaimsFromContext(ctx context.Context) (map[string]any, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(map[string]any)
	return claims, ok
}

// UserIDFromContext resolves the attached claims to a numeric user id.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return 0, false
	}
	return security.UserIDFromClaims(claims)
}
