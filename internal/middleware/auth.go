package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/eventlane/eventlane-go/internal/crypto"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "auth-token"

type contextKey string

const emailKey contextKey = "email"

// SessionAuth returns middleware that validates the session cookie.
// A missing cookie is unauthenticated (401); a present but invalid or
// expired token is forbidden (403). On success the caller's email is
// attached to the request context.
func SessionAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing auth token")
				return
			}

			claims, err := crypto.ValidateSessionToken(cookie.Value, secret)
			if err != nil {
				writeJSONError(w, http.StatusForbidden, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), emailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// EmailFromContext extracts the authenticated email from the request context.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	return email, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
