package api

import (
	"net/http"

	"github.com/go-chi/jwtauth"
)

// RequireAdmin returns a middleware enforcing a bearer JWT signed with the
// given secret. With an empty secret it is a no-op, which matches the
// original deployment where the admin surface was unauthenticated.
func RequireAdmin(secret string) func(http.Handler) http.Handler {
	if secret == "" {
		return func(next http.Handler) http.Handler { return next }
	}

	tokenAuth := jwtauth.New("HS256", []byte(secret), nil)
	return func(next http.Handler) http.Handler {
		return jwtauth.Verifier(tokenAuth)(jwtauth.Authenticator(next))
	}
}
