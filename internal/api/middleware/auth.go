package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/mariankubacka/latte-art-bookings-praha/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

const msgUnauthorized = "neplatný administrátorský token"

// AdminAuth guards the admin subrouter with a shared token. An empty
// configured token disables the admin surface entirely.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				handlers.RespondError(w, http.StatusForbidden, msgUnauthorized)
				return
			}

			supplied := r.Header.Get(adminTokenHeader)
			if subtle.ConstantTimeCompare([]byte(supplied), []byte(token)) != 1 {
				handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
