package auth

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stillpoint-health/backend/internal/api/respond"
	"github.com/stillpoint-health/backend/internal/model"
)

// Middleware verifies the bearer credential on every request and stores the
// resolved identity in the request context.
func Middleware(v Verifier) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := v.Verify(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				respond.WriteFromError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireRole rejects authenticated callers whose profile role differs.
func RequireRole(role string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFrom(r.Context())
			if !ok {
				respond.WriteFromError(w, fmt.Errorf("%w: no identity", model.ErrUnauthorized))
				return
			}
			if identity.Role != role {
				respond.WriteFromError(w, fmt.Errorf("%w: requires %s role", model.ErrForbidden, role))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
