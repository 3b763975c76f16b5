package api

import (
	"net/http"

	"github.com/stillpoint-health/backend/internal/api/respond"
	"github.com/stillpoint-health/backend/internal/auth"
	"github.com/stillpoint-health/backend/internal/model"
)

// Root handles GET / so load balancers and humans get a sign of life.
func Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Stillpoint API is running!",
	})
}

// Me handles GET /me, echoing the identity resolved by the auth middleware.
func Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		respond.WriteError(w, http.StatusUnauthorized, model.ErrUnauthorized.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, identity)
}
