package api

import (
	"net/http"

	"github.com/stillpoint-health/backend/internal/api/respond"
	"github.com/stillpoint-health/backend/internal/auth"
	"github.com/stillpoint-health/backend/internal/model"
	"github.com/stillpoint-health/backend/internal/services"
)

type ProgressHandler struct {
	svc *services.ProgressService
}

func NewProgressHandler(svc *services.ProgressService) *ProgressHandler {
	return &ProgressHandler{svc: svc}
}

// GetProgress handles GET /progress.
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		respond.WriteError(w, http.StatusUnauthorized, model.ErrUnauthorized.Error())
		return
	}

	p, err := h.svc.Progress(r.Context(), identity.ID)
	if err != nil {
		respond.WriteFromError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, p)
}
