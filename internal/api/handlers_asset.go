package api

import (
	"net/http"

	"github.com/stillpoint-health/backend/internal/api/respond"
	"github.com/stillpoint-health/backend/internal/services"
)

type AssetHandler struct {
	svc *services.AssetService
}

func NewAssetHandler(svc *services.AssetService) *AssetHandler { return &AssetHandler{svc: svc} }

// ListAssets handles GET /assets.
func (h *AssetHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.Assets(r.Context())
	if err != nil {
		respond.WriteFromError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, rows)
}
