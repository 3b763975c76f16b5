package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stillpoint-health/backend/internal/api/respond"
	"github.com/stillpoint-health/backend/internal/api/validate"
	"github.com/stillpoint-health/backend/internal/services"
)

// SupporterHandler serves the caseload and per-participant timeline views.
// Role enforcement happens in middleware, not here.
type SupporterHandler struct {
	caseload *services.CaseloadService
	timeline *services.TimelineService
}

func NewSupporterHandler(caseload *services.CaseloadService, timeline *services.TimelineService) *SupporterHandler {
	return &SupporterHandler{caseload: caseload, timeline: timeline}
}

// GetCaseload handles GET /supporter/caseload.
func (h *SupporterHandler) GetCaseload(w http.ResponseWriter, r *http.Request) {
	rows, err := h.caseload.Caseload(r.Context())
	if err != nil {
		respond.WriteFromError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, rows)
}

// GetUserTimeline handles GET /supporter/users/{id}.
func (h *SupporterHandler) GetUserTimeline(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]
	if err := validate.NonEmpty("user id", userID); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	items, err := h.timeline.Timeline(r.Context(), userID)
	if err != nil {
		respond.WriteFromError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, items)
}
