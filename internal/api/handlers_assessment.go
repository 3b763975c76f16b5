package api

import (
	"encoding/json"
	"net/http"

	"github.com/stillpoint-health/backend/internal/api/respond"
	"github.com/stillpoint-health/backend/internal/auth"
	"github.com/stillpoint-health/backend/internal/model"
	"github.com/stillpoint-health/backend/internal/services"
)

type AssessmentHandler struct {
	svc *services.AssessmentService
}

func NewAssessmentHandler(svc *services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{svc: svc}
}

// ListAssessments handles GET /assessments.
func (h *AssessmentHandler) ListAssessments(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.List(r.Context())
	if err != nil {
		respond.WriteFromError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, rows)
}

// SubmitAssessment handles POST /assessments. The score is computed here,
// never trusted from the client.
func (h *AssessmentHandler) SubmitAssessment(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		respond.WriteError(w, http.StatusUnauthorized, model.ErrUnauthorized.Error())
		return
	}

	var in struct {
		AssessmentID int64 `json:"assessment_id"`
		Answers      []int `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if in.AssessmentID <= 0 {
		respond.WriteBadRequest(w, "assessment_id is required")
		return
	}
	if in.Answers == nil {
		respond.WriteBadRequest(w, "answers is required")
		return
	}

	result, err := h.svc.Submit(r.Context(), identity.ID, in.AssessmentID, in.Answers)
	if err != nil {
		respond.WriteFromError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, result)
}
