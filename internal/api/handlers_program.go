package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/stillpoint-health/backend/internal/api/respond"
	"github.com/stillpoint-health/backend/internal/api/validate"
	"github.com/stillpoint-health/backend/internal/auth"
	"github.com/stillpoint-health/backend/internal/model"
	"github.com/stillpoint-health/backend/internal/services"
)

type ProgramHandler struct {
	svc *services.ProgramService
}

func NewProgramHandler(svc *services.ProgramService) *ProgramHandler {
	return &ProgramHandler{svc: svc}
}

// GetProgram handles GET /program.
func (h *ProgramHandler) GetProgram(w http.ResponseWriter, r *http.Request) {
	tree, err := h.svc.Program(r.Context())
	if err != nil {
		respond.WriteFromError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, tree)
}

// CreateResponse handles POST /exercise/{id}/responses.
func (h *ProgramHandler) CreateResponse(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		respond.WriteError(w, http.StatusUnauthorized, model.ErrUnauthorized.Error())
		return
	}

	exerciseID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respond.WriteBadRequest(w, "exercise id must be an integer")
		return
	}

	var in struct {
		ResponseData json.RawMessage `json:"response_data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if err := validate.JSONObject("response_data", in.ResponseData); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	rows, err := h.svc.SaveResponse(r.Context(), identity.ID, exerciseID, in.ResponseData)
	if err != nil {
		respond.WriteFromError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"status": "success",
		"data":   rows,
	})
}
