package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stillpoint-health/backend/internal/api/respond"
	"github.com/stillpoint-health/backend/internal/api/validate"
	"github.com/stillpoint-health/backend/internal/auth"
	"github.com/stillpoint-health/backend/internal/model"
	"github.com/stillpoint-health/backend/internal/services"
)

type MessageHandler struct {
	svc *services.MessageService
}

func NewMessageHandler(svc *services.MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

// SendMessage handles POST /messages.
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		respond.WriteError(w, http.StatusUnauthorized, model.ErrUnauthorized.Error())
		return
	}

	var msg model.Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if err := validate.NonEmpty("recipient_id", msg.RecipientID); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := validate.NonEmpty("content", msg.Content); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	out, err := h.svc.Send(r.Context(), identity, &msg)
	if err != nil {
		respond.WriteFromError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// GetThread handles GET /messages/thread/{id}.
func (h *MessageHandler) GetThread(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		respond.WriteError(w, http.StatusUnauthorized, model.ErrUnauthorized.Error())
		return
	}

	otherID := mux.Vars(r)["id"]
	if err := validate.NonEmpty("user id", otherID); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	msgs, err := h.svc.Thread(r.Context(), identity.ID, otherID)
	if err != nil {
		respond.WriteFromError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, msgs)
}
