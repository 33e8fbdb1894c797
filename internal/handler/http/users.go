package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/participant-tracker/internal/app"
	"github.com/MKhiriev/participant-tracker/internal/logger"
	"github.com/MKhiriev/participant-tracker/internal/utils"
	"github.com/MKhiriev/participant-tracker/models"
)

func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	email, err := principalEmail(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getMe").Send()
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	user, err := h.services.UserService.GetMe(r.Context(), email)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getMe").Msg("error getting user profile")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.NewUserMe(user), http.StatusOK)
}

func (h *Handler) patchMe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	email, err := principalEmail(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.patchMe").Send()
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	var req models.UpdateUserRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.patchMe").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.PatchUser(r.Context(), email, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.patchMe").Msg("error updating user profile")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.NewUserMe(user), http.StatusOK)
}
