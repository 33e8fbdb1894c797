package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/participant-tracker/internal/app"
	"github.com/MKhiriev/participant-tracker/internal/logger"
	"github.com/MKhiriev/participant-tracker/internal/utils"
	"github.com/MKhiriev/participant-tracker/models"
)

func (h *Handler) getMyProgress(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	email, err := principalEmail(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getMyProgress").Send()
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	progress, err := h.services.ProgressService.GetMyProgress(r.Context(), email)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getMyProgress").Msg("error getting progress")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, progress, http.StatusOK)
}

func (h *Handler) updateMyMedals(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	email, err := principalEmail(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateMyMedals").Send()
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	var req models.UpdateMedalsRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateMyMedals").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	progress, err := h.services.ProgressService.UpdateMedals(r.Context(), email, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateMyMedals").Msg("error updating medals")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, progress, http.StatusOK)
}

func (h *Handler) submitTest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	email, err := principalEmail(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.submitTest").Send()
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	var req models.TestSubmitRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.submitTest").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err = h.services.ProgressService.MarkTestDone(r.Context(), email, req); err != nil {
		log.Err(err).Str("func", "*Handler.submitTest").Msg("error saving test result")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
