package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/participant-tracker/internal/logger"
	"github.com/MKhiriev/participant-tracker/internal/utils"
)

const (
	defaultPage = 0
	defaultSize = 20
)

func (h *Handler) usersExperienceStatusPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	page, err := intQueryParam(r, "page", defaultPage)
	if err != nil {
		log.Err(err).Str("func", "*Handler.usersExperienceStatusPage").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	size, err := intQueryParam(r, "size", defaultSize)
	if err != nil {
		log.Err(err).Str("func", "*Handler.usersExperienceStatusPage").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.services.ProgressService.UsersExperienceStatusPage(r.Context(), page, size)
	if err != nil {
		log.Err(err).Str("func", "*Handler.usersExperienceStatusPage").Msg("error building experience status page")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) allUsersExperienceStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	report, err := h.services.ProgressService.AllUsersExperienceStatus(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.allUsersExperienceStatus").Msg("error building experience status report")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

// intQueryParam reads an integer query parameter, falling back to def when
// it is absent.
func intQueryParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidQueryParameter, name, raw)
	}
	return v, nil
}
