package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/participant-tracker/internal/app"
	"github.com/MKhiriev/participant-tracker/internal/service"
	"github.com/MKhiriev/participant-tracker/internal/store"
	"github.com/MKhiriev/participant-tracker/internal/utils"
	"github.com/MKhiriev/participant-tracker/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrWeakPassword:        http.StatusBadRequest,
	service.ErrIdentityMismatch:    http.StatusBadRequest,
	service.ErrInvalidTestKind:     http.StatusBadRequest,
	validators.ErrRequiredField:    http.StatusBadRequest,
	validators.ErrInvalidEmail:     http.StatusBadRequest,
	ErrInvalidQueryParameter:       http.StatusBadRequest,

	service.ErrEmailAlreadyRegistered: http.StatusConflict,
	service.ErrDNIAlreadyRegistered:   http.StatusConflict,
	service.ErrAccountDisabled:        http.StatusConflict,

	service.ErrInvalidCredentials:       http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:  http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	ErrNoPrincipalInContext:             http.StatusUnauthorized,

	service.ErrForbidden: http.StatusForbidden,

	service.ErrUpstreamReadFailed:  http.StatusBadGateway,
	service.ErrUpstreamWriteFailed: http.StatusBadGateway,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrDNIAlreadyExists:   http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	if target := firstMappedError(err); target != nil {
		return errorStatusMap[target]
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text sent to the client for err: the first
// mapped sentinel found walking the wrap chain from the outside in. Server-side
// failures never expose their cause.
func messageFromError(err error) string {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		return app.MsgInternalServerError
	}

	if target := firstMappedError(err); target != nil {
		return target.Error()
	}
	return http.StatusText(status)
}

func firstMappedError(err error) error {
	if err == nil {
		return nil
	}
	for target := range errorStatusMap {
		if err == target {
			return target
		}
	}

	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			if target := firstMappedError(inner); target != nil {
				return target
			}
		}
	case interface{ Unwrap() error }:
		return firstMappedError(e.Unwrap())
	}
	return nil
}
