package http

import (
	"net/http"

	"github.com/MKhiriev/participant-tracker/internal/logger"
	"github.com/MKhiriev/participant-tracker/internal/service"
	"github.com/MKhiriev/participant-tracker/internal/utils"
	"github.com/MKhiriev/participant-tracker/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and, on success, stores the caller's
// id, email and role in the request context (see [utils.WithPrincipal])
// before delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when the header is
// missing or malformed, or when the token is expired or otherwise invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Str("func", "*Handler.auth").Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Msg("error occurred during parsing token")
			http.Error(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
			return
		}

		email, err := token.GetEmail()
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Msg("token carries no subject")
			http.Error(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
			return
		}

		ctx = utils.WithPrincipal(ctx, token.Claims.UserID, email, token.Claims.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminOnly rejects callers whose role is not ADMIN with HTTP 403 Forbidden.
// It must run after auth.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := utils.GetRoleFromContext(r.Context())
		if !ok || role != models.RoleAdmin {
			logger.FromRequest(r).Warn().Str("func", "*Handler.adminOnly").Str("role", role).Msg("admin route denied")
			http.Error(w, service.ErrForbidden.Error(), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// principalEmail returns the email stored by auth.
func principalEmail(r *http.Request) (string, error) {
	email, ok := utils.GetEmailFromContext(r.Context())
	if !ok {
		return "", ErrNoPrincipalInContext
	}
	return email, nil
}
