package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version/", h.getServerVersion)

	// routes without authorization
	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", h.signup)
		r.Post("/login", h.login)
		r.Post("/verify-identity", h.verifyIdentity)
		r.Post("/reset-password", h.resetPassword)
	})

	// routes for signed-in participants
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/me", h.getMe)
		r.Patch("/api/users/me", h.patchMe)

		r.Get("/api/progress/me", h.getMyProgress)
		r.Put("/api/progress/me/medals", h.updateMyMedals)
		r.Post("/api/progress/me/tests", h.submitTest)
	})

	// administrative reports
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.adminOnly)

		r.Get("/api/admin/users/experience-status", h.usersExperienceStatusPage)
		r.Get("/api/admin/users/experience-status/all", h.allUsersExperienceStatus)
	})

	router.MethodNotAllowed(notFoundOnWrongMethod)

	return router
}
