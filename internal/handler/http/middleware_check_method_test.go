// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// newMethodRouter mirrors the shape of Init: flat routes, a mounted
// sub-router and a parameterised path.
func newMethodRouter() *chi.Mux {
	ok := func(status int) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(status) }
	}

	router := chi.NewRouter()
	router.Get("/api/users/me", ok(http.StatusOK))
	router.Patch("/api/users/me", ok(http.StatusOK))
	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", ok(http.StatusOK))
	})
	router.Get("/api/users/{id}", ok(http.StatusAccepted))

	router.MethodNotAllowed(notFoundOnWrongMethod)
	return router
}

func TestNotFoundOnWrongMethod(t *testing.T) {
	router := newMethodRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"registered GET", http.MethodGet, "/api/users/me", http.StatusOK},
		{"registered PATCH", http.MethodPatch, "/api/users/me", http.StatusOK},
		{"DELETE on flat route", http.MethodDelete, "/api/users/me", http.StatusNotFound},
		{"PUT on flat route", http.MethodPut, "/api/users/me", http.StatusNotFound},
		{"registered sub-router route", http.MethodPost, "/api/auth/login", http.StatusOK},
		{"GET on sub-router route", http.MethodGet, "/api/auth/login", http.StatusNotFound},
		{"parameterised GET", http.MethodGet, "/api/users/42", http.StatusAccepted},
		{"parameterised POST", http.MethodPost, "/api/users/42", http.StatusNotFound},
		{"unknown path", http.MethodGet, "/api/nothing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}
