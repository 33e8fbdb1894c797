// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// notFoundOnWrongMethod is registered as the router's MethodNotAllowed
// handler. chi only calls it when the path matched but the method did not,
// and such requests are answered with 404 instead of 405 so callers cannot
// probe which routes exist. chi copies the handler into sub-routers, so
// mounted route groups behave the same way.
func notFoundOnWrongMethod(w http.ResponseWriter, r *http.Request) {
	http.NotFound(w, r)
}
