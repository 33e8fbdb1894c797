// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware and the request
// parsing helpers. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoPrincipalInContext is returned when a protected handler runs
	// without the identity the auth middleware stores in the context.
	ErrNoPrincipalInContext = errors.New("no authenticated user in request context")

	// ErrInvalidQueryParameter is returned when a numeric query parameter
	// cannot be parsed.
	ErrInvalidQueryParameter = errors.New("invalid query parameter")
)
