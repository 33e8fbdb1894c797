// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the response-body messages shared by the HTTP handlers
// that are not tied to a single service error.
package app

const (
	// MsgInvalidJSON answers a request body that cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInternalServerError hides the cause of server-side failures.
	MsgInternalServerError = "internal server error"
)
