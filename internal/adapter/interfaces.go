// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the external progress service that
// owns the participants' medal rows.
//
// The primary abstraction is [ProgressSource], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPProgressSource]) and a read-through cache decorator
// ([NewCachedProgressSource]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/participant-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ProgressSource reads and writes the participants' progress rows held by
// the external progress service.
type ProgressSource interface {
	// ReadAll returns every progress row known to the service. An empty
	// service yields an empty, non-nil slice.
	ReadAll(ctx context.Context) ([]models.ProgressRow, error)

	// UpsertMedals replaces the four medal flags of the row identified by
	// studentID, creating the row when it does not exist yet.
	UpsertMedals(ctx context.Context, studentID string, medals models.Medals) error
}

// ProgressCache is the storage a [ProgressSource] decorator caches rows in.
type ProgressCache interface {
	GetProgress(ctx context.Context) ([]models.ProgressRow, error)
	SetProgress(ctx context.Context, rows []models.ProgressRow) error
	InvalidateProgress(ctx context.Context) error
}
