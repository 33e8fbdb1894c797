// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/participant-tracker/internal/config"
	"github.com/MKhiriev/participant-tracker/internal/logger"
	"github.com/MKhiriev/participant-tracker/migrations"
)

// Dialect names the SQL backend behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

const sqliteScheme = "sqlite://"

// DB wraps *sql.DB with the dialect-specific pieces the repositories need:
// a query builder with the right placeholder format and an error
// classifier for driver errors.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect Dialect, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		logger:             log,
	}
}

// NewConnection opens the database described by cfg.DSN.
// A DSN starting with "sqlite://" opens an embedded SQLite file (or
// ":memory:"); anything else is handed to the pgx driver.
func NewConnection(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if path, ok := strings.CutPrefix(cfg.DSN, sqliteScheme); ok {
		return NewConnectSQLite(ctx, path, log)
	}

	return NewConnectPostgres(ctx, cfg.DSN, log)
}

// Dialect returns the SQL backend of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate brings the users schema up to date.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, string(db.dialect)); err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Msg("error applying migrations")
		return fmt.Errorf("error applying migrations: %w", err)
	}

	return nil
}
