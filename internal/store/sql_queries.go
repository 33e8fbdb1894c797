// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/participant-tracker/models"
)

const usersTable = "users"

// userColumns is the column order shared by every SELECT and by scanUser.
var userColumns = []string{
	"id",
	"email",
	"dni",
	"password_hash",
	"name",
	"genero",
	"edad",
	"fecha_nacimiento",
	"telefono",
	"celular",
	"email_personal",
	"ciudad_residencia",
	"subregion",
	"tipo_documento_id",
	"enfoque_diferencial",
	"programa",
	"nivel",
	"nivel_riesgo",
	"avatar_id",
	"role",
	"enabled",
	"initial_test_done",
	"exit_test_done",
	"created_at",
	"updated_at",
}

// mutableUserValues maps every column except id to its value on user.
func mutableUserValues(user models.User) map[string]any {
	return map[string]any{
		"email":               user.Email,
		"dni":                 user.DNI,
		"password_hash":       user.PasswordHash,
		"name":                user.Name,
		"genero":              user.Gender,
		"edad":                user.Age,
		"fecha_nacimiento":    user.BirthDate,
		"telefono":            user.Telephone,
		"celular":             user.Mobile,
		"email_personal":      user.PersonalEmail,
		"ciudad_residencia":   user.ResidenceCity,
		"subregion":           user.Subregion,
		"tipo_documento_id":   user.DocumentTypeID,
		"enfoque_diferencial": user.DifferentialFocus,
		"programa":            user.Program,
		"nivel":               user.Level,
		"nivel_riesgo":        user.RiskLevel,
		"avatar_id":           user.AvatarID,
		"role":                user.Role,
		"enabled":             user.Enabled,
		"initial_test_done":   user.InitialTestDone,
		"exit_test_done":      user.ExitTestDone,
		"created_at":          user.CreatedAt,
		"updated_at":          user.UpdatedAt,
	}
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Expr("LOWER(email) = LOWER(?)", email)).
		Limit(1).
		ToSql()
}

func buildExistsByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(usersTable).
		Where(sq.Expr("LOWER(email) = LOWER(?)", email)).
		ToSql()
}

func buildExistsByDNIQuery(b sq.StatementBuilderType, dni string) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(usersTable).
		Where(sq.Eq{"dni": dni}).
		ToSql()
}

func buildCountUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("COUNT(*)").From(usersTable).ToSql()
}

func buildListUsersQuery(b sq.StatementBuilderType, offset, limit int) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		OrderBy("id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
}

func buildListAllUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		OrderBy("id ASC").
		ToSql()
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		SetMap(mutableUserValues(user)).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	values := mutableUserValues(user)
	delete(values, "created_at")

	return b.Update(usersTable).
		SetMap(values).
		Where(sq.Eq{"id": user.ID}).
		ToSql()
}
