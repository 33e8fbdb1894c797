package models

import "time"

// Roles assigned to accounts.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// DefaultDocumentType is the identity document type assigned at signup.
const DefaultDocumentType = "CC"

// User represents a program participant account.
// It carries identity, contact and demographic attributes together with the
// participant's progress flags and computed risk level.
// PasswordHash must never leave trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Email is the login identifier, always stored lower-cased.
	Email string `json:"email"`

	// DNI is the national identity document number. It is also the student
	// identifier used by the external progress service.
	DNI string `json:"dni"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	Name   string `json:"name"`
	Gender string `json:"genero"`

	// Age is the representative age of the range chosen at signup.
	Age       *int       `json:"edad,omitempty"`
	BirthDate *time.Time `json:"fechaNacimiento,omitempty"`

	// Telephone is an optional landline number.
	Telephone *string `json:"telefono,omitempty"`

	// Mobile always carries the country prefix (e.g. "+573001234567").
	Mobile        string  `json:"celular"`
	PersonalEmail *string `json:"emailPersonal,omitempty"`

	ResidenceCity     string `json:"ciudadResidencia"`
	Subregion         string `json:"subregion"`
	DocumentTypeID    string `json:"tipoDocumentoId"`
	DifferentialFocus string `json:"enfoqueDiferencial"`

	Program   *string `json:"programa,omitempty"`
	Level     *string `json:"nivel,omitempty"`
	RiskLevel *string `json:"nivelRiesgo,omitempty"`

	AvatarID int    `json:"avatarId"`
	Role     string `json:"role"`
	Enabled  bool   `json:"enabled"`

	InitialTestDone bool `json:"initialTestDone"`
	ExitTestDone    bool `json:"exitTestDone"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the administrator role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
