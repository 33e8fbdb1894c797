package models

// Questionnaire kinds accepted by the test submission endpoint.
const (
	TestKindInitial = "test-inicial"
	TestKindExit    = "test-salida"
)

// Age ranges offered on the signup form.
const (
	AgeRangeTeen   = "adolescente"
	AgeRangeAdult  = "adulto"
	AgeRangeSenior = "adulto_mayor"
)

// SignupRequest is the payload of the account registration form.
type SignupRequest struct {
	Email    string `json:"email"`
	DNI      string `json:"dni"`
	Password string `json:"password"`

	// Municipality is stored as the user's residence city.
	Municipality string `json:"municipio"`
	// Neighborhood is stored as the user's subregion.
	Neighborhood string `json:"barrio"`

	FullName string `json:"nombresApellidos"`

	// AgeRange is one of "adolescente", "adulto", "adulto_mayor".
	AgeRange string `json:"ageRange"`

	// Mobile is entered without the country prefix.
	Mobile string `json:"celular"`
	Gender string `json:"genero"`

	// Focus is stored as the user's differential focus.
	Focus string `json:"enfoque"`
}

// LoginRequest carries user credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyIdentityRequest asks whether an email and a document number belong
// to the same account.
type VerifyIdentityRequest struct {
	Email string `json:"email"`
	DNI   string `json:"dni"`
}

// ResetPasswordRequest replaces the password of the account identified by
// email once the document number matches.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	DNI         string `json:"dni"`
	NewPassword string `json:"newPassword"`
}

// UpdateUserRequest is a sparse profile update. A nil field is left
// untouched; a non-nil field overwrites the stored value, even when empty.
type UpdateUserRequest struct {
	Name *string `json:"name"`

	// Phone is usually entered without the country prefix.
	Phone    *string `json:"phone"`
	AvatarID *int    `json:"avatarId"`

	Gender       *string `json:"genero"`
	Municipality *string `json:"municipio"`
	Neighborhood *string `json:"barrio"`
	Focus        *string `json:"enfoque"`
}

// TestSubmitRequest is a completed questionnaire.
type TestSubmitRequest struct {
	// Kind is "test-inicial" or "test-salida", compared case-insensitively.
	Kind string `json:"kind"`

	// Answers is ordered by question. Only the initial test is scored.
	Answers []Answer `json:"answers"`

	// SubmittedAt is informational and only logged.
	SubmittedAt string `json:"submittedAt,omitempty"`
}

// UpdateMedalsRequest holds optional medal overrides. A nil flag keeps the
// value currently stored by the progress service.
type UpdateMedalsRequest struct {
	M1 *bool `json:"m1"`
	M2 *bool `json:"m2"`
	M3 *bool `json:"m3"`
	M4 *bool `json:"m4"`
}
