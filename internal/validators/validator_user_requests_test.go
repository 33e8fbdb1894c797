package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/participant-tracker/models"
)

func validSignup() models.SignupRequest {
	return models.SignupRequest{
		Email:        "ana@example.com",
		DNI:          "1020304050",
		Password:     "s3cret-pass",
		Municipality: "Medellin",
		Neighborhood: "Laureles",
		FullName:     "Ana Maria Restrepo",
		AgeRange:     models.AgeRangeAdult,
		Mobile:       "3001234567",
		Gender:       "mujer",
		Focus:        "ninguno",
	}
}

// ─────────────────────────────────────────────
// Signup
// ─────────────────────────────────────────────

func TestValidate_Signup(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.SignupRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.SignupRequest) {}},
		{name: "blank email", mutate: func(r *models.SignupRequest) { r.Email = "  " }, wantErr: ErrRequiredField},
		{name: "malformed email", mutate: func(r *models.SignupRequest) { r.Email = "ana.example.com" }, wantErr: ErrInvalidEmail},
		{name: "display name email", mutate: func(r *models.SignupRequest) { r.Email = "Ana <ana@example.com>" }, wantErr: ErrInvalidEmail},
		{name: "blank dni", mutate: func(r *models.SignupRequest) { r.DNI = "" }, wantErr: ErrRequiredField},
		{name: "blank password", mutate: func(r *models.SignupRequest) { r.Password = "" }, wantErr: ErrRequiredField},
		{name: "blank municipio", mutate: func(r *models.SignupRequest) { r.Municipality = "" }, wantErr: ErrRequiredField},
		{name: "blank barrio", mutate: func(r *models.SignupRequest) { r.Neighborhood = "" }, wantErr: ErrRequiredField},
		{name: "blank name", mutate: func(r *models.SignupRequest) { r.FullName = "\t" }, wantErr: ErrRequiredField},
		{name: "blank age range", mutate: func(r *models.SignupRequest) { r.AgeRange = "" }, wantErr: ErrRequiredField},
		{name: "blank celular", mutate: func(r *models.SignupRequest) { r.Mobile = "" }, wantErr: ErrRequiredField},
		{name: "blank genero", mutate: func(r *models.SignupRequest) { r.Gender = "" }, wantErr: ErrRequiredField},
		{name: "blank enfoque", mutate: func(r *models.SignupRequest) { r.Focus = "" }, wantErr: ErrRequiredField},
	}

	v := NewUserRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			req := validSignup()
			tt.mutate(&req)

			// Act
			err := v.Validate(context.Background(), req)

			// Assert
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Signup_Pointer(t *testing.T) {
	req := validSignup()
	req.DNI = ""

	err := NewUserRequestValidator().Validate(context.Background(), &req)

	require.ErrorIs(t, err, ErrRequiredField)
	assert.Contains(t, err.Error(), FieldDNI)
}

func TestValidate_Signup_SelectedFields(t *testing.T) {
	req := models.SignupRequest{Email: "ana@example.com"}
	v := NewUserRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), req, FieldEmail))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldEmail, FieldDNI), ErrRequiredField)
	assert.ErrorIs(t, v.Validate(context.Background(), req, "nickname"), ErrUnknownField)
}

// ─────────────────────────────────────────────
// Login / identity / reset
// ─────────────────────────────────────────────

func TestValidate_OtherRequests(t *testing.T) {
	tests := []struct {
		name    string
		obj     any
		wantErr error
	}{
		{name: "login ok", obj: models.LoginRequest{Email: "a@b.co", Password: "x"}},
		{name: "login no password", obj: &models.LoginRequest{Email: "a@b.co"}, wantErr: ErrRequiredField},
		{name: "login no email", obj: models.LoginRequest{Password: "x"}, wantErr: ErrRequiredField},
		{name: "verify ok", obj: models.VerifyIdentityRequest{Email: "a@b.co", DNI: "1"}},
		{name: "verify no dni", obj: &models.VerifyIdentityRequest{Email: "a@b.co"}, wantErr: ErrRequiredField},
		{name: "reset ok", obj: models.ResetPasswordRequest{Email: "a@b.co", DNI: "1", NewPassword: "p"}},
		{name: "reset no password", obj: &models.ResetPasswordRequest{Email: "a@b.co", DNI: "1"}, wantErr: ErrRequiredField},
		{name: "unsupported", obj: models.UpdateUserRequest{}, wantErr: ErrUnsupportedType},
		{name: "nil", obj: nil, wantErr: ErrUnsupportedType},
	}

	v := NewUserRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.obj)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
