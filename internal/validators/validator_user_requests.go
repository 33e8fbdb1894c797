package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/MKhiriev/participant-tracker/models"
)

const (
	FieldEmail        = "email"
	FieldDNI          = "dni"
	FieldPassword     = "password"
	FieldNewPassword  = "newPassword"
	FieldMunicipality = "municipio"
	FieldNeighborhood = "barrio"
	FieldFullName     = "nombresApellidos"
	FieldAgeRange     = "ageRange"
	FieldMobile       = "celular"
	FieldGender       = "genero"
	FieldFocus        = "enfoque"
)

// UserRequestValidator validates the account request payloads.
type UserRequestValidator struct {
}

func NewUserRequestValidator() Validator {
	return &UserRequestValidator{}
}

// Validate checks obj, which must be one of the account request types (or a
// pointer to one). When fields are given only those are checked.
func (v *UserRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.VerifyIdentityRequest:
		return v.validateVerifyIdentity(value, fields...)
	case *models.VerifyIdentityRequest:
		return v.validateVerifyIdentity(*value, fields...)

	case models.ResetPasswordRequest:
		return v.validateResetPassword(value, fields...)
	case *models.ResetPasswordRequest:
		return v.validateResetPassword(*value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

// fieldCheck validates one named field.
type fieldCheck func() error

func (v *UserRequestValidator) validateSignup(req models.SignupRequest, fields ...string) error {
	return runChecks(map[string]fieldCheck{
		FieldEmail:        func() error { return email(req.Email) },
		FieldDNI:          func() error { return required(FieldDNI, req.DNI) },
		FieldPassword:     func() error { return required(FieldPassword, req.Password) },
		FieldMunicipality: func() error { return required(FieldMunicipality, req.Municipality) },
		FieldNeighborhood: func() error { return required(FieldNeighborhood, req.Neighborhood) },
		FieldFullName:     func() error { return required(FieldFullName, req.FullName) },
		FieldAgeRange:     func() error { return required(FieldAgeRange, req.AgeRange) },
		FieldMobile:       func() error { return required(FieldMobile, req.Mobile) },
		FieldGender:       func() error { return required(FieldGender, req.Gender) },
		FieldFocus:        func() error { return required(FieldFocus, req.Focus) },
	}, signupOrder, fields)
}

func (v *UserRequestValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	return runChecks(map[string]fieldCheck{
		FieldEmail:    func() error { return required(FieldEmail, req.Email) },
		FieldPassword: func() error { return required(FieldPassword, req.Password) },
	}, []string{FieldEmail, FieldPassword}, fields)
}

func (v *UserRequestValidator) validateVerifyIdentity(req models.VerifyIdentityRequest, fields ...string) error {
	return runChecks(map[string]fieldCheck{
		FieldEmail: func() error { return required(FieldEmail, req.Email) },
		FieldDNI:   func() error { return required(FieldDNI, req.DNI) },
	}, []string{FieldEmail, FieldDNI}, fields)
}

func (v *UserRequestValidator) validateResetPassword(req models.ResetPasswordRequest, fields ...string) error {
	return runChecks(map[string]fieldCheck{
		FieldEmail:       func() error { return required(FieldEmail, req.Email) },
		FieldDNI:         func() error { return required(FieldDNI, req.DNI) },
		FieldNewPassword: func() error { return required(FieldNewPassword, req.NewPassword) },
	}, []string{FieldEmail, FieldDNI, FieldNewPassword}, fields)
}

var signupOrder = []string{
	FieldEmail, FieldDNI, FieldPassword, FieldMunicipality, FieldNeighborhood,
	FieldFullName, FieldAgeRange, FieldMobile, FieldGender, FieldFocus,
}

// runChecks runs the checks named in fields, or every check in order when
// fields is empty, and returns the first failure.
func runChecks(checks map[string]fieldCheck, order []string, fields []string) error {
	if len(fields) == 0 {
		fields = order
	}

	for _, field := range fields {
		check, ok := checks[field]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err := check(); err != nil {
			return err
		}
	}

	return nil
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", ErrRequiredField, field)
	}
	return nil
}

// email accepts a bare address only; display names and angle brackets are
// rejected.
func email(value string) error {
	if err := required(FieldEmail, value); err != nil {
		return err
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != strings.TrimSpace(value) || addr.Name != "" {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, value)
	}
	return nil
}
