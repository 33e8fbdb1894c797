package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWeakPassword        = errors.New("password must be at least 8 characters long")

	ErrEmailAlreadyRegistered = errors.New("account already registered")
	ErrDNIAlreadyRegistered   = errors.New("document already registered")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIdentityMismatch   = errors.New("email and document do not match")
	ErrAccountDisabled    = errors.New("account is disabled")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrForbidden               = errors.New("access forbidden")

	ErrInvalidTestKind = errors.New("invalid test kind")

	ErrUpstreamReadFailed  = errors.New("could not read progress from the progress service")
	ErrUpstreamWriteFailed = errors.New("could not update medals in the progress service")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
