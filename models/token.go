package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued at login.
//
// The standard "sub" claim carries the user's email; the private claims
// carry the user id, role and avatar so the front-end can render the
// session without an extra round trip.
type Claims struct {
	jwt.RegisteredClaims

	UserID   int64  `json:"uid"`
	Role     string `json:"role"`
	AvatarID int    `json:"avatarId"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims holds the parsed claim set. It is populated both when a token
	// is issued and when one is validated.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// GetEmail returns the email stored in the token's "sub" claim.
func (t *Token) GetEmail() (string, error) {
	email, err := t.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting email from token: %w", err)
	}
	if email == "" {
		return "", fmt.Errorf("error extracting email from token: empty subject")
	}

	return email, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
