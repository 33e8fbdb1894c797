package models

import (
	"strings"
	"time"
)

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// VerifyIdentityResponse reports whether an email/DNI pair matches.
type VerifyIdentityResponse struct {
	Valid bool `json:"valid"`
}

// UserMe is the profile projection returned to the signed-in user.
//
// Several values are exposed under two names because the front-end reads
// both: phone/celular, municipio/ciudadResidencia, barrio/subregion and
// enfoque/enfoqueDiferencial always carry the same value.
type UserMe struct {
	ID                int64      `json:"id"`
	Email             string     `json:"email"`
	DNI               string     `json:"dni"`
	Name              string     `json:"name"`
	Gender            string     `json:"genero"`
	Age               *int       `json:"edad"`
	BirthDate         *time.Time `json:"fechaNacimiento"`
	Phone             string     `json:"phone"`
	Telephone         *string    `json:"telefono"`
	Mobile            string     `json:"celular"`
	MobileNoPrefix    string     `json:"celularSinPrefijo"`
	ResidenceCity     string     `json:"ciudadResidencia"`
	Municipality      string     `json:"municipio"`
	Subregion         string     `json:"subregion"`
	Neighborhood      string     `json:"barrio"`
	PersonalEmail     *string    `json:"emailPersonal"`
	DocumentTypeID    string     `json:"tipoDocumentoId"`
	DifferentialFocus string     `json:"enfoqueDiferencial"`
	Focus             string     `json:"enfoque"`
	Program           *string    `json:"programa"`
	Level             *string    `json:"nivel"`
	RiskLevel         *string    `json:"nivelRiesgo"`
	AvatarID          int        `json:"avatarId"`
	Role              string     `json:"role"`
}

// NewUserMe projects a stored user onto the /me response.
func NewUserMe(u User) UserMe {
	return UserMe{
		ID:                u.ID,
		Email:             u.Email,
		DNI:               u.DNI,
		Name:              u.Name,
		Gender:            u.Gender,
		Age:               u.Age,
		BirthDate:         u.BirthDate,
		Phone:             u.Mobile,
		Telephone:         u.Telephone,
		Mobile:            u.Mobile,
		MobileNoPrefix:    StripPhonePrefix(u.Mobile),
		ResidenceCity:     u.ResidenceCity,
		Municipality:      u.ResidenceCity,
		Subregion:         u.Subregion,
		Neighborhood:      u.Subregion,
		PersonalEmail:     u.PersonalEmail,
		DocumentTypeID:    u.DocumentTypeID,
		DifferentialFocus: u.DifferentialFocus,
		Focus:             u.DifferentialFocus,
		Program:           u.Program,
		Level:             u.Level,
		RiskLevel:         u.RiskLevel,
		AvatarID:          u.AvatarID,
		Role:              u.Role,
	}
}

// StripPhonePrefix removes the "+57" country prefix, or a bare "+" for any
// other country, from a trimmed phone number.
func StripPhonePrefix(phone string) string {
	p := strings.TrimSpace(phone)
	if rest, ok := strings.CutPrefix(p, "+57"); ok {
		return rest
	}
	return strings.TrimPrefix(p, "+")
}

// ProgressMe is the signed-in user's medals and questionnaire flags.
type ProgressMe struct {
	M1              bool `json:"m1"`
	M2              bool `json:"m2"`
	M3              bool `json:"m3"`
	M4              bool `json:"m4"`
	InitialTestDone bool `json:"initialTestDone"`
	ExitTestDone    bool `json:"exitTestDone"`
}

// NewProgressMe combines medals with the user's test flags.
func NewProgressMe(u User, m Medals) ProgressMe {
	return ProgressMe{
		M1:              m.M1,
		M2:              m.M2,
		M3:              m.M3,
		M4:              m.M4,
		InitialTestDone: u.InitialTestDone,
		ExitTestDone:    u.ExitTestDone,
	}
}

// UserWithExperienceStatus is one row of the administrative progress report.
type UserWithExperienceStatus struct {
	ID               int64   `json:"id"`
	Email            string  `json:"email"`
	DNI              string  `json:"dni"`
	Name             string  `json:"name"`
	ResidenceCity    string  `json:"ciudadResidencia"`
	RiskLevel        *string `json:"nivelRiesgo"`
	InitialTestDone  bool    `json:"initialTestDone"`
	ExitTestDone     bool    `json:"exitTestDone"`
	ExperienceStatus int     `json:"experienceStatus"`
}

// NewUserWithExperienceStatus builds a report row.
func NewUserWithExperienceStatus(u User, status int) UserWithExperienceStatus {
	return UserWithExperienceStatus{
		ID:               u.ID,
		Email:            u.Email,
		DNI:              u.DNI,
		Name:             u.Name,
		ResidenceCity:    u.ResidenceCity,
		RiskLevel:        u.RiskLevel,
		InitialTestDone:  u.InitialTestDone,
		ExitTestDone:     u.ExitTestDone,
		ExperienceStatus: status,
	}
}

// PagedUsersWithExperienceStatus is a page of the progress report.
type PagedUsersWithExperienceStatus struct {
	UserList   []UserWithExperienceStatus `json:"userList"`
	TotalUsers int64                      `json:"totalUsers"`
	Page       int                        `json:"page"`
	Size       int                        `json:"size"`
}
