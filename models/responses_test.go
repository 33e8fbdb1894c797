package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserMe_KeepsAliasPairs(t *testing.T) {
	risk := string(RiskMedium)
	u := User{
		ID:                7,
		Email:             "ana@example.com",
		DNI:               "100200",
		Name:              "Ana",
		Mobile:            "+573001234567",
		ResidenceCity:     "Medellin",
		Subregion:         "Laureles",
		DifferentialFocus: "ninguno",
		DocumentTypeID:    DefaultDocumentType,
		RiskLevel:         &risk,
		AvatarID:          3,
		Role:              RoleUser,
	}

	me := NewUserMe(u)

	assert.Equal(t, me.Mobile, me.Phone)
	assert.Equal(t, "3001234567", me.MobileNoPrefix)
	assert.Equal(t, me.ResidenceCity, me.Municipality)
	assert.Equal(t, me.Subregion, me.Neighborhood)
	assert.Equal(t, me.DifferentialFocus, me.Focus)
	assert.Equal(t, &risk, me.RiskLevel)

	raw, err := json.Marshal(me)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	for _, key := range []string{
		"phone", "celular", "celularSinPrefijo", "telefono",
		"ciudadResidencia", "municipio", "subregion", "barrio",
		"enfoqueDiferencial", "enfoque", "nivelRiesgo", "avatarId", "role",
	} {
		assert.Contains(t, fields, key)
	}
	assert.NotContains(t, fields, "passwordHash")
}

func TestStripPhonePrefix(t *testing.T) {
	tests := map[string]string{
		"+573001234567":  "3001234567",
		" +573001234567": "3001234567",
		"+13055550100":   "13055550100",
		"3001234567":     "3001234567",
		"":               "",
	}

	for in, want := range tests {
		assert.Equal(t, want, StripPhonePrefix(in), "input %q", in)
	}
}

func TestFindProgressByDNI(t *testing.T) {
	rows := []ProgressRow{
		{StudentID: "100", Medals: Medals{M1: true}},
		{StudentID: "200"},
	}

	row := FindProgressByDNI(rows, " 100 ")
	require.NotNil(t, row)
	assert.True(t, row.M1)

	assert.Nil(t, FindProgressByDNI(rows, "300"))
	assert.Nil(t, FindProgressByDNI(rows, "  "))
}

func TestMedals_Count(t *testing.T) {
	assert.Equal(t, 0, Medals{}.Count())
	assert.Equal(t, 2, Medals{M1: true, M4: true}.Count())
	assert.Equal(t, 4, Medals{M1: true, M2: true, M3: true, M4: true}.Count())
}
