package models

import "strings"

// Medals is the full set of the four gamified medals.
type Medals struct {
	M1 bool `json:"medalla1"`
	M2 bool `json:"medalla2"`
	M3 bool `json:"medalla3"`
	M4 bool `json:"medalla4"`
}

// Count returns how many medals are set.
func (m Medals) Count() int {
	n := 0
	for _, v := range [...]bool{m.M1, m.M2, m.M3, m.M4} {
		if v {
			n++
		}
	}
	return n
}

// ProgressRow is one record of the external progress service, keyed by the
// student identifier (the user's DNI).
type ProgressRow struct {
	StudentID string `json:"idEstudiante"`
	Medals
}

// FindProgressByDNI returns the row whose student id equals the trimmed dni.
// It returns nil when dni is empty or no row matches.
func FindProgressByDNI(rows []ProgressRow, dni string) *ProgressRow {
	key := strings.TrimSpace(dni)
	if key == "" {
		return nil
	}

	for i := range rows {
		if rows[i].StudentID == key {
			return &rows[i]
		}
	}

	return nil
}
