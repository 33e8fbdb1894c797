package models

// RiskLevel is the coarse safety-risk classification computed from the
// initial questionnaire.
type RiskLevel string

const (
	RiskLow     RiskLevel = "BAJO"
	RiskMedium  RiskLevel = "MEDIO"
	RiskHigh    RiskLevel = "ALTO"
	RiskUnknown RiskLevel = "DESCONOCIDO"
)

// String implements fmt.Stringer.
func (r RiskLevel) String() string {
	return string(r)
}
