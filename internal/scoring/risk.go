package scoring

import "github.com/MKhiriev/participant-tracker/models"

// questionCount is the number of scored questions in the initial test.
const questionCount = 5

// Score bounds and band thresholds.
const (
	MaxRiskScore      = 14
	highRiskThreshold = 9
	midRiskThreshold  = 5
)

var (
	transportScores = map[string]int{
		"caminar_bici":       3,
		"transporte_publico": 2,
		"taxi_plataforma":    1,
		"vehiculo_moto":      1,
	}
	timeOfDayScores = map[string]int{
		"manana":    0,
		"tarde":     1,
		"noche":     2,
		"madrugada": 3,
	}
	exposureScores = map[string]int{
		"si":      3,
		"a_veces": 2,
		"no":      0,
	}
	routeKnowledgeScores = map[string]int{
		"no": 2,
		"si": 0,
	}
	// 1 = very unsafe, 5 = very safe
	perceptionScores = map[int]int{
		1: 3,
		2: 2,
		3: 1,
		4: 0,
		5: 0,
	}
)

// RiskLevelFromAnswers classifies the initial questionnaire.
// Fewer than five answers yield [models.RiskUnknown]; extra answers are
// ignored.
func RiskLevelFromAnswers(answers []models.Answer) models.RiskLevel {
	score, ok := RiskScore(answers)
	if !ok {
		return models.RiskUnknown
	}

	return RiskLevelFromScore(score)
}

// RiskScore sums the contribution of the first five answers. The second
// return value is false when fewer than five answers were given.
func RiskScore(answers []models.Answer) (int, bool) {
	if len(answers) < questionCount {
		return 0, false
	}

	score := lookupText(transportScores, answers[0]) +
		lookupText(timeOfDayScores, answers[1]) +
		perceptionScore(answers[2]) +
		lookupText(exposureScores, answers[3]) +
		lookupText(routeKnowledgeScores, answers[4])

	return score, true
}

// RiskLevelFromScore maps a score to its band: 9 and above is high, 5 to 8
// is medium, anything lower is low.
func RiskLevelFromScore(score int) models.RiskLevel {
	switch {
	case score >= highRiskThreshold:
		return models.RiskHigh
	case score >= midRiskThreshold:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

func lookupText(table map[string]int, a models.Answer) int {
	if a.IsNull() {
		return 0
	}
	return table[a.String()]
}

func perceptionScore(a models.Answer) int {
	n, ok := a.Int()
	if !ok {
		return 0
	}
	return perceptionScores[n]
}
