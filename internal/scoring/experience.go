package scoring

import "github.com/MKhiriev/participant-tracker/models"

const (
	pointsPerTest  = 10
	pointsPerMedal = 20

	// MaxExperienceStatus is reached with both tests done and all medals.
	MaxExperienceStatus = 2*pointsPerTest + 4*pointsPerMedal
)

// ExperienceStatus returns the participant's progress in [0, 100].
// A nil row means the progress service holds no medals for the user.
func ExperienceStatus(u models.User, row *models.ProgressRow) int {
	status := 0
	if u.InitialTestDone {
		status += pointsPerTest
	}
	if u.ExitTestDone {
		status += pointsPerTest
	}
	if row != nil {
		status += pointsPerMedal * row.Count()
	}

	return status
}

// ExperienceReport projects every user onto a report row, matching progress
// rows by DNI.
func ExperienceReport(users []models.User, rows []models.ProgressRow) []models.UserWithExperienceStatus {
	report := make([]models.UserWithExperienceStatus, 0, len(users))
	for _, u := range users {
		row := models.FindProgressByDNI(rows, u.DNI)
		report = append(report, models.NewUserWithExperienceStatus(u, ExperienceStatus(u, row)))
	}

	return report
}
