package scoring

import "github.com/MKhiriev/participant-tracker/models"

// MergeMedals applies the requested overrides on top of the current row.
// A nil override keeps the current value, or false when there is no row.
// An explicit false clears a medal.
func MergeMedals(current *models.ProgressRow, req models.UpdateMedalsRequest) models.Medals {
	var base models.Medals
	if current != nil {
		base = current.Medals
	}

	return models.Medals{
		M1: pick(req.M1, base.M1),
		M2: pick(req.M2, base.M2),
		M3: pick(req.M3, base.M3),
		M4: pick(req.M4, base.M4),
	}
}

func pick(override *bool, fallback bool) bool {
	if override != nil {
		return *override
	}
	return fallback
}
