package render

import (
	"fmt"

	"patient-record-client/internal/domain/entities"
)

// EntryDetails renders the variant-specific lines of one entry. The
// type switch covers the full closed set of entry shapes and has no
// fallback: reaching the default case means the data model and this
// dispatcher have drifted apart, which is a programming error and
// fails loudly at the point of dispatch.
func EntryDetails(entry entities.Entry) string {
	switch e := entry.(type) {
	case *entities.HospitalEntry:
		return hospitalEntryDetails(e)
	case *entities.OccupationalHealthcareEntry:
		return occupationalHealthcareEntryDetails(e)
	case *entities.HealthCheckEntry:
		return healthCheckEntryDetails(e)
	default:
		panic(fmt.Sprintf("unhandled entry type: %T", entry))
	}
}

func hospitalEntryDetails(e *entities.HospitalEntry) string {
	return fmt.Sprintf("discharge: %s %s\n", e.Discharge.Date, e.Discharge.Criteria)
}

func occupationalHealthcareEntryDetails(e *entities.OccupationalHealthcareEntry) string {
	details := fmt.Sprintf("employer: %s\n", e.EmployerName)
	if e.SickLeave != nil {
		details += fmt.Sprintf("sickleave from %s to %s\n", e.SickLeave.StartDate, e.SickLeave.EndDate)
	}
	return details
}

func healthCheckEntryDetails(e *entities.HealthCheckEntry) string {
	return HealthRatingBar(e.HealthCheckRating, false) + "\n"
}
