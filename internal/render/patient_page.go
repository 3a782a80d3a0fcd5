package render

import (
	"fmt"
	"strings"

	"patient-record-client/internal/domain/entities"
	"patient-record-client/internal/services"
)

// PatientPage renders the full record view: demographics, the active
// alert if any, and every entry in received order. A nil patient means
// the initial fetch has not completed.
func PatientPage(patient *entities.Patient, diagnoses services.DiagnosisServiceContract, alert string) string {
	if patient == nil {
		return "Loading data...\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", patient.Name)
	fmt.Fprintf(&b, "gender: %s\n", patient.Gender)
	fmt.Fprintf(&b, "ssn: %s\n", patient.SSN)
	fmt.Fprintf(&b, "date of birth: %s\n", patient.DateOfBirth)
	fmt.Fprintf(&b, "occupation: %s\n", patient.Occupation)

	if alert != "" {
		fmt.Fprintf(&b, "\n[error] %s\n", alert)
	}

	b.WriteString("\nentries\n")
	for _, entry := range patient.Entries {
		b.WriteString("\n")
		b.WriteString(EntryLines(entry, diagnoses))
	}
	return b.String()
}

// EntryLines renders one entry: the shared base fields, the diagnosis
// annotations and the variant-specific details. Diagnosis annotation
// is variant-independent: every code renders alongside its resolved
// name, or an empty label when the code is not in the reference table.
func EntryLines(entry entities.Entry, diagnoses services.DiagnosisServiceContract) string {
	base := entry.Base()

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", base.Date)
	fmt.Fprintf(&b, "%s\n", base.Description)
	for _, code := range base.DiagnosisCodes {
		fmt.Fprintf(&b, "- %s %s\n", code, diagnoses.NameForCode(code))
	}
	b.WriteString(EntryDetails(entry))
	fmt.Fprintf(&b, "diagnose by %s\n", base.Specialist)
	return b.String()
}
