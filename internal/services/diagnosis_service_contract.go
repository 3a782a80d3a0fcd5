package services

import (
	"patient-record-client/internal/domain/entities"
)

// DiagnosisServiceContract resolves diagnosis codes against the
// read-only reference table supplied at startup.
type DiagnosisServiceContract interface {
	// NameForCode returns the human-readable name for a code, or the
	// empty string when the code is not in the table. A lookup miss is
	// not an error; callers render the empty label.
	NameForCode(code string) string
	// List returns the reference table in its loaded order.
	List() []entities.Diagnosis
}
