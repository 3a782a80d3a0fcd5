package services

import (
	"context"

	"patient-record-client/internal/domain/dtos"
)

// SubmissionServiceContract drives the request/response cycle for the
// patient record: the initial load and the create-entry submission.
// Submission failures never propagate; they are converted into a
// user-visible alert and the record is left untouched.
type SubmissionServiceContract interface {
	// LoadPatient fetches the patient named by the route parameter and
	// replaces the record wholesale.
	LoadPatient(ctx context.Context, patientID string) error
	// SubmitEntry sends one creation payload for the currently loaded
	// patient. On success the backend's canonical entry is appended to
	// the record and afterSuccess (the form reset) is invoked; on
	// failure neither happens and an alert is shown instead.
	SubmitEntry(ctx context.Context, payload dtos.NewEntry, afterSuccess func())
}
