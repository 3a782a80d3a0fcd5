package repositories

import (
	"patient-record-client/internal/domain/entities"
)

// PatientRecordRepositoryContract owns the record of the patient
// currently on view. The record is replaced wholesale when a patient
// is loaded and afterwards changes only by appending backend-confirmed
// entries, one at a time. Entries are immutable once stored; there is
// no edit or delete.
type PatientRecordRepositoryContract interface {
	// SetPatient replaces the whole record.
	SetPatient(patient *entities.Patient)
	// Patient returns the current record, or nil before the first load.
	Patient() *entities.Patient
	// AppendEntry adds one entry to the end of the record's entry list,
	// leaving every prior entry and all demographic state unchanged.
	// It is a no-op when no patient is loaded.
	AppendEntry(entry entities.Entry)
}
