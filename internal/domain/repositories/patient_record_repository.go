package repositories

import (
	"sync"

	"patient-record-client/internal/domain/entities"
)

// InMemoryPatientRecordRepository implements
// PatientRecordRepositoryContract for the lifetime of one page view.
// All state lives in memory; there is no persistence behind it.
type InMemoryPatientRecordRepository struct {
	mu      sync.RWMutex
	patient *entities.Patient
}

// Compile-time check that the implementation satisfies the contract.
var _ PatientRecordRepositoryContract = (*InMemoryPatientRecordRepository)(nil)

// NewInMemoryPatientRecordRepository creates an empty record store.
func NewInMemoryPatientRecordRepository() PatientRecordRepositoryContract {
	return &InMemoryPatientRecordRepository{}
}

func (r *InMemoryPatientRecordRepository) SetPatient(patient *entities.Patient) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patient = patient
}

func (r *InMemoryPatientRecordRepository) Patient() *entities.Patient {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.patient
}

func (r *InMemoryPatientRecordRepository) AppendEntry(entry entities.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.patient == nil {
		return
	}

	// Replace the whole patient value rather than mutating in place, so
	// readers holding the previous pointer keep a consistent record.
	updated := *r.patient
	updated.Entries = make(entities.Entries, 0, len(r.patient.Entries)+1)
	updated.Entries = append(updated.Entries, r.patient.Entries...)
	updated.Entries = append(updated.Entries, entry)
	r.patient = &updated
}
