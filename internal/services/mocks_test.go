package services

import (
	"context"
	"errors"
	"sync/atomic"

	"patient-record-client/internal/adapters"
	"patient-record-client/internal/domain/dtos"
	"patient-record-client/internal/domain/entities"
)

// Compile-time check to ensure MockPatientAPI implements PatientAPIContract
var _ adapters.PatientAPIContract = (*MockPatientAPI)(nil)

// MockPatientAPI is a mock implementation of adapters.PatientAPIContract.
type MockPatientAPI struct {
	GetOneFunc   func(ctx context.Context, patientID string) (*entities.Patient, error)
	AddEntryFunc func(ctx context.Context, patientID string, payload dtos.NewEntry) (entities.Entry, error)

	GetOneCallCount   int32
	AddEntryCallCount int32
}

func (m *MockPatientAPI) GetOne(ctx context.Context, patientID string) (*entities.Patient, error) {
	atomic.AddInt32(&m.GetOneCallCount, 1)
	if m.GetOneFunc != nil {
		return m.GetOneFunc(ctx, patientID)
	}
	return nil, errors.New("GetOneFunc not implemented in mock")
}

func (m *MockPatientAPI) AddEntry(ctx context.Context, patientID string, payload dtos.NewEntry) (entities.Entry, error) {
	atomic.AddInt32(&m.AddEntryCallCount, 1)
	if m.AddEntryFunc != nil {
		return m.AddEntryFunc(ctx, patientID, payload)
	}
	return nil, errors.New("AddEntryFunc not implemented in mock")
}
