package dtos

import (
	"encoding/json"

	"patient-record-client/internal/domain/entities"
)

// NewEntry is an entry creation payload: one variant's fields minus
// the backend-assigned identity. The backend validates the payload and
// returns the canonical entry on success.
type NewEntry interface {
	EntryType() entities.EntryType
}

// NewEntryBase holds the creation fields shared by every variant.
type NewEntryBase struct {
	Description    string   `json:"description" validate:"required"`
	Date           string   `json:"date" validate:"required,datetime=2006-01-02"`
	Specialist     string   `json:"specialist" validate:"required"`
	DiagnosisCodes []string `json:"diagnosisCodes,omitempty"`
}

// NewHospitalEntry requests creation of a hospital stay entry.
type NewHospitalEntry struct {
	NewEntryBase
	Discharge entities.Discharge `json:"discharge" validate:"required"`
}

func (e NewHospitalEntry) EntryType() entities.EntryType { return entities.EntryTypeHospital }

func (e NewHospitalEntry) MarshalJSON() ([]byte, error) {
	type alias NewHospitalEntry
	return json.Marshal(struct {
		Type entities.EntryType `json:"type"`
		alias
	}{entities.EntryTypeHospital, alias(e)})
}

// NewOccupationalHealthcareEntry requests creation of an occupational
// healthcare visit entry.
type NewOccupationalHealthcareEntry struct {
	NewEntryBase
	EmployerName string              `json:"employerName" validate:"required"`
	SickLeave    *entities.SickLeave `json:"sickLeave,omitempty"`
}

func (e NewOccupationalHealthcareEntry) EntryType() entities.EntryType {
	return entities.EntryTypeOccupationalHealthcare
}

func (e NewOccupationalHealthcareEntry) MarshalJSON() ([]byte, error) {
	type alias NewOccupationalHealthcareEntry
	return json.Marshal(struct {
		Type entities.EntryType `json:"type"`
		alias
	}{entities.EntryTypeOccupationalHealthcare, alias(e)})
}

// NewHealthCheckEntry requests creation of a health check entry.
type NewHealthCheckEntry struct {
	NewEntryBase
	HealthCheckRating Rating `json:"healthCheckRating"`
}

func (e NewHealthCheckEntry) EntryType() entities.EntryType { return entities.EntryTypeHealthCheck }

func (e NewHealthCheckEntry) MarshalJSON() ([]byte, error) {
	type alias NewHealthCheckEntry
	return json.Marshal(struct {
		Type entities.EntryType `json:"type"`
		alias
	}{entities.EntryTypeHealthCheck, alias(e)})
}
