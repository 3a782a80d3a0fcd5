package entities

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// EntryType discriminates the closed set of clinical entry shapes.
type EntryType string

const (
	EntryTypeHospital               EntryType = "Hospital"
	EntryTypeOccupationalHealthcare EntryType = "OccupationalHealthcare"
	EntryTypeHealthCheck            EntryType = "HealthCheck"
)

// EntryBase holds the fields shared by every entry variant. Entry
// identity is assigned by the backend; the client never fabricates it.
type EntryBase struct {
	ID             uuid.UUID `json:"id"`
	Description    string    `json:"description"`
	Date           string    `json:"date"` // ISO 8601 date YYYY-MM-DD
	Specialist     string    `json:"specialist"`
	DiagnosisCodes []string  `json:"diagnosisCodes,omitempty"`
}

// Entry is one clinical record belonging to a patient. Its concrete
// types are exactly HospitalEntry, OccupationalHealthcareEntry and
// HealthCheckEntry; consumers dispatching on the concrete type must
// cover all three and treat anything else as a programming error.
type Entry interface {
	EntryType() EntryType
	Base() EntryBase
}

// Discharge records how and when a hospital stay ended.
type Discharge struct {
	Date     string `json:"date"`
	Criteria string `json:"criteria"`
}

// HospitalEntry is an inpatient stay ending in a discharge.
type HospitalEntry struct {
	EntryBase
	Discharge Discharge `json:"discharge"`
}

func (e *HospitalEntry) EntryType() EntryType { return EntryTypeHospital }
func (e *HospitalEntry) Base() EntryBase      { return e.EntryBase }

func (e *HospitalEntry) MarshalJSON() ([]byte, error) {
	type alias HospitalEntry
	return json.Marshal(struct {
		Type EntryType `json:"type"`
		*alias
	}{EntryTypeHospital, (*alias)(e)})
}

// SickLeave is the leave interval granted with an occupational
// healthcare entry. It exists only when the patient actually took leave.
type SickLeave struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// OccupationalHealthcareEntry is a visit arranged through the patient's
// employer.
type OccupationalHealthcareEntry struct {
	EntryBase
	EmployerName string     `json:"employerName"`
	SickLeave    *SickLeave `json:"sickLeave,omitempty"`
}

func (e *OccupationalHealthcareEntry) EntryType() EntryType { return EntryTypeOccupationalHealthcare }
func (e *OccupationalHealthcareEntry) Base() EntryBase      { return e.EntryBase }

func (e *OccupationalHealthcareEntry) MarshalJSON() ([]byte, error) {
	type alias OccupationalHealthcareEntry
	return json.Marshal(struct {
		Type EntryType `json:"type"`
		*alias
	}{EntryTypeOccupationalHealthcare, (*alias)(e)})
}

// HealthCheckEntry is a routine check producing a health rating.
type HealthCheckEntry struct {
	EntryBase
	HealthCheckRating int `json:"healthCheckRating"`
}

func (e *HealthCheckEntry) EntryType() EntryType { return EntryTypeHealthCheck }
func (e *HealthCheckEntry) Base() EntryBase      { return e.EntryBase }

func (e *HealthCheckEntry) MarshalJSON() ([]byte, error) {
	type alias HealthCheckEntry
	return json.Marshal(struct {
		Type EntryType `json:"type"`
		*alias
	}{EntryTypeHealthCheck, (*alias)(e)})
}

// UnmarshalEntry decodes a single entry document, dispatching on its
// type tag. The set of entry shapes is closed, so an unrecognized tag
// is an error rather than a fallback.
func UnmarshalEntry(data []byte) (Entry, error) {
	var probe struct {
		Type EntryType `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("probing entry type: %w", err)
	}

	switch probe.Type {
	case EntryTypeHospital:
		var e HospitalEntry
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("decoding %s entry: %w", probe.Type, err)
		}
		return &e, nil
	case EntryTypeOccupationalHealthcare:
		var e OccupationalHealthcareEntry
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("decoding %s entry: %w", probe.Type, err)
		}
		return &e, nil
	case EntryTypeHealthCheck:
		var e HealthCheckEntry
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("decoding %s entry: %w", probe.Type, err)
		}
		return &e, nil
	default:
		return nil, fmt.Errorf("unrecognized entry type %q", probe.Type)
	}
}

// Entries is the ordered entry list of a patient.
type Entries []Entry

func (es *Entries) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Entries, 0, len(raw))
	for i, r := range raw {
		entry, err := UnmarshalEntry(r)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, entry)
	}
	*es = out
	return nil
}
