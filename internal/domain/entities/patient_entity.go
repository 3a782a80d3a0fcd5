package entities

import (
	"github.com/google/uuid"
)

// Gender is the administrative gender of a patient.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Patient represents a single patient and their clinical record. The
// entry list keeps the order the backend returned it in; the client
// never re-sorts it and only ever appends to it.
type Patient struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DateOfBirth string    `json:"dateOfBirth"` // ISO 8601 date YYYY-MM-DD
	SSN         string    `json:"ssn"`
	Gender      Gender    `json:"gender"`
	Occupation  string    `json:"occupation"`
	Entries     Entries   `json:"entries"`
}
