package adapters

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"patient-record-client/internal/domain/dtos"
	"patient-record-client/internal/domain/entities"
)

const patientJSON = `{
	"id": "d2773336-f723-11e9-8f0b-362b9e155667",
	"name": "John McClane",
	"dateOfBirth": "1986-07-09",
	"ssn": "090786-122X",
	"gender": "male",
	"occupation": "New york city cop",
	"entries": [
		{"id": "00000000-0000-0000-0000-000000000001", "type": "HealthCheck", "date": "2019-10-20", "description": "Yearly control visit.", "specialist": "MD House", "healthCheckRating": 0}
	]
}`

func TestHTTPPatientAPI_GetOne(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/patients/d2773336-f723-11e9-8f0b-362b9e155667", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, patientJSON)
	}))
	defer server.Close()

	api := NewHTTPPatientAPI(server.URL, 5*time.Second, zerolog.Nop())
	patient, err := api.GetOne(context.Background(), "d2773336-f723-11e9-8f0b-362b9e155667")
	assert.NoError(t, err)
	assert.Equal(t, "John McClane", patient.Name)
	assert.Len(t, patient.Entries, 1)
	assert.Equal(t, entities.EntryTypeHealthCheck, patient.Entries[0].EntryType())
}

func TestHTTPPatientAPI_GetOne_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "patient not found", http.StatusNotFound)
	}))
	defer server.Close()

	api := NewHTTPPatientAPI(server.URL, 5*time.Second, zerolog.Nop())
	patient, err := api.GetOne(context.Background(), "nope")
	assert.Nil(t, patient)

	var backendErr *BackendError
	assert.ErrorAs(t, err, &backendErr)
	assert.Equal(t, http.StatusNotFound, backendErr.StatusCode)
}

func TestHTTPPatientAPI_AddEntry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/patients/d2773336-f723-11e9-8f0b-362b9e155667/entries", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var received map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.Equal(t, "HealthCheck", received["type"])

		// The backend assigns the identity and echoes the canonical entry.
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"id": "10000000-0000-0000-0000-000000000099",
			"type": "HealthCheck",
			"description": "x",
			"date": "2024-01-01",
			"specialist": "Dr. A",
			"healthCheckRating": 2,
			"diagnosisCodes": ["M24.2", "S62.5"]
		}`)
	}))
	defer server.Close()

	api := NewHTTPPatientAPI(server.URL, 5*time.Second, zerolog.Nop())
	payload := dtos.NewHealthCheckEntry{
		NewEntryBase: dtos.NewEntryBase{
			Description:    "x",
			Date:           "2024-01-01",
			Specialist:     "Dr. A",
			DiagnosisCodes: []string{"M24.2", "S62.5"},
		},
		HealthCheckRating: 2,
	}

	entry, err := api.AddEntry(context.Background(), "d2773336-f723-11e9-8f0b-362b9e155667", payload)
	assert.NoError(t, err)
	assert.Equal(t, entities.EntryTypeHealthCheck, entry.EntryType())
	assert.Equal(t, "10000000-0000-0000-0000-000000000099", entry.Base().ID.String())
}

func TestHTTPPatientAPI_AddEntry_ValidationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, "Something went wrong. Error: Rating must be between 0 and 4")
	}))
	defer server.Close()

	api := NewHTTPPatientAPI(server.URL, 5*time.Second, zerolog.Nop())
	entry, err := api.AddEntry(context.Background(), "p1", dtos.NewHealthCheckEntry{})
	assert.Nil(t, entry)

	var backendErr *BackendError
	assert.ErrorAs(t, err, &backendErr)
	assert.Equal(t, "Something went wrong. Error: Rating must be between 0 and 4", backendErr.Message())
}

func TestBackendError_Message(t *testing.T) {
	assert.Equal(t, "boom", (&BackendError{StatusCode: 400, Body: "boom"}).Message())
	assert.Equal(t, "boom", (&BackendError{StatusCode: 400, Body: `"boom"`}).Message(), "a JSON string body is unquoted")
	assert.Equal(t, "", (&BackendError{StatusCode: 500, Body: `{"error": "boom"}`}).Message(), "a structured body has no usable plain message")
	assert.Equal(t, "", (&BackendError{StatusCode: 502, Body: ""}).Message())
}
