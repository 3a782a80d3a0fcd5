package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"patient-record-client/internal/domain/dtos"
	"patient-record-client/internal/domain/entities"
)

// PatientAPIContract defines the backend operations the client
// consumes. The backend already exists; this is its interface boundary.
type PatientAPIContract interface {
	// GetOne fetches a patient with their full entry list.
	GetOne(ctx context.Context, patientID string) (*entities.Patient, error)
	// AddEntry asks the backend to create one entry for the patient and
	// returns the canonical, identified entry the backend stored.
	AddEntry(ctx context.Context, patientID string, payload dtos.NewEntry) (entities.Entry, error)
}

// BackendError is a non-2xx response from the backend. The backend
// reports validation failures as a plain-text body, so the raw body is
// kept for message extraction.
type BackendError struct {
	StatusCode int
	Body       string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend responded %d: %s", e.StatusCode, e.Body)
}

// Message returns the usable textual message of the response, or ""
// when the body is not a plain string (empty, or a structured JSON
// document).
func (e *BackendError) Message() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return ""
	}
	switch body[0] {
	case '{', '[':
		return ""
	case '"':
		var s string
		if err := json.Unmarshal([]byte(body), &s); err == nil {
			return s
		}
		return body
	default:
		return body
	}
}

// HTTPPatientAPI implements PatientAPIContract over JSON HTTP.
type HTTPPatientAPI struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

var _ PatientAPIContract = (*HTTPPatientAPI)(nil)

// NewHTTPPatientAPI creates a backend client rooted at baseURL.
func NewHTTPPatientAPI(baseURL string, timeout time.Duration, logger zerolog.Logger) PatientAPIContract {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPPatientAPI{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *HTTPPatientAPI) GetOne(ctx context.Context, patientID string) (*entities.Patient, error) {
	respBody, err := c.doRequest(ctx, http.MethodGet, "/api/patients/"+patientID, nil)
	if err != nil {
		return nil, err
	}

	var patient entities.Patient
	if err := json.Unmarshal(respBody, &patient); err != nil {
		return nil, fmt.Errorf("decoding patient %s: %w", patientID, err)
	}
	return &patient, nil
}

func (c *HTTPPatientAPI) AddEntry(ctx context.Context, patientID string, payload dtos.NewEntry) (entities.Entry, error) {
	respBody, err := c.doRequest(ctx, http.MethodPost, "/api/patients/"+patientID+"/entries", payload)
	if err != nil {
		return nil, err
	}

	entry, err := entities.UnmarshalEntry(respBody)
	if err != nil {
		return nil, fmt.Errorf("decoding created entry: %w", err)
	}
	return entry, nil
}

func (c *HTTPPatientAPI) doRequest(ctx context.Context, method, path string, body any) ([]byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug().Str("method", method).Str("path", path).Msg("backend request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &BackendError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	return respBody, nil
}
