package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"patient-record-client/internal/adapters"
	"patient-record-client/internal/domain/dtos"
	"patient-record-client/internal/domain/repositories"
)

// backendErrorPrefix is the boilerplate the backend prepends to its
// validation messages; it is stripped before display.
const backendErrorPrefix = "Something went wrong. Error: "

// Generic alert texts for failures without a usable backend message.
const (
	alertUnrecognizedError = "Unrecognized backend error"
	alertUnknownError      = "Unknown error"
)

// SubmissionServiceImpl implements SubmissionServiceContract. One
// request, one outcome: there is no retry logic, since the clinician
// initiates each submission explicitly and a silent retry could create
// a duplicate entry. Overlapping submissions are not serialized either;
// each completes independently against the record store.
type SubmissionServiceImpl struct {
	api        adapters.PatientAPIContract
	recordRepo repositories.PatientRecordRepositoryContract
	alerts     AlertServiceContract
	logger     zerolog.Logger
}

var _ SubmissionServiceContract = (*SubmissionServiceImpl)(nil)

// NewSubmissionService creates the submission orchestrator.
func NewSubmissionService(
	api adapters.PatientAPIContract,
	recordRepo repositories.PatientRecordRepositoryContract,
	alerts AlertServiceContract,
	logger zerolog.Logger,
) SubmissionServiceContract {
	return &SubmissionServiceImpl{
		api:        api,
		recordRepo: recordRepo,
		alerts:     alerts,
		logger:     logger,
	}
}

func (s *SubmissionServiceImpl) LoadPatient(ctx context.Context, patientID string) error {
	patient, err := s.api.GetOne(ctx, patientID)
	if err != nil {
		return fmt.Errorf("loading patient %s: %w", patientID, err)
	}
	s.recordRepo.SetPatient(patient)
	s.logger.Info().Str("patient", patientID).Int("entries", len(patient.Entries)).Msg("patient loaded")
	return nil
}

func (s *SubmissionServiceImpl) SubmitEntry(ctx context.Context, payload dtos.NewEntry, afterSuccess func()) {
	patient := s.recordRepo.Patient()
	if patient == nil {
		return
	}

	entry, err := s.api.AddEntry(ctx, patient.ID.String(), payload)
	if err != nil {
		s.showSubmissionError(err)
		return
	}

	// Only the backend-confirmed entry reaches the record; the local
	// payload is never displayed and the form resets only now.
	s.recordRepo.AppendEntry(entry)
	if afterSuccess != nil {
		afterSuccess()
	}
	s.logger.Info().Str("entry", entry.Base().ID.String()).Str("type", string(entry.EntryType())).Msg("entry added")
}

// showSubmissionError classifies a submission failure into a displayed
// message. The record store is untouched in every branch.
func (s *SubmissionServiceImpl) showSubmissionError(err error) {
	var backendErr *adapters.BackendError
	if errors.As(err, &backendErr) {
		if msg := backendErr.Message(); msg != "" {
			stripped := strings.TrimPrefix(msg, backendErrorPrefix)
			s.logger.Error().Int("status", backendErr.StatusCode).Msg(stripped)
			s.alerts.Show(stripped)
			return
		}
		s.alerts.Show(alertUnrecognizedError)
		return
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		// Transport failure: no response to extract a message from.
		s.logger.Error().Err(err).Msg("backend unreachable")
		s.alerts.Show(alertUnrecognizedError)
		return
	}

	s.logger.Error().Err(err).Msg("unknown error submitting entry")
	s.alerts.Show(alertUnknownError)
}
