package forms

import (
	"strings"

	"patient-record-client/internal/domain/dtos"
)

// AddEntryForm holds the transient input for one new health-check
// entry. Fields keep the raw text the user typed; coercion happens
// only when the payload is assembled, and rejected input stays in the
// fields so the clinician can edit and resubmit.
//
// The open flag is presentation state: opening clears nothing,
// cancelling clears everything, and a successful submission clears
// everything via the reset callback handed to the submission path.
type AddEntryForm struct {
	open bool

	Description       string
	Date              string
	Specialist        string
	HealthCheckRating string
	DiagnosisCodes    string
}

// NewAddEntryForm creates a closed, empty form.
func NewAddEntryForm() *AddEntryForm {
	return &AddEntryForm{}
}

// Open expands the form. Previously typed values stay put.
func (f *AddEntryForm) Open() {
	f.open = true
}

// IsOpen reports whether the full field set is showing.
func (f *AddEntryForm) IsOpen() bool {
	return f.open
}

// Cancel closes the form and discards everything typed so far.
func (f *AddEntryForm) Cancel() {
	f.Reset()
}

// Reset closes the form and clears every field in one step. The
// submission path invokes it only after a confirmed success; the form
// never resets itself on submit.
func (f *AddEntryForm) Reset() {
	*f = AddEntryForm{}
}

// Values assembles the creation payload from the raw field text: the
// rating is coerced to a number (bad input passes through for the
// backend to reject) and the diagnosis-code list is split on commas,
// trimmed, with empty pieces dropped.
func (f *AddEntryForm) Values() dtos.NewHealthCheckEntry {
	return dtos.NewHealthCheckEntry{
		NewEntryBase: dtos.NewEntryBase{
			Description:    f.Description,
			Date:           f.Date,
			Specialist:     f.Specialist,
			DiagnosisCodes: SplitDiagnosisCodes(f.DiagnosisCodes),
		},
		HealthCheckRating: dtos.ParseRating(f.HealthCheckRating),
	}
}

// Submit hands the assembled payload and the reset callback to the
// given submission function.
func (f *AddEntryForm) Submit(onSubmit func(payload dtos.NewEntry, afterSuccess func())) {
	onSubmit(f.Values(), f.Reset)
}

// SplitDiagnosisCodes turns a comma-separated code list into a set of
// non-empty, trimmed codes. All-whitespace input yields nil so an
// entry without codes carries none at all.
func SplitDiagnosisCodes(raw string) []string {
	var codes []string
	for _, part := range strings.Split(raw, ",") {
		code := strings.TrimSpace(part)
		if code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}
