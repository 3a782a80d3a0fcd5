package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"patient-record-client/internal/domain/dtos"
)

func filledForm() *AddEntryForm {
	form := NewAddEntryForm()
	form.Open()
	form.Description = "x"
	form.Date = "2024-01-01"
	form.Specialist = "Dr. A"
	form.HealthCheckRating = "2"
	form.DiagnosisCodes = "M24.2, S62.5"
	return form
}

func TestAddEntryForm_Values_RoundTrip(t *testing.T) {
	payload := filledForm().Values()

	assert.Equal(t, "x", payload.Description)
	assert.Equal(t, "2024-01-01", payload.Date)
	assert.Equal(t, "Dr. A", payload.Specialist)
	assert.Equal(t, dtos.Rating(2), payload.HealthCheckRating, "the rating text is coerced to the number 2")
	assert.Equal(t, []string{"M24.2", "S62.5"}, payload.DiagnosisCodes, "codes are trimmed and empty pieces dropped")
}

func TestAddEntryForm_Values_PassesBadRatingThrough(t *testing.T) {
	form := filledForm()
	form.HealthCheckRating = "very healthy"

	payload := form.Values()
	assert.True(t, payload.HealthCheckRating.IsNaN(), "client-side validation is deferred to the backend")
	assert.Equal(t, "very healthy", form.HealthCheckRating, "the raw text stays in the field")
}

func TestAddEntryForm_OpenKeepsFields(t *testing.T) {
	form := filledForm()
	form.open = false

	form.Open()
	assert.True(t, form.IsOpen())
	assert.Equal(t, "x", form.Description, "opening clears no data")
}

func TestAddEntryForm_Cancel_ClearsEverything(t *testing.T) {
	form := filledForm()
	form.Cancel()

	assert.False(t, form.IsOpen())
	assert.Equal(t, &AddEntryForm{}, form, "cancel clears all transient fields atomically")
}

func TestAddEntryForm_Submit(t *testing.T) {
	form := filledForm()

	var gotPayload dtos.NewEntry
	var gotReset func()
	form.Submit(func(payload dtos.NewEntry, afterSuccess func()) {
		gotPayload = payload
		gotReset = afterSuccess
	})

	// The orchestrator did not confirm success yet, so nothing cleared.
	assert.Equal(t, "x", form.Description)
	assert.NotNil(t, gotPayload)

	gotReset()
	assert.Equal(t, &AddEntryForm{}, form, "the reset callback clears the form after a confirmed success")
}

func TestSplitDiagnosisCodes(t *testing.T) {
	assert.Equal(t, []string{"M24.2", "S62.5"}, SplitDiagnosisCodes("M24.2, S62.5"))
	assert.Equal(t, []string{"M24.2"}, SplitDiagnosisCodes("  M24.2  ,, "))
	assert.Nil(t, SplitDiagnosisCodes(""))
	assert.Nil(t, SplitDiagnosisCodes(" , ,"))
}
