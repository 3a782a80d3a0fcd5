package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthRatingBar(t *testing.T) {
	assert.Equal(t, "♥♥♥♥", HealthRatingBar(0, false), "rating 0 is fully healthy")
	assert.Equal(t, "♥♥♡♡", HealthRatingBar(2, false))
	assert.Equal(t, "♡♡♡♡", HealthRatingBar(4, false))
}

func TestHealthRatingBar_ClampsOutOfRange(t *testing.T) {
	assert.Equal(t, HealthRatingBar(0, false), HealthRatingBar(-3, false))
	assert.Equal(t, HealthRatingBar(4, false), HealthRatingBar(17, false))
}

func TestHealthRatingBar_Text(t *testing.T) {
	assert.Equal(t, "♥♥♥♥ The patient is in great shape", HealthRatingBar(0, true))
	assert.Equal(t, "♥♡♡♡ The patient has a diagnosed condition", HealthRatingBar(3, true))
	assert.Equal(t, "♡♡♡♡", HealthRatingBar(9, true), "no descriptive text for a degenerate rating")
}
