package render

import (
	"strings"
)

// MaxHealthCheckRating bounds the rating indicator; the backend
// rejects ratings outside [0, MaxHealthCheckRating].
const MaxHealthCheckRating = 4

// Descriptive texts for the defined clinical ratings, 0 (healthy)
// through 3 (diagnosed condition).
var healthRatingTexts = []string{
	"The patient is in great shape",
	"The patient has a low risk of getting sick",
	"The patient has a high risk of getting sick",
	"The patient has a diagnosed condition",
}

// HealthRatingBar renders the bounded rating indicator as a row of
// hearts; a lower rating is healthier and fills more of the bar.
// Out-of-range values are clamped so a degenerate rating can never
// crash the indicator, and only defined ratings get descriptive text.
func HealthRatingBar(rating int, showText bool) string {
	clamped := rating
	if clamped < 0 {
		clamped = 0
	}
	if clamped > MaxHealthCheckRating {
		clamped = MaxHealthCheckRating
	}

	filled := MaxHealthCheckRating - clamped
	bar := strings.Repeat("♥", filled) + strings.Repeat("♡", MaxHealthCheckRating-filled)

	if showText && rating >= 0 && rating < len(healthRatingTexts) {
		return bar + " " + healthRatingTexts[rating]
	}
	return bar
}
