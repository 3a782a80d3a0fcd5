package dtos

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Rating carries the numeric value of a health-check rating exactly as
// coerced from user input. The client does not reject bad input:
// empty text is 0, unparsable text becomes NaN and marshals as JSON
// null, and the backend performs the actual range validation.
type Rating float64

// ParseRating coerces raw field text to a Rating.
func ParseRating(raw string) Rating {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return Rating(math.NaN())
	}
	return Rating(value)
}

// IsNaN reports whether the rating came from unparsable input.
func (r Rating) IsNaN() bool {
	return math.IsNaN(float64(r))
}

func (r Rating) MarshalJSON() ([]byte, error) {
	if r.IsNaN() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(r))
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Rating(math.NaN())
		return nil
	}
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*r = Rating(value)
	return nil
}
