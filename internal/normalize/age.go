package normalize

import (
	"math"
	"strconv"
	"strings"
)

const (
	minAgeExclusive = 0
	maxAge          = 100
)

// ParseNumber parses a cell as a float64. Returns nil if the input is nil or
// not numeric.
func ParseNumber(v *string) *float64 {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// ValidAge keeps a numeric age in (0, 100] and returns nil for anything else.
func ValidAge(v *string) *float64 {
	f := ParseNumber(v)
	if f == nil || math.IsNaN(*f) {
		return nil
	}
	if *f <= minAgeExclusive || *f > maxAge {
		return nil
	}
	return f
}

// AgeCell adapts ValidAge to Table.MapColumn. Valid ages are rendered in
// shortest form ("29.0" becomes "29"); invalid ages become null.
func AgeCell(v *string) *string {
	f := ValidAge(v)
	if f == nil {
		return nil
	}
	s := strconv.FormatFloat(*f, 'f', -1, 64)
	return &s
}

// AgeToInt coerces a validated age cell to a nullable integer. Values that
// are not integer-valued become null.
func AgeToInt(v *string) *int64 {
	f := ParseNumber(v)
	if f == nil || math.IsNaN(*f) || math.IsInf(*f, 0) || *f != math.Trunc(*f) {
		return nil
	}
	n := int64(*f)
	return &n
}
