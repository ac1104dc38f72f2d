package normalize

import "github.com/gyeh/surveyclean/internal/model"

// Unknown replaces null and placeholder answers in categorical columns.
const Unknown = "Unknown"

// Placeholders are the exact non-answer literals replaced by Unknown.
// Matching is case- and whitespace-sensitive.
var Placeholders = map[string]struct{}{
	"NA":         {},
	"N/A":        {},
	"na":         {},
	"n/a":        {},
	"":           {},
	"Not sure":   {},
	"Don't know": {},
}

// IsPlaceholder reports whether s is exactly one of Placeholders.
func IsPlaceholder(s string) bool {
	_, ok := Placeholders[s]
	return ok
}

// Fallback returns Unknown for null or placeholder values and v unchanged otherwise.
func Fallback(v *string) string {
	if v == nil || IsPlaceholder(*v) {
		return Unknown
	}
	return *v
}

// FallbackCell adapts Fallback to Table.MapColumn.
func FallbackCell(v *string) *string {
	return model.Str(Fallback(v))
}
