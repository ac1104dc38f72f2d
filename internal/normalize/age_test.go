package normalize

import (
	"testing"

	"github.com/gyeh/surveyclean/internal/model"
)

func TestAge(t *testing.T) {
	tests := []struct {
		in   *string
		want *int64
	}{
		{model.Str("29"), i64(29)},
		{model.Str("29.0"), i64(29)},
		{model.Str(" 44 "), i64(44)},
		{model.Str("100"), i64(100)},
		{model.Str("1"), i64(1)},
		{model.Str("150"), nil},
		{model.Str("-5"), nil},
		{model.Str("0"), nil},
		{model.Str("100.5"), nil},
		{model.Str("29.5"), nil},
		{model.Str("99999999999"), nil},
		{model.Str("thirty"), nil},
		{model.Str("NaN"), nil},
		{model.Str("Inf"), nil},
		{model.Str(""), nil},
		{nil, nil},
	}
	for _, tt := range tests {
		got := AgeToInt(AgeCell(tt.in))
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("age(%v) = %d, want nil", deref(tt.in), *got)
		case tt.want != nil && got == nil:
			t.Errorf("age(%v) = nil, want %d", deref(tt.in), *tt.want)
		case tt.want != nil && *got != *tt.want:
			t.Errorf("age(%v) = %d, want %d", deref(tt.in), *got, *tt.want)
		}
	}
}

func TestAgeCell_Normalizes(t *testing.T) {
	got := AgeCell(model.Str("29.0"))
	if got == nil || *got != "29" {
		t.Fatalf("AgeCell(29.0) = %v, want 29", got)
	}
	got = AgeCell(model.Str("29.5"))
	if got == nil || *got != "29.5" {
		t.Fatalf("AgeCell(29.5) = %v, want 29.5 kept until coercion", got)
	}
}

func i64(n int64) *int64 {
	return &n
}
