package normalize

import (
	"testing"

	"github.com/gyeh/surveyclean/internal/model"
)

func TestGender_MaleVariants(t *testing.T) {
	for _, in := range []string{
		"male", "M", "Man", "cis male", "Male-ish", "maile", "Mal", "make", "Male (CIS)", "cis man", "  male  ",
	} {
		if got := Gender(model.Str(in)); got != GenderMale {
			t.Errorf("Gender(%q) = %q, want Male", in, got)
		}
	}
}

func TestGender_FemaleVariants(t *testing.T) {
	for _, in := range []string{
		"female", "F", "Woman", "cis female", "femake", "female (cis)", "Cis-Female/femme", "female ",
	} {
		if got := Gender(model.Str(in)); got != GenderFemale {
			t.Errorf("Gender(%q) = %q, want Female", in, got)
		}
	}
}

func TestGender_Other(t *testing.T) {
	for _, in := range []string{"non-binary", "queer", "", "A little about you", "Trans woman", "p"} {
		if got := Gender(model.Str(in)); got != GenderOther {
			t.Errorf("Gender(%q) = %q, want Other", in, got)
		}
	}
	if got := Gender(nil); got != GenderOther {
		t.Errorf("Gender(nil) = %q, want Other", got)
	}
}

func TestGender_CanonicalIsFixedPoint(t *testing.T) {
	for _, in := range []string{GenderMale, GenderFemale, GenderOther} {
		if got := Gender(model.Str(in)); got != in {
			t.Errorf("Gender(%q) = %q, want unchanged", in, got)
		}
	}
}
