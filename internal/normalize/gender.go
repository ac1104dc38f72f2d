package normalize

import "github.com/gyeh/surveyclean/internal/model"

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// GenderVariants maps each canonical gender to the spellings accepted for it.
// Anything outside both sets, including self-described non-binary answers,
// classifies as GenderOther.
var GenderVariants = map[string]VariantSet{
	GenderMale: NewVariantSet(
		"male", "m", "man", "cis male", "male-ish", "maile", "mal", "make", "male (cis)", "cis man",
	),
	GenderFemale: NewVariantSet(
		"female", "f", "woman", "cis female", "femake", "female (cis)", "cis-female/femme",
	),
}

// genderOrder fixes which table is consulted first.
var genderOrder = []string{GenderMale, GenderFemale}

// Gender classifies a raw answer as Male, Female or Other. Null is Other.
func Gender(v *string) string {
	if v == nil {
		return GenderOther
	}
	for _, canonical := range genderOrder {
		if GenderVariants[canonical].Contains(*v) {
			return canonical
		}
	}
	return GenderOther
}

// GenderCell adapts Gender to Table.MapColumn.
func GenderCell(v *string) *string {
	return model.Str(Gender(v))
}
