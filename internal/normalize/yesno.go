package normalize

import "github.com/gyeh/surveyclean/internal/model"

const (
	Yes = "Yes"
	No  = "No"
)

// YesNoVariants maps Yes and No to their accepted spellings.
var YesNoVariants = map[string]VariantSet{
	Yes: NewVariantSet("yes", "y", "1", "true"),
	No:  NewVariantSet("no", "n", "0", "false"),
}

// YesNo standardizes a raw answer to Yes or No. Null and unrecognized text
// both yield No, so an ambiguous answer is indistinguishable from a negative one.
func YesNo(v *string) string {
	if v == nil {
		return No
	}
	switch {
	case YesNoVariants[Yes].Contains(*v):
		return Yes
	case YesNoVariants[No].Contains(*v):
		return No
	default:
		return No
	}
}

// YesNoCell adapts YesNo to Table.MapColumn.
func YesNoCell(v *string) *string {
	return model.Str(YesNo(v))
}

// YesNoToInt coerces an exact "Yes" to 1 and "No" to 0. Any other value,
// including "Unknown", is null.
func YesNoToInt(v *string) *int64 {
	if v == nil {
		return nil
	}
	var n int64
	switch *v {
	case Yes:
		n = 1
	case No:
		n = 0
	default:
		return nil
	}
	return &n
}
