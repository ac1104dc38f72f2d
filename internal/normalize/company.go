package normalize

import (
	"strings"

	"github.com/gyeh/surveyclean/internal/model"
)

const (
	SizeOther   = "Other"
	SizeUnknown = "Unknown"
)

// SizeBucket is one company-size label and the substrings that select it.
type SizeBucket struct {
	Label   string
	Markers []string
}

// CompanySizeBuckets is checked in order; the first bucket with a marker
// contained in the folded value wins.
var CompanySizeBuckets = []SizeBucket{
	{Label: "1-5", Markers: []string{"1-5"}},
	{Label: "6-25", Markers: []string{"6-25"}},
	{Label: "26-100", Markers: []string{"26-100"}},
	{Label: "100-500", Markers: []string{"100-500"}},
	{Label: "500-1000", Markers: []string{"500-1000"}},
	{Label: "More than 1000", Markers: []string{"more than 1000", "1000+"}},
}

// CompanySize buckets a raw no_employees answer. Null is Unknown, and a value
// matching no marker is Other. The exact label Unknown is kept so a cleaned
// file can be cleaned again without change; other spellings of it are Other.
func CompanySize(v *string) string {
	if v == nil {
		return SizeUnknown
	}
	s := Fold(*v)
	for _, b := range CompanySizeBuckets {
		for _, m := range b.Markers {
			if strings.Contains(s, m) {
				return b.Label
			}
		}
	}
	if *v == SizeUnknown {
		return SizeUnknown
	}
	return SizeOther
}

// CompanySizeCell adapts CompanySize to Table.MapColumn.
func CompanySizeCell(v *string) *string {
	return model.Str(CompanySize(v))
}
