package clean

import (
	"fmt"

	"github.com/gyeh/surveyclean/internal/model"
	"github.com/gyeh/surveyclean/internal/normalize"
)

// DomainError reports a typed row holding a value cleaning could never produce.
type DomainError struct {
	Row    int // 1-based
	Column string
	Value  string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("row %d: %s value %q outside the cleaned domain", e.Row, e.Column, e.Value)
}

var (
	genderDomain = map[string]bool{
		normalize.GenderMale:   true,
		normalize.GenderFemale: true,
		normalize.GenderOther:  true,
	}
	sizeDomain = func() map[string]bool {
		m := map[string]bool{normalize.SizeOther: true, normalize.SizeUnknown: true}
		for _, b := range normalize.CompanySizeBuckets {
			m[b.Label] = true
		}
		return m
	}()
)

// ValidateRows checks rows that arrive already typed, such as a Parquet
// export, against the value sets Clean produces. The first violation is
// returned as a *DomainError.
func ValidateRows(rows []model.Response) error {
	for i := range rows {
		if err := validateRow(i+1, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateRow(n int, r *model.Response) error {
	if r.Age != nil && (*r.Age <= 0 || *r.Age > 100) {
		return &DomainError{Row: n, Column: model.ColAge, Value: fmt.Sprint(*r.Age)}
	}
	if !genderDomain[r.Gender] {
		return &DomainError{Row: n, Column: model.ColGender, Value: r.Gender}
	}
	if !sizeDomain[r.NoEmployees] {
		return &DomainError{Row: n, Column: model.ColNoEmployees, Value: r.NoEmployees}
	}
	for col, v := range map[string]string{
		model.ColCountry:       r.Country,
		model.ColWorkInterfere: r.WorkInterfere,
		model.ColLeave:         r.Leave,
	} {
		if normalize.IsPlaceholder(v) {
			return &DomainError{Row: n, Column: col, Value: v}
		}
	}
	for _, col := range model.YesNoColumns {
		p := *r.YesNoFields()[col]
		if p != nil && *p != 0 && *p != 1 {
			return &DomainError{Row: n, Column: col, Value: fmt.Sprint(*p)}
		}
	}
	return nil
}
