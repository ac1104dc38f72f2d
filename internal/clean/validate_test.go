package clean

import (
	"errors"
	"testing"

	"github.com/gyeh/surveyclean/internal/model"
)

func validRow() model.Response {
	age := int64(30)
	one := int64(1)
	return model.Response{
		Age:           &age,
		Gender:        "Female",
		Country:       "Canada",
		Treatment:     &one,
		WorkInterfere: "Often",
		NoEmployees:   "6-25",
		Leave:         "Unknown",
	}
}

func TestValidateRows(t *testing.T) {
	i := func(n int64) *int64 { return &n }
	tests := []struct {
		name   string
		mutate func(r *model.Response)
		column string
	}{
		{"valid", func(r *model.Response) {}, ""},
		{"null age", func(r *model.Response) { r.Age = nil }, ""},
		{"age 100", func(r *model.Response) { r.Age = i(100) }, ""},
		{"age zero", func(r *model.Response) { r.Age = i(0) }, model.ColAge},
		{"age over 100", func(r *model.Response) { r.Age = i(150) }, model.ColAge},
		{"raw gender", func(r *model.Response) { r.Gender = "M" }, model.ColGender},
		{"size other", func(r *model.Response) { r.NoEmployees = "Other" }, ""},
		{"raw size", func(r *model.Response) { r.NoEmployees = "lots" }, model.ColNoEmployees},
		{"lowercase unknown size", func(r *model.Response) { r.NoEmployees = "unknown" }, model.ColNoEmployees},
		{"empty country", func(r *model.Response) { r.Country = "" }, model.ColCountry},
		{"placeholder leave", func(r *model.Response) { r.Leave = "Don't know" }, model.ColLeave},
		{"NA work_interfere", func(r *model.Response) { r.WorkInterfere = "NA" }, model.ColWorkInterfere},
		{"yes/no out of range", func(r *model.Response) { r.Benefits = i(2) }, model.ColBenefits},
		{"yes/no null", func(r *model.Response) { r.Benefits = nil }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []model.Response{validRow(), validRow()}
			tt.mutate(&rows[1])
			err := ValidateRows(rows)
			if tt.column == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var de *DomainError
			if !errors.As(err, &de) {
				t.Fatalf("expected *DomainError, got %v", err)
			}
			if de.Row != 2 || de.Column != tt.column {
				t.Errorf("got row %d column %s, want row 2 column %s", de.Row, de.Column, tt.column)
			}
		})
	}
}

func TestValidateRows_AcceptsCleanOutput(t *testing.T) {
	messy := wellFormed()
	messy[model.ColGender] = model.Str("cis male")
	messy[model.ColNoEmployees] = model.Str("lots")
	messy[model.ColLeave] = model.Str("Don't know")
	rows, err := Clean(rawTable(wellFormed(), blankOptional(), messy))
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if err := ValidateRows(rows); err != nil {
		t.Errorf("cleaned rows failed validation: %v", err)
	}
}
