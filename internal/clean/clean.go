package clean

import (
	"github.com/gyeh/surveyclean/internal/model"
	"github.com/gyeh/surveyclean/internal/normalize"
)

// Step is one column-wise cleaning pass.
type Step struct {
	Name    string
	Columns []string
	Fn      func(*string) *string
}

// Steps lists the cleaning passes in the order they must run. Later steps
// rely on the output domain of earlier ones: fallback substitution must see
// the dedicated normalizers' output, and coercion expects Yes/No text.
var Steps = []Step{
	{Name: "gender", Columns: []string{model.ColGender}, Fn: normalize.GenderCell},
	{Name: "yes_no", Columns: model.YesNoColumns, Fn: normalize.YesNoCell},
	{Name: "company_size", Columns: []string{model.ColNoEmployees}, Fn: normalize.CompanySizeCell},
	{Name: "age", Columns: []string{model.ColAge}, Fn: normalize.AgeCell},
	{Name: "critical_fallback", Columns: model.CriticalColumns, Fn: normalize.FallbackCell},
	{Name: "categorical_fallback", Columns: model.CategoricalColumns, Fn: normalize.FallbackCell},
}

// Clean projects t onto the retained columns, applies every Step and coerces
// the result into typed rows. Row count and order are preserved. The input
// table is left untouched. The only error is *MissingColumnError.
func Clean(t *model.Table) ([]model.Response, error) {
	rows, _, err := CleanWithStats(t)
	return rows, err
}

// CleanWithStats is Clean that also returns, per column, how many cells the
// text steps changed.
func CleanWithStats(t *model.Table) ([]model.Response, map[string]int64, error) {
	p, err := Project(t)
	if err != nil {
		return nil, nil, err
	}

	changed := make(map[string]int64)
	for _, s := range Steps {
		for _, col := range s.Columns {
			if n := p.MapColumn(col, s.Fn); n > 0 {
				changed[col] += n
			}
		}
	}

	return Coerce(p), changed, nil
}

// Coerce converts a cleaned text table into typed rows: Age and the yes/no
// columns become nullable integers, the rest stay text.
func Coerce(t *model.Table) []model.Response {
	rows := make([]model.Response, len(t.Records))
	for i, rec := range t.Records {
		r := &rows[i]
		r.Age = normalize.AgeToInt(rec[model.ColAge])
		r.Gender = text(rec[model.ColGender])
		r.Country = text(rec[model.ColCountry])
		r.WorkInterfere = text(rec[model.ColWorkInterfere])
		r.NoEmployees = text(rec[model.ColNoEmployees])
		r.Leave = text(rec[model.ColLeave])
		for col, field := range r.YesNoFields() {
			*field = normalize.YesNoToInt(rec[col])
		}
	}
	return rows
}

// text unwraps a cell that the fallback steps guarantee is non-null.
func text(v *string) string {
	if v == nil {
		return normalize.Unknown
	}
	return *v
}
