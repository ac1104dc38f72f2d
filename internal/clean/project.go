package clean

import (
	"fmt"
	"strings"

	"github.com/gyeh/surveyclean/internal/model"
)

// MissingColumnError reports required columns absent from the input schema.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// MissingColumns returns the required columns not present in columns, in
// required order.
func MissingColumns(columns []string) []string {
	have := make(map[string]bool, len(columns))
	for _, c := range columns {
		have[c] = true
	}
	var missing []string
	for _, c := range model.RequiredColumns {
		if !have[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

// Project returns a new table holding only the required columns in output
// order. The input table is not modified.
func Project(t *model.Table) (*model.Table, error) {
	if missing := MissingColumns(t.Columns); len(missing) > 0 {
		return nil, &MissingColumnError{Columns: missing}
	}

	out := &model.Table{
		Columns: append([]string(nil), model.RequiredColumns...),
		Records: make([]model.Record, len(t.Records)),
	}
	for i, rec := range t.Records {
		p := make(model.Record, len(model.RequiredColumns))
		for _, c := range model.RequiredColumns {
			p[c] = rec[c]
		}
		out.Records[i] = p
	}
	return out, nil
}
